// Package raster holds the 3 channel, 8 bits per channel pixel buffer every steganography operation works on.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Channels is the number of channel bytes stored per pixel (red, green, blue)
const Channels = 3

// Shape describes the dimensions of an image
type Shape struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	Channels int `json:"channels"`
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%d", s.Width, s.Height, s.Channels)
}

// Image is a row-major, channel-interleaved RGB buffer, len(Pix) == Width*Height*3
type Image struct {
	Width, Height int
	Pix           []byte
}

func New(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*Channels),
	}
}

// FromImage converts any decoded image into an RGB buffer. Colors are taken non-premultiplied and the alpha channel
// is dropped, deeper channel depths are reduced to 8 bits
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)
	}

	img := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < img.Height; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+img.Width*4]
		out := img.Pix[y*img.Width*Channels : (y+1)*img.Width*Channels]
		for x := 0; x < img.Width; x++ {
			copy(out[x*Channels:x*Channels+Channels], row[x*4:x*4+Channels])
		}
	}
	return img
}

// ToRGBA returns a fully opaque copy suitable for the standard image encoders
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for p, px := 0, 0; p < len(img.Pix); p, px = p+Channels, px+4 {
		copy(rgba.Pix[px:px+Channels], img.Pix[p:p+Channels])
		rgba.Pix[px+3] = 0xff
	}
	return rgba
}

func (img *Image) At(x, y int) color.RGBA {
	i := (y*img.Width + x) * Channels
	return color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: 0xff}
}

func (img *Image) Set(x, y int, c color.RGBA) {
	i := (y*img.Width + x) * Channels
	img.Pix[i], img.Pix[i+1], img.Pix[i+2] = c.R, c.G, c.B
}

func (img *Image) Clone() *Image {
	clone := &Image{Width: img.Width, Height: img.Height, Pix: make([]byte, len(img.Pix))}
	copy(clone.Pix, img.Pix)
	return clone
}

func (img *Image) Shape() Shape {
	return Shape{Width: img.Width, Height: img.Height, Channels: Channels}
}

// Samples is the number of channel bytes in the image
func (img *Image) Samples() int {
	return len(img.Pix)
}

// Validate checks the buffer length against the declared dimensions
func (img *Image) Validate() error {
	if img.Width < 0 || img.Height < 0 {
		return fmt.Errorf("invalid image dimensions %dx%d", img.Width, img.Height)
	}
	if expected := img.Width * img.Height * Channels; len(img.Pix) != expected {
		return fmt.Errorf("image %s holds %d channel bytes, expected %d", img.Shape(), len(img.Pix), expected)
	}
	return nil
}
