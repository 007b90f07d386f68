// Package steg exposes the file and stream level entry points used by the CLI and the HTTP server: embed a message
// into an image, extract it back, and measure the quality loss.
package steg

import (
	"bytes"
	"io"
	"lsbsteg/pkg/imageio"
	"lsbsteg/pkg/model"
	"lsbsteg/pkg/raster"
	"lsbsteg/pkg/stego"
	"time"
)

type Embedder struct {
	opts  imageio.Options
	stats model.EmbedStats
}

func NewEmbedder(opts imageio.Options) *Embedder {
	return &Embedder{opts: opts}
}

func (e *Embedder) Stats() model.EmbedStats {
	return e.stats
}

// EmbedFile hides secretText in the image at sourceImagePath and writes the result losslessly. When
// destinationPath has no lossless extension one is appended; the path actually written is returned. Nothing is
// written when the message does not fit
func (e *Embedder) EmbedFile(sourceImagePath, secretText, destinationPath string) (string, error) {
	e.stats = model.EmbedStats{}

	decodeStart := time.Now()
	srcImage, err := imageio.Load(sourceImagePath)
	e.stats.ImageDecoding = time.Since(decodeStart)
	if err != nil {
		return "", err
	}

	stegoImage, err := e.embed(srcImage, secretText)
	if err != nil {
		return "", err
	}

	encodeStart := time.Now()
	defer func() {
		e.stats.OutputImageEncoding = time.Since(encodeStart)
	}()
	return imageio.Save(destinationPath, stegoImage, e.opts)
}

// Embed reads an image from src and writes the stego image to dst in the given format
func (e *Embedder) Embed(src io.Reader, secretText string, dst io.Writer, format imageio.Format) error {
	e.stats = model.EmbedStats{}

	decodeStart := time.Now()
	srcImage, _, err := imageio.Decode(src)
	e.stats.ImageDecoding = time.Since(decodeStart)
	if err != nil {
		return err
	}

	stegoImage, err := e.embed(srcImage, secretText)
	if err != nil {
		return err
	}

	encodeStart := time.Now()
	defer func() {
		e.stats.OutputImageEncoding = time.Since(encodeStart)
	}()
	return imageio.Encode(dst, stegoImage, format, e.opts)
}

// EmbedBytes is Embed for in-memory images
func (e *Embedder) EmbedBytes(srcImage []byte, secretText string, format imageio.Format) ([]byte, error) {
	// pre allocate with size of original, since it should be similar
	encoded := bytes.NewBuffer(make([]byte, 0, len(srcImage)))
	if err := e.Embed(bytes.NewReader(srcImage), secretText, encoded, format); err != nil {
		return nil, err
	}
	return encoded.Bytes(), nil
}

func (e *Embedder) embed(img *raster.Image, secretText string) (*raster.Image, error) {
	encodeStart := time.Now()
	defer func() {
		e.stats.DataEncoding = time.Since(encodeStart)
	}()
	return stego.Embed(img, secretText)
}

// Capacity reports how much text the image at path can carry
func Capacity(path string) (model.CapacityInfo, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return model.CapacityInfo{}, err
	}
	return CapacityOf(img), nil
}

func CapacityOf(img *raster.Image) model.CapacityInfo {
	return model.CapacityInfo{
		Shape:           img.Shape(),
		CapacityBits:    stego.Capacity(img),
		HeaderBits:      stego.HeaderBits,
		MaxMessageBytes: stego.MaxMessageBytes(img),
	}
}
