// Package imageio loads images of any common raster format and persists stego images in lossless formats only.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"lsbsteg/pkg/raster"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Format is a lossless output format
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"

	DefaultFormat = PNG
)

var (
	ErrUnsupportedFormat = errors.New("unsupported lossless output format, options are png, bmp and tiff")
	ErrInvalidImage      = errors.New("invalid image")

	losslessExtensions = map[string]Format{
		".png":  PNG,
		".bmp":  BMP,
		".tif":  TIFF,
		".tiff": TIFF,
	}
)

// ParseFormat maps a user supplied name to a lossless Format, the empty string maps to DefaultFormat
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "":
		return DefaultFormat, nil
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

func (f Format) Extension() string {
	return "." + string(f)
}

func (f Format) ContentType() string {
	return "image/" + string(f)
}

// LosslessPath keeps paths that already carry a lossless extension and appends the extension of fallback to any
// other, so "secret.jpg" becomes "secret.jpg.png"
func LosslessPath(path string, fallback Format) (string, Format) {
	if format, found := losslessExtensions[strings.ToLower(filepath.Ext(path))]; found {
		return path, format
	}
	return path + fallback.Extension(), fallback
}

// Decode reads any registered image format and normalises it to 3 channels of 8 bits
func Decode(r io.Reader) (*raster.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	return raster.FromImage(img), format, nil
}

func Load(path string) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Encode writes img in the given lossless format, channel values round trip byte for byte
func Encode(w io.Writer, img *raster.Image, format Format, opts Options) error {
	rgba := img.ToRGBA()
	switch format {
	case PNG:
		enc := png.Encoder{CompressionLevel: opts.PngCompressionLevel}
		return enc.Encode(w, rgba)
	case BMP:
		return bmp.Encode(w, rgba)
	case TIFF:
		return tiff.Encode(w, rgba, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Save writes img to path, appending a lossless extension when the path has none. The final path is returned
func Save(path string, img *raster.Image, opts Options) (string, error) {
	path, format := LosslessPath(path, opts.fallbackFormat())

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	w := bufio.NewWriter(f)
	if err = Encode(w, img, format, opts); err == nil {
		err = w.Flush()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
