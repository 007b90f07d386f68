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

type Extractor struct {
	stats model.ExtractStats
}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Stats() model.ExtractStats {
	return e.stats
}

// ExtractFile returns the message embedded in the image at stegoImagePath
func (e *Extractor) ExtractFile(stegoImagePath string) (string, error) {
	e.stats = model.ExtractStats{}

	decodeStart := time.Now()
	img, err := imageio.Load(stegoImagePath)
	e.stats.ImageDecoding = time.Since(decodeStart)
	if err != nil {
		return "", err
	}
	return e.extract(img)
}

func (e *Extractor) Extract(r io.Reader) (string, error) {
	e.stats = model.ExtractStats{}

	decodeStart := time.Now()
	img, _, err := imageio.Decode(r)
	e.stats.ImageDecoding = time.Since(decodeStart)
	if err != nil {
		return "", err
	}
	return e.extract(img)
}

func (e *Extractor) ExtractBytes(stegoImage []byte) (string, error) {
	return e.Extract(bytes.NewReader(stegoImage))
}

func (e *Extractor) extract(img *raster.Image) (string, error) {
	decodeStart := time.Now()
	defer func() {
		e.stats.DataDecoding = time.Since(decodeStart)
	}()
	return stego.Extract(img)
}
