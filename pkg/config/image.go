package config

import (
	"fmt"
	"image/png"
	"lsbsteg/pkg/imageio"
)

var (
	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

type ImageConfig struct {
	// PngCompression is one of default, none, fast, best
	PngCompression string `yaml:"png_compression"`
	// OutputFormat is used when the output path has no lossless extension, one of png, bmp, tiff
	OutputFormat string `yaml:"output_format"`
}

func (c *ImageConfig) populateUnsetConfigVars() {
	if _, found := pngCompressionMapping[c.PngCompression]; !found {
		c.PngCompression = "default"
	}
	if c.OutputFormat == "" {
		c.OutputFormat = string(imageio.DefaultFormat)
	}
}

func (c ImageConfig) PngCompressionLevel() png.CompressionLevel {
	mappedCompression, found := pngCompressionMapping[c.PngCompression]
	if !found {
		mappedCompression = png.DefaultCompression
	}
	return mappedCompression
}

// EncodeOptions converts the config into options for writing stego images
func (c ImageConfig) EncodeOptions() (imageio.Options, error) {
	format, err := imageio.ParseFormat(c.OutputFormat)
	if err != nil {
		return imageio.Options{}, fmt.Errorf("image.output_format: %w", err)
	}
	return imageio.Options{
		Format:              format,
		PngCompressionLevel: c.PngCompressionLevel(),
	}, nil
}
