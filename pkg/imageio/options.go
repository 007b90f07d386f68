package imageio

import "image/png"

// Options tune how stego images are written
type Options struct {
	// Format is used when the destination path carries no lossless extension
	Format              Format
	PngCompressionLevel png.CompressionLevel
}

func (o Options) fallbackFormat() Format {
	if o.Format == "" {
		return DefaultFormat
	}
	return o.Format
}
