package stego

import (
	"lsbsteg/pkg/raster"
)

// imageWithHeader returns a zeroed image whose first 32 LSBs declare payloadBits
func imageWithHeader(width, height int, payloadBits uint32) *raster.Image {
	img := raster.New(width, height)
	for i := 0; i < HeaderBits; i++ {
		img.Pix[i] = byte(payloadBits>>(HeaderBits-1-i)) & 1
	}
	return img
}
