package stego

import (
	"lsbsteg/pkg/codec"
	"lsbsteg/pkg/raster"
	"math"
)

// HeaderBits is the number of leading LSBs holding the payload bit length
const HeaderBits = codec.HeaderLength

// Capacity is the number of bits the image can carry, one per channel byte
func Capacity(img *raster.Image) int {
	return img.Width * img.Height * raster.Channels
}

// Validate fails with a *CapacityError when the header plus payloadBits exceeds capacity
func Validate(capacity, payloadBits int) error {
	required := HeaderBits + payloadBits
	if required > capacity || uint64(payloadBits) > math.MaxUint32 {
		return &CapacityError{Required: required, Available: capacity}
	}
	return nil
}

// MaxMessageBytes is the longest UTF-8 message, in bytes, that can be embedded into img
func MaxMessageBytes(img *raster.Image) int {
	available := Capacity(img) - HeaderBits
	if available < 0 {
		return 0
	}
	return min(available/8, math.MaxUint32/8)
}
