// Package stego hides text in the least significant bit of every channel byte of an RGB image.
//
// The embedded stream is a 32 bit big-endian header holding the payload length in bits, followed by the payload
// bits. Bits are written sequentially from the first channel byte of the first pixel onwards, one per channel byte.
package stego

import (
	"lsbsteg/pkg/codec"
	"lsbsteg/pkg/raster"
)

// Embed returns a copy of img carrying message in its channel LSBs. Capacity is checked before anything is written,
// the supplied image is never modified
func Embed(img *raster.Image, message string) (*raster.Image, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	payload := codec.TextToBits(message)
	if err := Validate(Capacity(img), len(payload)); err != nil {
		return nil, err
	}
	header, err := codec.HeaderBits(len(payload))
	if err != nil {
		return nil, err
	}

	stegoImage := img.Clone()
	next := writeLSBs(stegoImage.Pix, 0, header)
	writeLSBs(stegoImage.Pix, next, payload)
	return stegoImage, nil
}

// writeLSBs replaces the LSB of pix[offset+i] with stream[i] and returns the index after the last byte written
func writeLSBs(pix []byte, offset int, stream codec.BitStream) int {
	for i, bit := range stream {
		pix[offset+i] = pix[offset+i]&0xFE | bit
	}
	return offset + len(stream)
}
