package stego

import (
	"fmt"
	"lsbsteg/pkg/codec"
	"lsbsteg/pkg/raster"
)

// Header describes the length prefix found in an image
type Header struct {
	PayloadBits int `json:"payload_bits"`
	Capacity    int `json:"capacity"`
}

// Remaining is the number of bits left unused after the header and payload
func (h Header) Remaining() int {
	return h.Capacity - HeaderBits - h.PayloadBits
}

// Inspect reads the header from the first 32 LSBs and checks it against the image capacity
func Inspect(img *raster.Image) (Header, error) {
	if err := img.Validate(); err != nil {
		return Header{}, err
	}

	capacity := Capacity(img)
	if capacity < HeaderBits {
		return Header{}, fmt.Errorf("%w: image holds %d bits, the header alone needs %d", ErrNoCapacity, capacity, HeaderBits)
	}

	payloadBits, err := codec.ParseHeader(readLSBs(img.Pix[:HeaderBits]))
	if err != nil {
		return Header{}, err
	}
	if uint64(payloadBits) > uint64(capacity-HeaderBits) {
		return Header{}, fmt.Errorf("%w: header declares %d bits, %d available", ErrNoCapacity, payloadBits, capacity-HeaderBits)
	}

	return Header{PayloadBits: int(payloadBits), Capacity: capacity}, nil
}

// Extract recovers the message embedded by Embed. Images without an embedded message usually fail with
// ErrNoCapacity, an all zero image yields an empty message
func Extract(img *raster.Image) (string, error) {
	header, err := Inspect(img)
	if err != nil {
		return "", err
	}

	payload := readLSBs(img.Pix[HeaderBits : HeaderBits+header.PayloadBits])
	text, err := codec.BitsToText(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	return text, nil
}

func readLSBs(pix []byte) codec.BitStream {
	stream := make(codec.BitStream, len(pix))
	for i, b := range pix {
		stream[i] = b & 1
	}
	return stream
}
