// Package codec converts text messages to and from the ordered bit sequences that get embedded into images.
package codec

import (
	"errors"
	"fmt"
	"lsbsteg/internal/bits"
	"strings"
	"unicode/utf8"
)

const (
	// HeaderLength is the width in bits of the length prefix written before every payload
	HeaderLength = 32

	// SubstitutionMarker replaces invalid UTF-8 sequences in decoded text
	SubstitutionMarker = string(utf8.RuneError)
)

var (
	ErrInvalidText  = errors.New("decoded bytes are not valid UTF-8 text")
	ErrShortHeader  = errors.New("header requires 32 bits")
	ErrInvalidBit   = errors.New("bit stream contains a value other than 0 or 1")
	ErrHeaderLength = errors.New("bit length does not fit in a 32 bit header")
)

// BitStream is an ordered sequence of bits, one per element, each 0 or 1, most significant bit first
type BitStream []byte

// DecodeError is returned when a bit stream cannot be turned into usable text
type DecodeError struct {
	Bytes int
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %d bytes: %s", e.Bytes, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TextToBits encodes text as UTF-8 and expands every byte into 8 bits. The stream length is always 8 times the byte
// length, so leading zero bytes survive and the empty string yields an empty stream
func TextToBits(text string) BitStream {
	return BytesToBits([]byte(text))
}

func BytesToBits(data []byte) BitStream {
	br := bits.NewBitReader(data)
	stream := make(BitStream, 0, len(data)*8)
	for br.BitsLeftToRead() > 0 {
		stream = append(stream, br.ReadBit())
	}
	return stream
}

// BitsToBytes reads the stream as a big-endian unsigned integer and packs it into ceil(len/8) bytes. Streams whose
// length is not a multiple of 8 are left padded with zero bits
func BitsToBytes(stream BitStream) ([]byte, error) {
	padding := (8 - len(stream)%8) % 8
	bw := bits.NewBitWriter(len(stream) + padding)
	bw.WriteBits(0, uint(padding))
	for _, bit := range stream {
		if bit > 1 {
			return nil, ErrInvalidBit
		}
		bw.WriteBit(bit)
	}
	return bw.Bytes(), nil
}

// BitsToText packs the stream into bytes and decodes them as UTF-8. Invalid sequences are replaced with
// SubstitutionMarker; when nothing but markers remain the text is unusable and a *DecodeError is returned
func BitsToText(stream BitStream) (string, error) {
	data, err := BitsToBytes(stream)
	if err != nil {
		return "", &DecodeError{Bytes: len(stream) / 8, Err: err}
	}
	if utf8.Valid(data) {
		return string(data), nil
	}

	text := strings.ToValidUTF8(string(data), SubstitutionMarker)
	if strings.Trim(text, SubstitutionMarker) == "" {
		return "", &DecodeError{Bytes: len(data), Err: ErrInvalidText}
	}
	return text, nil
}

// IsLossy reports whether decoded text carries substitution markers
func IsLossy(text string) bool {
	return strings.Contains(text, SubstitutionMarker)
}

// HeaderBits encodes a payload bit length as a HeaderLength wide big-endian bit stream
func HeaderBits(payloadBits int) (BitStream, error) {
	if payloadBits < 0 || uint64(payloadBits) > uint64(^uint32(0)) {
		return nil, ErrHeaderLength
	}
	bw := bits.NewBitWriter(HeaderLength)
	bw.WriteBits(uint64(payloadBits), HeaderLength)
	return BytesToBits(bw.Bytes()), nil
}

// ParseHeader reads the payload bit length from the first HeaderLength bits of the stream
func ParseHeader(stream BitStream) (uint32, error) {
	if len(stream) < HeaderLength {
		return 0, ErrShortHeader
	}
	var length uint32
	for _, bit := range stream[:HeaderLength] {
		if bit > 1 {
			return 0, ErrInvalidBit
		}
		length = length<<1 | uint32(bit)
	}
	return length, nil
}
