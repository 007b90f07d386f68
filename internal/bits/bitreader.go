package bits

// BitReader implements methods to help with reading bits from an array of bytes. Bits are read from most significant
// to least significant, so a byte slice read to the end yields its big-endian binary representation
type BitReader struct {
	bytes         []byte
	currentBitIdx uint
}

func NewBitReader(bytes []byte) *BitReader {
	return &BitReader{
		bytes: bytes,
	}
}

func (br *BitReader) BytesLeftToRead() int {
	return len(br.bytes)
}

func (br *BitReader) BitsLeftToRead() int {
	if len(br.bytes) == 0 {
		return 0
	}
	return (len(br.bytes)-1)*8 + (8 - int(br.currentBitIdx))
}

func (br *BitReader) Reset() {
	br.bytes = nil
	br.currentBitIdx = 0
}

// ReadBit returns the next bit as 0 or 1. Reading past the end returns 0
func (br *BitReader) ReadBit() byte {
	if len(br.bytes) == 0 {
		return 0
	}
	bit := (br.bytes[0] >> (7 - br.currentBitIdx)) & 1
	br.currentBitIdx++
	if br.currentBitIdx == 8 {
		br.bytes = br.bytes[1:]
		br.currentBitIdx = 0
	}
	return bit
}

// ReadBits reads up to 64 bits and returns them right aligned, first bit read being the most significant
func (br *BitReader) ReadBits(bitsToRead uint) (valueWithRequestedBits uint64) {
	for i := uint(0); i < bitsToRead && len(br.bytes) > 0; i++ {
		valueWithRequestedBits = valueWithRequestedBits<<1 | uint64(br.ReadBit())
	}
	return valueWithRequestedBits
}
