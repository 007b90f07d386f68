package bits

// BitWriter packs bits into bytes, most significant bit first. A trailing partial byte is zero filled
type BitWriter struct {
	bytes       []byte
	bitsWritten int
}

func NewBitWriter(sizeHintInBits int) *BitWriter {
	return &BitWriter{
		bytes: make([]byte, 0, (sizeHintInBits+7)/8),
	}
}

// WriteBit appends the lowest bit of bit
func (bw *BitWriter) WriteBit(bit byte) {
	if bw.bitsWritten%8 == 0 {
		bw.bytes = append(bw.bytes, 0)
	}
	bw.bytes[len(bw.bytes)-1] |= (bit & 1) << (7 - uint(bw.bitsWritten%8))
	bw.bitsWritten++
}

// WriteBits appends the lowest n bits of value, most significant first
func (bw *BitWriter) WriteBits(value uint64, n uint) {
	for i := n; i > 0; i-- {
		bw.WriteBit(byte(value >> (i - 1)))
	}
}

func (bw *BitWriter) Len() int {
	return bw.bitsWritten
}

func (bw *BitWriter) Bytes() []byte {
	return bw.bytes
}
