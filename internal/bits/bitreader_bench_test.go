package bits

import (
	"lsbsteg/test"
	"testing"
)

const numOfBytesForBenchmark = 1000000

func BenchmarkReadBit(b *testing.B) {
	bytesToRead := test.GenerateRandomBytes(numOfBytesForBenchmark)
	b.SetBytes(int64(numOfBytesForBenchmark))
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		bBitReader := NewBitReader(bytesToRead)
		b.StartTimer()
		for len(bBitReader.bytes) > 0 {
			bBitReader.ReadBit()
		}
	}
}

func BenchmarkWriteBit(b *testing.B) {
	b.SetBytes(int64(numOfBytesForBenchmark))
	for i := 0; i < b.N; i++ {
		bw := NewBitWriter(numOfBytesForBenchmark * 8)
		for bit := 0; bit < numOfBytesForBenchmark*8; bit++ {
			bw.WriteBit(byte(bit))
		}
	}
}
