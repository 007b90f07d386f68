package stego

import (
	"lsbsteg/test"
	"testing"
)

const benchImageSize = 2000

func BenchmarkEmbed(b *testing.B) {
	img := test.GenerateRandomImage(benchImageSize, benchImageSize)
	message := string(test.GenerateRandomBytes(MaxMessageBytes(img)))
	b.SetBytes(int64(len(img.Pix)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Embed(img, message); err != nil {
			b.Fatalf("Error during embed: %s", err)
		}
	}
}

func BenchmarkExtract(b *testing.B) {
	img := test.GenerateRandomImage(benchImageSize, benchImageSize)
	stegoImage, err := Embed(img, test.GenerateRandomText(MaxMessageBytes(img)/4))
	if err != nil {
		b.Fatalf("Error during embed: %s", err)
	}
	b.SetBytes(int64(len(img.Pix)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Extract(stegoImage); err != nil {
			b.Fatalf("Error during extract: %s", err)
		}
	}
}
