package test

import (
	"lsbsteg/pkg/raster"
	"math/rand"
)

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GenerateRandomImage returns a width x height RGB image filled with random channel values
func GenerateRandomImage(width, height int) *raster.Image {
	img := raster.New(width, height)
	copy(img.Pix, GenerateRandomBytes(len(img.Pix)))
	return img
}

// GenerateRandomText returns a string of numOfRunes random runes mixing ASCII and multi-byte characters
func GenerateRandomText(numOfRunes int) string {
	alphabet := []rune("abcdefghijklmnopqrstuvwxyz ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.,!?éüß漢字かな🍣")
	runes := make([]rune, numOfRunes)
	for i := range runes {
		runes[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(runes)
}
