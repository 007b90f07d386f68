package stego

import (
	"fmt"
	"lsbsteg/pkg/codec"
	"lsbsteg/pkg/raster"
	"lsbsteg/test"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedExtractRoundTrip(t *testing.T) {
	messages := []string{
		"",
		"hello",
		"\x00starts with a zero byte",
		"こんにちは、世界",
		"🍣🍣🍣",
		test.GenerateRandomText(500),
	}
	for i, message := range messages {
		message := message
		t.Run(fmt.Sprintf("message-%d", i), func(t *testing.T) {
			t.Parallel()
			img := test.GenerateRandomImage(128, 128)

			stegoImage, err := Embed(img, message)
			require.NoError(t, err)

			extracted, err := Extract(stegoImage)
			require.NoError(t, err)
			assert.Equal(t, message, extracted)
		})
	}
}

func TestEmbedTenByTenScenario(t *testing.T) {
	img := test.GenerateRandomImage(10, 10)
	require.Equal(t, 300, Capacity(img))

	stegoImage, err := Embed(img, "hello")
	require.NoError(t, err)

	header, err := Inspect(stegoImage)
	require.NoError(t, err)
	assert.Equal(t, 40, header.PayloadBits)
	assert.Equal(t, 300-72, header.Remaining())

	// untouched past the 72 embedded bits
	assert.Equal(t, img.Pix[72:], stegoImage.Pix[72:])
}

func TestValidateScenario(t *testing.T) {
	err := Validate(300, 270)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)

	var capacityErr *CapacityError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, CapacityError{Required: 302, Available: 300}, *capacityErr)

	assert.NoError(t, Validate(300, 268))
}

func TestEmbedCapacityBoundary(t *testing.T) {
	// 4x4x3 = 48 bits, 16 left after the header
	img := test.GenerateRandomImage(4, 4)

	stegoImage, err := Embed(img, "hi")
	require.NoError(t, err)
	extracted, err := Extract(stegoImage)
	require.NoError(t, err)
	assert.Equal(t, "hi", extracted)

	_, err = Embed(img, "hi!")
	var capacityErr *CapacityError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, 56, capacityErr.Required)
	assert.Equal(t, 48, capacityErr.Available)
}

func TestEmbedTooLargeLeavesImageUntouched(t *testing.T) {
	img := test.GenerateRandomImage(10, 10)
	original := img.Clone()

	stegoImage, err := Embed(img, strings.Repeat("a", 34))
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Nil(t, stegoImage)
	assert.Equal(t, original.Pix, img.Pix)
}

func TestEmbedPreservesHighBits(t *testing.T) {
	img := test.GenerateRandomImage(32, 32)
	original := img.Clone()

	stegoImage, err := Embed(img, test.GenerateRandomText(100))
	require.NoError(t, err)

	assert.Equal(t, original.Pix, img.Pix, "input image must not be modified")
	require.Len(t, stegoImage.Pix, len(img.Pix))
	for i := range img.Pix {
		if img.Pix[i]&0xFE != stegoImage.Pix[i]&0xFE {
			t.Fatalf("High bits of channel byte %d changed from %08b to %08b", i, img.Pix[i], stegoImage.Pix[i])
		}
	}
}

func TestEmbedWritesHeaderFirst(t *testing.T) {
	stegoImage, err := Embed(raster.New(8, 8), "A")
	require.NoError(t, err)

	expected := append(make([]byte, 28), 1, 0, 0, 0) // header: 8
	expected = append(expected, 0, 1, 0, 0, 0, 0, 0, 1)
	assert.Equal(t, expected, stegoImage.Pix[:40])
	assert.Equal(t, make([]byte, len(stegoImage.Pix)-40), stegoImage.Pix[40:])
}

func TestExtractAllZeroImage(t *testing.T) {
	extracted, err := Extract(raster.New(10, 10))
	require.NoError(t, err)
	assert.Equal(t, "", extracted)
}

func TestExtractHeaderExceedsCapacity(t *testing.T) {
	// 300 bits of capacity, 268 after the header
	_, err := Extract(imageWithHeader(10, 10, 269))
	assert.ErrorIs(t, err, ErrNoCapacity)

	_, err = Extract(imageWithHeader(10, 10, 268))
	assert.NoError(t, err)
}

func TestExtractImageSmallerThanHeader(t *testing.T) {
	// 3x3x3 = 27 bits
	_, err := Extract(raster.New(3, 3))
	assert.ErrorIs(t, err, ErrNoCapacity)

	_, err = Embed(raster.New(3, 3), "")
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestExtractDecodeFailed(t *testing.T) {
	img := imageWithHeader(8, 8, 16)
	// payload 0xFF 0xFE is never valid UTF-8
	for i := 0; i < 15; i++ {
		img.Pix[HeaderBits+i] = 1
	}

	_, err := Extract(img)
	assert.ErrorIs(t, err, ErrDecodeFailed)
	assert.ErrorIs(t, err, codec.ErrInvalidText)
}

func TestExtractLossyDecode(t *testing.T) {
	img, err := Embed(raster.New(16, 16), "ok?")
	require.NoError(t, err)
	// turn '?' (00111111) into 0xBF, a stray continuation byte
	img.Pix[HeaderBits+16] = 1

	extracted, err := Extract(img)
	require.NoError(t, err)
	assert.Equal(t, "ok"+codec.SubstitutionMarker, extracted)
	assert.True(t, codec.IsLossy(extracted))
}

func TestEmbedInvalidImage(t *testing.T) {
	_, err := Embed(&raster.Image{Width: 4, Height: 4, Pix: make([]byte, 3)}, "x")
	assert.Error(t, err)
}

func TestMaxMessageBytes(t *testing.T) {
	assert.Equal(t, 33, MaxMessageBytes(raster.New(10, 10)))
	assert.Equal(t, 0, MaxMessageBytes(raster.New(2, 2)))

	img := test.GenerateRandomImage(10, 10)
	_, err := Embed(img, strings.Repeat("z", MaxMessageBytes(img)))
	assert.NoError(t, err)
	_, err = Embed(img, strings.Repeat("z", MaxMessageBytes(img)+1))
	assert.ErrorIs(t, err, ErrTooLarge)
}
