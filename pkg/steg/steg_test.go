package steg

import (
	"bytes"
	"image/jpeg"
	"lsbsteg/pkg/imageio"
	"lsbsteg/pkg/quality"
	"lsbsteg/pkg/raster"
	"lsbsteg/pkg/stego"
	"lsbsteg/test"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSourceImage(t *testing.T, width, height int) string {
	t.Helper()
	path, err := imageio.Save(filepath.Join(t.TempDir(), "source.png"), test.GenerateRandomImage(width, height), imageio.Options{})
	require.NoError(t, err)
	return path
}

func whiteImage(width, height int) *raster.Image {
	img := raster.New(width, height)
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

func TestEmbedExtractFiles(t *testing.T) {
	source := writeSourceImage(t, 60, 40)
	message := "The quick brown fox 🦊 jumps over the lazy dog"

	for _, format := range []imageio.Format{imageio.PNG, imageio.BMP, imageio.TIFF} {
		t.Run(string(format), func(t *testing.T) {
			embedder := NewEmbedder(imageio.Options{Format: format})
			output, err := embedder.EmbedFile(source, message, filepath.Join(t.TempDir(), "stego.jpg"))
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(output, "stego.jpg"+format.Extension()), output)
			assert.Positive(t, embedder.Stats().ImageDecoding)

			extractor := NewExtractor()
			extracted, err := extractor.ExtractFile(output)
			require.NoError(t, err)
			assert.Equal(t, message, extracted)
			assert.Positive(t, extractor.Stats().ImageDecoding)

			psnr, err := MeasureQuality(source, output)
			require.NoError(t, err)
			assert.False(t, math.IsInf(psnr, 1))
			assert.Greater(t, psnr, quality.ExcellentThreshold)
		})
	}
}

func TestEmbedFileTooLargeWritesNothing(t *testing.T) {
	source := writeSourceImage(t, 10, 10)
	destination := filepath.Join(t.TempDir(), "stego.png")

	_, err := NewEmbedder(imageio.Options{}).EmbedFile(source, strings.Repeat("x", 34), destination)
	var capacityErr *stego.CapacityError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, 304, capacityErr.Required)
	assert.Equal(t, 300, capacityErr.Available)

	_, statErr := os.Stat(destination)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestEmbedFileMissingSource(t *testing.T) {
	_, err := NewEmbedder(imageio.Options{}).EmbedFile(filepath.Join(t.TempDir(), "missing.png"), "hi", "out.png")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEmbedBytesFromLossyInput(t *testing.T) {
	var jpegBuf bytes.Buffer
	require.NoError(t, jpeg.Encode(&jpegBuf, test.GenerateRandomImage(32, 32).ToRGBA(), nil))

	embedder := NewEmbedder(imageio.Options{})
	stegoPNG, err := embedder.EmbedBytes(jpegBuf.Bytes(), "from a jpeg carrier", imageio.PNG)
	require.NoError(t, err)

	extracted, err := NewExtractor().ExtractBytes(stegoPNG)
	require.NoError(t, err)
	assert.Equal(t, "from a jpeg carrier", extracted)
}

func TestExtractUnencodedImage(t *testing.T) {
	path, err := imageio.Save(filepath.Join(t.TempDir(), "white.png"), whiteImage(20, 20), imageio.Options{})
	require.NoError(t, err)

	// every LSB is 1, so the header declares 2^32-1 bits
	_, err = NewExtractor().ExtractFile(path)
	assert.ErrorIs(t, err, stego.ErrNoCapacity)
}

func TestMeasureQuality(t *testing.T) {
	source := writeSourceImage(t, 16, 16)

	psnr, err := MeasureQuality(source, source)
	require.NoError(t, err)
	assert.True(t, math.IsInf(psnr, 1))

	other := writeSourceImage(t, 16, 17)
	_, err = MeasureQuality(source, other)
	assert.ErrorIs(t, err, quality.ErrShapeMismatch)

	report, err := AnalyzeFiles(source, source)
	require.NoError(t, err)
	assert.True(t, report.Identical())
	assert.Zero(t, report.ChangedSamples)
}

func TestCapacity(t *testing.T) {
	info, err := Capacity(writeSourceImage(t, 10, 10))
	require.NoError(t, err)
	assert.Equal(t, 300, info.CapacityBits)
	assert.Equal(t, 32, info.HeaderBits)
	assert.Equal(t, 33, info.MaxMessageBytes)
	assert.Equal(t, 10, info.Shape.Width)
}
