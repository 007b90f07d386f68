// Package quality measures how much embedding degraded an image
package quality

import (
	"errors"
	"fmt"
	"lsbsteg/pkg/raster"
	"math"
)

// MaxSampleValue is the peak value of an 8 bit channel
const MaxSampleValue = 255

var ErrShapeMismatch = errors.New("images differ in shape")

// ShapeMismatchError is returned when two images cannot be compared sample by sample
type ShapeMismatchError struct {
	A, B raster.Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("cannot compare a %s image with a %s image", e.A, e.B)
}

func (e *ShapeMismatchError) Unwrap() error {
	return ErrShapeMismatch
}

func checkShapes(a, b *raster.Image) error {
	if a.Shape() != b.Shape() || len(a.Pix) != len(b.Pix) {
		return &ShapeMismatchError{A: a.Shape(), B: b.Shape()}
	}
	return nil
}

// squaredError sums the squared differences of every stride-th sample starting at offset
func squaredError(a, b []byte, offset, stride int) (sum uint64, samples int) {
	for i := offset; i < len(a); i += stride {
		diff := int64(a[i]) - int64(b[i])
		sum += uint64(diff * diff)
		samples++
	}
	return sum, samples
}

func meanSquaredError(sum uint64, samples int) float64 {
	if samples == 0 {
		return 0
	}
	return float64(sum) / float64(samples)
}

// psnrFromMSE returns +Inf for identical images
func psnrFromMSE(mse float64) float64 {
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(MaxSampleValue*MaxSampleValue/mse)
}

// MSE is the mean of the squared differences over all channel samples
func MSE(a, b *raster.Image) (float64, error) {
	if err := checkShapes(a, b); err != nil {
		return 0, err
	}
	return meanSquaredError(squaredError(a.Pix, b.Pix, 0, 1)), nil
}

// PSNR is the peak signal-to-noise ratio in dB, +Inf when both images are identical. The result is symmetric in
// its arguments
func PSNR(a, b *raster.Image) (float64, error) {
	mse, err := MSE(a, b)
	if err != nil {
		return 0, err
	}
	return psnrFromMSE(mse), nil
}
