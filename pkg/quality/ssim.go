package quality

import (
	"lsbsteg/pkg/raster"

	"gonum.org/v1/gonum/stat"
)

const (
	// SSIMWindow is the side of the square windows SSIM is averaged over
	SSIMWindow = 8

	ssimK1 = 0.01
	ssimK2 = 0.03
)

var (
	ssimC1 = (ssimK1 * MaxSampleValue) * (ssimK1 * MaxSampleValue)
	ssimC2 = (ssimK2 * MaxSampleValue) * (ssimK2 * MaxSampleValue)
)

// SSIM is the mean structural similarity of the two images, computed per channel over non-overlapping windows of
// SSIMWindow x SSIMWindow pixels (smaller for images below that size) and averaged. 1 means identical
func SSIM(a, b *raster.Image) (float64, error) {
	if err := checkShapes(a, b); err != nil {
		return 0, err
	}
	if len(a.Pix) == 0 {
		return 1, nil
	}

	winW, winH := min(SSIMWindow, a.Width), min(SSIMWindow, a.Height)
	x := make([]float64, 0, winW*winH)
	y := make([]float64, 0, winW*winH)

	var scores []float64
	for c := 0; c < raster.Channels; c++ {
		for top := 0; top+winH <= a.Height; top += winH {
			for left := 0; left+winW <= a.Width; left += winW {
				x, y = x[:0], y[:0]
				for row := top; row < top+winH; row++ {
					for col := left; col < left+winW; col++ {
						i := (row*a.Width+col)*raster.Channels + c
						x = append(x, float64(a.Pix[i]))
						y = append(y, float64(b.Pix[i]))
					}
				}
				scores = append(scores, windowSSIM(x, y))
			}
		}
	}
	return stat.Mean(scores, nil), nil
}

func windowSSIM(x, y []float64) float64 {
	meanX, varX := stat.MeanVariance(x, nil)
	meanY, varY := stat.MeanVariance(y, nil)
	var covXY float64
	if len(x) > 1 {
		covXY = stat.Covariance(x, y, nil)
	} else {
		varX, varY = 0, 0
	}

	return ((2*meanX*meanY + ssimC1) * (2*covXY + ssimC2)) /
		((meanX*meanX + meanY*meanY + ssimC1) * (varX + varY + ssimC2))
}
