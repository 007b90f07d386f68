package quality

import (
	"lsbsteg/pkg/raster"
	"math"
)

const (
	// ImperceptibleThreshold is the PSNR above which differences are hard to see
	ImperceptibleThreshold = 30.0
	// ExcellentThreshold is the PSNR above which quality is considered excellent
	ExcellentThreshold = 40.0
)

var channelNames = [raster.Channels]string{"red", "green", "blue"}

type ChannelReport struct {
	Channel string  `json:"channel"`
	MSE     float64 `json:"mse"`
	PSNR    float64 `json:"-"`
}

// Report gathers every quality measure for a pair of images
type Report struct {
	Shape          raster.Shape                   `json:"shape"`
	MSE            float64                        `json:"mse"`
	PSNR           float64                        `json:"-"`
	SSIM           float64                        `json:"ssim"`
	ChangedSamples int                            `json:"changed_samples"`
	Channels       [raster.Channels]ChannelReport `json:"channels"`
}

func (r Report) Identical() bool {
	return math.IsInf(r.PSNR, 1)
}

// Verdict interprets the PSNR for people reading the report
func (r Report) Verdict() string {
	switch {
	case r.Identical():
		return "identical"
	case r.PSNR > ExcellentThreshold:
		return "excellent, differences are imperceptible"
	case r.PSNR > ImperceptibleThreshold:
		return "good, differences are hard to detect visually"
	default:
		return "poor, differences are likely visible"
	}
}

// Analyze compares a and b, usually an original image and the image produced by embedding a message into it
func Analyze(a, b *raster.Image) (Report, error) {
	if err := checkShapes(a, b); err != nil {
		return Report{}, err
	}

	report := Report{Shape: a.Shape()}
	var totalSum uint64
	var totalSamples int
	for c := 0; c < raster.Channels; c++ {
		sum, samples := squaredError(a.Pix, b.Pix, c, raster.Channels)
		totalSum += sum
		totalSamples += samples

		mse := meanSquaredError(sum, samples)
		report.Channels[c] = ChannelReport{Channel: channelNames[c], MSE: mse, PSNR: psnrFromMSE(mse)}
	}
	report.MSE = meanSquaredError(totalSum, totalSamples)
	report.PSNR = psnrFromMSE(report.MSE)

	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			report.ChangedSamples++
		}
	}

	ssim, err := SSIM(a, b)
	if err != nil {
		return Report{}, err
	}
	report.SSIM = ssim
	return report, nil
}
