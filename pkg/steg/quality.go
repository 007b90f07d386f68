package steg

import (
	"lsbsteg/pkg/imageio"
	"lsbsteg/pkg/quality"
	"lsbsteg/pkg/raster"
)

// MeasureQuality returns the PSNR in dB between the two image files, +Inf when their pixels are identical
func MeasureQuality(imageAPath, imageBPath string) (float64, error) {
	a, b, err := loadPair(imageAPath, imageBPath)
	if err != nil {
		return 0, err
	}
	return quality.PSNR(a, b)
}

// AnalyzeFiles computes the full quality report for the two image files
func AnalyzeFiles(imageAPath, imageBPath string) (quality.Report, error) {
	a, b, err := loadPair(imageAPath, imageBPath)
	if err != nil {
		return quality.Report{}, err
	}
	return quality.Analyze(a, b)
}

func loadPair(imageAPath, imageBPath string) (*raster.Image, *raster.Image, error) {
	a, err := imageio.Load(imageAPath)
	if err != nil {
		return nil, nil, err
	}
	b, err := imageio.Load(imageBPath)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
