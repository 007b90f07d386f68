package api

import "lsbsteg/pkg/raster"

type QualityRequest struct {
	Original []byte `json:"original" binding:"required"`
	Modified []byte `json:"modified" binding:"required"`
}

type ChannelQuality struct {
	Channel string   `json:"channel"`
	MSE     float64  `json:"mse"`
	PSNR    *float64 `json:"psnr"`
}

// QualityResponse carries PSNR as null when the images are identical, since JSON cannot represent infinity
type QualityResponse struct {
	Shape          raster.Shape     `json:"shape"`
	PSNR           *float64         `json:"psnr"`
	Identical      bool             `json:"identical"`
	MSE            float64          `json:"mse"`
	SSIM           float64          `json:"ssim"`
	ChangedSamples int              `json:"changed_samples"`
	Channels       []ChannelQuality `json:"channels"`
	Verdict        string           `json:"verdict"`
}
