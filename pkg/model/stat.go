package model

import (
	"time"
)

type EmbedStats struct {
	ImageDecoding       time.Duration `json:"image_decoding"`
	DataEncoding        time.Duration `json:"data_encoding"`
	OutputImageEncoding time.Duration `json:"output_image_encoding"`
}

type ExtractStats struct {
	ImageDecoding time.Duration `json:"image_decoding"`
	DataDecoding  time.Duration `json:"data_decoding"`
}
