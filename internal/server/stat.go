package server

import (
	"lsbsteg/pkg/model"
)

type humanizedEmbedStats struct {
	model.EmbedStats
	ImageDecodingHuman       string `json:"image_decoding_human"`
	DataEncodingHuman        string `json:"data_encoding_human"`
	OutputImageEncodingHuman string `json:"output_image_encoding_human"`
}

type humanizedExtractStats struct {
	model.ExtractStats
	ImageDecodingHuman string `json:"image_decoding_human"`
	DataDecodingHuman  string `json:"data_decoding_human"`
}

func toHumanizedEmbedStats(embedStats model.EmbedStats) humanizedEmbedStats {
	return humanizedEmbedStats{
		EmbedStats:               embedStats,
		ImageDecodingHuman:       embedStats.ImageDecoding.String(),
		DataEncodingHuman:        embedStats.DataEncoding.String(),
		OutputImageEncodingHuman: embedStats.OutputImageEncoding.String(),
	}
}

func toHumanizedExtractStats(extractStats model.ExtractStats) humanizedExtractStats {
	return humanizedExtractStats{
		ExtractStats:       extractStats,
		ImageDecodingHuman: extractStats.ImageDecoding.String(),
		DataDecodingHuman:  extractStats.DataDecoding.String(),
	}
}
