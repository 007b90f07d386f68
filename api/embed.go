package api

import "lsbsteg/pkg/model"

type EmbedRequest struct {
	Image   []byte `json:"image" binding:"required"`
	Message string `json:"message"`
	// Format of the returned stego image, one of png, bmp, tiff. Defaults to png
	Format string `json:"format"`
}

type EmbedResponse struct {
	StegoImage []byte           `json:"stego_image"`
	Format     string           `json:"format"`
	Stats      model.EmbedStats `json:"stats"`
}

type ExtractRequest struct {
	Image []byte `json:"image" binding:"required"`
}

type ExtractResponse struct {
	Message string `json:"message"`
	// Lossy is set when invalid UTF-8 sequences were replaced while decoding
	Lossy bool               `json:"lossy"`
	Stats model.ExtractStats `json:"stats"`
}

type CapacityRequest struct {
	Image []byte `json:"image" binding:"required"`
}
