package model

import "lsbsteg/pkg/raster"

// CapacityInfo describes how much an image can carry
type CapacityInfo struct {
	Shape           raster.Shape `json:"shape"`
	CapacityBits    int          `json:"capacity_bits"`
	HeaderBits      int          `json:"header_bits"`
	MaxMessageBytes int          `json:"max_message_bytes"`
}
