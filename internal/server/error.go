package server

import (
	"errors"
	"lsbsteg/api"
	"lsbsteg/internal/logging"
	"lsbsteg/pkg/imageio"
	"lsbsteg/pkg/quality"
	"lsbsteg/pkg/stego"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errRequestBodyDecode = api.Error{Code: "invalid_request", Error: "Error reading request body"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errInvalidFormat     = api.Error{Code: "invalid_format", Error: imageio.ErrUnsupportedFormat.Error()}
	errNoMessage         = api.Error{Code: "no_message", Error: stego.ErrNoCapacity.Error()}
	errDecodeFailed      = api.Error{Code: "decode_failed", Error: stego.ErrDecodeFailed.Error()}
	errShapeMismatch     = api.Error{Code: "shape_mismatch", Error: "Images must have the same width and height"}
	errInternal          = api.Error{Code: "internal_error", Error: "An error occurred while processing the image"}
)

// handleError maps errors from the steganography packages onto API errors. Every error response is JSON
func handleError(ctx *gin.Context, logger *logging.Logger, err error) {
	var capacityErr *stego.CapacityError
	var shapeErr *quality.ShapeMismatchError
	switch {
	case errors.As(err, &capacityErr):
		logger.WithError(err).Info("Message does not fit in image")
		ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, api.Error{
			Code:      "message_too_large",
			Error:     capacityErr.Error(),
			Required:  capacityErr.Required,
			Available: capacityErr.Available,
		})
	case errors.Is(err, stego.ErrNoCapacity):
		logger.WithError(err).Info("No message found in image")
		ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, errNoMessage)
	case errors.Is(err, stego.ErrDecodeFailed):
		logger.WithError(err).Info("Embedded message could not be decoded")
		ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, errDecodeFailed)
	case errors.As(err, &shapeErr):
		logger.WithError(err).Info("Images differ in shape")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, api.Error{Code: errShapeMismatch.Code, Error: shapeErr.Error()})
	case errors.Is(err, imageio.ErrUnsupportedFormat):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidFormat)
	case errors.Is(err, imageio.ErrInvalidImage):
		logger.WithError(err).Info("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
	default:
		logger.WithError(err).Error("Error processing image")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errInternal)
	}
}
