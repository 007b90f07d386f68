package server

import (
	"lsbsteg/api"
	"lsbsteg/internal/logging"
	"lsbsteg/pkg/codec"
	"lsbsteg/pkg/steg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExtractHandler godoc
//
// @Summary Extract a message from an image
// @Description Reads the length header and the message embedded in the supplied stego image
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.ExtractRequest true "Request body"
// @Success 200 {object} api.ExtractResponse
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /extract [post]
func (s *Server) ExtractHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx, s.logger)

	var requestBody api.ExtractRequest
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Info("Error reading request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	extractor := steg.NewExtractor()
	message, err := extractor.ExtractBytes(requestBody.Image)
	if err != nil {
		handleError(ctx, logger, err)
		return
	}
	logger.Debug("Extracted message", "stats", toHumanizedExtractStats(extractor.Stats()))

	ctx.JSON(http.StatusOK, api.ExtractResponse{
		Message: message,
		Lossy:   codec.IsLossy(message),
		Stats:   extractor.Stats(),
	})
}
