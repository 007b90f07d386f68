package server

import (
	"bytes"
	"lsbsteg/api"
	"lsbsteg/internal/logging"
	"lsbsteg/pkg/imageio"
	"lsbsteg/pkg/steg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CapacityHandler godoc
//
// @Summary Report embedding capacity
// @Description Returns how many bits and message bytes the supplied image can carry
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.CapacityRequest true "Request body"
// @Success 200 {object} model.CapacityInfo
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /capacity [post]
func (s *Server) CapacityHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx, s.logger)

	var requestBody api.CapacityRequest
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Info("Error reading request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	img, _, err := imageio.Decode(bytes.NewReader(requestBody.Image))
	if err != nil {
		handleError(ctx, logger, err)
		return
	}
	ctx.JSON(http.StatusOK, steg.CapacityOf(img))
}
