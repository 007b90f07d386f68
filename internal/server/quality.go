package server

import (
	"bytes"
	"lsbsteg/api"
	"lsbsteg/internal/logging"
	"lsbsteg/pkg/imageio"
	"lsbsteg/pkg/quality"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

// QualityHandler godoc
//
// @Summary Compare two images
// @Description Computes PSNR, MSE and SSIM between an original and a modified image of the same size. psnr is null when the images are identical
// @Tags quality
// @Accept json
// @Produce json
// @Param requestBody body api.QualityRequest true "Request body"
// @Success 200 {object} api.QualityResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /quality [post]
func (s *Server) QualityHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx, s.logger)

	var requestBody api.QualityRequest
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Info("Error reading request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	original, _, err := imageio.Decode(bytes.NewReader(requestBody.Original))
	if err != nil {
		handleError(ctx, logger, err)
		return
	}
	modified, _, err := imageio.Decode(bytes.NewReader(requestBody.Modified))
	if err != nil {
		handleError(ctx, logger, err)
		return
	}

	report, err := quality.Analyze(original, modified)
	if err != nil {
		handleError(ctx, logger, err)
		return
	}
	ctx.JSON(http.StatusOK, toQualityResponse(report))
}

func toQualityResponse(report quality.Report) api.QualityResponse {
	response := api.QualityResponse{
		Shape:          report.Shape,
		PSNR:           finiteOrNil(report.PSNR),
		Identical:      report.Identical(),
		MSE:            report.MSE,
		SSIM:           report.SSIM,
		ChangedSamples: report.ChangedSamples,
		Verdict:        report.Verdict(),
	}
	for _, channel := range report.Channels {
		response.Channels = append(response.Channels, api.ChannelQuality{
			Channel: channel.Channel,
			MSE:     channel.MSE,
			PSNR:    finiteOrNil(channel.PSNR),
		})
	}
	return response
}

func finiteOrNil(psnr float64) *float64 {
	if math.IsInf(psnr, 0) {
		return nil
	}
	return &psnr
}
