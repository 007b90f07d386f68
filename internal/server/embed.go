package server

import (
	"io"
	"lsbsteg/api"
	"lsbsteg/internal/logging"
	"lsbsteg/pkg/imageio"
	"lsbsteg/pkg/steg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// EmbedHandler godoc
//
// @Summary Embed a message into an image
// @Description Embeds the message into the channel LSBs of the supplied image and returns a lossless stego image. Send application/octet-stream with an EmbedRequest flatbuffer to receive an EmbedResponse flatbuffer instead of JSON. Errors are always returned as JSON
// @Tags image
// @Accept json,octet-stream
// @Produce json,octet-stream
// @Param requestBody body api.EmbedRequest true "Request body"
// @Success 200 {object} api.EmbedResponse
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /embed [post]
func (s *Server) EmbedHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx, s.logger)
	useFlatbuffers := ctx.ContentType() == contentTypeOctetStream

	var requestBody api.EmbedRequest
	if useFlatbuffers {
		raw, err := io.ReadAll(ctx.Request.Body)
		if err == nil {
			requestBody, err = api.UnmarshalEmbedRequest(raw)
		}
		if err != nil {
			logger.WithError(err).Info("Error reading flatbuffers request body")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
			return
		}
	} else if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Info("Error reading request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	format, err := imageio.ParseFormat(requestBody.Format)
	if err != nil {
		handleError(ctx, logger, err)
		return
	}

	embedder := steg.NewEmbedder(s.encodeOpts)
	stegoImage, err := embedder.EmbedBytes(requestBody.Image, requestBody.Message, format)
	if err != nil {
		handleError(ctx, logger, err)
		return
	}
	logger.Debug("Embedded message", "message_bytes", len(requestBody.Message), "stats", toHumanizedEmbedStats(embedder.Stats()))

	response := api.EmbedResponse{StegoImage: stegoImage, Format: string(format), Stats: embedder.Stats()}
	if useFlatbuffers {
		ctx.Data(http.StatusOK, contentTypeOctetStream, api.MarshalEmbedResponse(response))
		return
	}
	ctx.JSON(http.StatusOK, response)
}
