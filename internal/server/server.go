package server

import (
	"context"
	"errors"
	"fmt"
	"lsbsteg/internal/logging"
	"lsbsteg/pkg/config"
	"lsbsteg/pkg/imageio"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "lsbsteg/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"

	contentTypeOctetStream = "application/octet-stream"
	shutdownTimeout        = 10 * time.Second
)

type Server struct {
	config     config.Config
	encodeOpts imageio.Options
	logger     *logging.Logger
}

// NewRouter godoc
// @title lsbsteg API
// @version 1.0
// @description An API to hide text in the least significant bits of images and measure the resulting quality loss
// @BasePath /api/v1
func NewRouter(cfg config.Config, logger *logging.Logger) (*gin.Engine, error) {
	encodeOpts, err := cfg.Image.EncodeOptions()
	if err != nil {
		return nil, err
	}
	s := &Server{config: cfg, encodeOpts: encodeOpts, logger: logger}

	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery(), s.corsMiddleware(), s.limitBody)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/embed", s.EmbedHandler)
	v1.POST("/extract", s.ExtractHandler)
	v1.POST("/quality", s.QualityHandler)
	v1.POST("/capacity", s.CapacityHandler)

	return r, nil
}

// StartServer serves the API until ctx is cancelled, then waits for in flight requests to finish
func StartServer(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	router, err := NewRouter(cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "port", cfg.Server.Port)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err = <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) corsMiddleware() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(s.config.Server.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = s.config.Server.AllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Accept")
	return cors.New(corsConfig)
}

func (s *Server) limitBody(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, s.config.Server.MaxBodyBytes)
	ctx.Next()
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	return fmt.Sprintf("{\"timestamp\":\"%v\", \"status_code\": \"%d\", \"latency\": \"%v\", \"latency_raw\": \"%d\", \"response_size\": \"%s\", \"response_size_raw\": \"%d\", \"client_ip\":\"%s\", \"method\": \"%s\", \"path\": \"%v\", \"error\": %q}\n",
		param.TimeStamp.Format(RFC3339Millis),
		param.StatusCode,
		param.Latency,
		param.Latency,
		humanize.Bytes(uint64(max(param.BodySize, 0))),
		param.BodySize,
		param.ClientIP,
		param.Method,
		param.Path,
		param.ErrorMessage,
	)
}
