package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
)

type Logger struct {
	*slog.Logger
}

// BuildLogger returns a JSON logger writing to stderr, so CLI output on stdout stays machine readable
func BuildLogger(level slog.Level) *Logger {
	return BuildLoggerTo(os.Stderr, level)
}

func BuildLoggerTo(w io.Writer, level slog.Level) *Logger {
	logger := Logger{Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))}
	return &logger
}

func BuildLoggerFromCtx(ctx *gin.Context, base *Logger) *Logger {
	logger := Logger{Logger: base.With("path", ctx.Request.URL.Path, "method", ctx.Request.Method)}
	return &logger
}

func (l *Logger) WithError(err error) *Logger {
	modifiedLogger := Logger{Logger: l.With("error", err.Error())}
	return &modifiedLogger
}
