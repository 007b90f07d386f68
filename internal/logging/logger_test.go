package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := BuildLoggerTo(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.WithError(errors.New("boom")).Error("failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "failed", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
}

func TestBuildLoggerFromCtx(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("POST", "/api/v1/embed", nil)

	BuildLoggerFromCtx(ctx, BuildLoggerTo(&buf, slog.LevelDebug)).Info("request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/api/v1/embed", entry["path"])
	assert.Equal(t, "POST", entry["method"])
}
