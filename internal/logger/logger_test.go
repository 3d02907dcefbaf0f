package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestJSONLogging(t *testing.T) {
	withDefault(t)
	var buf bytes.Buffer

	InitLogger(Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}, &buf)

	ctx := WithRequestID(context.Background(), "req-1")
	FromContext(ctx).Info("test message", "key", "value", "number", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
	assert.Equal(t, "req-1", entry["request_id"])
}

func TestTextLogging_LevelFilter(t *testing.T) {
	withDefault(t)
	var buf bytes.Buffer

	InitLogger(Config{Level: "warn", Format: "text", ServiceName: "farm"}, &buf)
	slog.Info("hidden")
	slog.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "service=farm")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestRequestIDContext(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))

	ctx := WithRequestID(context.Background(), "test-req-123")
	assert.Equal(t, "test-req-123", GetRequestID(ctx))
	assert.NotNil(t, FromContext(ctx))

	_, err := uuid.Parse(GenerateRequestID())
	assert.NoError(t, err)
}

func TestLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"loud":    slog.LevelInfo,
	}
	for level, want := range tests {
		assert.Equal(t, want, Config{Level: level}.LogLevel(), level)
	}
}

func TestNewConfig(t *testing.T) {
	dev := NewConfig("debug", "text", "v1", "dev")
	assert.Equal(t, DefaultServiceName, dev.ServiceName)
	assert.True(t, dev.AddSource)
	assert.False(t, dev.IsJSON())

	prod := NewConfig("info", "JSON", "v1", "prod")
	assert.False(t, prod.AddSource)
	assert.True(t, NewConfig("info", "text", "v1", "Development").AddSource)
	assert.True(t, prod.IsJSON())

	def := DefaultConfig()
	assert.Equal(t, LogLevelInfo, def.Level)
	assert.Equal(t, LogFormatText, def.Format)
}
