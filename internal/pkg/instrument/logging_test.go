package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestNewHandler_MasksAndTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, &Config{
		ServiceName: "simple-auth",
		MaskFields:  []string{"Authorization", " secret "},
	}, nil))

	ctx := SetCorrelationID(context.Background(), "cid-1")
	logger.InfoContext(ctx, "request received",
		"authorization", "Bearer abc",
		"body", map[string]any{"secret": "s3", "sub": "u1"},
		"raw", `{"secret":"x","keep":1}`,
	)

	line := decodeLine(t, &buf)
	assert.Equal(t, "request received", line["msg"])
	assert.Equal(t, "INFO", line["severity"])
	assert.Contains(t, line, "ts")
	assert.Equal(t, "cid-1", line["_cID"])
	assert.Equal(t, "simple-auth", line["service"])
	assert.Equal(t, "***", line["authorization"])
	assert.Equal(t, map[string]any{"secret": "***", "sub": "u1"}, line["body"])
	assert.JSONEq(t, `{"secret":"***","keep":1}`, line["raw"].(string))
}

func TestNewHandler_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, &Config{LogLevel: "warn"}, nil))

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	line := decodeLine(t, &buf)
	assert.Equal(t, "kept", line["msg"])
	assert.NotContains(t, line, "_cID")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"verbose": slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestMaskData(t *testing.T) {
	keys := MaskKeys([]string{"password", ""})
	assert.Len(t, keys, 1)

	in := map[string]any{
		"Password": "p",
		"list":     []any{map[string]any{"password": "q", "n": 1}},
		"plain":    "v",
	}
	want := map[string]any{
		"Password": "***",
		"list":     []any{map[string]any{"password": "***", "n": 1}},
		"plain":    "v",
	}
	assert.Equal(t, want, MaskData(in, keys))
	assert.Equal(t, "p", in["Password"])
}

func TestNew_DisabledReturnsNoop(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	ins, err := New(context.Background(), &Config{ServiceName: "simple-auth"})
	require.NoError(t, err)
	p, ok := ins.(*providers)
	require.True(t, ok)
	assert.Empty(t, p.shutdown)
	assert.NoError(t, ins.Shutdown(context.Background()))
}

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
	assert.Equal(t, "abc", GetCorrelationID(SetCorrelationID(context.Background(), "abc")))
}
