package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/propstore/internal/adapters/logger"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T, settings domain.LogSettings) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	lg := logger.New(settings)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newTestLogger(t, domain.LogSettings{Level: "info"})

	lg.Info("some message")
	lg.Warn("some warning")
	lg.Error(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=\"some message\"")
	assert.Contains(t, out, "level=WARN msg=\"some warning\"")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "boom")
}

func TestLogger_LevelFiltering(t *testing.T) {
	lg, buf := newTestLogger(t, domain.LogSettings{Level: "warn"})

	lg.Info("hidden")
	lg.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t, domain.LogSettings{Level: "info", Format: "json"})

	lg.Info("hello")
	lg.Error(zerr.Wrap(errors.New("root cause"), "outer"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"msg":"hello"`)

	var record struct {
		Level string `json:"level"`
		Error struct {
			Msg   string `json:"msg"`
			Cause string `json:"cause"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(lines[1], &record))
	assert.Equal(t, "ERROR", record.Level)
	assert.Equal(t, "outer", record.Error.Msg)
	assert.Equal(t, "root cause", record.Error.Cause)
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t, domain.LogSettings{})

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_Slog(t *testing.T) {
	lg, buf := newTestLogger(t, domain.LogSettings{})

	lg.Slog().Info("via slog", "key", "value")

	assert.Contains(t, buf.String(), "key=value")
}

func TestFormatChain(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard error",
			err:  errors.New("plain"),
			want: "Error: plain",
		},
		{
			name: "single zerr",
			err:  zerr.New("only"),
			want: "Error: only",
		},
		{
			name: "chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("dial tcp: refused"), "query failed"), "catalog data source unavailable"),
			want: "Error: catalog data source unavailable\n  Caused by:\n    -> query failed\n    -> dial tcp: refused",
		},
		{
			name: "metadata wrapper without message",
			err:  zerr.With(errors.New("timeout"), "batch", 2),
			want: "Error: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatChain(tt.err))
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestLogger_SetOutputNil(t *testing.T) {
	lg := logger.New(domain.LogSettings{})
	require.NotPanics(t, func() { lg.SetOutput(nil) })
}
