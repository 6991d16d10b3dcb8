package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level     string
		want      slog.Level
		expectErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			req := require.New(t)
			got, err := ParseLevel(tt.level)
			if tt.expectErr {
				req.ErrorIs(err, ErrUnknownLevel)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}

func TestNew_JSON(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer

	logger, err := New(&buf, "debug", FormatJSON)
	req.NoError(err)
	logger.Debug("grouped imports", "framework", 2)

	var record map[string]any
	req.NoError(json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "grouped imports", record["msg"])
	assert.Equal(t, "DEBUG", record["level"])
	assert.EqualValues(t, 2, record["framework"])
}

func TestNew_TextFiltersLevel(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer

	logger, err := New(&buf, "warn", FormatText)
	req.NoError(err)
	logger.Info("hidden")
	logger.Warn("shown")

	req.NotContains(buf.String(), "hidden")
	req.Contains(buf.String(), "msg=shown")
}

func TestNew_errors(t *testing.T) {
	req := require.New(t)

	_, err := New(&bytes.Buffer{}, "loud", FormatText)
	req.ErrorIs(err, ErrUnknownLevel)

	_, err = New(&bytes.Buffer{}, "info", "xml")
	req.ErrorIs(err, ErrUnknownFormat)
	req.False(ValidFormat("xml"))
	req.True(ValidFormat("JSON"))
}
