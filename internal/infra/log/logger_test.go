package logs

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"marketplace/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got, err := parseLogLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("visible", slog.String("key", "value"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"visible"`)
	assert.Contains(t, buf.String(), `"key":"value"`)
}

func TestNewWriter(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		w, closer, err := newWriter(config.Log{Output: "stdout"})

		require.NoError(t, err)
		assert.Equal(t, os.Stdout, w)
		assert.Nil(t, closer)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "app.log")

		w, closer, err := newWriter(config.Log{Output: "file", FilePath: path, MaxSize: 1})
		require.NoError(t, err)
		require.NotNil(t, closer)
		defer closer.Close()

		_, err = w.Write([]byte("line\n"))
		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("file without path", func(t *testing.T) {
		_, _, err := newWriter(config.Log{Output: "both"})

		assert.Error(t, err)
	})

	t.Run("unknown output", func(t *testing.T) {
		_, _, err := newWriter(config.Log{Output: "syslog"})

		assert.Error(t, err)
	})
}
