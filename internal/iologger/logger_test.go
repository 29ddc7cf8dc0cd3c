package iologger

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/pgkeeper/pkg/config"
	"github.com/gnames/pgkeeper/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	day := time.Date(2024, time.March, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "pgkeeper-2024-03-07.log", FileName(day))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		res   slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, parseLevel(v.input), v.input)
	}
}

func TestInit_File(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "nested", "logs")
	cfg := config.New().Log

	logger, closer, err := Init(logDir, cfg)
	require.NoError(t, err)
	require.NotNil(t, logger)

	logPath := filepath.Join(logDir, FileName(time.Now()))
	assert.FileExists(t, logPath, "daily file is created eagerly")

	logger.Info("first run", "objects", 3)
	logger.Debug("hidden at info level")
	require.NoError(t, closer.Close())

	logger, closer, err = Init(logDir, cfg)
	require.NoError(t, err)
	logger.Error("second run")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2, "second run appends")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "first run", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.EqualValues(t, 3, rec["objects"])
}

func TestInit_FileError(t *testing.T) {
	// a regular file where the log directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	_, _, err := Init(filepath.Join(blocker, "logs"), config.New().Log)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}

func TestInit_Formats(t *testing.T) {
	for _, format := range []string{"json", "text", "tint", "unknown"} {
		cfg := config.LogConfig{
			Format:      format,
			Level:       "debug",
			Destination: "file",
			MaxSizeMB:   1,
		}
		logDir := t.TempDir()
		logger, closer, err := Init(logDir, cfg)
		require.NoError(t, err, format)
		logger.Debug("hello", "format", format)
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(filepath.Join(logDir, FileName(time.Now())))
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello", format)
	}
}

func TestInit_Streams(t *testing.T) {
	for _, dest := range []string{"stdout", "stderr"} {
		cfg := config.New().Log
		cfg.Destination = dest
		logger, closer, err := Init(t.TempDir(), cfg)
		require.NoError(t, err)
		assert.NotNil(t, logger)
		assert.NoError(t, closer.Close())
	}
}
