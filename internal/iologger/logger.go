// Package iologger provides slog-based logging initialization and configuration.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gnames/pgkeeper/pkg/config"
	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName returns the name of the log file for the day of t.
func FileName(t time.Time) string {
	return config.AppName + "-" + t.Format(time.DateOnly) + ".log"
}

// Init creates a logger with the given configuration. When destination
// is "file", records are appended to the daily log file in logDir, which
// is created if needed. The returned Closer releases the file and must
// be called when the run is over.
func Init(logDir string, cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	var writer io.Writer
	var closer io.Closer = nopCloser{}

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	case "file":
		lj, err := openFile(logDir, cfg.MaxSizeMB, time.Now())
		if err != nil {
			return nil, nil, err
		}
		writer = lj
		closer = lj
	default:
		writer = os.Stderr
	}

	level := parseLevel(cfg.Level)

	var handler slog.Handler
	handlerOpts := &slog.HandlerOptions{
		Level: level,
	}

	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(writer, handlerOpts)
	case "text":
		handler = slog.NewTextHandler(writer, handlerOpts)
	case "tint":
		handler = tint.NewHandler(writer, &tint.Options{
			Level:      level,
			TimeFormat: time.DateTime,
		})
	default:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	}

	return slog.New(handler), closer, nil
}

// openFile makes sure the daily log file exists and can be appended to,
// then hands it to lumberjack, which caps its size.
func openFile(
	logDir string,
	maxSizeMB int,
	now time.Time,
) (*lumberjack.Logger, error) {
	logPath := filepath.Join(logDir, FileName(now))

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, CreateLogFileError(logPath, err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, CreateLogFileError(logPath, err)
	}
	if err = f.Close(); err != nil {
		return nil, CreateLogFileError(logPath, err)
	}

	return &lumberjack.Logger{
		Filename: logPath,
		MaxSize:  maxSizeMB,
	}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
