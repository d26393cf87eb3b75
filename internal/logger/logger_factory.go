package logger

import (
	"fmt"
	"log/slog"

	"github.com/ffauzan/nc-api/internal/config"
)

// File rotation defaults, in MB / count / days.
const (
	defaultMaxSize    = 10
	defaultMaxBackups = 5
	defaultMaxAge     = 30
)

// New builds a logger from the service configuration.
func New(cfg *config.Config) (Logger, error) {
	switch cfg.LogType {
	case config.LogTypeConsole:
		return NewConsoleLogger(cfg.LogLevel), nil
	case config.LogTypeFile:
		if cfg.LogFilePath == "" {
			return nil, fmt.Errorf("file path required for file logger")
		}
		return NewFileLogger(cfg.LogLevel, cfg.LogFilePath, defaultMaxSize, defaultMaxBackups, defaultMaxAge), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", cfg.LogType)
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
