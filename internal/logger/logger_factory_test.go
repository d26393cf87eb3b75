package logger

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/ffauzan/nc-api/internal/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		LogLevel: "info",
		LogType:  config.LogTypeConsole,
	}
}

func TestNew_ConsoleLogger(t *testing.T) {
	log, err := New(baseConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := log.(*ConsoleLogger); !ok {
		t.Errorf("New() returned %T, want *ConsoleLogger", log)
	}
}

func TestNew_FileLogger(t *testing.T) {
	cfg := baseConfig()
	cfg.LogType = config.LogTypeFile
	cfg.LogFilePath = filepath.Join(t.TempDir(), "nc-api.log")

	log, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := log.(*FileLogger); !ok {
		t.Errorf("New() returned %T, want *FileLogger", log)
	}

	// Writing should not panic and should create the file lazily.
	log.Info("startup")
}

func TestNew_FileLoggerWithoutPath(t *testing.T) {
	cfg := baseConfig()
	cfg.LogType = config.LogTypeFile

	if _, err := New(cfg); err == nil {
		t.Error("New() should fail for file logger without a path")
	}
}

func TestNew_UnsupportedType(t *testing.T) {
	cfg := baseConfig()
	cfg.LogType = "syslog"

	if _, err := New(cfg); err == nil {
		t.Error("New() should fail for unsupported log type")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}
