package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Default rotation settings.
const (
	DefaultMaxSizeMB  = 10 // MB
	DefaultMaxBackups = 3  // number of backup files
	DefaultMaxAgeDays = 7  // days
)

// Config describes where diagnostics go while the table owns the terminal.
// An empty File discards everything. Rotation follows lumberjack semantics.
type Config struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`        // debug, info, warn or error
	MaxSizeMB  int    `yaml:"max_size_mb"`  // megabytes before rotation (default 10)
	MaxBackups int    `yaml:"max_backups"`  // number of backups to keep (default 3)
	MaxAgeDays int    `yaml:"max_age_days"` // days to keep (default 7)
	Compress   bool   `yaml:"compress"`     // gzip rotated files
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the logger described by cfg. The returned closer releases the log file.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nopCloser{}, nil
	}

	w := &lj.Logger{
		Filename:   cfg.File,
		MaxSize:    valOr(cfg.MaxSizeMB, DefaultMaxSizeMB),
		MaxBackups: valOr(cfg.MaxBackups, DefaultMaxBackups),
		MaxAge:     valOr(cfg.MaxAgeDays, DefaultMaxAgeDays),
		Compress:   cfg.Compress,
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), w, nil
}

// ParseLevel maps a config level name to a slog level; empty means info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

func valOr(v int, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
