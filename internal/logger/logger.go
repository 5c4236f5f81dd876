// Package logger configures the process-wide zerolog logger: console
// output for development, JSON for production, with an optional rotated
// file sink. Only this sink sees distinguishing detail for listing
// failures; HTTP responses stay generic.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum level: debug, info, warn, error.
	Level string

	// Format is "console" (human-readable) or "json".
	Format string

	// File enables an additional rotated log file when set.
	File string
}

// New builds the root logger. Unknown levels fall back to info.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	if cfg.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		out = io.MultiWriter(out, rotated)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
