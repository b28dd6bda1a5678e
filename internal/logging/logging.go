// Package logging sets up the process-wide slog logger for the calculator
// services.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls logging. The zero value logs at info level to stdout.
type Config struct {
	Level      string `json:"level" yaml:"level"`
	IncludeSrc bool   `json:"include_src" yaml:"include_src"`
	// File, if set, receives a copy of every record, rotated by size.
	File       string `json:"file" yaml:"file"`
	MaxSize    int    `json:"max_size" yaml:"max_size"` // megabytes
	MaxAge     int    `json:"max_age" yaml:"max_age"`   // days
	MaxBackups int    `json:"max_backups" yaml:"max_backups"`
	Compress   bool   `json:"compress" yaml:"compress"`
}

// New creates a JSON logger writing to w and, if cfg.File is set, to a
// rotating log file. The returned closer releases the file; it is a no-op
// when there is none.
func New(cfg Config, w io.Writer) (*slog.Logger, io.Closer) {
	opts := &slog.HandlerOptions{
		Level:     Level(cfg.Level),
		AddSource: cfg.IncludeSrc,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				source, _ := a.Value.Any().(*slog.Source)
				if source != nil {
					source.File = filepath.Base(source.File)
					source.Function = strings.TrimPrefix(source.Function, "github.com/zephyrtronium/calculator/")
				}
			}
			return a
		},
	}
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxAge,
			MaxBackups: cfg.MaxBackups,
			Compress:   cfg.Compress,
		}
		w = io.MultiWriter(w, lj)
		closer = lj
	}
	return slog.New(slog.NewJSONHandler(w, opts)), closer
}

// Init creates a logger writing to stdout and installs it as the slog
// default.
func Init(cfg Config) io.Closer {
	logger, closer := New(cfg, os.Stdout)
	slog.SetDefault(logger)
	return closer
}

// Level parses a level name. Unknown names mean info.
func Level(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
