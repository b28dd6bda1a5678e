package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	cases := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Level(c.name))
		})
	}
}

func TestNewFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := New(Config{Level: "warn"}, &buf)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", slog.String("op", "/"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "/", rec["op"])
	assert.NotContains(t, rec, slog.SourceKey)
}

func TestNewSource(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := New(Config{IncludeSrc: true}, &buf)
	defer closer.Close()
	logger.Info("here")

	var rec struct {
		Source struct {
			File string `json:"file"`
		} `json:"source"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), buf.String())
	assert.Equal(t, "logging_test.go", rec.Source.File)
}

func TestNewFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "calc.log")
	var buf bytes.Buffer
	logger, closer := New(Config{File: name, MaxSize: 1}, &buf)
	logger.Info("to both")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(b))
	assert.Contains(t, string(b), `"msg":"to both"`)
}
