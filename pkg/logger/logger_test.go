package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSONToOutputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipebook.log")

	log, err := New(Config{Level: "info", Format: "json", OutputPaths: []string{path}})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("recipe added", zap.Int("servings", 4))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"recipe added"`)
	assert.Contains(t, string(data), `"servings":4`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewConsoleFormatAndBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.log")

	log, err := New(Config{Level: "loud", Format: "console", Development: true, OutputPaths: []string{path}})
	require.NoError(t, err)

	log.Debug("not at info")
	log.Info("falls back to info")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "falls back to info")
	assert.NotContains(t, string(data), "not at info")
	assert.NotContains(t, string(data), `"msg"`)
}

func TestNewRejectsUnopenablePath(t *testing.T) {
	_, err := New(Config{OutputPaths: []string{filepath.Join(t.TempDir(), "missing", "dir", "x.log")}})
	assert.Error(t, err)
}
