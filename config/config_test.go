package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fullmetal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
window:
  width: 800
  vsync: false
scene: scenes/demo.json
log_level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.False(t, cfg.Window.VSync)
	assert.True(t, cfg.Window.Resizable)
	assert.Equal(t, "fullmetal", cfg.Window.Title)
	assert.Equal(t, "scenes/demo.json", cfg.Scene)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	for name, content := range map[string]string{
		"unknown key": "colour: red\n",
		"bad size":    "window: {width: 0}\n",
		"bad level":   "log_level: loud\n",
		"empty scene": "scene: \"\"\n",
		"not yaml":    "window: [\n",
	} {
		_, err := Load(writeConfig(t, content))
		assert.Error(t, err, name)
	}
}

func TestSlogLevelFallsBack(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "WARN"
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
	cfg.LogLevel = "nonsense"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
