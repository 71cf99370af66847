package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFromDefaults(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, "log:\n  mode: production\n"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8000", cfg.Intro.Address)
	assert.Equal(t, "0.0.0.0:8000", cfg.Images.Address)
	assert.Equal(t, "./img", cfg.Images.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Production())
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, `
intro:
  address: ":9000"
images:
  address: ":9001"
  dir: /srv/pictures
log:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Intro.Address)
	assert.Equal(t, ":9001", cfg.Images.Address)
	assert.Equal(t, "/srv/pictures", cfg.Images.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Production())
}

func TestLoadFromEnvOverride(t *testing.T) {
	t.Setenv("IMAGES_DIR", "/tmp/other")

	cfg, err := LoadFrom(writeConfig(t, "images:\n  dir: ./img\n"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other", cfg.Images.Dir)
}

func TestLoadFromMissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
