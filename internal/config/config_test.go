package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
backend: go-git
log_level: debug
metrics_textfile: /tmp/tagit.prom
labels:
  title: New tag
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "go-git", cfg.Backend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/tagit.prom", cfg.MetricsTextfile)
	assert.Equal(t, "New tag", cfg.Labels.Title)
	assert.Equal(t, DefaultLabels(runtime.GOOS).CreateButton, cfg.Labels.CreateButton)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, "backend: svn\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	path := writeConfig(t, "log_level: chatty\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownLogLevel)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "backend: [unterminated\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestDefaultLabels(t *testing.T) {
	mac := DefaultLabels("darwin")
	assert.Equal(t, "Create a Tag", mac.Title)
	assert.Equal(t, "Create Tag", mac.CreateButton)

	linux := DefaultLabels("linux")
	assert.Equal(t, "Create a tag", linux.Title)
	assert.Equal(t, "Create tag", linux.CreateButton)
	assert.Equal(t, "Cancel", linux.CancelButton)
}

func TestMergeKeepsDefaultsForEmptyFields(t *testing.T) {
	cfg := Default()
	cfg.Merge(Config{TaggerName: "Release Bot", Debug: true})

	assert.Equal(t, "Release Bot", cfg.TaggerName)
	assert.True(t, cfg.Debug)
	assert.Equal(t, Default().Backend, cfg.Backend)
	assert.Equal(t, Default().Labels, cfg.Labels)
}
