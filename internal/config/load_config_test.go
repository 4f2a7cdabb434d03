package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrInit_MissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.toml")

	cfg, err := LoadOrInit(path)
	require.NoError(t, err)
	assert.FileExists(t, path, "default config should be persisted")

	def := Default()
	assert.True(t, cfg.Vite.Equal(def.Vite))
	assert.True(t, cfg.Next.Equal(def.Next))

	reloaded, err := LoadOrInit(path)
	require.NoError(t, err)
	assert.Equal(t, def.Vite.Dev, reloaded.Vite.Dev, "order must survive the round trip")
	assert.Equal(t, def.Vite.Project, reloaded.Vite.Project)
	assert.Equal(t, def.Next.Dev, reloaded.Next.Dev)
	assert.True(t, reloaded.Next.Equal(def.Next), "empty project list should round-trip")
}

func TestLoadOrInit_YAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := LoadOrInit(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "vite:")
	assert.Contains(t, string(data), "- tailwindcss")

	reloaded, err := LoadOrInit(path)
	require.NoError(t, err)
	assert.True(t, reloaded.Vite.Equal(Default().Vite))
	assert.True(t, reloaded.Next.Equal(Default().Next))
}

func TestLoadOrInit_ReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[vite]
dev = ["tailwindcss"]
project = []

[next]
dev = ["eslint"]
project = ["swr", "zod"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadOrInit(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"tailwindcss"}, cfg.Vite.Dev)
	assert.Empty(t, cfg.Vite.Project)
	assert.Equal(t, []string{"eslint"}, cfg.Next.Dev)
	assert.Equal(t, []string{"swr", "zod"}, cfg.Next.Project)
	assert.False(t, cfg.Next.NeedsTailwind())
}

func TestLoadOrInit_InvalidContentIsNotOverwritten(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "broken toml", file: "config.toml", content: "[vite\ndev = [\"tailwindcss\""},
		{name: "wrong toml type", file: "config.toml", content: "[vite]\ndev = 3\n"},
		{name: "broken yaml", file: "config.yaml", content: "vite:\n  dev: [tailwindcss\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			cfg, err := LoadOrInit(path)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)

			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(after), "file must not be rewritten")
		})
	}
}

func TestLoadOrInit_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")

	_, err := LoadOrInit(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.NoFileExists(t, path)
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Vite.Dev[0] = "changed"

	b := Default()
	assert.Equal(t, "tailwindcss", b.Vite.Dev[0])
}

func TestParseTemplateKind(t *testing.T) {
	kind, ok := ParseTemplateKind("vite")
	assert.True(t, ok)
	assert.Equal(t, TemplateVite, kind)

	kind, ok = ParseTemplateKind("next")
	assert.True(t, ok)
	assert.Equal(t, TemplateNext, kind)

	_, ok = ParseTemplateKind("Vite")
	assert.False(t, ok, "matching is case-sensitive")

	_, ok = ParseTemplateKind("remix")
	assert.False(t, ok)
}

func TestConfigFor(t *testing.T) {
	cfg := Default()

	set, ok := cfg.For(TemplateVite)
	assert.True(t, ok)
	assert.Equal(t, []string{"react-router-dom"}, set.Project)

	_, ok = cfg.For(TemplateKind("angular"))
	assert.False(t, ok)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.toml")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.toml", path)

	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	path, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "config.toml", filepath.Base(path))
	assert.Equal(t, "quick-init", filepath.Base(filepath.Dir(path)))
}
