package orion

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) lookupEnv {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig("", "")
	require.NoError(t, err)

	assert.Equal(t, "Meme Engine", config.Title)
	assert.Equal(t, uint32(1280), config.Width)
	assert.Equal(t, uint32(720), config.Height)
	assert.Equal(t, uint32(60), config.TargetFPS)
	assert.Equal(t, "wgpu", config.Backend)
}

func TestLoadConfigFromToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meme.toml")

	err := os.WriteFile(path, []byte(`
title = "Spinning"
width = 800
target_fps = 0
poll = true
`), 0o644)
	require.NoError(t, err)

	config, err := LoadConfig(path, "")
	require.NoError(t, err)

	assert.Equal(t, "Spinning", config.Title)
	assert.Equal(t, uint32(800), config.Width)
	assert.Equal(t, uint32(720), config.Height)
	assert.True(t, config.Poll)

	// zero is kept and clamped by the frame gate
	assert.Equal(t, uint32(0), config.TargetFPS)
	assert.Equal(t, uint32(1), config.EffectiveFPS())
}

func TestLoadConfigInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meme.toml")
	require.NoError(t, os.WriteFile(path, []byte(`width = "wide"`), 0o644))

	_, err := LoadConfig(path, "")
	require.Error(t, err)
}

func TestLoadConfigMissingEnvFileIsIgnored(t *testing.T) {
	_, err := LoadConfig("", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
}

func TestLoadConfigEnvFileOverridesToml(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "meme.toml")
	require.NoError(t, os.WriteFile(path, []byte("width = 800\n"), 0o644))

	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("MEME_WIDTH=1024\n"), 0o644))

	// godotenv does not override variables that are already set
	t.Setenv("MEME_WIDTH", "")
	require.NoError(t, os.Unsetenv("MEME_WIDTH"))

	config, err := LoadConfig(path, envFile)
	require.NoError(t, err)

	assert.Equal(t, uint32(1024), config.Width)
}

func TestApplyEnv(t *testing.T) {
	config := DefaultConfig()

	err := applyEnv(&config, envOf(map[string]string{
		"MEME_TITLE":      "from env",
		"MEME_HEIGHT":     " 600 ",
		"MEME_TARGET_FPS": "144",
		"MEME_POLL":       "true",
		"MEME_LOG_LEVEL":  "DEBUG",
	}))
	require.NoError(t, err)

	assert.Equal(t, "from env", config.Title)
	assert.Equal(t, uint32(600), config.Height)
	assert.Equal(t, uint32(144), config.TargetFPS)
	assert.True(t, config.Poll)
	assert.Equal(t, slog.LevelDebug, config.SlogLevel())
}

func TestApplyEnvInvalidNumber(t *testing.T) {
	config := DefaultConfig()

	err := applyEnv(&config, envOf(map[string]string{"MEME_WIDTH": "-1"}))
	require.Error(t, err)

	err = applyEnv(&config, envOf(map[string]string{"MEME_POLL": "maybe"}))
	require.Error(t, err)
}

func TestSlogLevelFallback(t *testing.T) {
	config := DefaultConfig()
	config.LogLevel = "chatty"

	assert.Equal(t, slog.LevelInfo, config.SlogLevel())
}
