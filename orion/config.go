package orion

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// EngineConfig holds the settings of one run. It is created once at
// startup and not modified afterward.
type EngineConfig struct {
	Title  string `toml:"title"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`

	// frames per second the loop advances at most. Zero is treated as one.
	TargetFPS uint32 `toml:"target_fps"`

	// name of the registered rendering backend
	Backend string `toml:"backend"`

	// busy poll for events instead of sleeping until the next frame is due
	Poll bool `toml:"poll"`

	// one of debug, info, warn, error
	LogLevel string `toml:"log_level"`
}

func DefaultConfig() EngineConfig {
	return EngineConfig{
		Title:     "Meme Engine",
		Width:     1280,
		Height:    720,
		TargetFPS: 60,
		Backend:   "wgpu",
		LogLevel:  "info",
	}
}

// withDefaults fills in values that were left empty. The target fps is kept as is,
// a value of zero is clamped when the frame gate is built.
func (c EngineConfig) withDefaults() EngineConfig {
	defaults := DefaultConfig()

	if c.Title == "" {
		c.Title = defaults.Title
	}

	if c.Width == 0 {
		c.Width = defaults.Width
	}

	if c.Height == 0 {
		c.Height = defaults.Height
	}

	if c.Backend == "" {
		c.Backend = defaults.Backend
	}

	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}

	return c
}

// EffectiveFPS returns the frame rate the frame gate uses.
func (c EngineConfig) EffectiveFPS() uint32 {
	return max(c.TargetFPS, 1)
}

// SlogLevel maps LogLevel to a slog.Level. Unknown values map to info.
func (c EngineConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

// LoadConfig builds a configuration from the defaults, an optional toml file
// and MEME_* environment variables, in that order of precedence. If envFile is not
// empty and exists, its variables are loaded into the environment first.
func LoadConfig(path, envFile string) (EngineConfig, error) {
	config := DefaultConfig()

	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return config, fmt.Errorf("read config: %w", err)
		}

		if err := toml.Unmarshal(buf, &config); err != nil {
			return config, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config, fmt.Errorf("load env file %q: %w", envFile, err)
		}
	}

	if err := applyEnv(&config, os.LookupEnv); err != nil {
		return config, err
	}

	return config.withDefaults(), nil
}

type lookupEnv func(key string) (string, bool)

func applyEnv(config *EngineConfig, lookup lookupEnv) error {
	if value, ok := lookup("MEME_TITLE"); ok {
		config.Title = value
	}

	if value, ok := lookup("MEME_BACKEND"); ok {
		config.Backend = value
	}

	if value, ok := lookup("MEME_LOG_LEVEL"); ok {
		config.LogLevel = strings.ToLower(value)
	}

	uints := []struct {
		key    string
		target *uint32
	}{
		{"MEME_WIDTH", &config.Width},
		{"MEME_HEIGHT", &config.Height},
		{"MEME_TARGET_FPS", &config.TargetFPS},
	}

	for _, u := range uints {
		value, ok := lookup(u.key)
		if !ok {
			continue
		}

		parsed, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
		if err != nil {
			return fmt.Errorf("parse %s: %w", u.key, err)
		}

		*u.target = uint32(parsed)
	}

	if value, ok := lookup("MEME_POLL"); ok {
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("parse MEME_POLL: %w", err)
		}

		config.Poll = parsed
	}

	return nil
}
