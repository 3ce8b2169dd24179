package utils

import (
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for a simulation run
type Config struct {
	Delay        time.Duration `yaml:"delay"`
	AliveGlyph   string        `yaml:"alive_glyph"`
	DeadGlyph    string        `yaml:"dead_glyph"`
	ClearScreen  bool          `yaml:"clear_screen"`
	Language     string        `yaml:"language"`
	Seed         int64         `yaml:"seed"` // 0 derives a seed from the clock
	LogLevel     string        `yaml:"log_level"`
	HistoryDepth int           `yaml:"history_depth"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Delay:        500 * time.Millisecond,
		AliveGlyph:   "O",
		DeadGlyph:    ".",
		ClearScreen:  false,
		Language:     "en",
		Seed:         0,
		LogLevel:     "warn",
		HistoryDepth: 3,
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate checks values that would otherwise fail later in the run
func (c Config) Validate() error {
	if c.Delay < 0 {
		return errors.Wrapf(ErrInvalidConfig, "delay must not be negative, got %s", c.Delay)
	}
	if c.AliveGlyph == "" || c.DeadGlyph == "" {
		return errors.Wrap(ErrInvalidConfig, "glyphs must not be empty")
	}
	if c.AliveGlyph == c.DeadGlyph {
		return errors.Wrapf(ErrInvalidConfig, "alive and dead glyphs are both %q", c.AliveGlyph)
	}
	if c.HistoryDepth < 1 {
		return errors.Wrapf(ErrInvalidConfig, "history_depth must be at least 1, got %d", c.HistoryDepth)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into a slog level
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errors.Wrapf(ErrInvalidConfig, "log_level %q", c.LogLevel)
	}
	return level, nil
}

// RandomSeed returns the configured seed, or one derived from now when unset
func (c Config) RandomSeed(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}
