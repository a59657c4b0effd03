package config

import (
	"errors"
	"fmt"
	"os"

	"quoridor/meta"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config describes one run of the command.
type Config struct {
	Players   []string `yaml:"players"`    // Agent kind per player, see agent.New
	Games     int      `yaml:"games"`      // Games to play in a row
	Strict    bool     `yaml:"strict"`     // Reject actions outside the legal set
	MaxTurns  int      `yaml:"max_turns"`  // Turn limit per game
	Seed      uint64   `yaml:"seed"`       // Seed of the first random agent
	LogLevel  string   `yaml:"log_level"`  // zerolog level name
	Metrics   bool     `yaml:"metrics"`    // Collect per-move metrics
	OutputDir string   `yaml:"output_dir"` // Records and snapshots, empty to skip
	Resume    string   `yaml:"resume"`     // Snapshot to resume the first game from
}

func Default() Config {
	return Config{
		Players:  []string{"random", "random"},
		Games:    meta.GAMES,
		Strict:   true,
		MaxTurns: meta.MAX_TURNS,
		Seed:     meta.SEED,
		LogLevel: meta.LOG_LEVEL,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if len(c.Players) != 2 {
		return fmt.Errorf("%w: need exactly two players, got %d", ErrInvalidConfig, len(c.Players))
	}
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("%w: max_turns must be positive, got %d", ErrInvalidConfig, c.MaxTurns)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the zerolog level, falling back to info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
