package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ratel-online/notepad/clue/card"
)

const FileName = "notepad.yaml"

type Board struct {
	Suspects []string `yaml:"suspects"`
	Weapons  []string `yaml:"weapons"`
	Rooms    []string `yaml:"rooms"`
}

type Config struct {
	Board      Board  `yaml:"board"`
	SessionDir string `yaml:"session_dir"`
	LogLevel   string `yaml:"log_level"`
	WatchAddr  string `yaml:"watch_addr"`
	Color      bool   `yaml:"color"`
}

func Default() Config {
	return Config{
		Board: Board{
			Suspects: card.ClassicSuspects,
			Weapons:  card.ClassicWeapons,
			Rooms:    card.ClassicRooms,
		},
		SessionDir: ".",
		LogLevel:   "info",
		Color:      true,
	}
}

// DefaultPath is ~/.notepad/notepad.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".notepad", FileName), nil
}

// Load reads path over the defaults. An empty path falls back to DefaultPath;
// a missing default file is not an error, a missing explicit one is.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := c.Vocabulary(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Vocabulary() (*card.Vocabulary, error) {
	return card.NewVocabulary(c.Board.Suspects, c.Board.Weapons, c.Board.Rooms)
}

func (c Config) Level() (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Write saves cfg as YAML, creating the directory if needed.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
