package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DB       DBConfig       `toml:"database"`
	Training TrainingConfig `toml:"training"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type TrainingConfig struct {
	WeightIncrement float32 `toml:"weight_increment"` // Smallest loadable plate step.
	WarmupReps      int     `toml:"warmup_reps"`      // Fixed rep count for warm-up sets.
	NoteMaxLen      int     `toml:"note_max_len"`     // Cap on exercise notes, in code points.
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "forja")
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = "file:./local.db?cache=shared&mode=rwc"
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Training.WeightIncrement <= 0 {
		c.Training.WeightIncrement = 2.5
	}
	if c.Training.WarmupReps <= 0 {
		c.Training.WarmupReps = 5
	}
	if c.Training.NoteMaxLen <= 0 {
		c.Training.NoteMaxLen = 200
	}
}
