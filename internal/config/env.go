package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env is the process configuration for the console binary.
type Env struct {
	// StartingLife is kept as text and goes through the same forgiving parse
	// as the settings intent.
	StartingLife string `env:"LIFECOUNTER_STARTING_LIFE"`
	PlayerCount  int    `env:"LIFECOUNTER_PLAYER_COUNT"`
	ConfigPath   string `env:"LIFECOUNTER_CONFIG_PATH" envDefault:"data/table_config.json"`
	LogLevel     string `env:"LIFECOUNTER_LOG_LEVEL" envDefault:"info"`
}

// LoadDotEnv loads the given .env files into the process environment.
// Missing files are not an error.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
