package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"lifecounter/internal/domain"
)

// Format is a named starting-life preset, e.g. commander=40 or standard=20.
type Format struct {
	ID           string `json:"id"`
	StartingLife int    `json:"starting_life"`
}

type TableConfig struct {
	StartingLife  int      `json:"starting_life"`
	PlayerCount   int      `json:"player_count"`
	DefaultFormat string   `json:"default_format"`
	Formats       []Format `json:"formats"`
}

var (
	cfg      *TableConfig
	loadOnce sync.Once
	loadErr  error
)

// ParseTableConfig decodes a table configuration document.
func ParseTableConfig(data []byte) (*TableConfig, error) {
	var c TableConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal table config: %w", err)
	}
	if c.PlayerCount != 0 && !domain.ValidPlayerCount(c.PlayerCount) {
		return nil, fmt.Errorf("table config player_count %d: %w", c.PlayerCount, domain.ErrInvalidPlayerCount)
	}
	return &c, nil
}

// LoadTableConfig loads the table configuration from the given path.
// Only the first call reads the file; later calls return its result.
func LoadTableConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read table config: %w", err)
			return
		}

		c, err := ParseTableConfig(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

// GetTableConfig returns the global table configuration, or nil if none was loaded.
func GetTableConfig() *TableConfig {
	return cfg
}

// GetStartingLife returns the configured starting life, or the domain default.
func (c *TableConfig) GetStartingLife() int {
	if c == nil || c.StartingLife <= 0 {
		return domain.DefaultStartingLife
	}
	return c.StartingLife
}

// GetPlayerCount returns the configured player count, or the domain default.
func (c *TableConfig) GetPlayerCount() int {
	if c == nil || c.PlayerCount == 0 {
		return domain.DefaultPlayerCount
	}
	return c.PlayerCount
}

// FormatStartingLife returns the starting life of the format with the given
// id. An empty id selects the default format; unknown ids fall back to the
// default format and then to the configured starting life.
func (c *TableConfig) FormatStartingLife(formatID string) (int, bool) {
	if c == nil {
		return domain.DefaultStartingLife, false
	}

	target := formatID
	if target == "" {
		target = c.DefaultFormat
	}
	for _, f := range c.Formats {
		if f.ID == target && f.StartingLife > 0 {
			return f.StartingLife, true
		}
	}

	for _, f := range c.Formats {
		if f.ID == c.DefaultFormat && f.StartingLife > 0 {
			return f.StartingLife, false
		}
	}
	return c.GetStartingLife(), false
}

// GetFormatStartingLife resolves a format against the global configuration.
func GetFormatStartingLife(formatID string) (int, bool) {
	return cfg.FormatStartingLife(formatID)
}
