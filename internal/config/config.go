package config

import (
	"fmt"
	"time"

	"github.com/hance08/cardcore/internal/constants"
)

const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

type Config struct {
	Database   DatabaseConfig  `mapstructure:"database"`
	Processor  ProcessorConfig `mapstructure:"processor"`
	Log        LogConfig       `mapstructure:"log"`
	Seed       SeedConfig      `mapstructure:"seed"`
	ConfigPath string          `mapstructure:"-"`
}

type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"`
	Path         string `mapstructure:"path"`
	BusyTimeout  int    `mapstructure:"busy_timeout"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type ProcessorConfig struct {
	StoreTimeout time.Duration `mapstructure:"store_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SeedConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	CardID     string `mapstructure:"card_id"`
	PIN        string `mapstructure:"pin"`
	Balance    string `mapstructure:"balance"`
	HolderName string `mapstructure:"holder_name"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:       DriverSQLite,
			Path:         "",
			BusyTimeout:  5000,
			MaxOpenConns: 1,
		},
		Processor: ProcessorConfig{StoreTimeout: 5 * time.Second},
		Log:       LogConfig{Level: "info", Format: "text"},
		Seed: SeedConfig{
			Enabled:    true,
			CardID:     constants.SeedCardID,
			PIN:        constants.SeedPIN,
			Balance:    constants.SeedBalance,
			HolderName: constants.SeedHolderName,
		},
	}
}

// Validate checks values viper cannot type-check on its own.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("unknown database driver '%s' (must be %s or %s)", c.Database.Driver, DriverSQLite, DriverMemory)
	}
	if c.Database.BusyTimeout < 0 {
		return fmt.Errorf("database.busy_timeout can't be negative")
	}
	if c.Database.MaxOpenConns < 0 {
		return fmt.Errorf("database.max_open_conns can't be negative")
	}
	if c.Processor.StoreTimeout < 0 {
		return fmt.Errorf("processor.store_timeout can't be negative")
	}
	switch c.Log.Format {
	case "", "text", "json", "logfmt":
	default:
		return fmt.Errorf("unknown log format '%s' (must be text, json or logfmt)", c.Log.Format)
	}
	return nil
}
