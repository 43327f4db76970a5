package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Second, cfg.Processor.StoreTimeout)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, "4123456789012345", cfg.Seed.CardID)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "postgres" }},
		{"negative busy timeout", func(c *Config) { c.Database.BusyTimeout = -1 }},
		{"negative conns", func(c *Config) { c.Database.MaxOpenConns = -1 }},
		{"negative store timeout", func(c *Config) { c.Processor.StoreTimeout = -time.Second }},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
