package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:5000", c.ServerURL)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg, err := LoadConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.ServerURL)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "https ok", mutate: func(c *Config) { c.ServerURL = "https://tasks.example.com" }},
		{name: "no scheme", mutate: func(c *Config) { c.ServerURL = "localhost:5000" }, wantErr: true},
		{name: "bare host and port", mutate: func(c *Config) { c.ServerURL = "127.0.0.1:5000" }, wantErr: true},
		{name: "zero interval", mutate: func(c *Config) { c.OnlineCheckInterval = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			if tt.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}
