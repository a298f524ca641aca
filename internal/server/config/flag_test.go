package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected *Config
		name     string
		args     []string
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-m", "memory", "-d", "db", "-s", "secret",
				"-t", "15", "-p", "argon2id", "-r", "-o", "http://a.test,http://b.test", "-l", "console",
			},
			expected: &Config{
				EndpointAddrHTTP:            "127.0.0.1:9090",
				StorageType:                 "memory",
				DatabaseDSN:                 "db",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 15 * time.Minute,
				PasswordHashAlgorithm:       "argon2id",
				BcryptCost:                  10,
				TokenRevocation:             true,
				AllowedOrigins:              []string{"http://a.test", "http://b.test"},
				LogFormat:                   "console",
			},
		},
		{
			name: "foreign flags are ignored",
			args: []string{"-c", "cfg.json", "-x", "1", "-a", ":7000"},
			expected: func() *Config {
				c := &Config{}
				c.LoadDefaults()
				c.EndpointAddrHTTP = ":7000"
				return c
			}(),
		},
		{
			name:    "bad integer",
			args:    []string{"-t", "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			config.LoadDefaults()

			err := parseFlags(config, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestParseFlags_KeepsSubMinuteValidityWhenUnset(t *testing.T) {
	config := &Config{AccessTokenValidityDuration: 90 * time.Second}

	require.NoError(t, parseFlags(config, []string{"-a", ":1"}))
	assert.Equal(t, 90*time.Second, config.AccessTokenValidityDuration)
}
