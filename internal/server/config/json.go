package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/flagx"
	"github.com/dmitrijs2005/taskkeeper/internal/timex"
)

// JsonConfig is the DTO used only for reading JSON configuration files.
// Pointer fields distinguish "absent" from "zero", so a file only overrides
// the settings it mentions.
type JsonConfig struct {
	EndpointAddrHTTP            *string         `json:"endpoint_addr_http"`
	StorageType                 *string         `json:"storage_type"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	PasswordHashAlgorithm       *string         `json:"password_hash_algorithm"`
	BcryptCost                  *int            `json:"bcrypt_cost"`
	TokenRevocation             *bool           `json:"token_revocation"`
	AllowedOrigins              []string        `json:"allowed_origins"`
	LogFormat                   *string         `json:"log_format"`
}

// parseJson loads the file named by -c/-config (if any) into config.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}

	setIf(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setIf(&config.StorageType, c.StorageType)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.SecretKey, c.SecretKey)
	setIf(&config.PasswordHashAlgorithm, c.PasswordHashAlgorithm)
	setIf(&config.BcryptCost, c.BcryptCost)
	setIf(&config.TokenRevocation, c.TokenRevocation)
	setIf(&config.LogFormat, c.LogFormat)
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.AllowedOrigins != nil {
		config.AllowedOrigins = c.AllowedOrigins
	}

	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
