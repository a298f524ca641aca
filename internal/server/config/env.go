package config

import (
	"os"
	"strings"
)

// parseEnv overlays the variables the service has always been deployed
// with (a .env file exporting these).
//
//	JWT_SECRET       signing key
//	DATABASE_DSN     PostgreSQL DSN
//	PORT             listen port, bound on all interfaces
//	ALLOWED_ORIGINS  comma separated CORS origins
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		config.EndpointAddrHTTP = ":" + v
	}
	if v, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok {
		config.AllowedOrigins = splitList(v)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
