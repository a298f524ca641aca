package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-m string   storage type: postgres | memory
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-p string   password hashing algorithm: bcrypt | argon2id
//	-r bool     keep a server-side list of logged-out tokens
//	-o string   comma separated CORS origins
//	-l string   log format: json | console
//
// Only the flags listed above are parsed; everything else on the command
// line is left to other layers (e.g. -c for the JSON file).
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-m", "-d", "-s", "-t", "-p", "-r", "-o", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.StorageType, "m", config.StorageType, "storage type (postgres, memory)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	validity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	fs.StringVar(&config.PasswordHashAlgorithm, "p", config.PasswordHashAlgorithm, "password hashing algorithm (bcrypt, argon2id)")
	fs.BoolVar(&config.TokenRevocation, "r", config.TokenRevocation, "revoke tokens on logout")
	origins := fs.String("o", "", "allowed CORS origins, comma separated")
	fs.StringVar(&config.LogFormat, "l", config.LogFormat, "log format (json, console)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenValidityDuration = time.Duration(*validity) * time.Minute
		case "o":
			config.AllowedOrigins = splitList(*origins)
		}
	})
	return nil
}
