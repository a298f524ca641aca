// Package config loads runtime configuration for the TaskKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the server, e.g. http://localhost:5000
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
// Intervals accept strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "http://localhost:5000",
//	  "online_check_interval": "3s",
//	  "request_timeout": "10s"
//	}
package config
