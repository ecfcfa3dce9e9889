// Package config loads runtime configuration for the projecthub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables PROJECTHUB_SERVER_URL, PROJECTHUB_TOKEN and
//     PROJECTHUB_REQUEST_TIMEOUT.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "request_timeout": "5s"
//	}
//
// Tokens are never read from JSON files.
package config
