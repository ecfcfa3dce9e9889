package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		start       *Config
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-g", "127.0.0.1:9091", "-d", "db", "-s", "secret",
				"-t", "15", "-b", "4", "-l", "debug",
			},
			start: &Config{},
			expected: &Config{
				EndpointAddrHTTP:            "127.0.0.1:9090",
				EndpointAddrGRPC:            "127.0.0.1:9091",
				DatabaseDSN:                 "db",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 15 * time.Minute,
				BcryptCost:                  4,
				LogLevel:                    "debug",
			},
		},
		{
			name:  "unrelated flags ignored",
			args:  []string{"cmd", "-c", "conf.json", "-x", "1"},
			start: &Config{SecretKey: "k", AccessTokenValidityDuration: 30 * time.Second},
			expected: &Config{
				SecretKey:                   "k",
				AccessTokenValidityDuration: 30 * time.Second,
			},
		},
		{
			name:        "non numeric ttl",
			args:        []string{"cmd", "-t", "soon"},
			start:       &Config{},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := tt.start

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
