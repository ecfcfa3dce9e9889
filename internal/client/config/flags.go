package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/projecthub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the projecthub API (default from Config)
//	-t string   bearer token to start the session with
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the projecthub API")
	fs.StringVar(&cfg.Token, "t", cfg.Token, "bearer token")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
