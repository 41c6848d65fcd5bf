package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/storefront/internal/flagx"
)

// parseFlags overlays cfg with -a, -d and -l from args. Other flags are
// left to their own parsers.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-l"})

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the storefront API")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "local storage database DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
