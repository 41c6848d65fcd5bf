package config

import (
	"os"
	"strings"
)

// APIBaseEnv overrides the API base URL when set.
const APIBaseEnv = "STOREFRONT_API_BASE"

// Config holds runtime settings for the storefront CLI.
type Config struct {
	APIBaseURL string
	StorageDSN string
	LogLevel   string
}

// LoadDefaults populates c with defaults matching a local development backend.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5177/api"
	c.StorageDSN = "storefront.db"
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, the optional JSON file, the
// environment and the process command line, in that order.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], os.Getenv)
}

func load(args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	parseEnv(cfg, getenv)
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	return cfg, nil
}

func parseEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(APIBaseEnv); v != "" {
		cfg.APIBaseURL = v
	}
}
