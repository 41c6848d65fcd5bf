package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/storefront/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell
// an absent key apart from an empty one.
type JsonConfig struct {
	APIBaseURL *string `json:"api_base_url"`
	StorageDSN *string `json:"storage_dsn"`
	LogLevel   *string `json:"log_level"`
}

// parseJSON overlays cfg with the file named by -c/-config in args. Without
// such a flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.StorageDSN != nil {
		cfg.StorageDSN = *jc.StorageDSN
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
