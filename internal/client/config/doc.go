// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. The STOREFRONT_API_BASE environment variable.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   base URL of the storefront API
//	-d string   SQLite DSN of the local storage database
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:5177/api",
//	  "storage_dsn": "storefront.db",
//	  "log_level": "info"
//	}
//
// Keys missing from the file keep their previous values.
package config
