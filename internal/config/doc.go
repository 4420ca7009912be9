// Package config handles configuration loading for dex-mcp.
//
// # Overview
//
// Configuration is loaded from an optional YAML file with environment
// variable expansion, then overlaid with environment variables. The
// usual deployment sets DEX_API_KEY and nothing else.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from DEX_CONFIG environment variable
//  2. $XDG_CONFIG_HOME/dex-mcp/config.yaml
//  3. ~/.config/dex-mcp/config.yaml
//
// A missing file is fine; every setting has an environment or built-in
// default.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	api:
//	  key: "${DEX_API_KEY}"
//
// # Configuration Sections
//
// Dex API connection:
//
//	api:
//	  key: "${DEX_API_KEY}"                        # Required
//	  base_url: "https://api.getdex.com/api/rest"  # Default
//	  timeout: "30s"                               # time.ParseDuration syntax
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Environment Overrides
//
// DEX_API_KEY and DEX_BASE_URL always win over file values.
//
// # Validation
//
// Load() fails when no API key is configured anywhere; the error names
// the settings page where a key can be created.
//
// # Usage
//
//	cfg, err := config.Load(config.Path())
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
