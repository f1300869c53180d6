// Package config loads runtime configuration for the feed CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. LEAGUE_* environment variables (github.com/caarlos0/env).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the remote API
//	-d string   data directory
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "base_url": "https://engineering.league.dev/challenge/api/",
//	  "data_dir": "/home/me/.config/leaguefeed",
//	  "database_file": "cache.db",
//	  "key_file": "store.key",
//	  "passphrase": "",
//	  "request_timeout": "30s",
//	  "log_level": "info"
//	}
//
// # Environment
//
//	LEAGUE_BASE_URL, LEAGUE_DATA_DIR, LEAGUE_DATABASE_FILE, LEAGUE_KEY_FILE,
//	LEAGUE_PASSPHRASE, LEAGUE_REQUEST_TIMEOUT (e.g. "10s"), LEAGUE_LOG_LEVEL
package config
