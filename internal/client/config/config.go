package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultBaseURL = "https://engineering.league.dev/challenge/api/"
	appDirName     = "leaguefeed"
)

// Config holds runtime settings for the feed CLI.
//
// DatabaseFile and KeyFile are resolved against DataDir unless absolute.
// With a non-empty Passphrase the store key is derived from it and KeyFile
// is not used.
type Config struct {
	BaseURL        string        `env:"LEAGUE_BASE_URL"`
	DataDir        string        `env:"LEAGUE_DATA_DIR"`
	DatabaseFile   string        `env:"LEAGUE_DATABASE_FILE"`
	KeyFile        string        `env:"LEAGUE_KEY_FILE"`
	Passphrase     string        `env:"LEAGUE_PASSPHRASE"`
	RequestTimeout time.Duration `env:"LEAGUE_REQUEST_TIMEOUT"`
	LogLevel       string        `env:"LEAGUE_LOG_LEVEL"`
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName)
	}
	return "." + appDirName
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = DefaultBaseURL
	c.DataDir = defaultDataDir()
	c.DatabaseFile = "cache.db"
	c.KeyFile = "store.key"
	c.Passphrase = ""
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "info"
}

// DatabasePath returns the SQLite file location.
func (c *Config) DatabasePath() string {
	return c.resolve(c.DatabaseFile)
}

// KeyPath returns the FileKeyring key file location.
func (c *Config) KeyPath() string {
	return c.resolve(c.KeyFile)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones. Invalid input panics.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
