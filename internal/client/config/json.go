package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/leaguefeed/internal/flagx"
	"github.com/dmitrijs2005/leaguefeed/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the timeout either as a
// string like "10s" or as integer nanoseconds.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	DataDir        string         `json:"data_dir"`
	DatabaseFile   string         `json:"database_file"`
	KeyFile        string         `json:"key_file"`
	Passphrase     string         `json:"passphrase"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c or -config in args.
// Keys missing from the file keep their current value. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIfNotEmpty(&cfg.BaseURL, jc.BaseURL)
	setIfNotEmpty(&cfg.DataDir, jc.DataDir)
	setIfNotEmpty(&cfg.DatabaseFile, jc.DatabaseFile)
	setIfNotEmpty(&cfg.KeyFile, jc.KeyFile)
	setIfNotEmpty(&cfg.Passphrase, jc.Passphrase)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
