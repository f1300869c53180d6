package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_OverlaysOnlySetVariables(t *testing.T) {
	t.Setenv("LEAGUE_BASE_URL", "http://env/")
	t.Setenv("LEAGUE_REQUEST_TIMEOUT", "12s")
	t.Setenv("LEAGUE_PASSPHRASE", "hunter2")

	cfg := &Config{DataDir: "/keep", LogLevel: "info"}
	parseEnv(cfg)

	assert.Equal(t, "http://env/", cfg.BaseURL)
	assert.Equal(t, 12*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "hunter2", cfg.Passphrase)
	assert.Equal(t, "/keep", cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseEnv_BadDurationPanics(t *testing.T) {
	t.Setenv("LEAGUE_REQUEST_TIMEOUT", "soon")

	require.Panics(t, func() { parseEnv(&Config{}) })
}
