package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://localhost:8080/", "-d", "/tmp/lf", "-t", "10", "-l", "debug"},
			expected: &Config{
				BaseURL: "http://localhost:8080/", DataDir: "/tmp/lf",
				RequestTimeout: 10 * time.Second, LogLevel: "debug",
			},
		},
		{
			name:     "foreign flags are ignored",
			args:     []string{"-c", "cfg.json", "-t=3", "-x", "y"},
			expected: &Config{RequestTimeout: 3 * time.Second},
		},
		{name: "incorrect timeout", args: []string{"-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestParseFlags_KeepsCurrentValuesWhenAbsent(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()
	want := cfg

	parseFlags(&cfg, nil)

	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseFlags_SubSecondTimeoutSurvivesWithoutFlag(t *testing.T) {
	for _, d := range []time.Duration{500 * time.Millisecond, 1500 * time.Millisecond} {
		cfg := Config{RequestTimeout: d}

		parseFlags(&cfg, []string{"-l", "debug"})

		assert.Equal(t, d, cfg.RequestTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
	}

	cfg := Config{RequestTimeout: 500 * time.Millisecond}
	parseFlags(&cfg, []string{"-t", "2"})
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
}
