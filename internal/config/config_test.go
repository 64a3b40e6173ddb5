package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/sevenguis/internal/config"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Timer: config.TimerConfig{
			MaxDuration: 30 * time.Second,
			Tick:        16 * time.Millisecond,
		},
		Flights: config.FlightsConfig{
			Type: "one-way",
		},
		Display: config.DisplayConfig{
			AccentColor:  "#B0DB43",
			InvalidColor: "#E84855",
			DarkTheme:    true,
		},
		Log: config.LogConfig{
			Level: "info",
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)

	_, err = os.Stat(configPath)
	assert.NoError(t, err, "default config should be written to disk")
}

func TestDefaultMatchesWrittenFile(t *testing.T) {
	assert.Equal(t, defaultConfig(), config.Default())
	assert.NoError(t, config.Default().Validate())
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	modified := []byte(`timer:
  max_duration: 45s
  tick: 50ms
  notify: true
  cmd: echo done
flights:
  type: return
display:
  dark_theme: false
log:
  level: debug
`)

	require.NoError(t, os.WriteFile(configPath, modified, 0o600))

	want := defaultConfig()
	want.Timer.MaxDuration = 45 * time.Second
	want.Timer.Tick = 50 * time.Millisecond
	want.Timer.Notify = true
	want.Timer.Cmd = "echo done"
	want.Flights.Type = "return"
	want.Display.DarkTheme = false
	want.Log.Level = "debug"

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name   string
		modify func(c *config.Config)
	}{
		{
			name: "max duration below range",
			modify: func(c *config.Config) {
				c.Timer.MaxDuration = 500 * time.Millisecond
			},
		},
		{
			name: "max duration above range",
			modify: func(c *config.Config) {
				c.Timer.MaxDuration = 61 * time.Second
			},
		},
		{
			name: "tick too slow",
			modify: func(c *config.Config) {
				c.Timer.Tick = 2 * time.Second
			},
		},
		{
			name: "unknown flight type",
			modify: func(c *config.Config) {
				c.Flights.Type = "multi-city"
			},
		},
		{
			name: "bad accent colour",
			modify: func(c *config.Config) {
				c.Display.AccentColor = "green"
			},
		},
		{
			name: "unknown log level",
			modify: func(c *config.Config) {
				c.Log.Level = "verbose"
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.modify(cfg)

			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, defaultConfig().Validate())
}

func TestNewRejectsInvalidOption(t *testing.T) {
	errBoom := errors.New("boom")

	_, err := config.New(func(_ *config.Config) error {
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
}
