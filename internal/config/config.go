// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Timer   TimerConfig   `mapstructure:"timer"`
		Flights FlightsConfig `mapstructure:"flights"`
		Display DisplayConfig `mapstructure:"display"`
		Log     LogConfig     `mapstructure:"log"`
	}

	// TimerConfig holds settings for the elapsed time task.
	TimerConfig struct {
		Cmd         string        `mapstructure:"cmd"`
		MaxDuration time.Duration `mapstructure:"max_duration"`
		Tick        time.Duration `mapstructure:"tick"`
		Notify      bool          `mapstructure:"notify"`
		Chime       bool          `mapstructure:"chime"`
	}

	// FlightsConfig holds settings for the flight booker task.
	FlightsConfig struct {
		Type string `mapstructure:"type"`
		Cmd  string `mapstructure:"cmd"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		AccentColor  string `mapstructure:"accent_color"`
		InvalidColor string `mapstructure:"invalid_color"`
		DarkTheme    bool   `mapstructure:"dark_theme"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

// New creates a new Config and applies options in order. The result is
// validated before it is returned.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Default returns the settings used when neither a config file nor
// command-line flags override them.
func Default() *Config {
	return &Config{
		Timer: TimerConfig{
			MaxDuration: 30 * time.Second,
			Tick:        16 * time.Millisecond,
		},
		Flights: FlightsConfig{
			Type: "one-way",
		},
		Display: DisplayConfig{
			AccentColor:  "#B0DB43",
			InvalidColor: "#E84855",
			DarkTheme:    true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
