package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	MaxDuration string
	TimerCmd    string
	FlightType  string
	FlightsCmd  string
	LogLevel    string
	Notify      bool
	Chime       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			MaxDuration: ctx.String("max"),
			TimerCmd:    ctx.String("timer-cmd"),
			FlightType:  ctx.String("flight-type"),
			FlightsCmd:  ctx.String("flights-cmd"),
			LogLevel:    ctx.String("log-level"),
			Notify:      ctx.Bool("notify"),
			Chime:       ctx.Bool("chime"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config. Empty values leave the
// file settings untouched.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.MaxDuration != "" {
		dur, err := parseDuration(opts.MaxDuration)
		if err != nil {
			return errInvalidCLIDuration.Fmt(opts.MaxDuration)
		}

		c.Timer.MaxDuration = dur
	}

	if opts.TimerCmd != "" {
		c.Timer.Cmd = opts.TimerCmd
	}

	if opts.FlightType != "" {
		c.Flights.Type = opts.FlightType
	}

	if opts.FlightsCmd != "" {
		c.Flights.Cmd = opts.FlightsCmd
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}

	if opts.Notify {
		c.Timer.Notify = true
	}

	if opts.Chime {
		c.Timer.Chime = true
	}

	return nil
}

// parseDuration accepts Go duration strings and bare numbers, which are
// treated as seconds.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	return time.ParseDuration(s + "s")
}
