package config

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/ayoisaiah/sevenguis/internal/booking"
	"github.com/ayoisaiah/sevenguis/internal/elapsed"
)

var (
	minTick = 1 * time.Millisecond
	maxTick = 1 * time.Second

	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateTimer(); err != nil {
		return err
	}

	if _, err := booking.ParseFlightType(c.Flights.Type); err != nil {
		return errInvalidFlightType.Fmt(c.Flights.Type)
	}

	if !hexColorRegex.MatchString(c.Display.AccentColor) {
		return errInvalidColor.Fmt("accent", c.Display.AccentColor)
	}

	if !hexColorRegex.MatchString(c.Display.InvalidColor) {
		return errInvalidColor.Fmt("invalid", c.Display.InvalidColor)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateTimer() error {
	d := c.Timer.MaxDuration
	if d < elapsed.MinDuration || d > elapsed.MaxDuration {
		return errInvalidMaxDuration.Fmt(
			elapsed.MinDuration,
			elapsed.MaxDuration,
			d,
		)
	}

	if c.Timer.Tick < minTick || c.Timer.Tick > maxTick {
		return errInvalidTick.Fmt(minTick, maxTick, c.Timer.Tick)
	}

	return nil
}

// SlogLevel converts the configured level name to a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, errInvalidLogLevel.Fmt(l.Level)
}
