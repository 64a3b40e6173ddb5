package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viper keys.
const (
	keyTimerMaxDuration    = "timer.max_duration"
	keyTimerTick           = "timer.tick"
	keyTimerNotify         = "timer.notify"
	keyTimerChime          = "timer.chime"
	keyTimerCmd            = "timer.cmd"
	keyFlightsType         = "flights.type"
	keyFlightsCmd          = "flights.cmd"
	keyDisplayDarkTheme    = "display.dark_theme"
	keyDisplayAccentColor  = "display.accent_color"
	keyDisplayInvalidColor = "display.invalid_color"
	keyLogLevel            = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A file populated with defaults is written if none
// exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return v.Unmarshal(c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return v.Unmarshal(c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyTimerMaxDuration, "30s")
	v.SetDefault(keyTimerTick, "16ms")
	v.SetDefault(keyTimerNotify, false)
	v.SetDefault(keyTimerChime, false)
	v.SetDefault(keyTimerCmd, "")
	v.SetDefault(keyFlightsType, "one-way")
	v.SetDefault(keyFlightsCmd, "")
	v.SetDefault(keyDisplayDarkTheme, true)
	v.SetDefault(keyDisplayAccentColor, "#B0DB43")
	v.SetDefault(keyDisplayInvalidColor, "#E84855")
	v.SetDefault(keyLogLevel, "info")
}
