package config

import "github.com/ayoisaiah/sevenguis/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidMaxDuration = &apperr.Error{
		Message: "timer duration must be between %v and %v, got %v",
	}

	errInvalidTick = &apperr.Error{
		Message: "timer tick must be between %v and %v, got %v",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s (must be debug, info, warn, or error)",
	}

	errInvalidFlightType = &apperr.Error{
		Message: "unknown flight type: %s (must be one-way or return)",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid timer duration: %s",
	}
)
