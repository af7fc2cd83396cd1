package config

import (
	"github.com/caarlos0/env/v9"

	"jwtgen/internal/apperr"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Settings are the runtime knobs read from the environment. They never change
// what gets signed.
type Settings struct {
	LogLevel  string `env:"JWTGEN_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"JWTGEN_LOG_FORMAT" envDefault:"text"`
}

func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return s, apperr.Usage(err, "reading environment")
	}

	switch s.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return s, apperr.Usage(nil, "JWTGEN_LOG_FORMAT must be %q or %q, got %q", LogFormatText, LogFormatJSON, s.LogFormat)
	}

	return s, nil
}
