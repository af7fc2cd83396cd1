package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"jwtgen/internal/apperr"
	"jwtgen/internal/config"
)

// NewLogger builds a logger writing to w. Standard output carries only the
// token, so w is normally stderr.
func NewLogger(w io.Writer, s config.Settings) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel))
	if err != nil {
		return zerolog.Nop(), apperr.Usage(err, "JWTGEN_LOG_LEVEL")
	}

	if level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	if s.LogFormat == config.LogFormatJSON {
		return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
	}

	return zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.TimeFormat = time.RFC3339
	})).Level(level).With().Timestamp().Logger(), nil
}

// Setup installs the logger as the package-global one used across internal/.
func Setup(w io.Writer, s config.Settings) error {
	logger, err := NewLogger(w, s)
	if err != nil {
		return err
	}

	log.Logger = logger
	return nil
}
