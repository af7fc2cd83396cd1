package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jwtgen/internal/apperr"
	"jwtgen/internal/config"
)

func TestNewLogger(t *testing.T) {
	t.Run("json output honours level", func(t *testing.T) {
		buf := &bytes.Buffer{}

		logger, err := NewLogger(buf, config.Settings{LogLevel: "info", LogFormat: config.LogFormatJSON})
		require.NoError(t, err)

		logger.Debug().Msg("hidden")
		logger.Info().Str("path", "config.toml").Msg("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"path":"config.toml"`)
		assert.Contains(t, buf.String(), `"message":"shown"`)
	})

	t.Run("text output", func(t *testing.T) {
		buf := &bytes.Buffer{}

		logger, err := NewLogger(buf, config.Settings{LogLevel: "WARN", LogFormat: config.LogFormatText})
		require.NoError(t, err)

		logger.Info().Msg("hidden")
		logger.Warn().Msg("empty secret")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "empty secret")
	})

	t.Run("empty level falls back to warn", func(t *testing.T) {
		logger, err := NewLogger(&bytes.Buffer{}, config.Settings{LogFormat: config.LogFormatText})
		require.NoError(t, err)

		assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := NewLogger(&bytes.Buffer{}, config.Settings{LogLevel: "loud"})

		require.ErrorIs(t, err, apperr.ErrUsage)
	})
}

func TestSetup(t *testing.T) {
	previous := log.Logger
	t.Cleanup(func() { log.Logger = previous })

	buf := &bytes.Buffer{}
	require.NoError(t, Setup(buf, config.Settings{LogLevel: "debug", LogFormat: config.LogFormatJSON}))

	log.Debug().Msg("via global")

	assert.Contains(t, buf.String(), "via global")
}
