// Package logpkg builds the application logger.
package logpkg

import (
	"io"
	"os"
	"time"

	"github.com/go-petr/pet-school/pkg/configpkg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// New returns the application logger configured for the current environment.
func New(config configpkg.Config) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var (
		output   io.Writer = os.Stderr
		logLevel           = zerolog.InfoLevel // default to INFO
	)

	log := zerolog.New(output).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	if config.Environement == "development" {
		log = log.
			Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(zerolog.TraceLevel).
			With().
			Caller().
			Logger()
	}

	return log
}
