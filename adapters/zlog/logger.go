// Package zlog adapts zerolog to the printf-style Logger the screen
// managers expect. Use it when the host application already logs with
// zerolog and wants screen activity in the same stream.
package zlog

import (
	"os"

	"github.com/rs/zerolog"

	ulpforms "github.com/ulpkit/go-ulpforms"
)

var _ ulpforms.Logger = (*Logger)(nil)

// Logger wraps a zerolog.Logger behind the manager Logger interface.
type Logger struct {
	log zerolog.Logger
}

// New creates a JSON logger on stdout tagged with a role field, e.g.
// "login-screen" or "signup-screen".
func New(role string) *Logger {
	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{log: logger}
}

// From wraps an existing zerolog.Logger, inheriting its fields and output.
func From(logger zerolog.Logger) *Logger {
	return &Logger{log: logger}
}

// Nop returns a logger that discards everything. Meant for tests.
func Nop() *Logger {
	return &Logger{log: zerolog.Nop()}
}

func (l *Logger) Debug(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
