package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// ContextKey is the type of the key used with context to carry contextual
// logging fields.
type ContextKey string

const (
	// scopeKey the context.Context key to store the logging scope (current
	// transaction token in general).
	scopeKey ContextKey = "logging.scope"
)

// WithScope stores a scope in the context. Scopes are prefixed to every log
// line emitted with that context.
func WithScope(
	ctx context.Context,
	scope string,
) context.Context {
	return context.WithValue(ctx, scopeKey, scope)
}

func event(
	ctx context.Context,
	e *zerolog.Event,
) *zerolog.Event {
	if ctx != nil {
		if scope, ok := ctx.Value(scopeKey).(string); ok && scope != "" {
			e = e.Str("scope", scope)
		}
	}
	return e
}

// Logf logs a formatted message at info level with the context scope attached.
func Logf(
	ctx context.Context,
	format string,
	args ...interface{},
) {
	event(ctx, zlog.Info()).Msg(
		strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}

// Log logs a message at info level with the context scope attached.
func Log(
	ctx context.Context,
	msg string,
) {
	event(ctx, zlog.Info()).Msg(msg)
}

// Debugf logs a formatted message at debug level.
func Debugf(
	ctx context.Context,
	format string,
	args ...interface{},
) {
	event(ctx, zlog.Debug()).Msg(fmt.Sprintf(format, args...))
}

// Errorf logs a formatted message at error level along with the error.
func Errorf(
	ctx context.Context,
	err error,
	format string,
	args ...interface{},
) {
	event(ctx, zlog.Error()).Err(err).Msg(fmt.Sprintf(format, args...))
}

// Configure sets up the global logger: stdout and optionally a log file,
// console formatting if pretty is set, and the global level (default info).
func Configure(
	level string,
	path string,
	pretty bool,
) error {
	writers := io.MultiWriter(os.Stdout)
	if len(path) > 0 {
		file, err := os.OpenFile(path,
			os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		writers = io.MultiWriter(os.Stdout, file)
	}
	if pretty {
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: writers})
	} else {
		zlog.Logger = zlog.Output(writers)
	}

	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	return nil
}
