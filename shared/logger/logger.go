package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"todos/config"
	"todos/shared/constant"
	"todos/shared/failure"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs the global logger. Development gets a human readable console writer,
// every other environment writes JSON lines.
func InitLogger(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var output io.Writer = os.Stdout
	if env == "" || env == constant.ServerEnvDevelopment {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	log.Logger = log.Output(output).With().Timestamp().Logger()
	log.Trace().Str("env", env).Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

// WithRequestID stores the request id and a logger tagged with it in ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyRequestID, requestID)

	return log.With().Str("request_id", requestID).Logger().WithContext(ctx)
}

// RequestID returns the request id stored by WithRequestID, or an empty string.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(constant.ContextKeyRequestID).(string)

	return id
}

// Ctx returns the request scoped logger, falling back to the global one.
func Ctx(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}

	return &log.Logger
}

// WithTraceID adds trace_id to the request logger already stored in ctx.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	if traceID == "" {
		return ctx
	}

	l := Ctx(ctx).With().Str("trace_id", traceID).Logger()

	return l.WithContext(ctx)
}

// Failure starts a log event for err on the request logger: Warn for client errors (4xx),
// Error for everything else.
func Failure(ctx context.Context, err error) *zerolog.Event {
	if code := failure.GetCode(err); code >= http.StatusBadRequest && code < http.StatusInternalServerError {
		return Ctx(ctx).Warn().Err(err).Int("status", code)
	}

	return Ctx(ctx).Error().Err(err)
}
