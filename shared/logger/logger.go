package logger

import (
	"kmc/config"
	"kmc/shared/constant"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

const defaultLevel = zerolog.InfoLevel

// InitLogger writes JSON lines in production and console output elsewhere.
// Everything is logged until SetLogLevel narrows it.
func InitLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	if cfg.Server.Env == constant.ServerEnvProduction {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str("app", cfg.App.Name).Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	log.Trace().Str("env", cfg.Server.Env).Msg("logger initialized")
}

// ErrorWithStack logs err with the stack of the caller attached.
func ErrorWithStack(err error) {
	log.Error().Stack().Err(errors.WithStack(err)).Send()
}

// SetLogLevel applies SERVER_LOG_LEVEL. Empty means info, unparsable means trace.
func SetLogLevel(cfg *config.Config) {
	level := defaultLevel

	if cfg.Server.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(cfg.Server.LogLevel)
		if err != nil {
			log.Warn().Str("log_level", cfg.Server.LogLevel).Msg("unknown log level, logging everything")

			parsed = zerolog.TraceLevel
		}

		level = parsed
	}

	zerolog.SetGlobalLevel(level)
	log.Info().Str("log_level", level.String()).Msg("log level set")
}
