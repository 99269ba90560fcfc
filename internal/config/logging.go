package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewLogger builds the process logger. Output is JSON by default with an
// opt-in console format for local runs; every line carries the service name,
// and debug level adds caller locations. An unparseable level falls back to
// info rather than failing startup.
func NewLogger(cfg LoggingConfig) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldUnit = time.Millisecond

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var output io.Writer = os.Stdout
	if strings.EqualFold(cfg.Format, "console") {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	builder := zerolog.New(output).Level(level).With().
		Timestamp().
		Str("service", "gatherly")
	if level <= zerolog.DebugLevel {
		builder = builder.Caller()
	}

	logger := builder.Logger()
	log.Logger = logger
	return logger
}
