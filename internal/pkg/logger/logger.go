// Package logger owns the process-wide zerolog instance. Call Configure once
// at startup; the package-level helpers and the global zerolog log.Logger
// both point at the configured logger afterwards.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var root zerolog.Logger

// LogLevel names a zerolog level in configuration.
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)

// Config carries the logger settings from the logging config section.
type Config struct {
	Level LogLevel
	// Pretty switches from JSON lines to the human-readable console writer.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

// Configure rebuilds the root logger. An unknown level falls back to info.
func Configure(config Config) {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(string(config.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	writer := config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{Out: config.Output, TimeFormat: time.RFC3339}
	}

	root = zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = root
}

func Debug() *zerolog.Event { return root.Debug() }
func Info() *zerolog.Event  { return root.Info() }
func Warn() *zerolog.Event  { return root.Warn() }
func Error() *zerolog.Event { return root.Error() }
func Fatal() *zerolog.Event { return root.Fatal() }

func init() {
	// JSON at info until the config is loaded
	Configure(Config{Level: InfoLevel})
}
