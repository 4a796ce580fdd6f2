// Package logger wires zerolog behind the small logging API the rest
// of the application uses: human-readable console output plus an
// optional JSON debug file. Full diagnostic detail goes to the debug
// file only; the console stays at Info unless debug is requested.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

var log zerolog.Logger = newConsoleLogger(zerolog.InfoLevel)

// debugFile stays open for the process lifetime once InitLogging
// succeeds.
var debugFile *os.File

func newConsoleLogger(min zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(levelWriter{w: console, min: min}).With().Timestamp().Logger()
}

// levelWriter drops events below min for one output while letting the
// other outputs of a MultiLevelWriter see everything.
type levelWriter struct {
	w   io.Writer
	min zerolog.Level
}

func (l levelWriter) Write(p []byte) (int, error) {
	return l.w.Write(p)
}

func (l levelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < l.min {
		return len(p), nil
	}
	return l.w.Write(p)
}

// InitLogging configures the global logger. filePath, when non-empty,
// receives every event at debug level as JSON; the console shows Info
// and above, or everything when debug is set.
func InitLogging(filePath string, debug bool) error {
	consoleMin := zerolog.InfoLevel
	if debug {
		consoleMin = zerolog.DebugLevel
	}
	console := levelWriter{
		w:   zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"},
		min: consoleMin,
	}

	writers := []io.Writer{console}
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("open debug log file %s: %w", filePath, err)
		}
		debugFile = f
		writers = append(writers, f)
	}

	log = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
	return nil
}

// Logger returns the configured logger for injection into services.
func Logger() zerolog.Logger {
	return log
}

func InfoLog(_ context.Context, format string, v ...interface{}) {
	log.Info().Msgf(format, v...)
}

func DebugLog(_ context.Context, format string, v ...interface{}) {
	log.Debug().Msgf(format, v...)
}

func WarnLog(_ context.Context, format string, v ...interface{}) {
	log.Warn().Msgf(format, v...)
}

func ErrorLog(_ context.Context, format string, v ...interface{}) {
	log.Error().Msgf(format, v...)
}
