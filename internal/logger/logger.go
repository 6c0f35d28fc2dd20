package logger

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger appending to the file at logPath and a close function
// for its file handle. When the file cannot be opened the logger degrades to
// console-only output so a broken log path never blocks an invocation.
func New(logPath string) (zerolog.Logger, func()) {
	console := consoleLogger()

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		console.Warn().Err(err).Str("path", logPath).Msg("failed to create log directory, logging to console only")
		return console, func() {}
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		console.Warn().Err(err).Str("path", logPath).Msg("failed to open log file, logging to console only")
		return console, func() {}
	}

	log := zerolog.New(file).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()

	return log, func() { file.Close() }
}

func consoleLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(writer).
		Level(zerolog.WarnLevel).
		With().
		Timestamp().
		Logger()
}
