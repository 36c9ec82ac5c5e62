// Package logging builds the structured JSON loggers ledger hosts attach
// through Ledger.SetLogger.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

// New returns a JSON logger writing to w. Every line carries the service
// name, and the environment when provided; the "local" environment lowers
// the level to debug.
func New(w io.Writer, service, env string) *slog.Logger {
	env = strings.TrimSpace(env)
	level := slog.LevelInfo
	if env == "local" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.TimeKey:
				return slog.Attr{Key: "timestamp", Value: attr.Value}
			case slog.LevelKey:
				return slog.String("severity", strings.ToUpper(attr.Value.String()))
			case slog.MessageKey:
				return slog.Attr{Key: "message", Value: attr.Value}
			}
			return attr
		},
	})

	logger := slog.New(handler).With(slog.String("service", strings.TrimSpace(service)))
	if env != "" {
		logger = logger.With(slog.String("env", env))
	}
	return logger
}

// Setup installs a process-wide JSON logger on stdout and returns it. The
// standard library logger is bridged onto the same handler so packages
// logging through log.Printf land in the same stream.
func Setup(service, env string) *slog.Logger {
	logger := New(os.Stdout, service, env)
	slog.SetDefault(logger)

	stdBridge := slog.NewLogLogger(logger.Handler(), slog.LevelInfo)
	stdBridge.SetFlags(0)
	log.SetOutput(stdBridge.Writer())
	log.SetFlags(0)
	log.SetPrefix("")

	return logger
}
