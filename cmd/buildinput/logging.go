package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// setupLogging installs and returns the process logger.
// Logs go to w so stdout stays clean for resolved values.
func setupLogging(w io.Writer, level slog.Level, format string) *slog.Logger {
	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String("ts", a.Value.Time().UTC().Format(time.RFC3339Nano))
				}
				return a
			},
		})
	} else {
		h = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05.000",
		})
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}
