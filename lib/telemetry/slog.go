package telemetry

import (
	"log/slog"
	"os"
)

// InitSlog installs the default text handler, with debug
// logging enabled or disabled.
func InitSlog(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{Level: level},
	)))
}
