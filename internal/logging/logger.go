// Package logging wires the process-wide slog pipeline: a JSON handler on
// stdout from startup, later fanned out to the system_logs table once the
// database connection is up.
package logging

import (
	"log/slog"
	"os"
)

// Setup installs the bootstrap JSON logger. main swaps in the multi
// handler after the database connects.
func Setup() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}
