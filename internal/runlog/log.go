// Package runlog builds the structured logger every command uses, with
// github.com/charmbracelet/log configured the way a level flag/config value
// would configure log/slog: one logger built at startup, handed down by
// constructor injection rather than a package global.
package runlog

import (
	"os"

	"github.com/charmbracelet/log"
)

// New builds a logger at the given level ("debug", "info", "warn", or
// "error"; anything else falls back to info).
func New(level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
	})
	return logger
}

// Run logs one structured line describing a completed solve, the way a
// request-logging middleware logs one line per HTTP request with
// method/path/status/bytes/duration.
func Run(logger *log.Logger, kind string, nodes int, durationMs int64, err error) {
	if err != nil {
		logger.Error("solve", "kind", kind, "nodes", nodes, "durationMs", durationMs, "err", err)
		return
	}
	logger.Info("solve", "kind", kind, "nodes", nodes, "durationMs", durationMs)
}
