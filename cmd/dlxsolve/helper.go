package main

import (
	"github.com/raaphorst/dlxgo/internal/domain"
	"github.com/raaphorst/dlxgo/internal/runlog"
)

func runlogResult(a *app, kind string, run *domain.Run, err error) {
	nodes, durationMs := 0, int64(0)
	if run != nil {
		nodes, durationMs = run.Nodes, run.DurationMs
	}
	runlog.Run(a.logger, kind, nodes, durationMs, err)
}
