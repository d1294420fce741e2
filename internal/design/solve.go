package design

import (
	"context"
	"errors"
	"time"

	"github.com/raaphorst/dlxgo/internal/dlx"
)

// ErrNoSolution is returned when no t-(v,k,1) design with these
// parameters exists (e.g. a necessary divisibility condition fails).
var ErrNoSolution = errors.New("design: no t-(v,k,1) design exists for these parameters")

// Result carries the blocks of a found design alongside search effort.
type Result struct {
	Blocks   [][]int
	Nodes    int
	Duration time.Duration
}

// Solve reduces the t-(v,k,1) design problem to exact cover and returns
// the first set of blocks found.
func Solve(ctx context.Context, v, k, t int) (*Result, error) {
	start := time.Now()
	numCols, numRows, numNodes := Dimensions(v, k, t)
	positions := BuildPositions(v, k, t)
	s := dlx.Build(positions, numCols, numRows, numNodes)

	sol := make([]bool, numRows)
	found := dlx.Solve(ctx, s, sol)
	if !found {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNoSolution
	}

	return &Result{
		Blocks:   DecodeBlocks(v, k, sol),
		Nodes:    s.Nodes,
		Duration: time.Since(start),
	}, nil
}
