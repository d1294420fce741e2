package sudoku

import (
	"context"
	"errors"
	"time"

	"github.com/raaphorst/dlxgo/internal/dlx"
)

// ErrContradictoryGivens is returned by Solve when two givens already
// conflict before the dlx core is even invoked.
var ErrContradictoryGivens = errors.New("sudoku: givens conflict with each other")

// ErrNoSolution is returned when the exact-cover search exhausts every
// branch without completing the board.
var ErrNoSolution = errors.New("sudoku: no solution")

// Result carries a solved board alongside the search effort it took.
type Result struct {
	Grid     [][]int
	Nodes    int
	Duration time.Duration
}

// Solve reduces an order-N board with the given fixed cells to exact
// cover, forces the givens into the solution as preconditions, and returns
// the first completion found.
func Solve(ctx context.Context, order int, givens []Given) (*Result, error) {
	if ok, _ := ValidateGivens(order, givens); !ok {
		return nil, ErrContradictoryGivens
	}

	start := time.Now()
	numCols, numRows, numNodes := Dimensions(order)
	positions := BuildPositions(order)
	s := dlx.Build(positions, numCols, numRows, numNodes)

	sol := make([]bool, numRows)
	if err := dlx.ForceRows(s, sol, ForcedRows(order, givens)); err != nil {
		return nil, err
	}

	found := dlx.Solve(ctx, s, sol)
	if !found {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNoSolution
	}

	return &Result{
		Grid:     DecodeSolution(order, sol),
		Nodes:    s.Nodes,
		Duration: time.Since(start),
	}, nil
}
