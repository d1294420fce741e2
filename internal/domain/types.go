// Package domain holds the plain data types shared across the usecase,
// storage, and CLI layers: no behaviour attached, just the shapes they
// pass between each other.
package domain

import "github.com/google/uuid"

// Kind identifies which collaborator produced a Run.
type Kind string

const (
	KindSudoku Kind = "sudoku"
	KindDesign Kind = "design"
)

// SudokuRun is the solved grid and parameters for a Sudoku reduction.
type SudokuRun struct {
	Order int     `json:"order"`
	Grid  [][]int `json:"grid"`
}

// DesignRun is the selected blocks and parameters for a t-(v,k,1) design
// reduction.
type DesignRun struct {
	V      int     `json:"v"`
	K      int     `json:"k"`
	T      int     `json:"t"`
	Blocks [][]int `json:"blocks"`
}

// Run is a persisted record of one solve: which collaborator produced it,
// its result, and how much search effort it took.
type Run struct {
	ID         uuid.UUID  `json:"id"`
	Kind       Kind       `json:"kind"`
	Sudoku     *SudokuRun `json:"sudoku,omitempty"`
	Design     *DesignRun `json:"design,omitempty"`
	Nodes      int        `json:"nodes"`
	DurationMs int64      `json:"durationMs"`
	CreatedAt  int64      `json:"createdAt"`
}

// RunMeta is a lightweight listing entry, cheaper to decode in bulk than
// a full Run.
type RunMeta struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	CreatedAt int64     `json:"createdAt"`
}
