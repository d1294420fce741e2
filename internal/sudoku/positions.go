// Package sudoku reduces an order-N Sudoku board (an N²×N² grid, digits
// 1..N²) to an exact-cover instance and decodes the dlx core's solution
// vector back into cell assignments. It is an external collaborator of
// internal/dlx: the core has no notion of rows, columns, boxes, or digits.
package sudoku

import "github.com/raaphorst/dlxgo/internal/dlx"

// Given is one fixed cell: digit at (Row, Col), both zero-based, Digit in
// [1, side].
type Given struct {
	Row, Col, Digit int
}

// Dimensions reports the exact-cover sizing for an order-N board:
// NumCols = 4*N⁴, NumRows = N⁶, NumNodes = 4*N⁶.
func Dimensions(order int) (numCols, numRows, numNodes int) {
	side := order * order
	numCols = 4 * side * side
	numRows = side * side * side
	numNodes = 4 * numRows
	return
}

// RowID returns the exact-cover row id for placing zero-based digit d
// (0..side-1) at (r, c).
func RowID(order, r, c, d int) int {
	side := order * order
	return (r*side+c)*side + d
}

// DecodeRow inverts RowID, returning the zero-based row, column and digit.
func DecodeRow(order, rowID int) (r, c, d int) {
	side := order * order
	cell := rowID / side
	d = rowID % side
	r = cell / side
	c = cell % side
	return
}

// BuildPositions constructs the row-grouped incidence list for an order-N
// board. The four column blocks — cell occupancy, row-has-digit,
// column-has-digit, box-has-digit — appear in that order within each row's
// four entries.
func BuildPositions(order int) []dlx.Incidence {
	side := order * order
	_, _, numNodes := Dimensions(order)
	positions := make([]dlx.Incidence, 0, numNodes)

	cellCol := func(r, c int) int { return r*side + c }
	rowCol := func(r, d int) int { return side*side + r*side + d }
	colCol := func(c, d int) int { return 2*side*side + c*side + d }
	boxCol := func(r, c, d int) int {
		box := (r/order)*order + c/order
		return 3*side*side + box*side + d
	}

	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			for d := 0; d < side; d++ {
				row := RowID(order, r, c, d)
				positions = append(positions,
					dlx.Incidence{Row: row, Col: cellCol(r, c)},
					dlx.Incidence{Row: row, Col: rowCol(r, d)},
					dlx.Incidence{Row: row, Col: colCol(c, d)},
					dlx.Incidence{Row: row, Col: boxCol(r, c, d)},
				)
			}
		}
	}

	return positions
}

// ForcedRows translates a list of givens into the exact-cover row ids that
// ForceRows should select.
func ForcedRows(order int, givens []Given) []int {
	rows := make([]int, len(givens))
	for i, g := range givens {
		rows[i] = RowID(order, g.Row, g.Col, g.Digit-1)
	}
	return rows
}

// DecodeSolution turns a solved boolean vector into a side×side grid of
// 1-based digits.
func DecodeSolution(order int, sol []bool) [][]int {
	side := order * order
	grid := make([][]int, side)
	for i := range grid {
		grid[i] = make([]int, side)
	}
	for rowID, chosen := range sol {
		if !chosen {
			continue
		}
		r, c, d := DecodeRow(order, rowID)
		grid[r][c] = d + 1
	}
	return grid
}
