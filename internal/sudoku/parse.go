package sudoku

import (
	"errors"
	"fmt"
)

// ErrBadGivensLength reports a givens string whose length doesn't match
// the expected side*side for the board order.
var ErrBadGivensLength = errors.New("sudoku: givens string has the wrong length")

// ParseGivens reads a row-major board string such as the 81-character
// givens used for order-3 boards, where '0' or '.' marks an empty cell and
// '1'..'9' a fixed digit. It only supports orders whose side (N²) is at
// most 9, since a single character can't encode a two-digit value.
func ParseGivens(order int, s string) ([]Given, error) {
	side := order * order
	if side > 9 {
		return nil, fmt.Errorf("sudoku: order %d needs multi-character digits, ParseGivens only supports side<=9", order)
	}
	if len(s) != side*side {
		return nil, ErrBadGivensLength
	}

	givens := make([]Given, 0, side*side)
	for i, ch := range s {
		r, c := i/side, i%side
		switch {
		case ch == '0' || ch == '.':
			continue
		case ch >= '1' && ch <= '9':
			d := int(ch - '0')
			if d > side {
				return nil, fmt.Errorf("sudoku: digit %d at (%d,%d) exceeds board side %d", d, r, c, side)
			}
			givens = append(givens, Given{Row: r, Col: c, Digit: d})
		default:
			return nil, fmt.Errorf("sudoku: invalid character %q at position %d", ch, i)
		}
	}
	return givens, nil
}
