package dlx

import "context"

// ErrForcedRowUnknown is returned by ForceRows when a caller-supplied row
// id has no node in the structure.
type ErrForcedRowUnknown int

func (e ErrForcedRowUnknown) Error() string {
	return "dlx: forced row has no node in the structure"
}

// ForceRows selects the given caller row ids as preconditions before
// Search runs: each forced row is marked true in sol and every column it
// touches is covered, exactly as if Search had branched into that row
// first. It is the caller's responsibility that no two forced rows share a
// column — covering an already-covered column is out of contract and will
// violate the structure's invariants without detection.
func ForceRows(s *Structure, sol []bool, rowIDs []int) error {
	for _, row := range rowIDs {
		if row < 0 || row >= len(s.rowNode) || s.rowNode[row] == -1 {
			return ErrForcedRowUnknown(row)
		}
		i := s.rowNode[row]
		sol[s.RM[i]] = true
		for j := i; ; {
			Cover(s, s.C[j])
			j = s.R[j]
			if j == i {
				break
			}
		}
	}
	return nil
}

// Solve builds no structure of its own; it runs Search against an already
// built one, after any desired ForceRows call, and reports whether a
// solution was found.
func Solve(ctx context.Context, s *Structure, sol []bool) bool {
	return Search(ctx, s, sol)
}
