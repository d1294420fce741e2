package dlx

import "context"

// Search runs Algorithm X over s, recording the first solution it finds in
// sol (length NumRows, caller-zeroed). It returns true iff a solution was
// found; on false, s and sol are restored to the state Search was called
// with. ctx is checked once per recursion frame so a cooperative caller can
// cancel a long search without leaving the structure mutated.
func Search(ctx context.Context, s *Structure, sol []bool) bool {
	if err := ctx.Err(); err != nil {
		return false
	}

	root := s.root()
	if s.R[root] == root {
		return true
	}

	// S-heuristic: pick the live column with the fewest remaining rows,
	// breaking ties by first encountered in ring order.
	pick := s.R[root]
	for h := s.R[pick]; h != root; h = s.R[h] {
		if s.S[h] < s.S[pick] {
			pick = h
		}
	}

	if s.S[pick] == 0 {
		return false
	}

	Cover(s, pick)
	for i := s.D[pick]; i != pick; i = s.D[i] {
		s.Nodes++
		sol[s.RM[i]] = true

		// Cover every other column this row satisfies. This loop is
		// inlined rather than factored into a separate "use row" helper:
		// a helper that re-reads its walker from a fixed starting node on
		// every inner iteration never advances and loops forever instead
		// of terminating back at i.
		for j := s.R[i]; j != i; j = s.R[j] {
			Cover(s, s.C[j])
		}

		if Search(ctx, s, sol) {
			return true
		}

		for j := s.L[i]; j != i; j = s.L[j] {
			Uncover(s, s.C[j])
		}
		sol[s.RM[i]] = false
	}
	Uncover(s, pick)

	return false
}
