package dlx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toyPositions() []Incidence {
	return []Incidence{
		{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 0, Col: 4},
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 3}, {Row: 1, Col: 5},
		{Row: 2, Col: 1}, {Row: 2, Col: 3},
		{Row: 3, Col: 5},
	}
}

func TestSearchToyCoverFindsExpectedSolution(t *testing.T) {
	positions := toyPositions()
	s := Build(positions, 6, 4, len(positions))
	sol := make([]bool, s.NumRows)

	found := Search(context.Background(), s, sol)

	require.True(t, found)
	assert.Equal(t, []bool{true, false, true, true}, sol)
}

func TestSearchUnsatisfiableReportsNoSolution(t *testing.T) {
	positions := toyPositions()[:9] // drop row 3 entirely
	s := Build(positions, 6, 3, len(positions))
	sol := make([]bool, s.NumRows)

	found := Search(context.Background(), s, sol)

	assert.False(t, found)
}

func TestSearchIsDeterministic(t *testing.T) {
	positions := toyPositions()

	s1 := Build(positions, 6, 4, len(positions))
	sol1 := make([]bool, s1.NumRows)
	found1 := Search(context.Background(), s1, sol1)

	s2 := Build(positions, 6, 4, len(positions))
	sol2 := make([]bool, s2.NumRows)
	found2 := Search(context.Background(), s2, sol2)

	require.Equal(t, found1, found2)
	assert.Equal(t, sol1, sol2)
}

func TestSearchRestoresStructureOnFailure(t *testing.T) {
	positions := toyPositions()[:9]
	s := Build(positions, 6, 3, len(positions))
	before := snapshot(s)

	sol := make([]bool, s.NumRows)
	found := Search(context.Background(), s, sol)

	require.False(t, found)
	assert.Equal(t, before, snapshot(s))
}

func TestCoverUncoverRoundTripIsIdentity(t *testing.T) {
	positions := toyPositions()
	s := Build(positions, 6, 4, len(positions))
	before := snapshot(s)

	Cover(s, 0)
	Cover(s, 1)
	Uncover(s, 1)
	Uncover(s, 0)

	assert.Equal(t, before, snapshot(s))
}

func TestInvariantsHoldAfterBuildAndAfterBalancedCovers(t *testing.T) {
	positions := toyPositions()
	s := Build(positions, 6, 4, len(positions))
	checkInvariants(t, s)

	Cover(s, 2)
	Uncover(s, 2)
	checkInvariants(t, s)

	Cover(s, 2)
	Cover(s, 1)
	Uncover(s, 1)
	Uncover(s, 2)
	checkInvariants(t, s)
}

func TestForceRowsSelectsGivenRowsBeforeSearching(t *testing.T) {
	positions := toyPositions()
	s := Build(positions, 6, 4, len(positions))
	sol := make([]bool, s.NumRows)

	require.NoError(t, ForceRows(s, sol, []int{2}))
	found := Search(context.Background(), s, sol)

	require.True(t, found)
	assert.True(t, sol[2])
	assert.Equal(t, []bool{true, false, true, true}, sol)
}

func TestForceRowsUnknownRowErrors(t *testing.T) {
	positions := toyPositions()
	s := Build(positions, 6, 4, len(positions))
	sol := make([]bool, s.NumRows)

	err := ForceRows(s, sol, []int{99})
	assert.Error(t, err)
}

// snapshot copies the mutable fields Search/Cover/Uncover touch so tests
// can assert a balanced sequence leaves the structure byte-for-byte as it
// found it.
type structSnapshot struct {
	L, R, U, D, C, S []int
}

func snapshot(s *Structure) structSnapshot {
	cp := func(src []int) []int {
		out := make([]int, len(src))
		copy(out, src)
		return out
	}
	return structSnapshot{L: cp(s.L), R: cp(s.R), U: cp(s.U), D: cp(s.D), C: cp(s.C), S: cp(s.S)}
}

func checkInvariants(t *testing.T, s *Structure) {
	t.Helper()
	dim := s.dim()
	for i := 0; i < dim; i++ {
		assert.Equal(t, i, s.R[s.L[i]], "R[L[%d]] != %d", i, i)
		assert.Equal(t, i, s.L[s.R[i]], "L[R[%d]] != %d", i, i)
		assert.Equal(t, i, s.D[s.U[i]], "D[U[%d]] != %d", i, i)
		assert.Equal(t, i, s.U[s.D[i]], "U[D[%d]] != %d", i, i)
	}
	for h := s.R[s.root()]; h != s.root(); h = s.R[h] {
		count := 0
		for i := s.D[h]; i != h; i = s.D[i] {
			count++
		}
		assert.Equal(t, s.S[h], count, "S[%d] disagrees with vertical ring length", h)
	}
}
