package design

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNCr(t *testing.T) {
	assert.Equal(t, uint64(330), nCr(11, 4))
	assert.Equal(t, uint64(330), nCr(11, 7))
	assert.Equal(t, uint64(0), nCr(3, 5))
}

func TestRankUnrankKSubsetRoundTrips(t *testing.T) {
	const v, k = 8, 3
	num := nCr(v, k)
	for rank := uint64(0); rank < num; rank++ {
		kset := UnrankKSubset(v, k, rank)
		require.Len(t, kset, k)
		assert.Equal(t, rank, RankKSubset(v, kset))
	}
}

func TestSuccKSubsetMatchesUnrank(t *testing.T) {
	cases := []struct{ v, k uint64 }{{8, 4}, {10, 2}, {10, 1}}
	for _, tc := range cases {
		num := nCr(tc.v, tc.k)
		for rank := uint64(1); rank < num; rank++ {
			got := SuccKSubset(tc.v, UnrankKSubset(tc.v, tc.k, rank-1))
			want := UnrankKSubset(tc.v, tc.k, rank)
			assert.Equal(t, want, got)
		}
	}
}

func TestSteinerTripleSystem7HasSevenBlocks(t *testing.T) {
	result, err := Solve(context.Background(), 7, 3, 2)
	require.NoError(t, err)
	assert.Len(t, result.Blocks, 7)
	assertPartitionsTSubsets(t, result.Blocks, 7, 3, 2)
}

func TestSteinerTripleSystem15Has35Blocks(t *testing.T) {
	result, err := Solve(context.Background(), 15, 3, 2)
	require.NoError(t, err)
	assert.Len(t, result.Blocks, 35)
	assertPartitionsTSubsets(t, result.Blocks, 15, 3, 2)
}

func TestSteinerTripleSystem8IsImpossible(t *testing.T) {
	_, err := Solve(context.Background(), 8, 3, 2)
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestSteinerQuadrupleSystem8(t *testing.T) {
	result, err := Solve(context.Background(), 8, 4, 3)
	require.NoError(t, err)
	assert.Len(t, result.Blocks, 14)
	assertPartitionsTSubsets(t, result.Blocks, 8, 4, 3)
}

func TestSteinerQuadrupleSystem10(t *testing.T) {
	result, err := Solve(context.Background(), 10, 4, 3)
	require.NoError(t, err)
	assert.Len(t, result.Blocks, 30)
	assertPartitionsTSubsets(t, result.Blocks, 10, 4, 3)
}

// assertPartitionsTSubsets checks the exact-cover soundness property:
// every t-subset of [0, v) is covered by exactly one block.
func assertPartitionsTSubsets(t *testing.T, blocks [][]int, v, k, tVal int) {
	t.Helper()
	covered := make(map[string]int)
	for _, block := range blocks {
		require.Len(t, block, k)
		for _, tset := range kSubsetsOf(block, tVal) {
			covered[key(tset)]++
		}
	}
	wantCols := int(nCr(uint64(v), uint64(tVal)))
	assert.Len(t, covered, wantCols)
	for tset, count := range covered {
		assert.Equal(t, 1, count, "t-subset %s covered %d times", tset, count)
	}
}

func kSubsetsOf(elems []int, size int) [][]int {
	var out [][]int
	var choose func(start int, cur []int)
	choose = func(start int, cur []int) {
		if len(cur) == size {
			out = append(out, append([]int{}, cur...))
			return
		}
		for i := start; i < len(elems); i++ {
			choose(i+1, append(cur, elems[i]))
		}
	}
	choose(0, nil)
	return out
}

func key(s []int) string {
	b := make([]byte, 0, len(s)*2)
	for _, v := range s {
		b = append(b, byte('A'+v), ',')
	}
	return string(b)
}
