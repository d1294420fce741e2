package design

import "github.com/raaphorst/dlxgo/internal/dlx"

// Dimensions reports the exact-cover sizing for a t-(v,k,1) design:
// NumCols = C(v,t), NumRows = C(v,k), NumNodes = C(v,k)*C(k,t).
func Dimensions(v, k, t int) (numCols, numRows, numNodes int) {
	numCols = int(nCr(uint64(v), uint64(t)))
	numRows = int(nCr(uint64(v), uint64(k)))
	nodesPerRow := int(nCr(uint64(k), uint64(t)))
	numNodes = numRows * nodesPerRow
	return
}

// BuildPositions constructs the row-grouped incidence list for a
// t-(v,k,1) design: row r is the k-subset of rank r, and it covers the
// column for every t-subset contained in that k-subset.
func BuildPositions(v, k, t int) []dlx.Incidence {
	_, numRows, numNodes := Dimensions(v, k, t)
	nodesPerRow := numNodes / numRows
	positions := make([]dlx.Incidence, 0, numNodes)

	for row := 0; row < numRows; row++ {
		kset := UnrankKSubset(uint64(v), uint64(k), uint64(row))

		for col := 0; col < nodesPerRow; col++ {
			tsetIdx := UnrankKSubset(uint64(k), uint64(t), uint64(col))

			tset := make([]uint64, t)
			for i, idx := range tsetIdx {
				tset[i] = kset[idx]
			}
			tsetRank := RankKSubset(uint64(v), tset)

			positions = append(positions, dlx.Incidence{Row: row, Col: int(tsetRank)})
		}
	}

	return positions
}

// DecodeBlocks turns a solved boolean vector into the list of k-subsets
// (blocks) selected, each given as its elements of [0, v) in increasing
// order.
func DecodeBlocks(v, k int, sol []bool) [][]int {
	var blocks [][]int
	for row, chosen := range sol {
		if !chosen {
			continue
		}
		kset := UnrankKSubset(uint64(v), uint64(k), uint64(row))
		block := make([]int, len(kset))
		for i, e := range kset {
			block[i] = int(e)
		}
		blocks = append(blocks, block)
	}
	return blocks
}
