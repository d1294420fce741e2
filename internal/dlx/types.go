package dlx

// Incidence is one (row, column) entry of the sparse matrix handed to
// Build. Entries sharing the same Row must be contiguous; within a row,
// column order is preserved as the intra-row link order.
type Incidence struct {
	Row int
	Col int
}

// Structure is the toroidal quadruply-linked arena described by the column
// count, row count, and node count it was built with. All fields are
// indexed by a plain int node index: [0, NumCols) are column headers,
// NumCols is the root, and [NumCols+1, dim) are data nodes.
type Structure struct {
	NumCols  int
	NumRows  int
	NumNodes int

	L, R, U, D, C []int
	S             []int
	RM            []int

	// Nodes counts how many row candidates Search has tried, a coarse
	// measure of search effort.
	Nodes int

	// rowNode maps a caller row id to the index of its first data node,
	// built once during Build so ForceRows can locate a row without the
	// caller tracking node offsets itself.
	rowNode []int
}

// root returns the index of the sentinel header.
func (s *Structure) root() int { return s.NumCols }

// dim is the total number of slots in the arena.
func (s *Structure) dim() int { return s.NumCols + 1 + s.NumNodes }
