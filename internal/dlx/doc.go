// Package dlx implements Knuth's Algorithm X over a dancing-links toroidal
// structure: given a universe of columns and a family of rows (each row the
// set of columns it covers), it finds the first collection of rows that
// partitions the universe, or reports that none exists.
//
// The structure is a single flat arena of parallel index arrays rather than
// a graph of pointers: every "link" is an int index into L, R, U, D, C, S,
// RM. Column headers occupy [0, NumCols), the root sits at NumCols, and data
// nodes fill the rest, one per incidence, in the order they were given to
// Build.
package dlx
