package dlx

// Cover splices column header h out of the header ring, then removes every
// other row that intersects h from the columns those rows occupy. h must be
// a live column-header index; calling Cover on an already-covered column is
// out of contract.
func Cover(s *Structure, h int) {
	s.L[s.R[h]] = s.L[h]
	s.R[s.L[h]] = s.R[h]

	for i := s.D[h]; i != h; i = s.D[i] {
		for j := s.R[i]; j != i; j = s.R[j] {
			s.U[s.D[j]] = s.U[j]
			s.D[s.U[j]] = s.D[j]
			s.S[s.C[j]]--
		}
	}
}

// Uncover reverses a matching Cover(s, h): it must be called against the
// exact state Cover(s, h) produced, possibly after a balanced sequence of
// nested cover/uncover pairs in between.
func Uncover(s *Structure, h int) {
	for i := s.U[h]; i != h; i = s.U[i] {
		for j := s.L[i]; j != i; j = s.L[j] {
			s.S[s.C[j]]++
			s.D[s.U[j]] = j
			s.U[s.D[j]] = j
		}
	}

	s.R[s.L[h]] = h
	s.L[s.R[h]] = h
}
