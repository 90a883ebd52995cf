package align

// FullMatrixAligner computes the classical full (m+1)x(n+1) dynamic
// programming alignment: every cell is filled, and the returned score and
// AlignedTriple are tied to the fixed-order tie-break (horizontal gap,
// then vertical gap, then diagonal) that is observable in the returned triple.
type FullMatrixAligner struct {
	Match    int32
	Mismatch int32
	Gap      int32
}

// BuildMatrix fills and returns the (len(s2)+1)x(len(s1)+1) score matrix
// for s1, s2 under a.Match/a.Mismatch/a.Gap. Row 0 and column 0 hold i*Gap
// and j*Gap respectively, and every interior cell holds
// max(diag+score, left+gap, up+gap).
func (a FullMatrixAligner) BuildMatrix(s1, s2 []byte) [][]int32 {
	m := len(s1)
	n := len(s2)
	s := make([][]int32, n+1)
	for r := range s {
		s[r] = make([]int32, m+1)
	}
	for c := 0; c <= m; c++ {
		s[0][c] = int32(c) * a.Gap
	}
	for r := 0; r <= n; r++ {
		s[r][0] = int32(r) * a.Gap
	}
	for r := 1; r <= n; r++ {
		s2r := s2[r-1]
		for c := 1; c <= m; c++ {
			diag := s[r-1][c-1] + Score(s1[c-1], s2r, a.Match, a.Mismatch)
			left := s[r][c-1] + a.Gap
			up := s[r-1][c] + a.Gap
			s[r][c] = max32(max32(diag, left), up)
		}
	}
	return s
}

// Backtrack walks the score matrix from (len(s2), len(s1)) to (0, 0),
// applying the fixed tie-break order: prefer a horizontal gap, then a
// vertical gap, then the diagonal move.
func (a FullMatrixAligner) Backtrack(s [][]int32, s1, s2 []byte) *AlignedTriple {
	r := len(s2)
	c := len(s1)
	t := &AlignedTriple{}
	for r > 0 || c > 0 {
		switch {
		case c > 0 && s[r][c] == s[r][c-1]+a.Gap:
			t.Top = append(t.Top, s1[c-1])
			t.Bottom = append(t.Bottom, '-')
			c--
		case r > 0 && s[r][c] == s[r-1][c]+a.Gap:
			t.Top = append(t.Top, '-')
			t.Bottom = append(t.Bottom, s2[r-1])
			r--
		default:
			t.Top = append(t.Top, s1[c-1])
			t.Bottom = append(t.Bottom, s2[r-1])
			r--
			c--
		}
	}
	reverseBytes(t.Top)
	reverseBytes(t.Bottom)
	t.Diff = make([]byte, len(t.Top))
	for i := range t.Top {
		t.Diff[i] = diffByte(t.Top[i], t.Bottom[i])
	}
	return t
}

// Align implements Aligner: it builds the full matrix and backtracks one
// optimal path from it. It never fails.
func (a FullMatrixAligner) Align(s1, s2 []byte) (Result, error) {
	s := a.BuildMatrix(s1, s2)
	score := s[len(s2)][len(s1)]
	triple := a.Backtrack(s, s1, s2)
	return Result{Score: score, Triple: triple}, nil
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
