package align

// BuildDeltaMatrices computes the same global-alignment score table as
// FullMatrixAligner, but stores it as two delta matrices instead of one
// absolute-score matrix: deltaH[r][c] = S[r][c]-S[r][c-1] and
// deltaV[r][c] = S[r][c]-S[r-1][c]. It implements no new alignment
// semantics, only an alternative encoding of the identical recurrence,
// and doubles as an independent check on BitPAl's per-row delta algebra
// at the scalar (non-bit-packed) level.
//
// deltaH's row 0 and deltaV's column 0 are always defined (both equal g
// for every cell by construction), so unlike BandedCell no optional/
// undefined marker is needed here.
func BuildDeltaMatrices(s1, s2 []byte, m, x, g int32) (deltaH, deltaV [][]int32) {
	rows := len(s2) + 1
	cols := len(s1) + 1
	deltaH = make([][]int32, rows)
	deltaV = make([][]int32, rows)
	for r := range deltaH {
		deltaH[r] = make([]int32, cols)
		deltaV[r] = make([]int32, cols)
	}
	for c := 0; c < cols; c++ {
		deltaH[0][c] = g
	}
	for r := 0; r < rows; r++ {
		deltaV[r][0] = g
	}

	for r := 1; r < rows; r++ {
		s2r := s2[r-1]
		for c := 1; c < cols; c++ {
			above := deltaH[r-1][c]
			left := deltaV[r][c-1]
			match := s1[c-1] == s2r

			switch {
			case match:
				deltaV[r][c] = m - above
				deltaH[r][c] = m - left
			case x-g >= above && x-g >= left:
				// mismatch dominates both indel alternatives
				deltaV[r][c] = x - above
				deltaH[r][c] = x - left
			case above >= x-g && above >= left:
				// gap in s2 (come from above) dominates
				deltaV[r][c] = g
				deltaH[r][c] = above + g - left
			default:
				// gap in s1 (come from the left) dominates
				deltaV[r][c] = left + g - above
				deltaH[r][c] = g
			}
		}
	}
	return deltaH, deltaV
}
