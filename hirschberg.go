package align

// HirschbergAligner computes a global alignment equivalent to
// FullMatrixAligner's but using only O(len(s2)) working memory per
// recursion level, by the standard Hirschberg divide-and-conquer scheme:
// find the midpoint row via two linear-space NWScore passes, then recurse
// on each half independently.
type HirschbergAligner struct {
	Match    int32
	Mismatch int32
	Gap      int32
}

// NWScore computes only the last row of the full DP matrix for s1 against
// s2, using two rolling rows. When reversed is true, both sequences are
// scanned from their right ends, which is how the Hirschberg recursion
// obtains the suffix-aligned counterpart of a prefix score vector. The
// returned vector has length len(s2)+1.
func (a HirschbergAligner) NWScore(s1, s2 []byte, reversed bool) []int32 {
	prev := make([]int32, len(s2)+1)
	for j := range prev {
		prev[j] = int32(j) * a.Gap
	}
	cur := make([]int32, len(s2)+1)
	for i := 1; i <= len(s1); i++ {
		var c1 byte
		if reversed {
			c1 = s1[len(s1)-i]
		} else {
			c1 = s1[i-1]
		}
		cur[0] = int32(i) * a.Gap
		for j := 1; j <= len(s2); j++ {
			var c2 byte
			if reversed {
				c2 = s2[len(s2)-j]
			} else {
				c2 = s2[j-1]
			}
			diag := prev[j-1] + Score(c1, c2, a.Match, a.Mismatch)
			left := cur[j-1] + a.Gap
			up := prev[j] + a.Gap
			cur[j] = max32(max32(diag, left), up)
		}
		prev, cur = cur, prev
	}
	return prev
}

// Align recursively computes the alignment. The base case (either
// sequence has length <= 1) delegates to FullMatrixAligner so the
// recursion bottoms out in O(1) extra levels of work per base cell.
func (a HirschbergAligner) Align(s1, s2 []byte) (Result, error) {
	t, err := a.align(s1, s2)
	if err != nil {
		return Result{}, err
	}
	score := int32(0)
	for i := range t.Top {
		score += scoreCell(a, t.Top[i], t.Bottom[i])
	}
	return Result{Score: score, Triple: t}, nil
}

func scoreCell(a HirschbergAligner, top, bottom byte) int32 {
	if top == '-' || bottom == '-' {
		return a.Gap
	}
	return Score(top, bottom, a.Match, a.Mismatch)
}

func (a HirschbergAligner) align(s1, s2 []byte) (*AlignedTriple, error) {
	if len(s1) <= 1 || len(s2) <= 1 {
		fm := FullMatrixAligner{Match: a.Match, Mismatch: a.Mismatch, Gap: a.Gap}
		s := fm.BuildMatrix(s1, s2)
		return fm.Backtrack(s, s1, s2), nil
	}

	xmid := len(s1) / 2
	left := a.NWScore(s1[:xmid], s2, false)
	right := a.NWScore(s1[xmid:], s2, true)
	reverseInt32(right)

	// Among equal sums the last (largest) split index wins.
	ymid := 0
	best := left[0] + right[0]
	for i := 1; i < len(left); i++ {
		if v := left[i] + right[i]; v >= best {
			best = v
			ymid = i
		}
	}

	top, err := a.align(s1[:xmid], s2[:ymid])
	if err != nil {
		return nil, err
	}
	bottom, err := a.align(s1[xmid:], s2[ymid:])
	if err != nil {
		return nil, err
	}
	return &AlignedTriple{
		Top:    append(top.Top, bottom.Top...),
		Diff:   append(top.Diff, bottom.Diff...),
		Bottom: append(top.Bottom, bottom.Bottom...),
	}, nil
}

func reverseInt32(s []int32) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
