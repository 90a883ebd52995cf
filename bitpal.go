package align

import "math/bits"

// BitPAlAligner computes only the score of a global alignment, for the
// fixed linear-gap scoring match=+1, mismatch=-1, gap=-3, by encoding one
// row's horizontal deltas (S[r][j]-S[r][j-1]) as eight 64-bit bitplanes
// and advancing them with bitwise arithmetic instead of per-cell integer
// additions. One of the two sequences must fit in a single 64-bit word;
// see Align for the normalization rule.
type BitPAlAligner struct{}

// bitpalMatch is the fixed match score the BitPAl recurrence is derived
// for (the bitplane recurrence is only valid for this fixed scoring).
const (
	bitpalMatch    int32 = 1
	bitpalMismatch int32 = -1
	bitpalGap      int32 = -3
)

// bitpalPlanes holds the eight bitplanes of ΔH, indexed by the delta value
// they represent: -3, -2, -1, 0, +1, +2, +3, +4.
type bitpalPlanes struct {
	neg3, neg2, neg1, zero, pos1, pos2, pos3, pos4 uint64
}

// Align picks the horizontal axis (len(s1) if it fits in 64 bytes,
// otherwise s2 if it fits, preferring s1 when both do), advances the ΔH
// bitplanes one vertical character at a time, and sums the planes back
// into a score. It fails with ErrInputTooLong when neither sequence fits.
func (BitPAlAligner) Align(s1, s2 []byte) (Result, error) {
	var horizontal, vertical []byte
	switch {
	case len(s1) <= 64:
		horizontal, vertical = s1, s2
	case len(s2) <= 64:
		horizontal, vertical = s2, s1
	default:
		return Result{}, ErrInputTooLong
	}

	l := uint(len(horizontal))
	allOnes := (uint64(1) << l) - 1

	matchVectors := make(map[byte]uint64, len(horizontal))
	for i, c := range horizontal {
		matchVectors[c] |= uint64(1) << uint(i)
	}

	h := bitpalPlanes{neg3: allOnes}

	for _, v := range vertical {
		h = bitpalAdvance(h, matchVectors[v], allOnes)
	}

	score := bitpalGap * int32(len(vertical))
	score += -3 * int32(bits.OnesCount64(h.neg3))
	score += -2 * int32(bits.OnesCount64(h.neg2))
	score += -1 * int32(bits.OnesCount64(h.neg1))
	score += 1 * int32(bits.OnesCount64(h.pos1))
	score += 2 * int32(bits.OnesCount64(h.pos2))
	score += 3 * int32(bits.OnesCount64(h.pos3))
	score += 4 * int32(bits.OnesCount64(h.pos4))

	return Result{Score: score}, nil
}

// bitpalAdvance produces the ΔH bitplanes for the next row given the
// current row's planes h, the match vector mv of the vertical character
// against the horizontal sequence, and allOnes (the all-ones mask over
// the horizontal sequence's length).
func bitpalAdvance(h bitpalPlanes, mv uint64, allOnes uint64) bitpalPlanes {
	notMatch := ^mv

	initPos4 := mv & h.neg3
	vPos4 := ((initPos4 + h.neg3) ^ h.neg3) ^ initPos4

	remainNeg3 := h.neg3 ^ (vPos4 >> 1)
	vPos4OrMatch := vPos4 | mv
	initPos3 := h.neg2 & vPos4OrMatch
	vPos3 := ((initPos3 << 1) + remainNeg3) ^ remainNeg3
	vPos3NotMatch := vPos3 & notMatch

	notTop2 := ^(vPos4OrMatch | vPos3)
	vPos2 := ((vPos4OrMatch & h.neg1) | (vPos3NotMatch & h.neg2) | (notTop2 & h.neg3)) << 1
	vPos1 := ((vPos4OrMatch & h.zero) | (vPos3NotMatch & h.neg1) | (notTop2 & h.neg2)) << 1
	vZero := ((vPos4OrMatch & h.pos1) | (vPos3NotMatch & h.zero) | (notTop2 & h.neg1)) << 1
	vNeg1 := ((vPos4OrMatch & h.pos2) | (vPos3NotMatch & h.pos1) | (notTop2 & h.zero)) << 1
	vNeg2 := ((vPos4OrMatch & h.pos3) | (vPos3NotMatch & h.pos2) | (notTop2 & h.pos1)) << 1

	vNeg3 := allOnes ^ (vPos4 | vPos3 | vPos2 | vPos1 | vZero | vNeg1 | vNeg2)

	h.pos4 |= mv
	h.pos2 = (h.pos2 | h.pos1 | h.zero | h.neg1 | h.neg2 | h.neg3) & notMatch
	h.pos3 = h.pos3 & notMatch

	pos4New := h.pos4 & vNeg3
	pos3New := (h.pos4 & vNeg2) | (h.pos3 & vNeg3)
	pos2New := (h.pos4 & vNeg1) | (h.pos3 & vNeg2) | (h.pos2 & vNeg3)
	pos1New := (h.pos4 & vZero) | (h.pos3 & vNeg1) | (h.pos2 & vNeg2)
	zeroNew := (h.pos4 & vPos1) | (h.pos3 & vZero) | (h.pos2 & vNeg1)
	neg1New := (h.pos4 & vPos2) | (h.pos3 & vPos1) | (h.pos2 & vZero)
	neg2New := (h.pos4 & vPos3) | (h.pos3 & vPos2) | (h.pos2 & vPos1)

	h.pos4, h.pos3, h.pos2, h.pos1, h.zero, h.neg1, h.neg2 =
		pos4New, pos3New, pos2New, pos1New, zeroNew, neg1New, neg2New
	h.neg3 = allOnes ^ (h.pos4 | h.pos3 | h.pos2 | h.pos1 | h.zero | h.neg1 | h.neg2)

	return h
}
