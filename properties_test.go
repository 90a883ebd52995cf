package align

import (
	"math/bits"
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"
)

// quickACGT generates a short ACGT-alphabet sequence for testing/quick,
// bounded to keep FullMatrix's O(mn) cost reasonable under fuzzing.
type quickACGT []byte

func (quickACGT) Generate(rand *rand.Rand, size int) reflect.Value {
	n := rand.Intn(40)
	return reflect.ValueOf(quickACGT(randomACGT(rand, n)))
}

// TestPropertyCrossEngineScoreAgreement checks that FullMatrix
// and BitPAl agree under the fixed (+1,-1,-3) scoring whenever one
// sequence is short enough for BitPAl's word.
func TestPropertyCrossEngineScoreAgreement(t *testing.T) {
	fm := FullMatrixAligner{Match: 1, Mismatch: -1, Gap: -3}
	f := func(s1, s2 quickACGT) bool {
		if len(s1) > 64 && len(s2) > 64 {
			return true
		}
		fres, err := fm.Align(s1, s2)
		if err != nil {
			return false
		}
		bres, err := BitPAlAligner{}.Align(s1, s2)
		if err != nil {
			return false
		}
		return fres.Score == bres.Score
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

// TestPropertyHirschbergEquivalence checks that Hirschberg and FullMatrix
// agree on score and on the ungapped sequences recovered from the triple.
func TestPropertyHirschbergEquivalence(t *testing.T) {
	fm := FullMatrixAligner{Match: 1, Mismatch: -1, Gap: -3}
	hg := HirschbergAligner{Match: 1, Mismatch: -1, Gap: -3}
	f := func(s1, s2 quickACGT) bool {
		fres, err := fm.Align(s1, s2)
		if err != nil {
			return false
		}
		hres, err := hg.Align(s1, s2)
		if err != nil {
			return false
		}
		return fres.Score == hres.Score &&
			string(stripGaps(hres.Triple.Top)) == string([]byte(s1)) &&
			string(stripGaps(hres.Triple.Bottom)) == string([]byte(s2))
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

// TestPropertyBandedUpperBound checks that a band wide enough to cover
// the length difference reproduces the FullMatrix score exactly.
func TestPropertyBandedUpperBound(t *testing.T) {
	fm := FullMatrixAligner{Match: 1, Mismatch: -1, Gap: -3}
	f := func(s1, s2 quickACGT) bool {
		diff := len(s1) - len(s2)
		if diff < 0 {
			diff = -diff
		}
		fres, err := fm.Align(s1, s2)
		if err != nil {
			return false
		}
		bd := BandedAligner{Match: 1, Mismatch: -1, Gap: -3, Width: diff}
		bres, err := bd.Align(s1, s2)
		if err != nil {
			return false
		}
		return bres.Score == fres.Score
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 300}); err != nil {
		t.Error(err)
	}
}

// TestPropertyEmptyInputLaws checks the empty-sequence score laws.
func TestPropertyEmptyInputLaws(t *testing.T) {
	const gap = int32(-3)
	fm := FullMatrixAligner{Match: 1, Mismatch: -1, Gap: gap}
	f := func(s quickACGT) bool {
		a, err := fm.Align(nil, s)
		if err != nil || a.Score != int32(len(s))*gap {
			return false
		}
		b, err := fm.Align(s, nil)
		if err != nil || b.Score != int32(len(s))*gap {
			return false
		}
		return true
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
	both, err := fm.Align(nil, nil)
	if err != nil || both.Score != 0 {
		t.Errorf("Align(nil, nil) = %+v, err=%v, want score 0", both, err)
	}
}

// TestPropertyBacktrackConsistency checks that the returned triple strips
// back to the inputs and sums to the reported score.
func TestPropertyBacktrackConsistency(t *testing.T) {
	fm := FullMatrixAligner{Match: 1, Mismatch: -1, Gap: -3}
	f := func(s1, s2 quickACGT) bool {
		res, err := fm.Align(s1, s2)
		if err != nil {
			return false
		}
		if string(stripGaps(res.Triple.Top)) != string([]byte(s1)) {
			return false
		}
		if string(stripGaps(res.Triple.Bottom)) != string([]byte(s2)) {
			return false
		}
		var sum int32
		for i := range res.Triple.Top {
			top, bottom := res.Triple.Top[i], res.Triple.Bottom[i]
			if top == '-' || bottom == '-' {
				sum += fm.Gap
			} else {
				sum += Score(top, bottom, fm.Match, fm.Mismatch)
			}
		}
		return sum == res.Score
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

// TestPropertyBitPAlPlanesPartition checks that at every step of the
// BitPAl update, the eight ΔH planes are pairwise disjoint and their
// union is all_ones, by driving bitpalAdvance directly so the mid-loop
// state (not just the final state returned by Align) can be checked.
func TestPropertyBitPAlPlanesPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		horizontal := randomACGT(rng, 1+rng.Intn(64))
		vertical := randomACGT(rng, 1+rng.Intn(64))

		l := uint(len(horizontal))
		allOnes := (uint64(1) << l) - 1
		matchVectors := make(map[byte]uint64, len(horizontal))
		for i, c := range horizontal {
			matchVectors[c] |= uint64(1) << uint(i)
		}

		h := bitpalPlanes{neg3: allOnes}
		checkPartition(t, trial, -1, h, allOnes)

		for step, v := range vertical {
			h = bitpalAdvance(h, matchVectors[v], allOnes)
			checkPartition(t, trial, step, h, allOnes)
		}
	}
}

func checkPartition(t *testing.T, trial, step int, h bitpalPlanes, allOnes uint64) {
	t.Helper()
	planes := []uint64{h.neg3, h.neg2, h.neg1, h.zero, h.pos1, h.pos2, h.pos3, h.pos4}
	var union uint64
	var popcountSum int
	for _, p := range planes {
		union |= p
		popcountSum += bits.OnesCount64(p)
	}
	if union != allOnes {
		t.Fatalf("trial %d step %d: union = %064b, want %064b", trial, step, union, allOnes)
	}
	if popcountSum != bits.OnesCount64(allOnes) {
		t.Fatalf("trial %d step %d: planes overlap (popcount sum %d != %d)",
			trial, step, popcountSum, bits.OnesCount64(allOnes))
	}
}
