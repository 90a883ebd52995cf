package align

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		a, b byte
		want int32
	}{
		{'A', 'A', 1},
		{'A', 'T', -1},
		{'-', '-', 1},
	}
	for _, tc := range tests {
		if got := Score(tc.a, tc.b, 1, -1); got != tc.want {
			t.Errorf("Score(%c, %c) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
