package simulation

import (
	"math"
	"testing"
)

func TestExactAttackProb(t *testing.T) {
	tests := []struct {
		name         string
		layers       int
		quorumSize   int
		numCorrupted int
		threshold    int
		want         float64
	}{
		// 3 corrupted among 2 quorums of 3: some quorum always holds 2 of them
		{"majority always reached", 2, 3, 3, 2, 1},
		// a full quorum of 3 requires all 3 corrupted in one quorum: 2/C(6,3)
		{"full quorum", 2, 3, 3, 3, 0.1},
		{"no corrupted validators", 2, 3, 0, 2, 0},
		{"zero threshold", 2, 3, 0, 0, 1},
		{"saturated", 2, 3, 6, 3, 1},
		{"oversaturated", 2, 3, 9, 3, 1},
		{"saturated above quorum size", 2, 3, 6, 4, 0},
		// single layer: hypergeometric is degenerate, count is exactly k
		{"single layer below threshold", 1, 4, 2, 3, 0},
		{"single layer at threshold", 1, 4, 3, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExactAttackProb(tt.layers, tt.quorumSize, tt.numCorrupted, tt.threshold)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExactAttackProbMonotonicity(t *testing.T) {
	prev := 1.0
	for threshold := 3; threshold <= 5; threshold++ {
		got := ExactAttackProb(3, 5, 7, threshold)
		if got < 0 || got > 1 {
			t.Errorf("probability %v for threshold %d outside [0, 1]", got, threshold)
		}
		if got > prev {
			t.Errorf("probability %v for threshold %d exceeds %v for the previous threshold", got, threshold, prev)
		}
		prev = got
	}
}
