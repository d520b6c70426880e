package simulation

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestNewAssignment(t *testing.T) {
	tests := []struct {
		name          string
		numValidators int
		numCorrupted  int
		wantCorrupted int
	}{
		{"all honest", 10, 0, 0},
		{"some corrupted", 10, 4, 4},
		{"all corrupted", 10, 10, 10},
		{"oversaturated", 10, 15, 10},
		{"single validator", 1, 1, 1},
	}

	rnd := rand.New(rand.NewSource(1))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignment := NewAssignment(rnd, tt.numValidators, tt.numCorrupted)
			if len(assignment) != tt.numValidators {
				t.Errorf("got assignment of length %d, want %d", len(assignment), tt.numValidators)
			}
			if got := assignment.CountCorrupted(); got != tt.wantCorrupted {
				t.Errorf("got %d corrupted validators, want %d", got, tt.wantCorrupted)
			}
		})
	}
}

// Every position should be corrupted in roughly numCorrupted/numValidators of
// the draws if the corrupted subsets are uniform.
func TestNewAssignmentUniformity(t *testing.T) {
	const (
		numValidators = 6
		numCorrupted  = 3
		draws         = 6000
	)

	rnd := rand.New(rand.NewSource(1))
	counts := make([]int, numValidators)
	for i := 0; i < draws; i++ {
		for pos, corrupted := range NewAssignment(rnd, numValidators, numCorrupted) {
			if corrupted {
				counts[pos]++
			}
		}
	}

	want := draws * numCorrupted / numValidators
	// well above 5 standard deviations for this sample size
	tolerance := 300
	for pos, count := range counts {
		if count < want-tolerance || count > want+tolerance {
			t.Errorf("position %d corrupted in %d draws, want %d±%d", pos, count, want, tolerance)
		}
	}
}
