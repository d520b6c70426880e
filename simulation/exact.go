package simulation

import "gonum.org/v1/gonum/stat/combin"

// ExactAttackProb computes the exact probability that at least one quorum
// contains at least threshold corrupted validators, when numCorrupted
// validators are placed uniformly at random among layers*quorumSize
// positions. It is the closed-form counterpart of a fixed-count simulation
// run and is practical for small configurations only: the binomial
// coefficients are computed as ints and overflow for large populations.
func ExactAttackProb(layers, quorumSize, numCorrupted, threshold int) float64 {
	if threshold <= 0 {
		return 1
	}
	numValidators := layers * quorumSize
	if numCorrupted >= numValidators {
		// saturation: every quorum is fully corrupted
		if threshold <= quorumSize {
			return 1
		}
		return 0
	}

	// Count the placements in which every quorum stays below the threshold,
	// layer by layer: safe[p] is the number of ways to place p of the
	// corrupted validators into the layers handled so far.
	safe := make([]float64, numCorrupted+1)
	safe[0] = 1
	for l := 0; l < layers; l++ {
		next := make([]float64, numCorrupted+1)
		for placed, ways := range safe {
			if ways == 0 {
				continue
			}
			max := threshold - 1
			if max > quorumSize {
				max = quorumSize
			}
			if max > numCorrupted-placed {
				max = numCorrupted - placed
			}
			for j := 0; j <= max; j++ {
				next[placed+j] += ways * float64(combin.Binomial(quorumSize, j))
			}
		}
		safe = next
	}

	total := float64(combin.Binomial(numValidators, numCorrupted))
	return 1 - safe[numCorrupted]/total
}
