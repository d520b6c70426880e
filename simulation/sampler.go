package simulation

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// CorruptedCountSampler produces the number of corrupted validators for each
// simulation iteration. The driver pulls exactly one count per iteration;
// which validators are corrupted is decided separately by NewAssignment.
type CorruptedCountSampler interface {
	// Next returns the corrupted validator count for the next iteration.
	Next() int
}

// BinomialSampler draws corrupted counts from a binomial distribution over
// the validator population: each of the numValidators validators is corrupted
// independently with probability ratio.
type BinomialSampler struct {
	dist distuv.Binomial
}

// NewBinomialSampler returns a sampler drawing from Binomial(numValidators, ratio).
func NewBinomialSampler(numValidators int, ratio float64, src rand.Source) *BinomialSampler {
	return &BinomialSampler{
		dist: distuv.Binomial{
			N:   float64(numValidators),
			P:   ratio,
			Src: src,
		},
	}
}

// Next returns a fresh binomial draw.
func (s *BinomialSampler) Next() int {
	return int(s.dist.Rand())
}

// FixedSampler returns the same corrupted count every iteration.
type FixedSampler int

// Next returns the fixed corrupted count.
func (s FixedSampler) Next() int {
	return int(s)
}
