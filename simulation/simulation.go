// Package simulation estimates the probability that a layered Byzantine
// quorum system is compromised, using Monte Carlo sampling of random
// corruption scenarios. The system consists of a number of layers, each a
// quorum of the same size. An attacker succeeds against a quorum once the
// number of corrupted validators in it reaches a threshold; the package
// estimates the attack success probability for every threshold from a simple
// majority up to the full quorum size.
package simulation

import (
	"fmt"
	"time"

	"github.com/relab/quorumsim/logging"
	"golang.org/x/exp/rand"
)

// ThresholdRange is an inclusive range of quorum corruption thresholds.
type ThresholdRange struct {
	Min int
	Max int
}

// ThresholdRangeFunc builds the evaluated threshold range from the majority
// threshold and the full quorum size.
type ThresholdRangeFunc func(min, max int) ThresholdRange

// ThresholdRangeFromTo returns the inclusive range [min, max].
func ThresholdRangeFromTo(min, max int) ThresholdRange {
	return ThresholdRange{Min: min, Max: max}
}

// Config holds the parameters of a simulation run.
type Config struct {
	// Iterations is the number of random corruption scenarios to evaluate.
	Iterations int `mapstructure:"iterations"`
	// Layers is the number of quorums in the system.
	Layers int `mapstructure:"layers"`
	// QuorumSize is the number of validators per quorum.
	QuorumSize int `mapstructure:"quorum-size"`
	// Ratio is the per-validator corruption probability used by the binomial
	// sampler. Zero means the default of 0.5.
	Ratio float64 `mapstructure:"ratio"`
	// Seed seeds the random source. Zero means the current time.
	Seed int64 `mapstructure:"seed"`
	// ThresholdRange overrides how the evaluated threshold range is built.
	// Nil means ThresholdRangeFromTo.
	ThresholdRange ThresholdRangeFunc `mapstructure:"-"`
}

// NumValidators returns the total validator population size.
func (c Config) NumValidators() int {
	return c.Layers * c.QuorumSize
}

func (c Config) ratio() float64 {
	if c.Ratio == 0 {
		return 0.5
	}
	return c.Ratio
}

func (c Config) validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.Layers <= 0 {
		return fmt.Errorf("layers must be positive, got %d", c.Layers)
	}
	if c.QuorumSize <= 0 {
		return fmt.Errorf("quorum size must be positive, got %d", c.QuorumSize)
	}
	if c.Ratio < 0 || c.Ratio > 1 {
		return fmt.Errorf("ratio must be in [0, 1], got %v", c.Ratio)
	}
	return nil
}

// Result is the estimated attack success probability curve. Thresholds are
// ascending and AttackSuccessProb[i] is the estimate for Thresholds[i].
type Result struct {
	Thresholds        []int
	AttackSuccessProb []float64
}

// Simulator runs corruption scenarios and accumulates per-threshold hits.
type Simulator struct {
	cfg     Config
	rangeFn ThresholdRangeFunc
	sampler CorruptedCountSampler
	rnd     *rand.Rand
	logger  logging.Logger
}

// New returns a simulator that draws the corrupted count of each scenario
// from a binomial distribution over the validator population.
func New(cfg Config) (*Simulator, error) {
	s, src, err := newSimulator(cfg)
	if err != nil {
		return nil, err
	}
	// the sampler and the assignment draws consume the same stream
	s.sampler = NewBinomialSampler(cfg.NumValidators(), cfg.ratio(), src)
	return s, nil
}

// NewWithSampler returns a simulator using the given corrupted count sampler.
func NewWithSampler(cfg Config, sampler CorruptedCountSampler) (*Simulator, error) {
	s, _, err := newSimulator(cfg)
	if err != nil {
		return nil, err
	}
	s.sampler = sampler
	return s, nil
}

func newSimulator(cfg Config) (*Simulator, rand.Source, error) {
	if err := cfg.validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	rangeFn := cfg.ThresholdRange
	if rangeFn == nil {
		rangeFn = ThresholdRangeFromTo
	}
	seed := uint64(cfg.Seed)
	if cfg.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rand.NewSource(seed)
	s := &Simulator{
		cfg:     cfg,
		rangeFn: rangeFn,
		rnd:     rand.New(src),
		logger:  logging.New("sim"),
	}
	return s, src, nil
}

// Run executes the configured number of iterations and returns the estimated
// attack success probability for every threshold in the evaluated range.
//
// Each iteration draws a corrupted count, marks a random validator subset of
// that size as corrupted, and walks the quorums in layer order. The first
// quorum whose corruption count reaches any threshold ends the iteration:
// the attacker has compromised the system, and the remaining quorums are not
// examined. This is a simulation semantic, not an optimization; evaluating
// all quorums would count some scenarios more than once.
func (s *Simulator) Run() Result {
	thresholds := s.rangeFn(s.cfg.QuorumSize/2+1, s.cfg.QuorumSize)
	hits := make([]int, thresholds.Max+1)
	numValidators := s.cfg.NumValidators()

	s.logger.Infof("simulating %d iterations: %d layers with %d validators each",
		s.cfg.Iterations, s.cfg.Layers, s.cfg.QuorumSize)

	for i := 0; i < s.cfg.Iterations; i++ {
		assignment := NewAssignment(s.rnd, numValidators, s.sampler.Next())
		for _, quorum := range SplitIntoQuorums(assignment, s.cfg.QuorumSize) {
			if recordHits(quorum.CountCorrupted(), thresholds, hits) {
				break
			}
		}
	}

	result := Result{
		Thresholds:        make([]int, 0, thresholds.Max-thresholds.Min+1),
		AttackSuccessProb: make([]float64, 0, thresholds.Max-thresholds.Min+1),
	}
	for t := thresholds.Min; t <= thresholds.Max; t++ {
		prob := float64(hits[t]) / float64(s.cfg.Iterations)
		s.logger.Debugf("( %d, %g )", t, prob)
		result.Thresholds = append(result.Thresholds, t)
		result.AttackSuccessProb = append(result.AttackSuccessProb, prob)
	}
	return result
}

// recordHits increments the hit counter of every threshold in the range that
// the corruption count reaches, walking the range in ascending order. It
// reports whether any threshold was hit, which means the quorum is corrupted.
func recordHits(corrupted int, thresholds ThresholdRange, hits []int) bool {
	hit := false
	for t := thresholds.Min; t <= thresholds.Max; t++ {
		if corrupted >= t {
			hits[t]++
			hit = true
		}
	}
	return hit
}
