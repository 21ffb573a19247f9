package bandit

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// epsTiny guards ln(1)=0 in annealing schedules and zero-count divisions in
// confidence bounds.
const epsTiny = 1e-7

var (
	ErrNotInitialized  = errors.New("strategy not initialized: call Reset first")
	ErrArmOutOfRange   = errors.New("arm index out of range")
	ErrInvalidArmCount = errors.New("number of arms must be positive")
)

// Strategy is the contract shared by all selection algorithms. A driver calls
// SelectNextArm, obtains a reward from its environment, then calls Update with
// the chosen arm and observed reward.
type Strategy interface {
	// Reset (re)initializes all per-arm state for nArms arms, discarding any
	// prior observations. Must be called before first use.
	Reset(nArms int) error
	// SelectNextArm picks an arm in [0, nArms) from current state. It does not
	// mutate any statistics.
	SelectNextArm() (int, error)
	// Update records one observed reward for chosenArm. Rewards may be any
	// real number unless a variant documents otherwise.
	Update(chosenArm int, reward float64) error
}

// armStats holds the bookkeeping every variant shares: per-arm pull counts and
// incrementally maintained mean rewards. No raw reward history is retained.
type armStats struct {
	counts []int
	means  []float64
}

func (s *armStats) init(nArms int) error {
	if nArms < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidArmCount, nArms)
	}
	s.counts = make([]int, nArms)
	s.means = make([]float64, nArms)
	return nil
}

func (s *armStats) checkArm(arm int) error {
	if len(s.counts) == 0 {
		return ErrNotInitialized
	}
	if arm < 0 || arm >= len(s.counts) {
		return fmt.Errorf("%w: arm %d of %d", ErrArmOutOfRange, arm, len(s.counts))
	}
	return nil
}

// record folds one reward into the running mean and returns the mean before
// and after the update. mean = ((n-1)/n)*mean + (1/n)*reward.
func (s *armStats) record(arm int, reward float64) (oldMean, newMean float64) {
	n := s.counts[arm] + 1
	oldMean = s.means[arm]
	newMean = (float64(n-1)/float64(n))*oldMean + (1/float64(n))*reward
	s.means[arm] = newMean
	s.counts[arm] = n
	return oldMean, newMean
}

func (s *armStats) nArms() int {
	return len(s.counts)
}

func (s *armStats) totalPulls() int {
	total := 0
	for _, c := range s.counts {
		total += c
	}
	return total
}

// bestArm returns the arm with the highest mean reward, lowest index on ties.
func (s *armStats) bestArm() int {
	return floats.MaxIdx(s.means)
}

// Counts returns a copy of the per-arm pull counts.
func (s *armStats) Counts() []int {
	counts := make([]int, len(s.counts))
	copy(counts, s.counts)
	return counts
}

// Means returns a copy of the per-arm running mean rewards.
func (s *armStats) Means() []float64 {
	means := make([]float64, len(s.means))
	copy(means, s.means)
	return means
}

type Option func(s *sampler)

// WithSeed makes the strategy's random draws deterministic.
func WithSeed(seed uint64) Option {
	return func(s *sampler) {
		s.src = rand.NewSource(seed)
		s.rng = rand.New(s.src)
	}
}

// WithSource injects a random source shared with other components.
func WithSource(src rand.Source) Option {
	return func(s *sampler) {
		s.src = src
		s.rng = rand.New(src)
	}
}

// sampler wraps the injected random source behind the draw shapes the
// strategies need.
type sampler struct {
	src rand.Source
	rng *rand.Rand
}

func newSampler(options ...Option) sampler {
	src := rand.NewSource(uint64(time.Now().UnixNano()))
	s := sampler{src: src, rng: rand.New(src)}
	for _, option := range options {
		option(&s)
	}
	return s
}

// uniform draws an arm uniformly from [0, nArms).
func (s *sampler) uniform(nArms int) int {
	return s.rng.Intn(nArms)
}

// categorical draws an arm proportionally to the given non-negative weights.
// The weights need not be normalized.
func (s *sampler) categorical(weights []float64) int {
	dist := distuv.NewCategorical(weights, s.src)
	return int(dist.Rand())
}
