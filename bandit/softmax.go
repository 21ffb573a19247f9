package bandit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Boltzmann samples arms from the softmax distribution over empirical means:
// p(a) = exp(mean[a]/tau) / sum_b exp(mean[b]/tau). Higher tau flattens the
// distribution; tau -> 0 approaches greedy selection.
type Boltzmann struct {
	armStats
	sampler
	tau float64
}

func NewBoltzmann(tau float64, options ...Option) (*Boltzmann, error) {
	if !(tau > 0) {
		return nil, fmt.Errorf("tau must be positive: got %v", tau)
	}
	return &Boltzmann{sampler: newSampler(options...), tau: tau}, nil
}

func (b *Boltzmann) Reset(nArms int) error {
	return b.init(nArms)
}

func (b *Boltzmann) SelectNextArm() (int, error) {
	if b.nArms() == 0 {
		return 0, ErrNotInitialized
	}
	return b.categorical(softmaxWeights(b.means, b.tau)), nil
}

// Probabilities returns the current selection distribution, nil before Reset.
func (b *Boltzmann) Probabilities() []float64 {
	if b.nArms() == 0 {
		return nil
	}
	return normalize(softmaxWeights(b.means, b.tau))
}

func (b *Boltzmann) Update(chosenArm int, reward float64) error {
	if err := b.checkArm(chosenArm); err != nil {
		return err
	}
	b.record(chosenArm, reward)
	return nil
}

// AnnealingBoltzmann cools the temperature as pulls accumulate:
// tau = 1/ln(t + 1e-7) with t = total pulls + 1, the same schedule as
// AnnealingEpsilonGreedy.
type AnnealingBoltzmann struct {
	armStats
	sampler
}

func NewAnnealingBoltzmann(options ...Option) *AnnealingBoltzmann {
	return &AnnealingBoltzmann{sampler: newSampler(options...)}
}

func (b *AnnealingBoltzmann) Reset(nArms int) error {
	return b.init(nArms)
}

// Tau returns the temperature implied by the current total pull count.
func (b *AnnealingBoltzmann) Tau() float64 {
	t := float64(b.totalPulls() + 1)
	return 1 / math.Log(t+epsTiny)
}

func (b *AnnealingBoltzmann) SelectNextArm() (int, error) {
	if b.nArms() == 0 {
		return 0, ErrNotInitialized
	}
	return b.categorical(softmaxWeights(b.means, b.Tau())), nil
}

// Probabilities returns the selection distribution at the current
// temperature, nil before Reset.
func (b *AnnealingBoltzmann) Probabilities() []float64 {
	if b.nArms() == 0 {
		return nil
	}
	return normalize(softmaxWeights(b.means, b.Tau()))
}

func (b *AnnealingBoltzmann) Update(chosenArm int, reward float64) error {
	if err := b.checkArm(chosenArm); err != nil {
		return err
	}
	b.record(chosenArm, reward)
	return nil
}

// softmaxWeights returns the unnormalized weights exp((v-max)/tau). The max
// shift leaves the normalized distribution unchanged and keeps at least one
// weight at 1, so far-negative values cannot underflow the whole vector to
// zero.
func softmaxWeights(values []float64, tau float64) []float64 {
	max := floats.Max(values)
	weights := make([]float64, len(values))
	for i, v := range values {
		weights[i] = math.Exp((v - max) / tau)
	}
	return weights
}

func normalize(weights []float64) []float64 {
	total := floats.Sum(weights)
	for i := range weights {
		weights[i] /= total
	}
	return weights
}
