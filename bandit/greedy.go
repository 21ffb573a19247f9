package bandit

import (
	"fmt"
	"math"
)

// Random picks arms uniformly, ignoring all statistics. Exploration-only
// baseline.
type Random struct {
	armStats
	sampler
}

func NewRandom(options ...Option) *Random {
	return &Random{sampler: newSampler(options...)}
}

func (r *Random) Reset(nArms int) error {
	return r.init(nArms)
}

func (r *Random) SelectNextArm() (int, error) {
	if r.nArms() == 0 {
		return 0, ErrNotInitialized
	}
	return r.uniform(r.nArms()), nil
}

func (r *Random) Update(chosenArm int, reward float64) error {
	if err := r.checkArm(chosenArm); err != nil {
		return err
	}
	r.record(chosenArm, reward)
	return nil
}

// EpsilonGreedy exploits the best empirical mean with probability 1-epsilon
// and explores uniformly (over all arms) with probability epsilon.
type EpsilonGreedy struct {
	armStats
	sampler
	epsilon float64
}

func NewEpsilonGreedy(epsilon float64, options ...Option) (*EpsilonGreedy, error) {
	if epsilon < 0 || epsilon > 1 || math.IsNaN(epsilon) {
		return nil, fmt.Errorf("epsilon must be in [0, 1]: got %v", epsilon)
	}
	return &EpsilonGreedy{sampler: newSampler(options...), epsilon: epsilon}, nil
}

func (g *EpsilonGreedy) Reset(nArms int) error {
	return g.init(nArms)
}

func (g *EpsilonGreedy) SelectNextArm() (int, error) {
	if g.nArms() == 0 {
		return 0, ErrNotInitialized
	}
	if g.rng.Float64() > g.epsilon {
		return g.bestArm(), nil
	}
	return g.uniform(g.nArms()), nil
}

func (g *EpsilonGreedy) Update(chosenArm int, reward float64) error {
	if err := g.checkArm(chosenArm); err != nil {
		return err
	}
	g.record(chosenArm, reward)
	return nil
}

// AnnealingEpsilonGreedy decays epsilon as pulls accumulate:
// epsilon = 1/ln(t + 1e-7) with t = total pulls + 1. Early on epsilon exceeds
// 1, so selection is entirely exploratory until the schedule catches up.
type AnnealingEpsilonGreedy struct {
	armStats
	sampler
}

func NewAnnealingEpsilonGreedy(options ...Option) *AnnealingEpsilonGreedy {
	return &AnnealingEpsilonGreedy{sampler: newSampler(options...)}
}

func (g *AnnealingEpsilonGreedy) Reset(nArms int) error {
	return g.init(nArms)
}

// Epsilon returns the exploration probability implied by the current total
// pull count.
func (g *AnnealingEpsilonGreedy) Epsilon() float64 {
	t := float64(g.totalPulls() + 1)
	return 1 / math.Log(t+epsTiny)
}

func (g *AnnealingEpsilonGreedy) SelectNextArm() (int, error) {
	if g.nArms() == 0 {
		return 0, ErrNotInitialized
	}
	if g.rng.Float64() > g.Epsilon() {
		return g.bestArm(), nil
	}
	return g.uniform(g.nArms()), nil
}

func (g *AnnealingEpsilonGreedy) Update(chosenArm int, reward float64) error {
	if err := g.checkArm(chosenArm); err != nil {
		return err
	}
	g.record(chosenArm, reward)
	return nil
}
