package simulate

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Environment produces a reward each time an arm is pulled.
type Environment interface {
	NumArms() int
	Draw(arm int) (float64, error)
}

var errNoArms = errors.New("environment needs at least one arm")

func checkArm(arm, nArms int) error {
	if arm < 0 || arm >= nArms {
		return fmt.Errorf("arm %d out of range [0, %d)", arm, nArms)
	}
	return nil
}

// BernoulliEnv pays 1 with each arm's success probability, 0 otherwise.
type BernoulliEnv struct {
	dists []distuv.Bernoulli
}

func NewBernoulliEnv(probs []float64, seed uint64) (*BernoulliEnv, error) {
	if len(probs) == 0 {
		return nil, errNoArms
	}
	src := rand.NewSource(seed)
	dists := make([]distuv.Bernoulli, len(probs))
	for i, p := range probs {
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("arm %d: success probability must be in [0, 1]: got %v", i, p)
		}
		dists[i] = distuv.Bernoulli{P: p, Src: src}
	}
	return &BernoulliEnv{dists: dists}, nil
}

func (e *BernoulliEnv) NumArms() int {
	return len(e.dists)
}

func (e *BernoulliEnv) Draw(arm int) (float64, error) {
	if err := checkArm(arm, len(e.dists)); err != nil {
		return 0, err
	}
	return e.dists[arm].Rand(), nil
}

// NormalEnv pays Gaussian rewards with per-arm mean and stddev.
type NormalEnv struct {
	dists []distuv.Normal
}

func NewNormalEnv(means, stddevs []float64, seed uint64) (*NormalEnv, error) {
	if len(means) == 0 {
		return nil, errNoArms
	}
	if len(means) != len(stddevs) {
		return nil, fmt.Errorf("got %d means but %d stddevs", len(means), len(stddevs))
	}
	src := rand.NewSource(seed)
	dists := make([]distuv.Normal, len(means))
	for i := range means {
		if stddevs[i] <= 0 {
			return nil, fmt.Errorf("arm %d: stddev must be positive: got %v", i, stddevs[i])
		}
		dists[i] = distuv.Normal{Mu: means[i], Sigma: stddevs[i], Src: src}
	}
	return &NormalEnv{dists: dists}, nil
}

func (e *NormalEnv) NumArms() int {
	return len(e.dists)
}

func (e *NormalEnv) Draw(arm int) (float64, error) {
	if err := checkArm(arm, len(e.dists)); err != nil {
		return 0, err
	}
	return e.dists[arm].Rand(), nil
}

// SequenceEnv replays scripted per-arm reward sequences, cycling when a
// sequence runs out. Deterministic, for tests and replays.
type SequenceEnv struct {
	rewards [][]float64
	cursors []int
}

func NewSequenceEnv(rewards [][]float64) (*SequenceEnv, error) {
	if len(rewards) == 0 {
		return nil, errNoArms
	}
	for i, seq := range rewards {
		if len(seq) == 0 {
			return nil, fmt.Errorf("arm %d: reward sequence must not be empty", i)
		}
	}
	return &SequenceEnv{
		rewards: rewards,
		cursors: make([]int, len(rewards)),
	}, nil
}

func (e *SequenceEnv) NumArms() int {
	return len(e.rewards)
}

func (e *SequenceEnv) Draw(arm int) (float64, error) {
	if err := checkArm(arm, len(e.rewards)); err != nil {
		return 0, err
	}
	seq := e.rewards[arm]
	reward := seq[e.cursors[arm]%len(seq)]
	e.cursors[arm]++
	return reward, nil
}
