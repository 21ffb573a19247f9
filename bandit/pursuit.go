package bandit

import "fmt"

// Pursuit keeps an explicit selection probability vector, uniform at reset,
// and after each update nudges it toward a one-hot distribution on the arm
// with the best empirical mean: p[best] += lr*(1-p[best]),
// p[other] += lr*(0-p[other]). The tracking rule preserves non-negativity and
// the sum of 1 without renormalizing.
type Pursuit struct {
	armStats
	sampler
	lr    float64
	probs []float64
}

func NewPursuit(lr float64, options ...Option) (*Pursuit, error) {
	if !(lr > 0) || lr > 1 {
		return nil, fmt.Errorf("learning rate must be in (0, 1]: got %v", lr)
	}
	return &Pursuit{sampler: newSampler(options...), lr: lr}, nil
}

func (p *Pursuit) Reset(nArms int) error {
	if err := p.init(nArms); err != nil {
		return err
	}
	p.probs = uniformProbs(nArms)
	return nil
}

func (p *Pursuit) SelectNextArm() (int, error) {
	if p.nArms() == 0 {
		return 0, ErrNotInitialized
	}
	return p.categorical(p.probs), nil
}

// Probabilities returns a copy of the selection probability vector.
func (p *Pursuit) Probabilities() []float64 {
	probs := make([]float64, len(p.probs))
	copy(probs, p.probs)
	return probs
}

func (p *Pursuit) Update(chosenArm int, reward float64) error {
	if err := p.checkArm(chosenArm); err != nil {
		return err
	}
	p.record(chosenArm, reward)

	// With no reward signal yet, argmax would land on arm 0 by tie-break and
	// the tracking rule would reward it spuriously. Leave the vector uniform
	// until some mean moves off zero.
	if allZero(p.means) {
		return nil
	}

	best := p.bestArm()
	for i, prob := range p.probs {
		if i == best {
			p.probs[i] = prob + p.lr*(1-prob)
		} else {
			p.probs[i] = prob + p.lr*(0-prob)
		}
	}
	return nil
}

func uniformProbs(nArms int) []float64 {
	probs := make([]float64, nArms)
	for i := range probs {
		probs[i] = 1 / float64(nArms)
	}
	return probs
}

func allZero(values []float64) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}
