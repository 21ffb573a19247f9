package bandit

// ReinforcementComparison scores arms by a preference that grows when an
// observed reward beats a per-arm expected-reward baseline, and samples from
// the softmax over preferences. alpha is the baseline's moving-average rate,
// beta the preference learning rate.
//
// Preferences and baselines start at zero with no warm-up, so the first few
// updates carry no comparative signal and short horizons are noisy.
type ReinforcementComparison struct {
	armStats
	sampler
	alpha      float64
	beta       float64
	prefs      []float64
	expRewards []float64
	probs      []float64
}

func NewReinforcementComparison(alpha, beta float64, options ...Option) *ReinforcementComparison {
	return &ReinforcementComparison{
		sampler: newSampler(options...),
		alpha:   alpha,
		beta:    beta,
	}
}

func (rc *ReinforcementComparison) Reset(nArms int) error {
	if err := rc.init(nArms); err != nil {
		return err
	}
	rc.prefs = make([]float64, nArms)
	rc.expRewards = make([]float64, nArms)
	rc.probs = uniformProbs(nArms)
	return nil
}

func (rc *ReinforcementComparison) SelectNextArm() (int, error) {
	if rc.nArms() == 0 {
		return 0, ErrNotInitialized
	}
	return rc.categorical(rc.probs), nil
}

// Probabilities returns a copy of the selection probability vector.
func (rc *ReinforcementComparison) Probabilities() []float64 {
	probs := make([]float64, len(rc.probs))
	copy(probs, rc.probs)
	return probs
}

func (rc *ReinforcementComparison) Update(chosenArm int, reward float64) error {
	if err := rc.checkArm(chosenArm); err != nil {
		return err
	}
	rc.record(chosenArm, reward)

	// The preference update must see the baseline from before this reward is
	// folded into it.
	rc.prefs[chosenArm] += rc.beta * (reward - rc.expRewards[chosenArm])
	rc.expRewards[chosenArm] = (1-rc.alpha)*rc.expRewards[chosenArm] + rc.alpha*reward

	rc.probs = normalize(softmaxWeights(rc.prefs, 1))
	return nil
}
