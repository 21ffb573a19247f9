package bandit

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// UCB1 scores each arm by its empirical mean plus a confidence bonus
// sqrt(2*ln(T+1)/count) that shrinks as the arm is pulled. Selection first
// visits every arm once in index order, then follows argmax of the stored
// confidence values.
type UCB1 struct {
	armStats
	ucbs []float64
}

func NewUCB1() *UCB1 {
	return &UCB1{}
}

func (u *UCB1) Reset(nArms int) error {
	if err := u.init(nArms); err != nil {
		return err
	}
	u.ucbs = make([]float64, nArms)
	return nil
}

func (u *UCB1) SelectNextArm() (int, error) {
	if u.nArms() == 0 {
		return 0, ErrNotInitialized
	}
	// Warm-up: every arm gets one pull before confidence values mean anything.
	for arm, count := range u.counts {
		if count == 0 {
			return arm, nil
		}
	}
	return floats.MaxIdx(u.ucbs), nil
}

// Confidences returns a copy of the per-arm upper confidence bounds.
func (u *UCB1) Confidences() []float64 {
	ucbs := make([]float64, len(u.ucbs))
	copy(ucbs, u.ucbs)
	return ucbs
}

func (u *UCB1) Update(chosenArm int, reward float64) error {
	if err := u.checkArm(chosenArm); err != nil {
		return err
	}
	u.record(chosenArm, reward)

	logT := math.Log(float64(u.totalPulls()) + 1)
	for arm, mean := range u.means {
		bonus := math.Sqrt(2 * logT / (float64(u.counts[arm]) + epsTiny))
		u.ucbs[arm] = mean + bonus
	}
	return nil
}

// UCB1Tuned replaces UCB1's fixed exploration constant with a per-arm
// variance estimate maintained by Welford's algorithm, capping the variance
// term at 1/4 (the maximum variance of a reward bounded in [0,1]). Rewards
// outside [0,1] are accepted but weaken the cap's meaning.
type UCB1Tuned struct {
	armStats
	m2   []float64
	ucbs []float64
}

func NewUCB1Tuned() *UCB1Tuned {
	return &UCB1Tuned{}
}

func (u *UCB1Tuned) Reset(nArms int) error {
	if err := u.init(nArms); err != nil {
		return err
	}
	u.m2 = make([]float64, nArms)
	u.ucbs = make([]float64, nArms)
	return nil
}

func (u *UCB1Tuned) SelectNextArm() (int, error) {
	if u.nArms() == 0 {
		return 0, ErrNotInitialized
	}
	for arm, count := range u.counts {
		if count == 0 {
			return arm, nil
		}
	}
	return floats.MaxIdx(u.ucbs), nil
}

// Confidences returns a copy of the per-arm upper confidence bounds.
func (u *UCB1Tuned) Confidences() []float64 {
	ucbs := make([]float64, len(u.ucbs))
	copy(ucbs, u.ucbs)
	return ucbs
}

// varianceBound returns the capped variance term feeding the bonus for one
// arm at the given ln(T+1).
func (u *UCB1Tuned) varianceBound(arm int, logT float64) float64 {
	count := float64(u.counts[arm]) + epsTiny
	v := u.m2[arm]/count + math.Sqrt(2*logT/count)
	return math.Min(0.25, v)
}

func (u *UCB1Tuned) Update(chosenArm int, reward float64) error {
	if err := u.checkArm(chosenArm); err != nil {
		return err
	}
	// Welford: M2 += (x - old_mean)*(x - new_mean), old mean read before
	// record overwrites it.
	oldMean, newMean := u.record(chosenArm, reward)
	u.m2[chosenArm] += (reward - oldMean) * (reward - newMean)

	logT := math.Log(float64(u.totalPulls()) + 1)
	for arm, mean := range u.means {
		count := float64(u.counts[arm]) + epsTiny
		bonus := math.Sqrt(logT / count * u.varianceBound(arm, logT))
		u.ucbs[arm] = mean + bonus
	}
	return nil
}
