package bandit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestReinforcementComparisonNormalization(t *testing.T) {
	rc := NewReinforcementComparison(0.1, 0.2, WithSeed(4))
	require.NoError(t, rc.Reset(4))

	rewards := []struct {
		arm    int
		reward float64
	}{{0, 1.0}, {1, -1.0}, {2, 0.5}, {3, 0.0}, {0, 2.0}, {2, -0.25}}
	for _, r := range rewards {
		require.NoError(t, rc.Update(r.arm, r.reward))
		require.InDelta(t, 1.0, floats.Sum(rc.Probabilities()), 1e-9,
			"Softmax probabilities should stay normalized after every update")
	}
}

func TestReinforcementComparisonUpdateOrder(t *testing.T) {
	alpha, beta := 0.25, 0.5
	rc := NewReinforcementComparison(alpha, beta, WithSeed(4))
	require.NoError(t, rc.Reset(2))

	// First update compares against the zero-initialized baseline, so the
	// whole reward registers as surprise. This is the documented cold-start
	// behavior: preferences carry no comparative signal on short horizons.
	require.NoError(t, rc.Update(0, 1.0))
	require.InDelta(t, beta*1.0, rc.prefs[0], 1e-12,
		"Preference should use the baseline from before the update")
	require.InDelta(t, alpha*1.0, rc.expRewards[0], 1e-12,
		"Baseline should move by the EMA rate after the preference update")

	// Second update must see the baseline left by the first.
	require.NoError(t, rc.Update(0, 1.0))
	require.InDelta(t, beta+beta*(1-alpha), rc.prefs[0], 1e-12)
	require.InDelta(t, alpha+alpha*(1-alpha)*1.0, rc.expRewards[0], 1e-12)

	wantP0 := math.Exp(rc.prefs[0]) / (math.Exp(rc.prefs[0]) + math.Exp(0))
	require.InDelta(t, wantP0, rc.Probabilities()[0], 1e-12,
		"Probabilities should be the softmax over preferences")
}

func TestReinforcementComparisonSurvivesFarNegativePreferences(t *testing.T) {
	rc := NewReinforcementComparison(0.1, 1.0, WithSeed(4))
	require.NoError(t, rc.Reset(2))

	// Large punishments drive both preferences far negative; the softmax must
	// not underflow to an all-zero weight vector.
	for i := 0; i < 100; i++ {
		require.NoError(t, rc.Update(i%2, -100.0))
	}

	require.InDelta(t, 1.0, floats.Sum(rc.Probabilities()), 1e-9)
	arm, err := rc.SelectNextArm()
	require.NoError(t, err)
	require.Contains(t, []int{0, 1}, arm)
}

func TestReinforcementComparisonFavorsRewardedArm(t *testing.T) {
	rc := NewReinforcementComparison(0.1, 0.5, WithSeed(4))
	require.NoError(t, rc.Reset(3))

	for i := 0; i < 20; i++ {
		require.NoError(t, rc.Update(2, 1.0))
		require.NoError(t, rc.Update(0, -1.0))
	}

	probs := rc.Probabilities()
	require.Greater(t, probs[2], probs[1], "Rewarded arm should dominate the untouched arm")
	require.Greater(t, probs[1], probs[0], "Punished arm should fall below the untouched arm")
}
