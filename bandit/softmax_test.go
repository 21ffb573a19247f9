package bandit

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestBoltzmannUniformWhenMeansEqual(t *testing.T) {
	b, err := NewBoltzmann(0.5, WithSeed(5))
	require.NoError(t, err)
	require.NoError(t, b.Reset(4))

	probs := b.Probabilities()
	for _, p := range probs {
		require.InDelta(t, 0.25, p, 1e-12, "Equal means should give a uniform distribution")
	}
	require.InDelta(t, 1.0, floats.Sum(probs), 1e-9)
}

func TestBoltzmannProbabilityNormalization(t *testing.T) {
	b, err := NewBoltzmann(0.3, WithSeed(5))
	require.NoError(t, err)
	require.NoError(t, b.Reset(3))

	rewards := []struct {
		arm    int
		reward float64
	}{{0, 1.0}, {1, -0.5}, {2, 0.25}, {0, 0.75}, {2, 2.0}}
	for _, r := range rewards {
		require.NoError(t, b.Update(r.arm, r.reward))
		require.InDelta(t, 1.0, floats.Sum(b.Probabilities()), 1e-9,
			"Probabilities should stay normalized after every update")
	}
}

func TestBoltzmannLowTemperatureIsNearGreedy(t *testing.T) {
	b, err := NewBoltzmann(0.01, WithSeed(9))
	require.NoError(t, err)
	require.NoError(t, b.Reset(2))

	require.NoError(t, b.Update(0, 0.0))
	require.NoError(t, b.Update(1, 1.0))

	// p(arm 0) = 1/(1 + e^100), vanishing.
	for i := 0; i < 100; i++ {
		arm, err := b.SelectNextArm()
		require.NoError(t, err)
		require.Equal(t, 1, arm, "Tiny tau should concentrate mass on the best arm")
	}
}

func TestBoltzmannSurvivesFarNegativeMeans(t *testing.T) {
	b, err := NewBoltzmann(0.5, WithSeed(21))
	require.NoError(t, err)
	require.NoError(t, b.Reset(3))

	// exp(mean/tau) would underflow to zero for every arm without the max
	// shift, leaving nothing to sample from.
	for arm := 0; arm < 3; arm++ {
		require.NoError(t, b.Update(arm, -1000.0))
	}

	probs := b.Probabilities()
	require.InDelta(t, 1.0, floats.Sum(probs), 1e-9)
	for _, p := range probs {
		require.InDelta(t, 1.0/3.0, p, 1e-9, "Equal far-negative means should stay uniform")
	}

	arm, err := b.SelectNextArm()
	require.NoError(t, err)
	require.GreaterOrEqual(t, arm, 0)
	require.Less(t, arm, 3)
}

func TestAnnealingBoltzmannCools(t *testing.T) {
	b := NewAnnealingBoltzmann(WithSeed(13))
	require.NoError(t, b.Reset(2))

	prev := b.Tau()
	for i := 0; i < 50; i++ {
		require.NoError(t, b.Update(i%2, 0.5))
		tau := b.Tau()
		require.Less(t, tau, prev, "Temperature should strictly decrease with total pulls")
		require.Greater(t, tau, 0.0)
		prev = tau
	}

	require.InDelta(t, 1.0, floats.Sum(b.Probabilities()), 1e-9)
}
