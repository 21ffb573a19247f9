package bandit

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestPursuitStartsUniform(t *testing.T) {
	p, err := NewPursuit(0.1, WithSeed(2))
	require.NoError(t, err)
	require.NoError(t, p.Reset(5))

	for _, prob := range p.Probabilities() {
		require.InDelta(t, 0.2, prob, 1e-12, "Reset should give a uniform vector")
	}
}

func TestPursuitZeroMeanNoOp(t *testing.T) {
	p, err := NewPursuit(0.1, WithSeed(2))
	require.NoError(t, err)
	require.NoError(t, p.Reset(3))

	for i := 0; i < 10; i++ {
		require.NoError(t, p.Update(0, 0.0))
		for _, prob := range p.Probabilities() {
			require.InDelta(t, 1.0/3.0, prob, 1e-12,
				"All-zero means should leave the probability vector untouched")
		}
	}
}

func TestPursuitTracksBestArm(t *testing.T) {
	p, err := NewPursuit(0.2, WithSeed(2))
	require.NoError(t, err)
	require.NoError(t, p.Reset(3))

	for i := 0; i < 30; i++ {
		require.NoError(t, p.Update(1, 1.0))
		require.NoError(t, p.Update(0, 0.1))
		require.InDelta(t, 1.0, floats.Sum(p.Probabilities()), 1e-9,
			"Tracking updates should preserve normalization without renormalizing")
	}

	probs := p.Probabilities()
	require.Greater(t, probs[1], 0.99, "Probability should converge toward one-hot on the best arm")
	require.Less(t, probs[0], 0.01)
	require.Less(t, probs[2], 0.01)
}

func TestPursuitSingleUpdateStep(t *testing.T) {
	p, err := NewPursuit(0.5, WithSeed(2))
	require.NoError(t, err)
	require.NoError(t, p.Reset(2))

	require.NoError(t, p.Update(1, 1.0))

	probs := p.Probabilities()
	// p[best] = 0.5 + 0.5*(1-0.5), p[other] = 0.5 + 0.5*(0-0.5)
	require.InDelta(t, 0.75, probs[1], 1e-12)
	require.InDelta(t, 0.25, probs[0], 1e-12)
}
