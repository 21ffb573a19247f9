package simulate

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"banditopt/bandit"
	"banditopt/experiments/metrics"
)

// Runner drives a strategy against an environment: select an arm, draw its
// reward, feed the reward back, record the step. Each of the configured
// simulations starts from a fresh Reset, so runs are statistically
// independent aside from sharing the environment's random stream.
type Runner struct {
	strategy bandit.Strategy
	env      Environment
	sims     int
	horizon  int
}

func NewRunner(strategy bandit.Strategy, env Environment, sims, horizon int) (*Runner, error) {
	if strategy == nil {
		return nil, fmt.Errorf("strategy must not be nil")
	}
	if env == nil {
		return nil, fmt.Errorf("environment must not be nil")
	}
	if sims < 1 {
		return nil, fmt.Errorf("sims must be positive: got %d", sims)
	}
	if horizon < 1 {
		return nil, fmt.Errorf("horizon must be positive: got %d", horizon)
	}
	return &Runner{
		strategy: strategy,
		env:      env,
		sims:     sims,
		horizon:  horizon,
	}, nil
}

// Run executes all simulations and returns one record per step.
func (r *Runner) Run() ([]metrics.StepRecord, error) {
	runID := uuid.NewString()
	log.Info().
		Str("run_id", runID).
		Int("sims", r.sims).
		Int("horizon", r.horizon).
		Int("arms", r.env.NumArms()).
		Msg("starting simulation run")

	collector := metrics.NewCollector()
	for sim := 0; sim < r.sims; sim++ {
		if err := r.strategy.Reset(r.env.NumArms()); err != nil {
			return nil, fmt.Errorf("sim %d: reset: %w", sim, err)
		}
		collector.StartSim(sim)

		for step := 0; step < r.horizon; step++ {
			arm, err := r.strategy.SelectNextArm()
			if err != nil {
				return nil, fmt.Errorf("sim %d step %d: select: %w", sim, step, err)
			}
			reward, err := r.env.Draw(arm)
			if err != nil {
				return nil, fmt.Errorf("sim %d step %d: draw: %w", sim, step, err)
			}
			if err := r.strategy.Update(arm, reward); err != nil {
				return nil, fmt.Errorf("sim %d step %d: update: %w", sim, step, err)
			}
			collector.Record(step, arm, reward)
		}
	}

	records := collector.Records()
	log.Info().
		Str("run_id", runID).
		Int("records", len(records)).
		Msg("simulation run complete")
	return records, nil
}
