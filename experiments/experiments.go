package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"banditopt/experiments/metrics"
	"banditopt/simulate"
)

// Run executes every strategy in the config against its environment and
// writes the CSV output. Returns the directory the files landed in.
//
// Each strategy gets its own seed offset and a fresh environment so results
// do not depend on the order strategies are listed.
func Run(cfg *Config, outDir string) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	writer, err := metrics.NewWriter(outDir, cfg.Name)
	if err != nil {
		return "", err
	}

	configs := make([]metrics.StrategyConfig, len(cfg.Strategies))
	for i, spec := range cfg.Strategies {
		configs[i] = metrics.StrategyConfig{
			ID:           i,
			Name:         spec.Name,
			Epsilon:      spec.Epsilon,
			Tau:          spec.Tau,
			LearningRate: spec.LearningRate,
			Alpha:        spec.Alpha,
			Beta:         spec.Beta,
		}
	}
	if err := writer.WriteStrategyConfigs(configs); err != nil {
		return "", err
	}

	log.Info().
		Str("experiment", cfg.Name).
		Int("strategies", len(cfg.Strategies)).
		Msg("running experiment")

	for i, spec := range cfg.Strategies {
		seed := cfg.Seed + uint64(i)
		strategy, err := NewStrategy(spec, seed)
		if err != nil {
			return "", fmt.Errorf("strategy %d: %w", i, err)
		}
		env, err := NewEnvironment(cfg.Arms, seed)
		if err != nil {
			return "", fmt.Errorf("strategy %d: %w", i, err)
		}

		runner, err := simulate.NewRunner(strategy, env, cfg.Sims, cfg.Horizon)
		if err != nil {
			return "", fmt.Errorf("strategy %d: %w", i, err)
		}
		records, err := runner.Run()
		if err != nil {
			return "", fmt.Errorf("strategy %q: %w", spec.Name, err)
		}
		if err := writer.WriteStepRecords(spec.Name, records); err != nil {
			return "", fmt.Errorf("strategy %q: %w", spec.Name, err)
		}

		log.Info().
			Str("strategy", spec.Name).
			Int("records", len(records)).
			Msg("strategy finished")
	}

	return writer.BaseDir(), nil
}
