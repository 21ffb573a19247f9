package experiments

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"banditopt/bandit"
	"banditopt/simulate"
)

// Config describes one experiment: an arm environment and the list of
// strategies to run against it, each for Sims independent simulations of
// Horizon steps.
type Config struct {
	Name       string         `yaml:"name"`
	Sims       int            `yaml:"sims"`
	Horizon    int            `yaml:"horizon"`
	Seed       uint64         `yaml:"seed"`
	Arms       ArmsConfig     `yaml:"arms"`
	Strategies []StrategySpec `yaml:"strategies"`
}

type ArmsConfig struct {
	Kind    string    `yaml:"kind"` // bernoulli or normal
	Probs   []float64 `yaml:"probs,omitempty"`
	Means   []float64 `yaml:"means,omitempty"`
	Stddevs []float64 `yaml:"stddevs,omitempty"`
}

// StrategySpec names a strategy variant with its parameters. Parameters not
// used by the variant are ignored.
type StrategySpec struct {
	Name         string  `yaml:"name"`
	Epsilon      float64 `yaml:"epsilon,omitempty"`
	Tau          float64 `yaml:"tau,omitempty"`
	LearningRate float64 `yaml:"learning_rate,omitempty"`
	Alpha        float64 `yaml:"alpha,omitempty"`
	Beta         float64 `yaml:"beta,omitempty"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("experiment name is required")
	}
	if c.Sims < 1 {
		return fmt.Errorf("sims must be positive: got %d", c.Sims)
	}
	if c.Horizon < 1 {
		return fmt.Errorf("horizon must be positive: got %d", c.Horizon)
	}
	if len(c.Strategies) == 0 {
		return fmt.Errorf("at least one strategy is required")
	}
	switch c.Arms.Kind {
	case "bernoulli":
		if len(c.Arms.Probs) == 0 {
			return fmt.Errorf("bernoulli arms need probs")
		}
	case "normal":
		if len(c.Arms.Means) == 0 || len(c.Arms.Means) != len(c.Arms.Stddevs) {
			return fmt.Errorf("normal arms need matching means and stddevs")
		}
	default:
		return fmt.Errorf("unknown arm kind %q", c.Arms.Kind)
	}
	return nil
}

// NewStrategy builds the strategy a spec names, seeded for reproducibility.
func NewStrategy(spec StrategySpec, seed uint64) (bandit.Strategy, error) {
	switch spec.Name {
	case "random":
		return bandit.NewRandom(bandit.WithSeed(seed)), nil
	case "epsilon_greedy":
		return bandit.NewEpsilonGreedy(spec.Epsilon, bandit.WithSeed(seed))
	case "annealing_epsilon_greedy":
		return bandit.NewAnnealingEpsilonGreedy(bandit.WithSeed(seed)), nil
	case "boltzmann":
		return bandit.NewBoltzmann(spec.Tau, bandit.WithSeed(seed))
	case "annealing_boltzmann":
		return bandit.NewAnnealingBoltzmann(bandit.WithSeed(seed)), nil
	case "pursuit":
		return bandit.NewPursuit(spec.LearningRate, bandit.WithSeed(seed))
	case "reinforcement_comparison":
		return bandit.NewReinforcementComparison(spec.Alpha, spec.Beta, bandit.WithSeed(seed)), nil
	case "ucb1":
		return bandit.NewUCB1(), nil
	case "ucb1_tuned":
		return bandit.NewUCB1Tuned(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", spec.Name)
	}
}

// NewEnvironment builds the reward environment a config describes.
func NewEnvironment(arms ArmsConfig, seed uint64) (simulate.Environment, error) {
	switch arms.Kind {
	case "bernoulli":
		return simulate.NewBernoulliEnv(arms.Probs, seed)
	case "normal":
		return simulate.NewNormalEnv(arms.Means, arms.Stddevs, seed)
	default:
		return nil, fmt.Errorf("unknown arm kind %q", arms.Kind)
	}
}
