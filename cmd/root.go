package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "banditopt",
	Short: "Multi-armed bandit strategies for sequential experiment selection",
	Long: `banditopt simulates multi-armed bandit selection strategies (epsilon-greedy,
softmax, pursuit, reinforcement comparison, UCB) against configurable reward
environments and writes per-step CSV records for analysis.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	},
}

func Execute() error {
	return rootCmd.Execute()
}
