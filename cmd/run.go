package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"banditopt/experiments"
)

var (
	configPath string
	outDir     string
	seed       uint64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the experiment described by a YAML config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := experiments.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}

		dir, err := experiments.Run(cfg, outDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "results written to %s\n", dir)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to experiment YAML config")
	runCmd.Flags().StringVarP(&outDir, "out", "o", "results", "output directory for CSV records")
	runCmd.Flags().Uint64Var(&seed, "seed", 0, "override the config's random seed")
	_ = runCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(runCmd)
}
