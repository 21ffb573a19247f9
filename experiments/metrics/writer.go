package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subfolder of outDir for one experiment's
// CSV output.
func NewWriter(outDir, experiment string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(outDir, experiment, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// BaseDir returns the directory all files are written into.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteStrategyConfigs(configs []StrategyConfig) error {
	path := filepath.Join(w.baseDir, "strategy_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create strategy configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "name", "epsilon", "tau", "learning_rate", "alpha", "beta"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write strategy configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			config.Name,
			formatFloat(config.Epsilon),
			formatFloat(config.Tau),
			formatFloat(config.LearningRate),
			formatFloat(config.Alpha),
			formatFloat(config.Beta),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write strategy config row: %w", err)
		}
	}

	return nil
}

// WriteStepRecords writes one strategy's per-step rows to <name>_records.csv.
func (w *Writer) WriteStepRecords(name string, records []StepRecord) error {
	path := filepath.Join(w.baseDir, name+"_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create step records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"sim", "step", "chosen_arm", "reward", "cumulative_reward"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write step records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Sim),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.ChosenArm),
			formatFloat(record.Reward),
			formatFloat(record.Cumulative),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write step record row: %w", err)
		}
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
