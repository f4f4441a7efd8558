package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/catstat/internal/dedupe"
)

var dupesCmd = &cobra.Command{
	Use:   "dupes",
	Short: "List near-duplicate titles",
	Long: `List title pairs whose normalized similarity meets the configured
threshold. Useful for spotting re-listed or misspelled entries.`,
	RunE: runDupesCmd,
}

func init() {
	rootCmd.AddCommand(dupesCmd)
	dupesCmd.Flags().StringP("input", "i", "", "Dataset CSV path (overrides config)")
	dupesCmd.Flags().Float64("threshold", 0, "Similarity threshold (overrides config)")
}

func runDupesCmd(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	threshold, _ := cmd.Flags().GetFloat64("threshold")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	rows, _, _, err := runPipeline(cmd.Context(), cfg, logger, input)
	if err != nil {
		return err
	}

	if threshold == 0 {
		threshold = cfg.Dupes.Threshold
	}
	pairs := dedupe.Find(rows, threshold)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(pairs)
	}

	if len(pairs) == 0 {
		fmt.Println("no near-duplicate titles found")
		return nil
	}
	for _, p := range pairs {
		fmt.Printf("%.3f  %q <-> %q\n", p.Score, p.A, p.B)
	}
	return nil
}
