package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/catstat/internal/report"
	"github.com/vmunix/catstat/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the summary without writing charts",
	RunE:  runStatsCmd,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringP("input", "i", "", "Dataset CSV path (overrides config)")
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	rows, cleanReport, extractReport, err := runPipeline(cmd.Context(), cfg, logger, input)
	if err != nil {
		return err
	}

	summary := report.Build(rows, cleanReport, extractReport, report.Options{
		TopN:       cfg.Report.TopN,
		BinMinutes: cfg.Report.BinMinutes,
		Words: stats.WordOptions{
			MinLength:     cfg.Report.MinWordLength,
			KeepStopwords: cfg.Report.KeepStopwords,
		},
	})

	if jsonOutput {
		return summary.WriteJSON(os.Stdout)
	}
	summary.WriteText(os.Stdout)
	return nil
}
