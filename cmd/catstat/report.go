package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/catstat/internal/report"
	"github.com/vmunix/catstat/internal/stats"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the full analysis and write HTML charts",
	Long: `Run the full pipeline over the dataset and write HTML charts to the
output directory, plus a console summary.

Examples:
  catstat report
  catstat report --input catalog.csv --out ./report
  catstat report --json > summary.json`,
	RunE: runReportCmd,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringP("input", "i", "", "Dataset CSV path (overrides config)")
	reportCmd.Flags().StringP("out", "o", "", "Chart output directory (overrides config)")
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	outDir, _ := cmd.Flags().GetString("out")

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

	if outDir == "" {
		outDir = cfg.Report.OutDir
	}
	writer := report.NewChartWriter(outDir, logger)
	if err := writer.WriteAll(cmd.Context(), summary); err != nil {
		return fmt.Errorf("write charts: %w", err)
	}
	logger.Info("charts written", "dir", outDir)

	if jsonOutput {
		return summary.WriteJSON(os.Stdout)
	}
	summary.WriteText(os.Stdout)
	return nil
}
