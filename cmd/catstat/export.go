package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/catstat/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the cleaned dataset",
}

var exportSqliteCmd = &cobra.Command{
	Use:   "sqlite",
	Short: "Write the cleaned and extracted table to a SQLite file",
	Long: `Write the cleaned and extracted table to a SQLite file for ad-hoc
querying.

Examples:
  catstat export sqlite --db catalog.db
  catstat export sqlite --input catalog.csv --db catalog.db`,
	RunE: runExportSqliteCmd,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportSqliteCmd)
	exportSqliteCmd.Flags().StringP("input", "i", "", "Dataset CSV path (overrides config)")
	exportSqliteCmd.Flags().String("db", "catalog.db", "SQLite database path")
}

func runExportSqliteCmd(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	dbPath, _ := cmd.Flags().GetString("db")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	rows, _, _, err := runPipeline(cmd.Context(), cfg, logger, input)
	if err != nil {
		return err
	}

	store, err := export.Open(cmd.Context(), dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	n, err := store.Insert(cmd.Context(), rows)
	if err != nil {
		return err
	}
	fmt.Printf("exported %d records to %s\n", n, dbPath)
	return nil
}
