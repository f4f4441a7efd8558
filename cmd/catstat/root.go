package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "catstat",
	Short: "Descriptive statistics for streaming-catalog exports",
	Long: `catstat - descriptive statistics for streaming-catalog exports

Loads a catalog CSV, cleans missing fields, derives date and duration
features, and reports type, country, genre, actor, and trend breakdowns
as console output and HTML charts.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "catstat.toml", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("catstat {{.Version}}\n")
}
