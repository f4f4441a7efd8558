package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/catstat/internal/catalog"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the dataset if the local file is absent",
	RunE:  runFetchCmd,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().Bool("force", false, "Re-download even if the file exists")
}

func runFetchCmd(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	if cfg.Dataset.RemoteURL == "" {
		return fmt.Errorf("dataset.remote_url not configured")
	}

	if !force {
		if _, err := os.Stat(cfg.Dataset.Path); err == nil {
			fmt.Printf("%s already exists, use --force to re-download\n", cfg.Dataset.Path)
			return nil
		}
	}

	fetcher := catalog.NewFetcher(catalog.WithLogger(logger))
	if err := fetcher.Download(cmd.Context(), cfg.Dataset.RemoteURL, cfg.Dataset.Path); err != nil {
		return err
	}
	fmt.Printf("downloaded %s\n", cfg.Dataset.Path)
	return nil
}
