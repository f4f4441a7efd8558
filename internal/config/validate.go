package config

import (
	"fmt"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Sprintf("log_level: must be one of debug, info, warn, error; got %q", c.LogLevel))
	}

	if c.Dataset.Path == "" {
		errs = append(errs, "dataset.path: required")
	}

	if c.Report.TopN < 1 {
		errs = append(errs, fmt.Sprintf("report.top_n: must be positive, got %d", c.Report.TopN))
	}
	if c.Report.BinMinutes < 1 {
		errs = append(errs, fmt.Sprintf("report.bin_minutes: must be positive, got %d", c.Report.BinMinutes))
	}
	if c.Report.MinWordLength < 1 {
		errs = append(errs, fmt.Sprintf("report.min_word_length: must be positive, got %d", c.Report.MinWordLength))
	}

	if c.Dupes.Threshold <= 0 || c.Dupes.Threshold > 1 {
		errs = append(errs, fmt.Sprintf("dupes.threshold: must be in (0, 1], got %g", c.Dupes.Threshold))
	}

	return errs
}
