// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	LogLevel string        `toml:"log_level"`
	Dataset  DatasetConfig `toml:"dataset"`
	Report   ReportConfig  `toml:"report"`
	Dupes    DupesConfig   `toml:"dupes"`
}

type DatasetConfig struct {
	Path      string `toml:"path"`
	RemoteURL string `toml:"remote_url"`
}

type ReportConfig struct {
	OutDir        string `toml:"out_dir"`
	TopN          int    `toml:"top_n"`
	BinMinutes    int    `toml:"bin_minutes"`
	MinWordLength int    `toml:"min_word_length"`
	KeepStopwords bool   `toml:"keep_stopwords"`
}

type DupesConfig struct {
	Threshold float64 `toml:"threshold"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Dataset.Path == "" {
		c.Dataset.Path = "./data/catalog.csv"
	}
	if c.Report.OutDir == "" {
		c.Report.OutDir = "./report"
	}
	if c.Report.TopN == 0 {
		c.Report.TopN = 10
	}
	if c.Report.BinMinutes == 0 {
		c.Report.BinMinutes = 20
	}
	if c.Report.MinWordLength == 0 {
		c.Report.MinWordLength = 3
	}
	if c.Dupes.Threshold == 0 {
		c.Dupes.Threshold = 0.93
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
