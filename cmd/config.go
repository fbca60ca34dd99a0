package cmd

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config is the part of the configuration read from the environment.
// Global flags take precedence.
type Config struct {
	Dataset string `env:"HAC_DATASET"`
	Site    string `env:"HAC_SITE"`
	Plain   bool   `env:"HAC_PLAIN"`
	Verbose bool   `env:"HAC_VERBOSE"`
	Width   int    `env:"HAC_WIDTH" envDefault:"100"`
}

// wordWrap is the width of the styled markdown output.
var wordWrap = 100

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// Configure merges the environment into the global flags, then installs the
// default logger. It must be called after the flags are parsed.
func Configure() error {
	c, err := LoadConfig()
	if err != nil {
		return err
	}
	if *datasetFile == "" {
		*datasetFile = c.Dataset
	}
	if *siteFile == "" {
		*siteFile = c.Site
	}
	*plain = *plain || c.Plain
	*Verbose = *Verbose || c.Verbose
	if c.Width > 0 {
		wordWrap = c.Width
	}
	slog.SetDefault(NewLogger(*Verbose))
	return nil
}
