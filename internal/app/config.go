package app

import (
	"errors"
	"fmt"
)

// Report formats.
const (
	ReportTable = "table"
	ReportNone  = "none"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SpecPath string // .hcl and .yaml spec files

	LogFormat string
	LogLevel  string
	// Seed shuffles sibling declarations. Zero keeps declaration order.
	Seed uint64
	// DryRun prints the compiled plans instead of running them.
	DryRun bool
	Report string
	// MetricsPort serves /metrics and /health while specs run. 0 disables it.
	MetricsPort int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.SpecPath == "" {
		return nil, errors.New("SpecPath is a required configuration field and cannot be empty")
	}
	if cfg.Report == "" {
		cfg.Report = ReportTable
	}
	if cfg.Report != ReportTable && cfg.Report != ReportNone {
		return nil, fmt.Errorf("invalid report format '%s': must be '%s' or '%s'", cfg.Report, ReportTable, ReportNone)
	}
	if cfg.MetricsPort < 0 {
		return nil, errors.New("MetricsPort cannot be negative")
	}
	return &cfg, nil
}
