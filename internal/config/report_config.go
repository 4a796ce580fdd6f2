package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// ReportConfig is the optional per-report YAML configuration. CLI flags
// take precedence over values set here.
type ReportConfig struct {
	// Customer names the report owner; it appears in the workbook title
	// and on the summary sheet.
	Customer string `yaml:"customer"`
	// Lenient makes malformed records logged skips instead of aborting
	// the run.
	Lenient bool `yaml:"lenient"`
	// HiddenLanguages lists tracked languages whose columns start out
	// hidden in the workbook.
	HiddenLanguages []string `yaml:"hidden_languages"`
	// TableStyle overrides the built-in style of the scans table, for
	// example "TableStyleLight1".
	TableStyle string `yaml:"table_style"`
}

// LoadReportConfig parses a report configuration file.
func LoadReportConfig(path string) (*ReportConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report config %s: %w", path, err)
	}
	var cfg ReportConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode report config %s: %w", path, err)
	}
	return &cfg, nil
}
