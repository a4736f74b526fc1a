package model

import (
	"runtime"
	"time"
)

// Config holds all settings for the betacode tool
type Config struct {
	Convert ConvertConfig `yaml:"convert" json:"convert"`
	Lint    LintConfig    `yaml:"lint" json:"lint"`
	Batch   BatchConfig   `yaml:"batch" json:"batch"`
	Output  OutputConfig  `yaml:"output" json:"output"`
}

// ConvertConfig controls the conversion pipeline
type ConvertConfig struct {
	Force bool `yaml:"force" json:"force"` // convert without validating first
	HTML  bool `yaml:"html" json:"html"`   // parse input as HTML and convert text nodes only
}

// LintConfig controls lint report output
type LintConfig struct {
	Format string `yaml:"format" json:"format"` // report format: "json" or "yaml"
}

// BatchConfig controls concurrent corpus processing
type BatchConfig struct {
	Concurrency  int           `yaml:"concurrency" json:"concurrency"`     // number of concurrent workers
	OutputDir    string        `yaml:"output_dir" json:"output_dir"`       // where converted files are written
	Extensions   []string      `yaml:"extensions" json:"extensions"`       // file extensions picked up from directories
	CacheEnabled bool          `yaml:"cache_enabled" json:"cache_enabled"` // memoize repeated lines
	CacheTTL     time.Duration `yaml:"cache_ttl" json:"cache_ttl"`         // how long memoized lines live
}

// OutputConfig controls diagnostics
type OutputConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Convert: ConvertConfig{
			Force: false,
			HTML:  false,
		},
		Lint: LintConfig{
			Format: "json",
		},
		Batch: BatchConfig{
			Concurrency:  runtime.NumCPU(),
			OutputDir:    "./converted",
			Extensions:   []string{".txt", ".bc", ".html"},
			CacheEnabled: true,
			CacheTTL:     30 * time.Minute,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
