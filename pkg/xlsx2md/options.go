// Package xlsx2md converts test-documentation workbooks into a tree of
// templated text documents.
package xlsx2md

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the format of the date header field.
const DateLayout = "2006-01-02"

// Options configures a conversion.
type Options struct {
	// TemplateDir holds TestCase.mustache, TestSpecification.mustache and
	// ExperimentSpecification.mustache.
	TemplateDir string `yaml:"templates"`
	// Extension is the output file extension without the dot.
	Extension string `yaml:"extension"`
	// Filter is an optional expression selecting records, e.g.
	// `kind != "Experiment Specification"`.
	Filter string `yaml:"filter"`
	// Date overrides the date header field (YYYY-MM-DD).
	// If empty, the input file's modification date is used.
	Date string `yaml:"date"`
	// DryRun plans the output without rendering or writing files.
	DryRun bool `yaml:"-"`
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		TemplateDir: "templates",
		Extension:   "md",
	}
}

// LoadConfig reads options from a YAML file on top of the defaults.
// Keys left out of the file keep their default value.
func LoadConfig(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("config %s: %w", path, err)
	}
	return opts, nil
}

// Validate checks option values that can be checked without the input.
func (o Options) Validate() error {
	if o.Date != "" {
		if _, err := time.Parse(DateLayout, o.Date); err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", o.Date)
		}
	}
	if o.Extension == "" {
		return fmt.Errorf("extension must not be empty")
	}
	return nil
}

// RunDate returns the date header value for the input file.
func (o Options) RunDate(inputPath string) (string, error) {
	if o.Date != "" {
		return o.Date, nil
	}
	info, err := os.Stat(inputPath)
	if err != nil {
		return "", err
	}
	return info.ModTime().Format(DateLayout), nil
}
