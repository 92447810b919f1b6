// Package main provides the CLI entry point for xlsx2md-go.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/output"
)

var (
	configPath  string
	templateDir string
	extension   string
	filter      string
	date        string
	dryRun      bool
	jsonOut     bool
	pretty      bool
	verbose     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlsx2md <input.xlsx> [output-directory]",
		Short: "Convert test documentation workbooks to Markdown",
		Long: `xlsx2md-go extracts Test Cases, Test Specifications and Experiment
Specifications from an Excel workbook and renders them into a Markdown
content tree (index.md / _index.md per record).`,
		Args: cobra.RangeArgs(1, 2),
		RunE: run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.StringVarP(&templateDir, "templates", "t", "templates", "Directory containing the mustache templates")
	flags.StringVar(&extension, "ext", "md", "Output file extension")
	flags.StringVar(&filter, "filter", "", `Record filter expression, e.g. 'kind != "Experiment Specification"'`)
	flags.StringVar(&date, "date", "", "Date header value (YYYY-MM-DD, default: input modification date)")
	flags.BoolVar(&dryRun, "dry-run", false, "Print planned output paths without writing")
	flags.BoolVar(&jsonOut, "json", false, "Print extracted records as JSON without writing")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	setupLogging()

	inputPath := args[0]
	outDir := "."
	if len(args) > 1 {
		outDir = args[1]
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	opts.DryRun = dryRun || jsonOut

	// Validate input file exists
	if _, err := os.Stat(inputPath); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "File does not exist!")
		return nil
	}

	result, err := xlsx2md.Convert(inputPath, outDir, opts)
	if errors.Is(err, xlsx2md.ErrInputNotFound) {
		logrus.WithError(err).Debug("open input")
		fmt.Fprintln(cmd.OutOrStdout(), "File does not exist!")
		return nil
	}
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	switch {
	case jsonOut:
		data, err := output.ToJSON(result.Placements, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	case dryRun:
		for _, p := range result.Placements {
			fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(outDir, p.Dir, p.Filename+"."+opts.Extension))
		}
	default:
		logrus.WithField("files", len(result.Written)).Info("done")
	}
	return nil
}

// resolveOptions merges defaults, the config file and explicitly set flags,
// in that order of precedence.
func resolveOptions(cmd *cobra.Command) (xlsx2md.Options, error) {
	opts := xlsx2md.DefaultOptions()
	if configPath != "" {
		var err error
		if opts, err = xlsx2md.LoadConfig(configPath); err != nil {
			return opts, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("templates") || configPath == "" {
		opts.TemplateDir = templateDir
	}
	if flags.Changed("ext") || configPath == "" {
		opts.Extension = extension
	}
	if flags.Changed("filter") {
		opts.Filter = filter
	}
	if flags.Changed("date") {
		opts.Date = date
	}
	return opts, opts.Validate()
}

func setupLogging() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetOutput(os.Stderr)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}
