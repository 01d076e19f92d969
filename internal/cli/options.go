// Package cli resolves command-line flags into the canonical Options the
// mawarith entrypoint runs with, adapted from the teacher's pflag-based
// ParseOptions (same flag/env/config resolution order, trimmed to this
// domain's input surface: one free-form Arabic text, however it arrives).
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"mawarith.dev/inheritance-calculator/internal/config"
)

// Options is the canonical representation of all runtime parameters for one
// mawarith invocation.
type Options struct {
	Text                 string
	TextFile             string
	InputJSON            string
	Format               string
	Output               string
	PatternOverridesPath string
	NoColor              bool
}

// ParseOptions parses CLI flags and resolves each parameter from CLI, then
// config (which itself falls back to environment variables and a JSON
// config file), matching the teacher's CLI-then-config resolution order.
func ParseOptions(args []string) (Options, error) {
	flags := pflag.NewFlagSet("mawarith", pflag.ContinueOnError)

	var opts Options
	flags.StringVar(&opts.Text, "text", "", "Arabic description of the decedent and survivors")
	flags.StringVar(&opts.TextFile, "text-file", "", "path to a file containing the Arabic text")
	flags.StringVar(&opts.InputJSON, "input-json", "", `path to a JSON document with a "text" field`)
	flags.StringVar(&opts.Format, "format", "", "output format: json, csv, or text (optional)")
	flags.StringVar(&opts.Output, "output", "", "output file path (optional, default stdout)")
	flags.StringVar(&opts.PatternOverridesPath, "pattern-overrides", "", "path to a JSON document of additional detector synonyms")
	flags.BoolVar(&opts.NoColor, "no-color", false, "do not wrap a terminal stdout in the ANSI-aware writer")

	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	if err := validateInputExclusivity(opts); err != nil {
		return opts, err
	}

	if opts.Format == "" {
		opts.Format = config.GetString(config.DefaultOutputFormatKey)
	}
	if opts.PatternOverridesPath == "" {
		opts.PatternOverridesPath = config.GetString(config.PatternOverridesPathKey)
	}

	switch opts.Format {
	case "json", "csv", "text":
	default:
		return opts, fmt.Errorf("invalid --format %q: must be json, csv, or text", opts.Format)
	}

	return opts, nil
}

// validateInputExclusivity enforces that exactly one of --text, --text-file,
// --input-json is supplied: the three are mutually exclusive sources for the
// same single string the core consumes.
func validateInputExclusivity(opts Options) error {
	count := 0
	for _, v := range []string{opts.Text, opts.TextFile, opts.InputJSON} {
		if v != "" {
			count++
		}
	}
	switch count {
	case 0:
		return errors.New("one of --text, --text-file, or --input-json is required")
	case 1:
		return nil
	default:
		return errors.New("--text, --text-file, and --input-json are mutually exclusive")
	}
}

// PrintHelp prints the usage/help text for the CLI.
func PrintHelp() {
	fmt.Fprintf(os.Stderr, `Usage: mawarith [OPTIONS]

Options:
  --text                Arabic description of the decedent and survivors
  --text-file           path to a file containing the Arabic text
  --input-json          path to a JSON document with a "text" field
  --format              output format: json, csv, or text (optional)
  --output              output file path (optional, default stdout)
  --pattern-overrides   path to a JSON document of additional detector synonyms
  --no-color            do not wrap a terminal stdout in the ANSI-aware writer
`)
}
