// Command mawarith is the CLI entrypoint for the inheritance-share engine:
// a thin caller of internal/orchestrator, adapted from the teacher's
// cmd/risk-calculator entrypoint (config validation, option parsing,
// pipeline invocation, output formatting, in that order).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"mawarith.dev/inheritance-calculator/internal/cli"
	"mawarith.dev/inheritance-calculator/internal/config"
	"mawarith.dev/inheritance-calculator/internal/jsonio"
	"mawarith.dev/inheritance-calculator/internal/logging"
	"mawarith.dev/inheritance-calculator/internal/orchestrator"
	"mawarith.dev/inheritance-calculator/internal/output"
)

// RunCLI parses arguments, resolves the input text, runs the detector and
// calculator, and writes formatted output. Returns the process exit code.
func RunCLI(args []string, stdout, stderr io.Writer) int {
	logging.Info("mawarith CLI started with args: %v", args)

	opts, err := cli.ParseOptions(args)
	if err != nil {
		logging.Error("option error: %v", err)
		logAndStderr(stderr, "Error: %v", err)
		cli.PrintHelp()
		return 1
	}

	text, err := resolveText(opts)
	if err != nil {
		logging.Error("input error: %v", err)
		logAndStderr(stderr, "Error: %v", err)
		return 1
	}

	var overridesJSON []byte
	if opts.PatternOverridesPath != "" {
		overridesJSON, err = os.ReadFile(opts.PatternOverridesPath)
		if err != nil {
			logAndStderr(stderr, "Error: failed to read --pattern-overrides file: %v", err)
			return 1
		}
	}

	orc, err := orchestrator.New(overridesJSON)
	if err != nil {
		logAndStderr(stderr, "Error: %v", err)
		return 1
	}

	env := orc.Evaluate(text)
	if env.Warning != "" {
		logging.Warn("distribution warning: %s", env.Warning)
	}

	w := colorableWriter(stdout, opts)
	if err := output.FormatOutput(env, opts.Format, opts.Output, w); err != nil {
		logging.Error("output error: %v", err)
		logAndStderr(stderr, "Error: %v", err)
		return 1
	}

	logging.Info("mawarith CLI exiting")
	return 0
}

// resolveText picks the one of --text/--text-file/--input-json that
// cli.ParseOptions validated as mutually exclusive and reads it into a
// plain string.
func resolveText(opts cli.Options) (string, error) {
	switch {
	case opts.Text != "":
		return opts.Text, nil
	case opts.TextFile != "":
		data, err := os.ReadFile(opts.TextFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(opts.InputJSON)
		if err != nil {
			return "", err
		}
		return jsonio.ExtractText(data)
	}
}

// colorableWriter wraps stdout with a Windows-safe ANSI-aware writer when
// writing text format to an actual terminal, grounded on the teacher
// lineage's mattn/go-isatty + mattn/go-colorable pairing for terminal
// output. JSON/CSV output and non-TTY destinations (pipes, files) get stdout
// unwrapped. The text report itself contains no ANSI color codes.
func colorableWriter(stdout io.Writer, opts cli.Options) io.Writer {
	if opts.Output != "" || opts.Format != "text" || opts.NoColor {
		return stdout
	}
	if f, ok := stdout.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return colorable.NewColorable(f)
	}
	return stdout
}

func logAndStderr(stderr io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(stderr, format+"\n", args...)
}

func main() {
	_ = config.Validate()
	os.Exit(RunCLI(os.Args[1:], os.Stdout, os.Stderr))
}
