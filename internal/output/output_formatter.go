// Package output serializes an orchestrator.Envelope for the CLI, in JSON,
// CSV, or a plain-text report, adapted from the teacher's
// FormatOutput (same format switch, same file-vs-stdout writer selection).
package output

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mawarith.dev/inheritance-calculator/internal/logging"
	"mawarith.dev/inheritance-calculator/internal/orchestrator"
)

// FormatOutput serializes an Envelope as JSON, CSV, or text and writes it to
// file or stdout. If outFile is empty, writes to out (or stdout if out is
// nil).
func FormatOutput(env orchestrator.Envelope, format, outFile string, out io.Writer) error {
	logging.Info("formatting output: format=%s, outFile=%s", format, outFile)
	switch format {
	case "json", "csv", "text":
	default:
		logging.Error("unsupported output format: %s", format)
		return errors.New("unsupported format: must be 'json', 'csv', or 'text'")
	}

	var w io.Writer
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			logging.Error("failed to create output file: %v", err)
			return err
		}
		defer f.Close()
		logging.Info("writing output to file: %s", outFile)
		w = f
	} else if out != nil {
		w = out
	} else {
		w = os.Stdout
	}

	switch format {
	case "json":
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		if err := e.Encode(env); err != nil {
			logging.Error("failed to encode output as JSON: %v", err)
			return err
		}
		return nil
	case "csv":
		return writeCSV(env, w)
	default:
		return writeText(env, w)
	}
}

func writeCSV(env orchestrator.Envelope, w io.Writer) error {
	csvw := csv.NewWriter(w)
	defer csvw.Flush()
	csvw.Write([]string{"decedent_gender", env.DecedentGender})
	csvw.Write([]string{"kind", "display_name", "blocked", "fraction", "percent"})
	for _, h := range env.Heirs {
		csvw.Write([]string{
			h.Kind, h.DisplayName, fmt.Sprintf("%v", h.Blocked), h.Fraction, fmt.Sprintf("%v", h.Percent),
		})
	}
	if env.Warning != "" {
		csvw.Write([]string{"warning", env.Warning})
	}
	return nil
}

func writeText(env orchestrator.Envelope, w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Decedent: %s\n\n", env.DecedentGender)
	for _, h := range env.Heirs {
		status := ""
		if h.Blocked {
			status = " (excluded)"
		}
		fmt.Fprintf(&b, "%-20s %-20s %6s  %5.2f%%%s\n", h.Kind, h.DisplayName, h.Fraction, h.Percent, status)
	}
	if env.Warning != "" {
		fmt.Fprintf(&b, "\nWarning: %s\n", env.Warning)
	}
	if len(env.Reasoning) > 0 {
		b.WriteString("\nReasoning:\n")
		for _, line := range env.Reasoning {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
