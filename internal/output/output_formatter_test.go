package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mawarith.dev/inheritance-calculator/internal/orchestrator"
)

func sampleEnvelope() orchestrator.Envelope {
	return orchestrator.Envelope{
		DecedentGender: "male",
		Heirs: []orchestrator.HeirResult{
			{Kind: "wife", DisplayName: "Wife", Blocked: false, Fraction: "1/8", Percent: 12.5},
			{Kind: "son", DisplayName: "Son", Blocked: false, Fraction: "7/8", Percent: 87.5},
		},
		Reasoning: []string{"wife takes 1/8 (furud, children present)"},
	}
}

func TestFormatOutput_RejectsUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := FormatOutput(sampleEnvelope(), "xml", "", &buf)
	if err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestFormatOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatOutput(sampleEnvelope(), "json", "", &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded orchestrator.Envelope
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("expected valid JSON, got error %v: %q", err, buf.String())
	}
	if decoded.DecedentGender != "male" {
		t.Errorf("expected decedent_gender 'male', got %q", decoded.DecedentGender)
	}
	if len(decoded.Heirs) != 2 {
		t.Errorf("expected 2 heirs, got %d", len(decoded.Heirs))
	}
}

func TestFormatOutput_CSV(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatOutput(sampleEnvelope(), "csv", "", &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "male") {
		t.Errorf("expected decedent_gender row, got: %q", out)
	}
	if !strings.Contains(out, "wife") || !strings.Contains(out, "son") {
		t.Errorf("expected heir rows for wife and son, got: %q", out)
	}
}

func TestFormatOutput_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatOutput(sampleEnvelope(), "text", "", &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Decedent: male") {
		t.Errorf("expected a decedent line, got: %q", out)
	}
	if !strings.Contains(out, "Reasoning:") {
		t.Errorf("expected a reasoning section, got: %q", out)
	}
}

func TestFormatOutput_TextShowsWarningAndExcludedHeirs(t *testing.T) {
	env := sampleEnvelope()
	env.Warning = "shares sum to 7/8, not 1"
	env.Heirs = append(env.Heirs, orchestrator.HeirResult{
		Kind: "paternal_brother", DisplayName: "Paternal brother", Blocked: true, Fraction: "0", Percent: 0,
	})
	var buf bytes.Buffer
	if err := FormatOutput(env, "text", "", &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Warning:") {
		t.Errorf("expected a warning line, got: %q", out)
	}
	if !strings.Contains(out, "(excluded)") {
		t.Errorf("expected the blocked heir to be marked excluded, got: %q", out)
	}
}

func TestFormatOutput_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.json")
	if err := FormatOutput(sampleEnvelope(), "json", path, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected output file to exist: %v", err)
	}
	var decoded orchestrator.Envelope
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("expected valid JSON in output file, got error %v: %q", err, string(data))
	}
}
