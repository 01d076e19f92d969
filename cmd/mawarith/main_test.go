package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCLI_MissingInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exitCode := RunCLI([]string{}, &stdout, &stderr)
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit code for missing input")
	}
	if !strings.Contains(stderr.String(), "Error") {
		t.Errorf("expected an error message on stderr, got: %q", stderr.String())
	}
}

func TestRunCLI_TextFlagProducesJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exitCode := RunCLI([]string{"--text", "توفي رجل وترك زوجة وابن وبنت"}, &stdout, &stderr)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d, stderr=%q", exitCode, stderr.String())
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(stdout.Bytes(), &decoded); err != nil {
		t.Fatalf("expected valid JSON output, got error %v: %q", err, stdout.String())
	}
	if decoded["decedent_gender"] != "male" {
		t.Errorf("expected male decedent, got %v", decoded["decedent_gender"])
	}
}

func TestRunCLI_TextFileInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("توفي رجل وترك زوجة"), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	exitCode := RunCLI([]string{"--text-file", path, "--format", "text"}, &stdout, &stderr)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d, stderr=%q", exitCode, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Decedent") {
		t.Errorf("expected text report, got: %q", stdout.String())
	}
}

func TestRunCLI_InputJSONSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.json")
	if err := os.WriteFile(path, []byte(`{"text": "توفي رجل وترك زوجة"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	exitCode := RunCLI([]string{"--input-json", path}, &stdout, &stderr)
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d, stderr=%q", exitCode, stderr.String())
	}
}

func TestRunCLI_RejectsBadPatternOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overrides.json")
	if err := os.WriteFile(path, []byte(`not json`), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	exitCode := RunCLI([]string{"--text", "a", "--pattern-overrides", path}, &stdout, &stderr)
	if exitCode == 0 {
		t.Fatal("expected non-zero exit code for malformed pattern overrides")
	}
}
