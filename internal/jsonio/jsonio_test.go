package jsonio

import "testing"

func TestExtractText(t *testing.T) {
	text, err := ExtractText([]byte(`{"text": "توفي رجل"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "توفي رجل" {
		t.Errorf("got %q", text)
	}
}

func TestExtractText_MissingField(t *testing.T) {
	if _, err := ExtractText([]byte(`{"other": 1}`)); err == nil {
		t.Fatal("expected an error for missing text field")
	}
}

func TestExtractText_InvalidJSON(t *testing.T) {
	if _, err := ExtractText([]byte(`not json`)); err == nil {
		t.Fatal("expected an error for invalid JSON")
	}
}

func TestMergeResultInto(t *testing.T) {
	doc := []byte(`{"results": []}`)
	out, err := MergeResultInto(doc, "results", map[string]string{"id": "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty merged document")
	}
}
