// Package jsonio wraps gjson/sjson for the schema-free JSON access the CLI
// needs: pulling a free-form text field out of a request document whose
// other fields are ignored, and appending a value to an array inside an
// existing JSON document. Documents that are not valid JSON are rejected
// with an error.
package jsonio

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ExtractText pulls the "text" field out of a JSON document of the shape
// {"text": "..."}. Returns an error if the document is not valid JSON or
// the field is missing, since a caller asking for --input-json deserves a
// clear failure rather than silently evaluating an empty string.
func ExtractText(doc []byte) (string, error) {
	if !gjson.ValidBytes(doc) {
		return "", fmt.Errorf("jsonio: input is not valid JSON")
	}
	result := gjson.GetBytes(doc, "text")
	if !result.Exists() {
		return "", fmt.Errorf(`jsonio: input JSON has no "text" field`)
	}
	return result.String(), nil
}

// MergeResultInto appends value to the JSON array at arrayPath inside doc and
// returns the updated document, without unmarshaling and remarshaling the
// whole document.
func MergeResultInto(doc []byte, arrayPath string, value interface{}) ([]byte, error) {
	out, err := sjson.SetBytes(doc, arrayPath+".-1", value)
	if err != nil {
		return nil, fmt.Errorf("jsonio: merge failed: %w", err)
	}
	return out, nil
}
