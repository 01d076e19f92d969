// Package orchestrator composes the Heir Detector and Share Calculator into
// the single entry point the CLI and any other caller uses, adapted from
// the teacher's pipeline.Run composition of its own fetch/parse/calculate
// stages.
package orchestrator

import (
	"mawarith.dev/inheritance-calculator/internal/calculator"
	"mawarith.dev/inheritance-calculator/internal/detector"
	"mawarith.dev/inheritance-calculator/internal/logging"
	"mawarith.dev/inheritance-calculator/internal/model"
	"mawarith.dev/inheritance-calculator/internal/trace"
)

// HeirResult is one heir's resolved outcome, shaped for direct
// serialization (spec §6: stable kind tags, fraction and rounded percent).
type HeirResult struct {
	Kind        string  `json:"kind"`
	DisplayName string  `json:"display_name"`
	Blocked     bool    `json:"blocked"`
	Fraction    string  `json:"fraction"`
	Percent     float64 `json:"percent"`
}

// Envelope is the full result of evaluating one input text.
type Envelope struct {
	DecedentGender string       `json:"decedent_gender"`
	Heirs          []HeirResult `json:"heirs"`
	Reasoning      []string     `json:"reasoning"`
	Warning        string       `json:"warning,omitempty"`
}

// Orchestrator owns the long-lived Detector (and its possibly-customized
// pattern table) used across every Evaluate call.
type Orchestrator struct {
	detector *detector.Detector
}

// New builds an Orchestrator whose Detector is customized with the given
// pattern-overrides JSON (nil/empty for none). The only error this can
// return comes from malformed overrides JSON supplied at startup — an
// ambient configuration failure, not a property of any particular input
// text (spec §7: the domain pipeline itself never errors on a given text).
func New(overridesJSON []byte) (*Orchestrator, error) {
	d, err := detector.New(overridesJSON)
	if err != nil {
		return nil, err
	}
	return &Orchestrator{detector: d}, nil
}

// NewDefault builds an Orchestrator with the built-in pattern table only.
func NewDefault() *Orchestrator {
	return &Orchestrator{detector: detector.NewDefault()}
}

// Evaluate runs the full detect-then-calculate pipeline over one input
// text. It never returns an error: an empty heir list or a non-unity
// distribution are reported as data on the Envelope (spec §7), not failures.
func (o *Orchestrator) Evaluate(text string) Envelope {
	logging.Info("evaluating input text (%d runes)", len([]rune(text)))

	gender, heirs := o.detector.Detect(text)
	result := calculator.Calculate(gender, heirs)

	env := Envelope{
		DecedentGender: gender.String(),
		Heirs:          toHeirResults(result.Heirs),
		Reasoning:      trace.Render(result.Trace.Records()),
	}
	if result.Warning != nil {
		logging.Warn("distribution warning: %s", result.Warning.Message)
		env.Warning = result.Warning.Message
	}
	return env
}

func toHeirResults(heirs []*model.Heir) []HeirResult {
	out := make([]HeirResult, 0, len(heirs))
	for _, h := range heirs {
		out = append(out, HeirResult{
			Kind:        h.Kind.Tag(),
			DisplayName: h.DisplayName,
			Blocked:     h.Blocked,
			Fraction:    h.Share.String(),
			Percent:     h.Share.Percent(),
		})
	}
	return out
}
