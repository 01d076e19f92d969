// Package detector implements the deterministic Heir Detector: a pure,
// regex-driven text-pattern extractor that turns a free-form Arabic
// description of a deceased person's survivors into a decedent gender and an
// ordered list of candidate heirs (spec §4.1). It never performs share
// arithmetic; that is internal/calculator's job.
package detector

import (
	"fmt"

	"github.com/tidwall/gjson"

	"mawarith.dev/inheritance-calculator/internal/model"
)

// walkOrder is the fixed kind-evaluation order (spec §4.1: "heirs are
// emitted in a fixed per-kind order, not input order"), chosen to match the
// degree-of-closeness groupings in the glossary: spouse, children and their
// descendants, grandfather and parents, then siblings by tie strength.
var walkOrder = []model.Relation{
	model.Husband, model.Wife,
	model.Son, model.Daughter,
	model.SonsDaughter, model.DaughtersDaughter,
	model.Grandfather, model.Father, model.Mother,
	model.FullBrother, model.FullSister,
	model.PaternalBrother, model.PaternalSister,
	model.MaternalBrother, model.MaternalSister,
}

// Detector holds an immutable pattern table (spec §5) built once at
// construction time and shared across every Detect call.
type Detector struct {
	table  map[model.Relation][]Rule
	labels map[model.Relation]string
}

// NewDefault returns a Detector using the built-in Arabic pattern table with
// no overrides.
func NewDefault() *Detector {
	return &Detector{table: defaultTable(), labels: copyLabels()}
}

// New returns a Detector whose pattern table is the built-in table merged
// with synonym overrides supplied as a JSON document of the form
// {"kind_tag": {"label": "...", "patterns": ["...", ...]}}. Overrides add an
// extra literal-match rule to the named kind's family rather than replacing
// it, so the built-in patterns keep working even when overrides are present.
// Malformed JSON is reported as an error rather than silently ignored, since
// a broken overrides file should not fall back to defaults unnoticed.
func New(overridesJSON []byte) (*Detector, error) {
	d := &Detector{table: defaultTable(), labels: copyLabels()}
	if len(overridesJSON) == 0 {
		return d, nil
	}
	if !gjson.ValidBytes(overridesJSON) {
		return nil, fmt.Errorf("detector: invalid pattern-overrides JSON")
	}
	parsed := gjson.ParseBytes(overridesJSON)
	var walkErr error
	parsed.ForEach(func(key, value gjson.Result) bool {
		kind, ok := kindByName[key.String()]
		if !ok {
			walkErr = fmt.Errorf("detector: unknown heir kind %q in pattern overrides", key.String())
			return false
		}
		if label := value.Get("label"); label.Exists() && label.String() != "" {
			d.labels[kind] = label.String()
		}
		for _, p := range value.Get("patterns").Array() {
			d.table[kind] = append(d.table[kind], literalRule(p.String(), 1))
		}
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return d, nil
}

func copyLabels() map[model.Relation]string {
	out := make(map[model.Relation]string, len(displayLabels))
	for k, v := range displayLabels {
		out[k] = v
	}
	return out
}

// Detect runs the full extraction pipeline over text: decedent gender
// inference, then a fixed per-kind walk producing zero or more Heir records
// per kind, honoring the spouse-exclusivity and grandfather/grandmother
// gating rules from spec §4.1.
func (d *Detector) Detect(text string) (model.Sex, []*model.Heir) {
	gender := inferGender(text)

	counts := make(map[model.Relation]int, len(walkOrder))
	for _, kind := range walkOrder {
		counts[kind] = familyCount(d.table[kind], text)
	}

	// A decedent is survived by at most one spouse kind consistent with
	// their own sex: a male decedent can have a wife, a female decedent a
	// husband. The opposite-sex spouse match, if any, is a detector false
	// positive (e.g. picking up a reference to someone else's spouse) and is
	// dropped.
	if gender == model.Male {
		counts[model.Husband] = 0
	} else {
		counts[model.Wife] = 0
	}

	// Grandfather is reported only when "jadda" (grandmother) does not
	// appear anywhere in the text (spec §4.1), a global gate independent of
	// where in the text "jadd" itself matched.
	if familyCount([]Rule{literalRule(withArticle("جدة"), 1)}, text) > 0 {
		counts[model.Grandfather] = 0
	}

	var heirs []*model.Heir
	for _, kind := range walkOrder {
		n := counts[kind]
		if n <= 0 {
			continue
		}
		label := d.labels[kind]
		if n == 1 {
			heirs = append(heirs, model.NewHeir(kind, label))
			continue
		}
		for i := 1; i <= n; i++ {
			heirs = append(heirs, model.NewHeir(kind, fmt.Sprintf("%s %d", label, i)))
		}
	}

	return gender, heirs
}
