// Package trace builds the derivation trace as small structured records and
// renders them into the strings surfaced in the `reasoning` output field,
// kept separate from the rule logic that produces them (spec §9, "Trace as
// first-class output"). The detail strings are English; heir display names
// inside them are Arabic. No Qurʾānic verse citations are included.
package trace

import "fmt"

// Pass names, used both internally for grouping and as the Record.Pass value.
const (
	PassHijab      = "hijab"
	PassSpecial    = "umariyyatan"
	PassFurud      = "furud"
	PassResidue    = "asaba"
)

// Record is one rule firing: which pass, which rule, which heirs it touched,
// and a human-readable detail string (English text, without verse
// citations).
type Record struct {
	Pass   string
	Rule   string
	Heirs  []string
	Detail string
}

// Trace is an append-only ordered sequence of Records, built over the
// lifetime of one Calculate call and never mutated afterward.
type Trace struct {
	records []Record
}

// New returns an empty Trace.
func New() *Trace {
	return &Trace{}
}

// Add appends one Record to the trace.
func (t *Trace) Add(r Record) {
	t.records = append(t.records, r)
}

// Addf appends a Record built from a printf-style detail string, mirroring
// the teacher's logging.Info("...", args...) call shape.
func (t *Trace) Addf(pass, rule string, heirs []string, format string, args ...interface{}) {
	t.Add(Record{Pass: pass, Rule: rule, Heirs: heirs, Detail: fmt.Sprintf(format, args...)})
}

// Records returns the accumulated records in firing order.
func (t *Trace) Records() []Record {
	return t.records
}

// Render formats each record into the single human-readable line surfaced
// in the `reasoning` output field. Emoji markers are cosmetic, per spec §6,
// so the pass is tagged with a small glyph purely for readability.
func Render(records []Record) []string {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		glyph := passGlyph(r.Pass)
		if len(r.Heirs) == 0 {
			lines = append(lines, fmt.Sprintf("%s %s", glyph, r.Detail))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s (%v)", glyph, r.Detail, r.Heirs))
	}
	return lines
}

func passGlyph(pass string) string {
	switch pass {
	case PassHijab:
		return "🚫"
	case PassSpecial:
		return "⭐"
	case PassFurud:
		return "📖"
	case PassResidue:
		return "➗"
	default:
		return "•"
	}
}
