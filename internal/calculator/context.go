// Package calculator implements the Share Calculator: the four-pass
// pipeline (hijab exclusion, ʿUmariyyatān override, furūḍ fixed shares,
// ʿaṣaba residue) that turns a detected heir list into final shares plus a
// structured derivation trace.
package calculator

import (
	"mawarith.dev/inheritance-calculator/internal/model"
	"mawarith.dev/inheritance-calculator/internal/trace"
)

// ctx threads the shared state through all four passes: the heirs grouped
// by kind for O(1) presence checks, the decedent's sex, and the trace being
// built up as each pass fires.
type ctx struct {
	heirs  []*model.Heir
	byKind map[model.Relation][]*model.Heir
	gender model.Sex
	tr     *trace.Trace
}

func newCtx(gender model.Sex, heirs []*model.Heir) *ctx {
	byKind := make(map[model.Relation][]*model.Heir)
	for _, h := range heirs {
		byKind[h.Kind] = append(byKind[h.Kind], h)
	}
	return &ctx{heirs: heirs, byKind: byKind, gender: gender, tr: trace.New()}
}

// present reports the number of unblocked heirs of kind still standing.
func (c *ctx) present(kind model.Relation) int {
	n := 0
	for _, h := range c.byKind[kind] {
		if !h.Blocked {
			n++
		}
	}
	return n
}

// unblocked returns the unblocked heirs of kind.
func (c *ctx) unblocked(kind model.Relation) []*model.Heir {
	var out []*model.Heir
	for _, h := range c.byKind[kind] {
		if !h.Blocked {
			out = append(out, h)
		}
	}
	return out
}

// hasDescendant reports whether any child or grandchild-in-the-female-line
// is present and unblocked. This is the broad farʿ wārith set: it governs
// where the spec itself reaches for "any descendant at all" rather than its
// narrower has_children predicate — blocking maternal siblings in the hijab
// pass (hijab.go), and the ʿUmariyyatān gate (special.go), which fires only
// when no other heir of any kind stands beside the spouse/father/mother
// trio. Furūḍ assignment (furud.go) must NOT use this; see hasChildren.
func (c *ctx) hasDescendant() bool {
	for _, k := range []model.Relation{model.Son, model.Daughter, model.SonsDaughter, model.DaughtersDaughter} {
		if c.present(k) > 0 {
			return true
		}
	}
	return false
}

// hasChildren implements the spec's has_children predicate exactly: a
// non-blocked son OR a non-blocked daughter, and nothing broader. Unlike
// hasDescendant, a son's-daughter or daughter's-daughter alone does NOT
// satisfy this — they are dhawū al-arḥām-adjacent kinds outside classical
// consensus for reducing the spouse's or mother's furūḍ share, and
// daughter's-daughter is an explicit Non-goal. This gates Wife, Husband, and
// Mother in furud.go.
func (c *ctx) hasChildren() bool {
	return c.present(model.Son) > 0 || c.present(model.Daughter) > 0
}

// hasMaleDescendant reports whether a son is present (son's son is out of
// scope, so Son is the only male-descendant kind modeled).
func (c *ctx) hasMaleDescendant() bool {
	return c.present(model.Son) > 0
}

func (c *ctx) names(heirs []*model.Heir) []string {
	out := make([]string, len(heirs))
	for i, h := range heirs {
		out[i] = h.DisplayName
	}
	return out
}
