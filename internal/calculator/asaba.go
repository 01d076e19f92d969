package calculator

import (
	"mawarith.dev/inheritance-calculator/internal/model"
	"mawarith.dev/inheritance-calculator/internal/rational"
	"mawarith.dev/inheritance-calculator/internal/trace"
)

// applyAsaba distributes whatever remains of the estate after furūḍ to the
// first non-empty ʿaṣaba priority group (spec §4.2 pass 4): descendants,
// then ascendants, then full siblings, then paternal siblings. Exactly one
// group ever receives the residue — ʿaṣaba groups are mutually exclusive by
// construction, since each group's eligibility already implies the previous
// groups are empty.
func (c *ctx) applyAsaba() {
	residue := c.residue()
	if residue.Cmp(rational.Zero()) <= 0 {
		return
	}

	if c.distributeDescendantAsaba(residue) {
		return
	}
	if c.distributeAscendantAsaba(residue) {
		return
	}
	if c.distributeSiblingAsaba(residue, model.FullBrother, model.FullSister, "full") {
		return
	}
	if c.distributeSiblingAsaba(residue, model.PaternalBrother, model.PaternalSister, "paternal") {
		return
	}
	// No ʿaṣaba stands: the residue is left unassigned and will surface as
	// a DistributionWarning (spec §7) rather than being silently dropped or
	// redistributed — ʿawl/radd rebalancing is explicitly out of scope.
}

func (c *ctx) residue() rational.Fraction {
	total := rational.Zero()
	for _, h := range c.heirs {
		if !h.Blocked {
			total = total.Add(h.Share)
		}
	}
	return rational.New(1, 1).Sub(total)
}

// distributeDescendantAsaba handles the son(s)-with-daughter(s) group: a son
// always stands as ʿaṣaba, pulling any daughters in at a 2:1 ratio rather
// than leaving them to their furūḍ share.
func (c *ctx) distributeDescendantAsaba(residue rational.Fraction) bool {
	sons := c.unblocked(model.Son)
	if len(sons) == 0 {
		return false
	}
	daughters := c.unblocked(model.Daughter)
	units := int64(len(sons)*2 + len(daughters))
	unit := residue.DivInt(units)
	for _, h := range sons {
		h.Share = unit.MulInt(2)
	}
	for _, h := range daughters {
		h.Share = unit
	}
	all := append(append([]*model.Heir{}, sons...), daughters...)
	c.record(trace.PassResidue, "descendant_asaba", all,
		"residue %s split 2:1 between %d son(s) and %d daughter(s)", residue.String(), len(sons), len(daughters))
	return true
}

// distributeAscendantAsaba gives the remaining estate to father, or
// grandfather in his absence, adding to whatever fixed 1/6 he may already
// hold.
func (c *ctx) distributeAscendantAsaba(residue rational.Fraction) bool {
	ascendant := c.unblocked(model.Father)
	kind := "father"
	if len(ascendant) == 0 {
		ascendant = c.unblocked(model.Grandfather)
		kind = "grandfather"
	}
	if len(ascendant) == 0 {
		return false
	}
	h := ascendant[0]
	h.Share = h.Share.Add(residue)
	c.record(trace.PassResidue, kind+"_asaba", ascendant, "%s takes remaining residue %s as ʿaṣaba", kind, residue.String())
	return true
}

// distributeSiblingAsaba handles a Full or Paternal brother/sister pair at
// the same 2:1 ratio as sons and daughters. It only fires when the brother
// kind is present — a lone sister group was already settled by furūḍ.
func (c *ctx) distributeSiblingAsaba(residue rational.Fraction, brotherKind, sisterKind model.Relation, label string) bool {
	brothers := c.unblocked(brotherKind)
	if len(brothers) == 0 {
		return false
	}
	sisters := c.unblocked(sisterKind)
	units := int64(len(brothers)*2 + len(sisters))
	unit := residue.DivInt(units)
	for _, h := range brothers {
		h.Share = unit.MulInt(2)
	}
	for _, h := range sisters {
		h.Share = unit
	}
	all := append(append([]*model.Heir{}, brothers...), sisters...)
	c.record(trace.PassResidue, label+"_sibling_asaba", all,
		"residue %s split 2:1 between %d %s brother(s) and %d %s sister(s)", residue.String(), len(brothers), label, len(sisters), label)
	return true
}
