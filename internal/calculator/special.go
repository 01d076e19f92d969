package calculator

import (
	"mawarith.dev/inheritance-calculator/internal/model"
	"mawarith.dev/inheritance-calculator/internal/rational"
	"mawarith.dev/inheritance-calculator/internal/trace"
)

// applyUmariyyatan detects and resolves the two ʿUmariyyatān configurations
// (spec §4.2 pass 2): exactly a spouse, a father, and a mother, with no
// descendant and no sibling standing after hijab. In the ordinary furūḍ
// table the mother would take 1/3 of the whole estate, leaving the father
// less than double the mother's share; the ʿUmariyyatān rule instead gives
// the mother 1/3 of what remains after the spouse's share, preserving the
// father's 2:1 advantage over the mother. Returns true if it fired, in
// which case the furūḍ pass must skip Mother and Father entirely.
func (c *ctx) applyUmariyyatan() bool {
	if c.hasDescendant() {
		return false
	}
	if c.present(model.FullBrother) > 0 || c.present(model.FullSister) > 0 ||
		c.present(model.PaternalBrother) > 0 || c.present(model.PaternalSister) > 0 ||
		c.present(model.MaternalBrother) > 0 || c.present(model.MaternalSister) > 0 {
		return false
	}

	fathers := c.unblocked(model.Father)
	mothers := c.unblocked(model.Mother)
	if len(fathers) != 1 || len(mothers) != 1 {
		return false
	}

	var spouseShare rational.Fraction
	var spouseHeir *model.Heir
	switch {
	case len(c.unblocked(model.Husband)) == 1:
		spouseHeir = c.unblocked(model.Husband)[0]
		spouseShare = rational.New(1, 2)
	case len(c.unblocked(model.Wife)) == 1:
		spouseHeir = c.unblocked(model.Wife)[0]
		spouseShare = rational.New(1, 4)
	default:
		return false
	}

	spouseHeir.Share = spouseShare
	remainder := rational.New(1, 1).Sub(spouseShare)
	motherShare := remainder.DivInt(3)
	fatherShare := remainder.Sub(motherShare)

	mothers[0].Share = motherShare
	fathers[0].Share = fatherShare

	c.tr.Addf(trace.PassSpecial, "umariyyatan",
		[]string{spouseHeir.DisplayName, mothers[0].DisplayName, fathers[0].DisplayName},
		"ʿUmariyyatān applies: mother takes 1/3 of the remainder (%s) after the spouse's share, not 1/3 of the estate",
		remainder.String())
	return true
}
