package calculator

import (
	"mawarith.dev/inheritance-calculator/internal/model"
	"mawarith.dev/inheritance-calculator/internal/rational"
	"mawarith.dev/inheritance-calculator/internal/trace"
)

// applyFurud assigns the fixed Qurʾānic shares (spec §4.2 pass 3). umariyyatan
// reports whether the special-case pass already settled Father and Mother,
// in which case this pass must not touch them again.
func (c *ctx) applyFurud(umariyyatan bool) {
	if !umariyyatan {
		c.furudSpouse()
		c.furudParents()
	}
	c.furudFemaleDescendants()
	c.furudSiblingFurud()
}

func (c *ctx) furudSpouse() {
	if hs := c.unblocked(model.Husband); len(hs) == 1 {
		share := rational.New(1, 4)
		if !c.hasChildren() {
			share = rational.New(1, 2)
		}
		hs[0].Share = share
		c.record(trace.PassFurud, "husband", []*model.Heir{hs[0]}, "husband takes %s", share.String())
	}
	if ws := c.unblocked(model.Wife); len(ws) == 1 {
		share := rational.New(1, 8)
		if !c.hasChildren() {
			share = rational.New(1, 4)
		}
		ws[0].Share = share
		c.record(trace.PassFurud, "wife", []*model.Heir{ws[0]}, "wife takes %s", share.String())
	}
}

// furudParents handles Mother's and Father's/Grandfather's fixed portion.
// Father (or, in his absence, Grandfather) additionally claims the residue
// as ʿaṣaba in the next pass when no male descendant is present; that
// claim is NOT made here.
func (c *ctx) furudParents() {
	twoOrMoreSiblings := c.siblingCountForMotherRule() >= 2

	if ms := c.unblocked(model.Mother); len(ms) == 1 {
		share := rational.New(1, 3)
		if c.hasChildren() || twoOrMoreSiblings {
			share = rational.New(1, 6)
		}
		ms[0].Share = share
		c.record(trace.PassFurud, "mother", []*model.Heir{ms[0]}, "mother takes %s", share.String())
	}

	ascendant := c.unblocked(model.Father)
	ascendantKind := "father"
	if len(ascendant) == 0 {
		ascendant = c.unblocked(model.Grandfather)
		ascendantKind = "grandfather"
	}
	if len(ascendant) == 1 {
		if c.hasMaleDescendant() {
			// Residue goes entirely to the son(s); father/grandfather takes
			// only the fixed 1/6.
			ascendant[0].Share = rational.New(1, 6)
			c.record(trace.PassFurud, ascendantKind, ascendant, "%s takes 1/6 (male descendant present)", ascendantKind)
		} else if c.present(model.Daughter) > 0 || c.present(model.SonsDaughter) > 0 {
			// Fixed 1/6 now; the residue claim is settled in the asaba pass.
			ascendant[0].Share = rational.New(1, 6)
			c.record(trace.PassFurud, ascendantKind, ascendant, "%s takes 1/6 (female descendant present, plus residue)", ascendantKind)
		}
		// No descendant at all: father/grandfather takes the whole estate
		// as pure asaba, handled entirely by the residue pass.
	}
}

// siblingCountForMotherRule counts how many siblings (of any of the four
// kinds) survive hijab, which is what gates Mother's 1/3 -> 1/6 reduction,
// independent of whether those siblings go on to inherit anything
// themselves.
func (c *ctx) siblingCountForMotherRule() int {
	return c.present(model.FullBrother) + c.present(model.FullSister) +
		c.present(model.PaternalBrother) + c.present(model.PaternalSister) +
		c.present(model.MaternalBrother) + c.present(model.MaternalSister)
}

// furudFemaleDescendants assigns Daughter and the two granddaughter kinds
// their furūḍ share when no son (respectively no closer descendant) turns
// them into ʿaṣaba co-heirs instead.
func (c *ctx) furudFemaleDescendants() {
	if c.present(model.Son) == 0 {
		c.furudGroupShare(model.Daughter, "daughter", "daughters")
	}
	if c.present(model.Son) == 0 {
		if c.present(model.Daughter) == 1 {
			if sd := c.unblocked(model.SonsDaughter); len(sd) > 0 {
				share := rational.New(1, 6).DivInt(int64(len(sd)))
				for _, h := range sd {
					h.Share = share
				}
				c.record(trace.PassFurud, "sons_daughter", sd, "son's daughter(s) take 1/6 between them, completing the estate's 2/3 alongside one daughter")
			}
		} else if c.present(model.Daughter) == 0 {
			c.furudGroupShare(model.SonsDaughter, "sons_daughter", "sons_daughters")
		}
		// Two or more daughters already exhaust 2/3; son's daughter gets no
		// share here. Hijab does not block her in this configuration, so she
		// stays unblocked at a zero share.
	}
	if c.present(model.Son) == 0 && c.present(model.Daughter) == 0 {
		c.furudGroupShare(model.DaughtersDaughter, "daughters_daughter", "daughters_daughters")
	}
}

// furudGroupShare applies the canonical "1/2 alone, 2/3 split among two or
// more" rule shared by Daughter, SonsDaughter (when standing alone), and
// DaughtersDaughter.
func (c *ctx) furudGroupShare(kind model.Relation, singularLabel, pluralLabel string) {
	heirs := c.unblocked(kind)
	if len(heirs) == 0 {
		return
	}
	if len(heirs) == 1 {
		heirs[0].Share = rational.New(1, 2)
		c.record(trace.PassFurud, singularLabel, heirs, "sole %s takes 1/2", singularLabel)
		return
	}
	share := rational.New(2, 3).DivInt(int64(len(heirs)))
	for _, h := range heirs {
		h.Share = share
	}
	c.record(trace.PassFurud, pluralLabel, heirs, "%d %s split 2/3 equally", len(heirs), pluralLabel)
}

// furudSiblingFurud settles Full/Paternal siblings when no brother of the
// same tie-strength stands to pull them into the ʿaṣaba pass instead, and
// settles Maternal siblings outright (they are never ʿaṣaba and always
// split equally regardless of sex, unlike every other sibling group).
func (c *ctx) furudSiblingFurud() {
	if c.present(model.FullBrother) == 0 {
		c.furudGroupShare(model.FullSister, "full_sister", "full_sisters")
	}
	if c.present(model.PaternalBrother) == 0 {
		c.furudGroupShare(model.PaternalSister, "paternal_sister", "paternal_sisters")
	}

	maternal := append(append([]*model.Heir{}, c.unblocked(model.MaternalBrother)...), c.unblocked(model.MaternalSister)...)
	if len(maternal) == 0 {
		return
	}
	if len(maternal) == 1 {
		maternal[0].Share = rational.New(1, 6)
		c.record(trace.PassFurud, "maternal_sibling", maternal, "sole maternal sibling takes 1/6")
		return
	}
	share := rational.New(1, 3).DivInt(int64(len(maternal)))
	for _, h := range maternal {
		h.Share = share
	}
	c.record(trace.PassFurud, "maternal_siblings", maternal, "%d maternal siblings split 1/3 equally (no 2:1 ratio for maternal siblings)", len(maternal))
}

func (c *ctx) record(pass, rule string, heirs []*model.Heir, format string, args ...interface{}) {
	c.tr.Addf(pass, rule, c.names(heirs), format, args...)
}
