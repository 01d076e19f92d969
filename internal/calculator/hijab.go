package calculator

import (
	"mawarith.dev/inheritance-calculator/internal/model"
	"mawarith.dev/inheritance-calculator/internal/trace"
)

// applyHijab marks heirs excluded outright by a closer relative (spec §4.2
// pass 1). Exclusion is total: a blocked heir receives a zero share and is
// never considered by later passes. Rules implemented here are the common,
// unanimously-agreed exclusions; the narrower "asaba ma'al ghayr" partial
// co-inheritance cases for mixed sibling/daughter combinations are not
// modeled.
func (c *ctx) applyHijab() {
	son := c.present(model.Son) > 0
	daughter := c.present(model.Daughter) > 0
	father := c.present(model.Father) > 0
	grandfather := c.present(model.Grandfather) > 0
	fullBrother := c.present(model.FullBrother) > 0

	c.blockKind(model.Grandfather, father, "father present")
	c.blockKind(model.SonsDaughter, son, "son present")
	c.blockKind(model.DaughtersDaughter, son || daughter, "son or daughter present")

	siblingBlockedByAscendant := son || father || grandfather
	c.blockKind(model.FullBrother, siblingBlockedByAscendant, "male descendant or father/grandfather present")
	c.blockKind(model.FullSister, siblingBlockedByAscendant, "male descendant or father/grandfather present")

	paternalBlocked := siblingBlockedByAscendant || fullBrother
	c.blockKind(model.PaternalBrother, paternalBlocked, "male descendant, father/grandfather, or full brother present")
	c.blockKind(model.PaternalSister, paternalBlocked, "male descendant, father/grandfather, or full brother present")

	maternalBlocked := c.hasDescendant() || father || grandfather
	c.blockKind(model.MaternalBrother, maternalBlocked, "descendant or father/grandfather present")
	c.blockKind(model.MaternalSister, maternalBlocked, "descendant or father/grandfather present")
}

func (c *ctx) blockKind(kind model.Relation, blocked bool, reason string) {
	if !blocked {
		return
	}
	heirs := c.unblocked(kind)
	if len(heirs) == 0 {
		return
	}
	for _, h := range heirs {
		h.Blocked = true
	}
	c.tr.Addf(trace.PassHijab, kind.Tag()+"_excluded", c.names(heirs), "%s excluded (%s)", kind.Tag(), reason)
}
