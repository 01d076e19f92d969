// Package model defines the canonical data structures shared across the
// inheritance-calculator pipeline: the closed Relation kind enumeration and
// the Heir record the Detector produces and the Calculator mutates.
package model

import "mawarith.dev/inheritance-calculator/internal/rational"

// Sex is the biological sex attached to a Relation kind.
type Sex int

const (
	Male Sex = iota
	Female
)

func (s Sex) String() string {
	if s == Female {
		return "female"
	}
	return "male"
}

// Gender is a name for the decedent's gender. It is a type alias of Sex, so
// the two are the same type and interchangeable at call sites.
type Gender = Sex

// Relation is the closed enumeration of family roles the Calculator can
// reason about. Unsupported is the tag for any kind outside this set; the
// Detector in internal/detector emits only the kinds listed here, and the
// Calculator never assigns an Unsupported heir a share.
type Relation int

const (
	Unsupported Relation = iota
	Wife
	Husband
	Son
	Daughter
	Father
	Mother
	Grandfather
	SonsDaughter
	DaughtersDaughter
	FullBrother
	FullSister
	PaternalBrother
	PaternalSister
	MaternalBrother
	MaternalSister
)

// Tag is the stable wire identifier for a Relation, per spec §6.
func (r Relation) Tag() string {
	switch r {
	case Wife:
		return "wife"
	case Husband:
		return "husband"
	case Son:
		return "son"
	case Daughter:
		return "daughter"
	case Father:
		return "father"
	case Mother:
		return "mother"
	case Grandfather:
		return "grandfather"
	case SonsDaughter:
		return "sons_daughter"
	case DaughtersDaughter:
		return "daughters_daughter"
	case FullBrother:
		return "full_brother"
	case FullSister:
		return "full_sister"
	case PaternalBrother:
		return "paternal_brother"
	case PaternalSister:
		return "paternal_sister"
	case MaternalBrother:
		return "maternal_brother"
	case MaternalSister:
		return "maternal_sister"
	default:
		return "unsupported"
	}
}

// Sex is a pure function of Relation kind — one of the model invariants
// (spec §3: "Sex is a function of kind").
func (r Relation) Sex() Sex {
	switch r {
	case Wife, Daughter, Mother, DaughtersDaughter, FullSister, PaternalSister, MaternalSister:
		return Female
	default:
		return Male
	}
}

// IsSibling reports whether the kind is any of the six sibling kinds
// (full/paternal/maternal, both sexes).
func (r Relation) IsSibling() bool {
	switch r {
	case FullBrother, FullSister, PaternalBrother, PaternalSister, MaternalBrother, MaternalSister:
		return true
	default:
		return false
	}
}

// IsFullSibling reports whether the kind shares both parents with the decedent.
func (r Relation) IsFullSibling() bool {
	return r == FullBrother || r == FullSister
}

// IsPaternalSibling reports whether the kind shares only the father.
func (r Relation) IsPaternalSibling() bool {
	return r == PaternalBrother || r == PaternalSister
}

// IsMaternalSibling reports whether the kind shares only the mother.
func (r Relation) IsMaternalSibling() bool {
	return r == MaternalBrother || r == MaternalSister
}

// Heir is one living individual of a given Relation kind. Siblings with the
// same kind are represented as distinct Heir records, never as a count
// field, so display names and shares can be reported individually
// (spec §9 "Heir identity").
type Heir struct {
	Kind        Relation
	DisplayName string
	Blocked     bool
	Share       rational.Fraction
}

// Sex returns the heir's sex, derived from its kind.
func (h *Heir) Sex() Sex {
	return h.Kind.Sex()
}

// NewHeir constructs a Heir with the zero share and unblocked state spec §3
// requires heirs to start with.
func NewHeir(kind Relation, displayName string) *Heir {
	return &Heir{Kind: kind, DisplayName: displayName, Share: rational.Zero()}
}
