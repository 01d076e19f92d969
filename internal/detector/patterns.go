package detector

import (
	"mawarith.dev/inheritance-calculator/internal/model"
)

// displayLabels gives the Arabic label used to build a heir's display_name
// (spec §4.1: count 1 emits the label unsuffixed, count N>1 emits
// "<label> 1", "<label> 2", ...).
var displayLabels = map[model.Relation]string{
	model.Wife:              "الزوجة",
	model.Husband:           "الزوج",
	model.Son:               "الابن",
	model.Daughter:          "البنت",
	model.SonsDaughter:      "بنت الابن",
	model.DaughtersDaughter: "بنت البنت",
	model.Grandfather:       "الجد",
	model.Father:            "الأب",
	model.Mother:            "الأم",
	model.FullBrother:       "الأخ الشقيق",
	model.FullSister:        "الأخت الشقيقة",
	model.PaternalBrother:   "الأخ لأب",
	model.PaternalSister:    "الأخت لأب",
	model.MaternalBrother:   "الأخ لأم",
	model.MaternalSister:    "الأخت لأم",
}

// kindByName supports the JSON pattern-override document (spec SPEC_FULL §4.1
// NEW): callers name a kind by its stable wire tag (spec §6), not by Go
// identifier.
var kindByName = map[string]model.Relation{
	"wife": model.Wife, "husband": model.Husband,
	"son": model.Son, "daughter": model.Daughter,
	"sons_daughter": model.SonsDaughter, "daughters_daughter": model.DaughtersDaughter,
	"grandfather": model.Grandfather, "father": model.Father, "mother": model.Mother,
	"full_brother": model.FullBrother, "full_sister": model.FullSister,
	"paternal_brother": model.PaternalBrother, "paternal_sister": model.PaternalSister,
	"maternal_brother": model.MaternalBrother, "maternal_sister": model.MaternalSister,
}

// siblingNounSet names the words used to build the pattern family for one
// sibling sex (brother or sister): the bare singular, the two dual
// inflections, and the plural.
type siblingNounSet struct {
	singular, dualA, dualB, plural string
}

var brotherNouns = siblingNounSet{singular: "أخ", dualA: "أخوان", dualB: "أخوين", plural: "إخوة"}
var sisterNouns = siblingNounSet{singular: "أخت", dualA: "أختان", dualB: "أختين", plural: "أخوات"}

// siblingRules builds the pattern family for one of the six sibling kinds.
// qualifier == "" builds the FULL-sibling family (must NOT be followed by
// "لأب"/"لأم"); qualifier == "لأب" or "لأم" builds the paternal/maternal
// family (must be followed by that qualifier). This single function is the
// data table spec §9 asks for, applied six times.
func siblingRules(n siblingNounSet, qualifier string) []Rule {
	if qualifier == "" {
		exclude := []string{"لأب", "لأم"}
		return []Rule{
			literalRule(withArticle(n.singular), 1, exclude...),
			literalRule(n.dualA, 2, exclude...),
			literalRule(n.dualB, 2, exclude...),
			numeralPluralRule(n.plural, exclude...),
		}
	}
	return []Rule{
		qualifiedLiteralRule(withArticle(n.singular), qualifier, 1),
		qualifiedLiteralRule(n.dualA, qualifier, 2),
		qualifiedLiteralRule(n.dualB, qualifier, 2),
		numeralPluralQualifiedRule(n.plural, qualifier),
	}
}

// defaultTable builds the immutable base pattern table (spec §5: "pattern
// tables are immutable after construction; they may be shared across
// requests"). Each family is evaluated by taking the MAX across its rules,
// never the sum (spec §4.1), via familyCount.
func defaultTable() map[model.Relation][]Rule {
	return map[model.Relation][]Rule{
		model.Wife:    {literalRule(withArticle("زوجة"), 1)},
		model.Husband: {literalRule(withArticle("زوج"), 1)},

		// Son: excludes "ibn al-akh" (nephew), "ibn al-ʿamm" (cousin),
		// "ibn al-ibn" (son's son) per spec §4.1's disambiguation rules.
		model.Son: {
			literalRule(withArticle("ابن"), 1, "الأخ", "العم", "الابن"),
			literalRule("ابنان", 2),
			literalRule("ابنين", 2),
			literalRule("ولدان", 2),
			numeralPluralRule("أبناء"),
			numeralPluralRule("ابناء"),
		},

		// Daughter: excludes "bint ibn" (son's daughter) and "bint bint"
		// (daughter's daughter).
		model.Daughter: {
			literalRule(withArticle("بنت"), 1, "الابن", "البنت"),
			literalRule("بنتان", 2),
			literalRule("بنتين", 2),
			numeralPluralRule("بنات"),
		},

		model.SonsDaughter:      {literalRule(`بنت\s+الابن`, 1)},
		model.DaughtersDaughter: {literalRule(`بنت\s+البنت`, 1)},

		// Grandfather: the bare/definite form; the "jadda present anywhere
		// suppresses grandfather" gate is applied globally in detector.go,
		// not here, since it depends on the whole text, not a single match.
		model.Grandfather: {literalRule(withArticle("جد"), 1)},

		// Father/Mother: the boundStart requirement alone excludes "li-ab"/
		// "li-umm" (see boundary.go), since those prefixes glue directly
		// onto the root with no intervening space.
		model.Father: {literalRule(withArticle("أب"), 1)},
		model.Mother: {literalRule(withArticle("أم"), 1)},

		model.FullBrother:     siblingRules(brotherNouns, ""),
		model.FullSister:      siblingRules(sisterNouns, ""),
		model.PaternalBrother: siblingRules(brotherNouns, "لأب"),
		model.PaternalSister:  siblingRules(sisterNouns, "لأب"),
		model.MaternalBrother: siblingRules(brotherNouns, "لأم"),
		model.MaternalSister:  siblingRules(sisterNouns, "لأم"),
	}
}
