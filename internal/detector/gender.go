package detector

import "mawarith.dev/inheritance-calculator/internal/model"

// femaleDeathMarkers and maleDeathMarkers are the full marker lists spec
// §4.1 names for steps 1-2, in undiacritized Arabic:
//
//	female: توفيت (tuwuffiyat), ماتت (mātat), توفت (tawaffat), تاركة
//	        (tārikatan), امرأة (imraʾa)
//	male:   توفي (tuwuffiya), مات (māta), توفى (tawfā), تاركا (tārikan),
//	        وترك (wa-taraka), رجل (rajul), عن (ʿan)
//
// Each is matched as its own literalRule so boundEnd still rejects a token
// that is really the stem of a longer word (e.g. "توفي" never matches inside
// "توفيت", since the glued "ت" suffix is not a boundary character).
var (
	femaleDeathMarkers = []Rule{
		literalRule(withArticle("توفيت"), 1),
		literalRule(withArticle("ماتت"), 1),
		literalRule(withArticle("توفت"), 1),
		literalRule(withArticle("تاركة"), 1),
		literalRule(withArticle("امرأة"), 1),
	}
	maleDeathMarkers = []Rule{
		literalRule(withArticle("توفي"), 1),
		literalRule(withArticle("مات"), 1),
		literalRule(withArticle("توفى"), 1),
		literalRule(withArticle("تاركا"), 1),
		literalRule("وترك", 1),
		literalRule(withArticle("رجل"), 1),
		literalRule(withArticle("عن"), 1),
	}
)

// inferGender determines the decedent's sex via the fixed five-step ordering
// (spec §4.1):
//  1. Any female-verb marker present ⇒ female.
//  2. Else any male-verb marker present ⇒ male.
//  3. Else if the word "wife" appears ⇒ male decedent (a wife cannot survive
//     her own husband unless the decedent is a man).
//  4. Else if the word "husband" appears, and "wife" does not, ⇒ female
//     decedent, symmetrically.
//  5. Otherwise default to male, the spec's stated fallback when the text
//     is silent on the decedent's own sex.
func inferGender(text string) model.Sex {
	if familyCount(femaleDeathMarkers, text) > 0 {
		return model.Female
	}
	if familyCount(maleDeathMarkers, text) > 0 {
		return model.Male
	}
	hasWife := familyCount(defaultTable()[model.Wife], text) > 0
	if hasWife {
		return model.Male
	}
	if familyCount(defaultTable()[model.Husband], text) > 0 {
		return model.Female
	}
	return model.Male
}
