package detector

// boundStart and boundEnd delimit a standalone Arabic word. Go's regexp
// (RE2) implements \b only over ASCII word characters, so it never
// recognizes a boundary next to an Arabic letter; these explicit
// alternation groups (start-of-string or whitespace/punctuation) stand in
// for \b, and also give the "li-ab"/"li-umm" disambiguation (spec §4.1) for
// free: a prefix letter glued directly onto the next word (no intervening
// space) never satisfies boundStart, so "لأب" never matches a pattern built
// for "أب".
const (
	boundStart = `(?:^|[\s،,.؛:؟!])`
	boundEnd   = `(?:[\s،,.؛:؟!]|$)`
)

// conjProclitic matches an optional leading "و" ("and") or "ف" ("so/then")
// conjunction glued directly onto the following word with no intervening
// space — how Arabic normally enumerates heirs ("وابن", "وبنت", "وثلاثة
// إخوة"). It is inserted between boundStart and a rule's actual content
// rather than folded into boundStart itself: boundStart already matches the
// whitespace preceding "و", so by the time a literal core or a numeral-word
// capture group starts, the glued "و"/"ف" must be stripped separately or it
// is swallowed into the match (a fixed-literal core like "أب" then fails to
// match at all; a capturing group like "(\p{Arabic}+)" would otherwise
// capture "وثلاثة" instead of "ثلاثة", which numeralWords does not
// recognize).
const conjProclitic = `(?:[وف])?`

// withArticle builds the "optional definite article" variant of a bare
// Arabic root, e.g. "أب" -> "(?:ال)?أب", matching both "أب" and "الأب".
func withArticle(core string) string {
	return `(?:ال)?` + core
}
