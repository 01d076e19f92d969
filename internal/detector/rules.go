package detector

import "regexp"

// Rule is one pattern in a kind's pattern family: a compiled regular
// expression plus a resolver describing how many individuals the match
// contributes (spec §4.1: "literal, numeric-word lookup, or a digit").
// Patterns are encoded as data, not control flow (spec §9).
type Rule struct {
	Regex   *regexp.Regexp
	Resolve func(groups []string) int
}

// count returns the maximum contribution across every match of this rule
// in text (never the sum — spec §4.1: "takes the maximum contributed count").
func (r Rule) count(text string) int {
	matches := r.Regex.FindAllStringSubmatch(text, -1)
	best := 0
	for _, m := range matches {
		if c := r.Resolve(m); c > best {
			best = c
		}
	}
	return best
}

// familyCount runs every rule in a pattern family over text and takes the
// maximum across all of them, so overlapping patterns for the same kind
// never double-count (spec §4.1).
func familyCount(rules []Rule, text string) int {
	best := 0
	for _, r := range rules {
		if c := r.count(text); c > best {
			best = c
		}
	}
	return best
}

// literalRule matches a bare word (with an optional leading "ال") and
// contributes a fixed count. exclude lists words that, if found
// immediately following the match, invalidate it — the post-filter
// spec §9 prescribes in place of lookahead, which RE2 does not support.
func literalRule(core string, count int, exclude ...string) Rule {
	pattern := boundStart + conjProclitic + core + boundEnd + `(\p{Arabic}+)?`
	excl := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		excl[e] = true
	}
	re := regexp.MustCompile(pattern)
	return Rule{
		Regex: re,
		Resolve: func(m []string) int {
			if len(m) > 1 && excl[m[1]] {
				return 0
			}
			return count
		},
	}
}

// qualifiedLiteralRule matches a bare word directly followed by a required
// qualifier word (e.g. "أخ لأب", a brother "by father"), contributing a
// fixed count.
func qualifiedLiteralRule(core, qualifier string, count int) Rule {
	pattern := boundStart + conjProclitic + core + `\s+` + qualifier + boundEnd
	re := regexp.MustCompile(pattern)
	return Rule{
		Regex:   re,
		Resolve: func(m []string) int { return count },
	}
}

// numeralPluralRule matches "<numeral word> <plural noun>" (e.g. "ثلاثة
// إخوة", three brothers) and resolves the count via the numeral-word table.
// If exclude is non-empty, a trailing qualifier word belonging to it (found
// immediately after the plural noun) invalidates the match — used so a
// bare sibling-count pattern doesn't also fire for a qualified count like
// "ثلاثة إخوة لأب".
func numeralPluralRule(plural string, exclude ...string) Rule {
	pattern := boundStart + conjProclitic + `(\p{Arabic}+)\s+` + plural
	if len(exclude) > 0 {
		pattern += `(?:\s+(\p{Arabic}+))?`
	}
	pattern += boundEnd
	excl := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		excl[e] = true
	}
	re := regexp.MustCompile(pattern)
	return Rule{
		Regex: re,
		Resolve: func(m []string) int {
			if len(m) > 2 && excl[m[2]] {
				return 0
			}
			v, ok := numeralValue(m[1])
			if !ok {
				return 0
			}
			return v
		},
	}
}

// numeralPluralQualifiedRule matches "<numeral word> <plural noun> <qualifier>"
// (e.g. "ثلاثة إخوة لأب", three paternal brothers), requiring the qualifier.
func numeralPluralQualifiedRule(plural, qualifier string) Rule {
	pattern := boundStart + conjProclitic + `(\p{Arabic}+)\s+` + plural + `\s+` + qualifier + boundEnd
	re := regexp.MustCompile(pattern)
	return Rule{
		Regex: re,
		Resolve: func(m []string) int {
			v, ok := numeralValue(m[1])
			if !ok {
				return 0
			}
			return v
		},
	}
}
