package neograph

import "strings"

// forbidden are the characters stripped from every caller-supplied string
// before it is interpolated into a Cypher statement. Each of them could
// terminate or escape a pattern, a quoted literal, or a property block.
// Removal, not escaping: the sanitized value simply loses these characters.
var forbidden = strings.NewReplacer(
	"`", "",
	";", "",
	"/", "",
	"(", "",
	")", "",
	"{", "",
	"}", "",
)

// Sanitize strips backticks, semicolons, forward slashes, parentheses, and
// braces from each input string to prevent Cypher injection. All other
// characters pass through untouched, including spaces and hyphens, because
// identifiers are later quoted rather than embedded as bare tokens.
//
// Sanitize is pure and total: it never fails, and applying it twice yields
// the same result as applying it once.
func Sanitize(values ...string) []string {
	sanitized := make([]string, len(values))
	for i, v := range values {
		sanitized[i] = forbidden.Replace(v)
	}
	return sanitized
}

// sanitizeOne is the single-value convenience form of Sanitize.
func sanitizeOne(v string) string {
	return forbidden.Replace(v)
}
