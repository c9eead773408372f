package sanitization

import (
	"regexp"
	"strings"
)

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// SanitizeHeaderValue makes input safe to use as a single-line mail header
// such as a subject. Line breaks become single spaces; other text is kept.
func SanitizeHeaderValue(input string) string {
	safe := lineBreaks.ReplaceAllString(input, " ")
	return strings.TrimSpace(safe)
}
