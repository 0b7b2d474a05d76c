package utils

import (
	"regexp"
	"strings"
)

var (
	spaceRun         = regexp.MustCompile(`[ ]{2,}`)
	spaceBeforePunct = regexp.MustCompile(`\s+([,.!?])`)
	punctNoSpace     = regexp.MustCompile(`([,!?])([^\s])`)
	periodNoSpace    = regexp.MustCompile(`(\.)([A-Z])`)
	whitespaceRun    = regexp.MustCompile(`\s{2,}`)
)

// CleanText normalizes whitespace and punctuation spacing in chat text:
// runs of whitespace collapse to a single space, whitespace immediately
// before sentence punctuation is dropped, and punctuation followed by a
// non-space character gains exactly one trailing space. Periods only count
// as sentence boundaries before an uppercase letter, so email addresses and
// dotted phone numbers pass through intact. A single interior newline
// survives, so multi-line prompts keep their shape.
//
// CleanText is idempotent.
func CleanText(text string) string {
	text = spaceRun.ReplaceAllString(text, " ")
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = punctNoSpace.ReplaceAllString(text, "$1 $2")
	text = periodNoSpace.ReplaceAllString(text, "$1 $2")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
