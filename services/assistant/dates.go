package assistant

import (
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var (
	ordinalSuffixRe = regexp.MustCompile(`(?i)\b(\d{1,2})(st|nd|rd|th)\b`)
	explicitYearRe  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// Layouts tried before falling back to the natural-language parser.
var (
	dateLayoutsWithYear = []string{
		"2006-01-02",
		"January 2 2006",
		"January 2, 2006",
		"Jan 2 2006",
		"Jan 2, 2006",
		"2 January 2006",
		"01/02/2006",
		"1/2/2006",
	}
	dateLayoutsNoYear = []string{
		"January 2",
		"Jan 2",
		"2 January",
	}
)

var casualDateParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// titleCaseWords capitalizes each word so month names match time layouts
// regardless of how the customer typed them.
func titleCaseWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// NormalizeDate converts a free-text date expression to YYYY-MM-DD. When no
// year is stated and the parsed date falls before now, the next occurrence is
// assumed and the date advances one year. Returns ok=false when nothing
// date-like could be parsed; callers fall back to verbatim capture.
func NormalizeDate(text string, now time.Time) (string, bool) {
	cleaned := strings.TrimSpace(ordinalSuffixRe.ReplaceAllString(text, "$1"))
	cleaned = strings.Trim(cleaned, ".,!?")
	titled := titleCaseWords(cleaned)

	for _, layout := range dateLayoutsWithYear {
		if t, err := time.Parse(layout, titled); err == nil {
			return t.Format("2006-01-02"), true
		}
	}

	for _, layout := range dateLayoutsNoYear {
		if t, err := time.Parse(layout, titled); err == nil {
			t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
			if t.Before(now) {
				t = t.AddDate(1, 0, 0)
			}
			return t.Format("2006-01-02"), true
		}
	}

	// Casual expressions: "tomorrow", "next friday", "in two weeks".
	if r, err := casualDateParser.Parse(text, now); err == nil && r != nil {
		t := r.Time
		if !explicitYearRe.MatchString(text) && t.Before(now) {
			t = t.AddDate(1, 0, 0)
		}
		return t.Format("2006-01-02"), true
	}

	return "", false
}
