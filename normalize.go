package patentdump

import (
	"regexp"
	"strings"
)

var abstractLabelRe = regexp.MustCompile(`(?i)^abstract[:\s-]*`)

// Normalize collapses every run of whitespace into a single space and trims
// the result. Whitespace is anything unicode.IsSpace accepts, so tabs,
// newlines and non-breaking spaces all collapse.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeAbstract normalizes whitespace and then removes a leading
// "Abstract" label (any case) together with the colons, hyphens and spaces
// that follow it. Only a label at the very start is removed, and only once.
func NormalizeAbstract(text string) string {
	text = Normalize(text)
	if loc := abstractLabelRe.FindStringIndex(text); loc != nil {
		text = text[loc[1]:]
	}
	return text
}
