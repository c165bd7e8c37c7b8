package sanitize

import (
	"regexp"
	"strings"
)

// Rule is a single marker substitution
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string
}

// Rules is the substitution table, applied in order. Every rule only deletes
// characters and none of them match a newline. Heading markers count only at
// the start of a line or after a space, so "C#" and url fragments survive.
var Rules = []Rule{
	{Name: "strong", Pattern: regexp.MustCompile(`\*\*`), Replace: ""},
	{Name: "emphasis", Pattern: regexp.MustCompile(`\*`), Replace: ""},
	{Name: "underline", Pattern: regexp.MustCompile(`__`), Replace: ""},
	{Name: "code", Pattern: regexp.MustCompile("`"), Replace: ""},
	{Name: "heading", Pattern: regexp.MustCompile(`(?m)(^|[ \t])#{1,6}[ \t]*`), Replace: "$1"},
	{Name: "link", Pattern: regexp.MustCompile(`\[([^\]\n]+)\]\(([^)\n]+)\)`), Replace: "$2"},
}

// Sanitize removes emphasis and heading markers and rewrites inline links to
// their url. The table is re-applied until the text stops changing, so the
// result is a fixpoint: Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(raw string) string {
	out := raw
	for {
		next := apply(out)
		if next == out {
			return out
		}
		out = next
	}
}

// apply runs one pass of the rule table
func apply(s string) string {
	for _, rule := range Rules {
		s = rule.Pattern.ReplaceAllString(s, rule.Replace)
	}
	return s
}

// Paragraphs sanitizes raw text and splits it on blank lines
func Paragraphs(raw string) []string {
	clean := Sanitize(raw)

	var out []string
	for _, p := range strings.Split(clean, "\n\n") {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
