package summary

import (
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	// MinSentenceRunes is the length a trimmed sentence must exceed to count
	MinSentenceRunes = 25

	// MaxBullets is the most bullets Summarize returns
	MaxBullets = 3

	// minQualifying is the fewest qualifying sentences needed to skip the fallback
	minQualifying = 2
)

var fallback = []string{
	"Verified factual explanation regarding the requested subject matter.",
	"Consensus reached on the simulated microchain state.",
	"Deterministic proof identifier successfully validated.",
}

// Fallback returns the fixed bullets used when an answer has too little
// sentence material to summarize
func Fallback() []string {
	return slices.Clone(fallback)
}

// IsFallback reports whether bullets is the fixed fallback sequence
func IsFallback(bullets []string) bool {
	return slices.Equal(bullets, fallback)
}

// Summarize reduces sanitized answer text to at most three bullets. Sentences
// are split on '.', '!' and '?'; only those longer than MinSentenceRunes
// characters qualify. Fewer than two qualifying sentences yields Fallback().
func Summarize(sanitized string) []string {
	candidates := strings.FieldsFunc(sanitized, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var qualifying []string
	for _, c := range candidates {
		trimmed := strings.TrimSpace(c)
		if utf8.RuneCountInString(trimmed) > MinSentenceRunes {
			qualifying = append(qualifying, trimmed)
		}
	}

	if len(qualifying) < minQualifying {
		return Fallback()
	}

	if len(qualifying) > MaxBullets {
		qualifying = qualifying[:MaxBullets]
	}

	bullets := make([]string, len(qualifying))
	for i, s := range qualifying {
		bullets[i] = s + "."
	}
	return bullets
}
