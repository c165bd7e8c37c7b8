package report

import "strings"

// MeasureFunc returns the rendered width of text in the current font
type MeasureFunc func(text string) float64

// Wrap breaks text into lines no wider than width. Explicit newlines are kept
// as line breaks (a blank line stays an empty line), words are filled
// greedily, and a word wider than the line is split between runes. Trailing
// empty lines are dropped.
func Wrap(text string, width float64, measure MeasureFunc) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, width, measure)...)
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func wrapParagraph(para string, width float64, measure MeasureFunc) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		for measure(word) > width {
			head, tail := splitWord(word, width, measure)
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, head)
			word = tail
		}
		if word == "" {
			continue
		}

		if current == "" {
			current = word
			continue
		}
		if candidate := current + " " + word; measure(candidate) <= width {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}

	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitWord returns the longest prefix of word that fits width (at least one
// rune) and the remainder
func splitWord(word string, width float64, measure MeasureFunc) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && measure(string(runes[:n+1])) <= width {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}
