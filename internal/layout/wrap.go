package layout

import "strings"

// wrap splits text at word boundaries so that every line fits budget. Words
// wider than the budget on their own are broken between characters. Runs of
// whitespace collapse to one space.
func wrap(m Measurer, text string, sizePt float64, bold bool, budget float64) []string {
	fits := func(s string) bool { return m.Width(s, sizePt, bold) <= budget }

	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if fits(candidate) {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
			line = ""
		}
		if fits(word) {
			line = word
			continue
		}
		chunks := splitWord(word, fits)
		lines = append(lines, chunks[:len(chunks)-1]...)
		line = chunks[len(chunks)-1]
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// splitWord breaks word into the longest prefixes that fit. A single
// character is always accepted so the loop terminates.
func splitWord(word string, fits func(string) bool) []string {
	var chunks []string
	runes := []rune(word)
	for len(runes) > 0 {
		n := 1
		for n < len(runes) && fits(string(runes[:n+1])) {
			n++
		}
		chunks = append(chunks, string(runes[:n]))
		runes = runes[n:]
	}
	return chunks
}
