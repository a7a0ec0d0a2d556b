package usecase

import "strings"

// separators split a multi-intent message. Matching is literal and case-sensitive.
var separators = []string{" and ", " then ", " also "}

// segment cuts text at the earliest separator, repeatedly, keeping the
// non-empty trimmed pieces in order. The trailing space of each separator
// stays with the remainder so chained separators ("and then") cut cleanly.
// The result is never empty.
func segment(text string) []string {
	var segments []string
	rest := text
	for {
		idx, sep := earliestSeparator(rest)
		if idx < 0 {
			break
		}
		if s := strings.TrimSpace(rest[:idx]); s != "" {
			segments = append(segments, s)
		}
		rest = rest[idx+len(sep)-1:]
	}
	if s := strings.TrimSpace(rest); s != "" {
		segments = append(segments, s)
	}
	if len(segments) == 0 {
		return []string{strings.TrimSpace(text)}
	}
	return segments
}

func earliestSeparator(text string) (int, string) {
	best, bestSep := -1, ""
	for _, sep := range separators {
		if i := strings.Index(text, sep); i >= 0 && (best < 0 || i < best) {
			best, bestSep = i, sep
		}
	}
	return best, bestSep
}
