package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"cognitive-router/internal/dialogue"
)

var (
	numericChoiceRe = regexp.MustCompile(`^(?:(?:option|number|choice|no\.?)\s*)?#?\s*(\d+)$`)
	ordinalChoiceRe = regexp.MustCompile(`^(?:the\s+)?(first|second|third|fourth|fifth|last|1st|2nd|3rd|4th|5th)(?:\s+(?:one|option|task))?$`)
)

var ordinals = map[string]int{
	"first": 1, "1st": 1,
	"second": 2, "2nd": 2,
	"third": 3, "3rd": 3,
	"fourth": 4, "4th": 4,
	"fifth": 5, "5th": 5,
}

// selectionFiller carries no choice information.
var selectionFiller = map[string]struct{}{
	"the": {}, "one": {}, "that": {}, "this": {}, "please": {}, "i": {}, "mean": {}, "meant": {},
	"it's": {}, "its": {}, "is": {}, "task": {}, "option": {},
}

// selectOption interprets u as an answer to a task_selection clarification:
// a 1-based number, an ordinal, or words naming exactly one option.
func selectOption(u utterance, options []dialogue.Option) (dialogue.Option, bool) {
	if len(options) == 0 {
		return dialogue.Option{}, false
	}
	text := u.bare()

	if m := numericChoiceRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > len(options) {
			return dialogue.Option{}, false
		}
		return options[n-1], true
	}
	if m := ordinalChoiceRe.FindStringSubmatch(text); m != nil {
		if m[1] == "last" {
			return options[len(options)-1], true
		}
		n := ordinals[m[1]]
		if n > len(options) {
			return dialogue.Option{}, false
		}
		return options[n-1], true
	}

	return namedOption(u, options)
}

// namedOption picks the single option whose description contains the
// utterance's content words, or is itself contained in the utterance.
func namedOption(u utterance, options []dialogue.Option) (dialogue.Option, bool) {
	var words []string
	for _, w := range u.words {
		if _, skip := selectionFiller[w]; !skip {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return dialogue.Option{}, false
	}

	var (
		chosen dialogue.Option
		hits   int
	)
	for _, opt := range options {
		desc := strings.ToLower(opt.Description)
		if desc == "" {
			continue
		}
		if strings.Contains(u.text, desc) || containsAll(desc, words) {
			chosen = opt
			hits++
		}
	}
	return chosen, hits == 1
}

func containsAll(desc string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(desc, w) {
			return false
		}
	}
	return true
}
