package usecase

import (
	"strings"
	"unicode"

	"cognitive-router/internal/router/catalog"
)

// utterance is the lower-cased primary segment with its word list.
type utterance struct {
	text   string // lower-cased, curly apostrophes straightened
	padded string // text with one space on each side, for phrase lookups
	words  []string
}

func newUtterance(segment string) utterance {
	text := strings.ToLower(strings.TrimSpace(segment))
	text = strings.ReplaceAll(text, "’", "'")
	return utterance{
		text:   text,
		padded: " " + text + " ",
		words: strings.FieldsFunc(text, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
		}),
	}
}

// hasWord reports whether any word equals one of words.
func (u utterance) hasWord(words ...string) bool {
	for _, w := range u.words {
		for _, want := range words {
			if w == want {
				return true
			}
		}
	}
	return false
}

// hasWordPrefix reports whether any word starts with one of prefixes.
func (u utterance) hasWordPrefix(prefixes ...string) bool {
	for _, w := range u.words {
		for _, p := range prefixes {
			if strings.HasPrefix(w, p) {
				return true
			}
		}
	}
	return false
}

// hasPhrase reports whether a phrase occurs on word boundaries.
func (u utterance) hasPhrase(phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(u.padded, " "+p+" ") {
			return true
		}
	}
	return false
}

// bare is the text without trailing punctuation.
func (u utterance) bare() string {
	return strings.TrimRightFunc(u.text, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSpace(r)
	})
}

type rule struct {
	intent catalog.Intent
	match  func(u utterance) bool
}

// rules is evaluated top to bottom; the first match wins.
var rules = []rule{
	{intent: catalog.IntentStop, match: isStop},
	{intent: catalog.IntentCorrection, match: func(u utterance) bool {
		_, ok := correctionLead(u.text)
		return ok
	}},
	{intent: catalog.IntentTaskCreate, match: func(u utterance) bool {
		return u.hasWordPrefix(creationPrefixes...) || u.hasPhrase(creationPhrases...)
	}},
	{intent: catalog.IntentTaskUpdate, match: func(u utterance) bool {
		return u.hasWordPrefix(updatePrefixes...)
	}},
	{intent: catalog.IntentTaskCancel, match: func(u utterance) bool {
		return u.hasWordPrefix(cancelPrefixes...) && u.hasWordPrefix(reminderContextPrefixes...)
	}},
	{intent: catalog.IntentTaskList, match: func(u utterance) bool {
		return u.hasWord(listingWords...) && u.hasWordPrefix("task")
	}},
	{intent: catalog.IntentRecallMemory, match: func(u utterance) bool {
		return u.hasWordPrefix(recallPrefixes...) || u.hasPhrase(recallPhrases...)
	}},
	{intent: catalog.IntentWebSearch, match: func(u utterance) bool {
		return u.hasWordPrefix(searchPrefixes...) || u.hasWord(searchWords...) || u.hasPhrase(searchPhrases...)
	}},
	{intent: catalog.IntentDeepResearch, match: func(u utterance) bool {
		research := u.hasWordPrefix(researchPrefixes...) || u.hasWord(researchWords...) || u.hasPhrase(researchPhrases...)
		return research && u.hasWordPrefix(purchasePrefixes...)
	}},
}

// classify applies the ordered rule list; nothing matching means casual chat.
func classify(u utterance) catalog.Intent {
	for _, r := range rules {
		if r.match(u) {
			return r.intent
		}
	}
	return catalog.IntentCasualChat
}

// negated reports whether the utterance carries a negation marker.
func negated(u utterance) bool {
	for _, m := range negationMarkers {
		if strings.Contains(u.padded, m) {
			return true
		}
	}
	return false
}

func isStop(u utterance) bool {
	_, ok := stopPhrases[u.bare()]
	return ok
}

// correctionLead returns the text after a correction lead such as "actually ".
// Leads are ASCII, so the cut is valid on the original-case segment too.
func correctionLead(text string) (string, bool) {
	for _, lead := range correctionLeads {
		if len(text) > len(lead) && strings.EqualFold(text[:len(lead)], lead) {
			return strings.TrimSpace(text[len(lead):]), true
		}
	}
	return "", false
}
