package usecase

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"cognitive-router/internal/preprocess"
)

// Marks and letters that only Vietnamese uses among Latin-script languages
// the router sees: breve, hook above, horn, dot below, and đ.
var vietnameseMarks = map[rune]struct{}{
	'\u0306': {}, '\u0309': {}, '\u031B': {}, '\u0323': {},
	'đ': {}, 'Đ': {},
}

// Process normalizes text to NFKC with collapsed whitespace (RawText), derives
// an accent-free case-folded WorkingText, and guesses the language.
func (uc *implUseCase) Process(ctx context.Context, text string) (preprocess.Output, error) {
	if utf8.RuneCountInString(text) > uc.maxRunes {
		uc.l.Warnf(ctx, "internal.preprocess.usecase.Process: input of %d runes rejected", utf8.RuneCountInString(text))
		return preprocess.Output{}, preprocess.ErrInputTooLong
	}

	raw := strings.Join(strings.Fields(norm.NFKC.String(text)), " ")

	working, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		cases.Fold().String(raw),
	)
	if err != nil {
		return preprocess.Output{}, err
	}
	working = strings.ReplaceAll(working, "đ", "d")

	return preprocess.Output{
		RawText:      raw,
		WorkingText:  working,
		LanguageHint: detectLanguage(raw).String(),
	}, nil
}

// detectLanguage is a script heuristic: Vietnamese-only marks win, plain ASCII
// letters mean English, anything else is undetermined.
func detectLanguage(text string) language.Tag {
	for _, r := range norm.NFD.String(text) {
		if _, ok := vietnameseMarks[r]; ok {
			return language.Vietnamese
		}
	}

	hasLetter := false
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		if r > unicode.MaxASCII {
			return language.Und
		}
		hasLetter = true
	}
	if hasLetter {
		return language.English
	}
	return language.Und
}
