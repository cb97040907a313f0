package domain

import (
	"strings"
	"unicode"
)

// LettersOnly lowercases s and drops every rune that is not a Unicode
// letter. It is the word-level normalization the syllable and rhyme rules
// are defined over (§4.1, §4.2): apostrophes, digits, and punctuation are
// separators, never part of the counted or rhymed form.
func LettersOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
