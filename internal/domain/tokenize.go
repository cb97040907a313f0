package domain

import (
	"strings"
	"unicode"
)

// WordToken is a maximal run of Unicode letters extracted from a line.
type WordToken struct {
	Text               string
	IsFirstLetterUpper bool
}

// IsBlankLine reports whether a line contains only whitespace (or is
// empty). Blank lines are structural separators preserved positionally
// through the whole pipeline.
func IsBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Tokenize splits a line into its word tokens and the separators around
// them. It satisfies the round-trip invariant:
//
//	seps[0] + tokens[0].Text + seps[1] + tokens[1].Text + ... + tokens[n-1].Text + seps[n] == line
//
// len(seps) is always len(tokens)+1; seps[0] is any leading non-letter
// run (possibly empty) and seps[len(tokens)] is the trailing suffix.
func Tokenize(line string) (tokens []WordToken, seps []string) {
	var sep, tok strings.Builder
	inToken := false

	flushSep := func() {
		seps = append(seps, sep.String())
		sep.Reset()
	}
	flushTok := func() {
		text := tok.String()
		tokens = append(tokens, WordToken{
			Text:               text,
			IsFirstLetterUpper: firstLetterUpper(text),
		})
		tok.Reset()
	}

	for _, r := range line {
		if unicode.IsLetter(r) {
			if !inToken {
				flushSep()
				inToken = true
			}
			tok.WriteRune(r)
		} else {
			if inToken {
				flushTok()
				inToken = false
			}
			sep.WriteRune(r)
		}
	}
	if inToken {
		flushTok()
	}
	seps = append(seps, sep.String())

	return tokens, seps
}

// firstLetterUpper reports whether the first Unicode letter in s is
// uppercase. Defaults to false if s has no letter.
func firstLetterUpper(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return unicode.IsUpper(r)
		}
	}
	return false
}

// LastWordToken returns the last word token of a line and true, or the
// zero WordToken and false if the line has no word tokens.
func LastWordToken(line string) (WordToken, bool) {
	tokens, _ := Tokenize(line)
	if len(tokens) == 0 {
		return WordToken{}, false
	}
	return tokens[len(tokens)-1], true
}
