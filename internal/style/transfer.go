// Package style copies surface punctuation and capitalization from an
// original line onto a generated line of possibly different word count,
// so a generated line looks like it belongs to the same lyric sheet.
package style

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/parodyforge/internal/domain"
)

// Apply reconstructs generated's words using original's separators and
// positional capitalization. original is tokenized into k word tokens
// with separators s0..sk; generated is tokenized into m word tokens,
// case and whitespace collapsed to single spaces. For i in 1..min(k,m),
// generated word i takes original word i's leading-letter case. The
// result is s0 + g1 + s1 + ... up to min(k,m); if generated has more
// words than original (m>k), the surplus is appended separated by single
// spaces; if original has more separators than generated has words
// (m<k), generation stops after gm and the corresponding trailing
// original separator is appended to close out the line.
func Apply(original, generated string) string {
	origTokens, origSeps := domain.Tokenize(original)
	genTokens, _ := domain.Tokenize(generated)

	k := len(origTokens)
	m := len(genTokens)
	n := k
	if m < n {
		n = m
	}

	var b strings.Builder
	b.WriteString(origSeps[0])
	for i := 0; i < n; i++ {
		b.WriteString(matchCase(genTokens[i].Text, origTokens[i].IsFirstLetterUpper))
		b.WriteString(origSeps[i+1])
	}

	if m > k {
		for i := n; i < m; i++ {
			b.WriteString(" ")
			b.WriteString(genTokens[i].Text)
		}
	}

	return b.String()
}

// matchCase rewrites word's leading letter's case to match upper, leaving
// the remainder of word untouched.
func matchCase(word string, upper bool) string {
	if word == "" {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	if upper {
		r = unicode.ToUpper(r)
	} else {
		r = unicode.ToLower(r)
	}
	return string(r) + word[size:]
}
