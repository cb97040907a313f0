// Package syllable implements the orthographic syllable-counting heuristic
// the whole pipeline is built on. It is a deterministic contract, not a
// phonetic oracle: two conforming implementations must agree exactly, and
// the rule is not to be "improved" past what is written here.
package syllable

import (
	"strings"

	"github.com/heartmarshall/parodyforge/internal/domain"
)

const vowels = "aeiouy"

// WordSyllable pairs a word token's text with its counted syllables.
type WordSyllable struct {
	Text  string
	Count int
}

// CountWord estimates the syllable count of a single word using the
// orthographic rule:
//
//  1. lowercase s, keep only Unicode letters
//  2. count v, the number of maximal vowel runs (vowels = a,e,i,o,u,y)
//  3. if the word ends in "e" and v > 1, subtract 1 from v
//  4. if the word ends in "le", v > 1, and the letter before "le" is a
//     consonant, add 1 to v
//  5. result = max(1, v)
//
// Steps 3 and 4 both test against the original v, not a running total —
// for a "-le" word like "table" they cancel out, leaving the original
// vowel-run count. Empty input returns 0.
func CountWord(s string) int {
	letters := domain.LettersOnly(s)
	if letters == "" {
		return 0
	}

	v := countVowelRuns(letters)
	adjusted := v

	runes := []rune(letters)
	n := len(runes)

	if runes[n-1] == 'e' && v > 1 {
		adjusted--
	}
	if n >= 3 && runes[n-2] == 'l' && runes[n-1] == 'e' && v > 1 && !isVowel(runes[n-3]) {
		adjusted++
	}

	if adjusted < 1 {
		adjusted = 1
	}
	return adjusted
}

// CountLine sums CountWord over every word token in a line.
func CountLine(line string) int {
	tokens, _ := domain.Tokenize(line)
	total := 0
	for _, tok := range tokens {
		total += CountWord(tok.Text)
	}
	return total
}

// AnalyzeLine returns the per-word syllable breakdown of a line, in
// token order. len(result) always equals the number of word tokens.
func AnalyzeLine(line string) []WordSyllable {
	tokens, _ := domain.Tokenize(line)
	result := make([]WordSyllable, len(tokens))
	for i, tok := range tokens {
		result[i] = WordSyllable{Text: tok.Text, Count: CountWord(tok.Text)}
	}
	return result
}

// countVowelRuns counts maximal runs of vowel characters in a
// letters-only, lowercase string.
func countVowelRuns(letters string) int {
	runs := 0
	inRun := false
	for _, r := range letters {
		if isVowel(r) {
			if !inRun {
				runs++
				inRun = true
			}
		} else {
			inRun = false
		}
	}
	return runs
}

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}
