// Package rhyme assigns rhyme-group labels to a sequence of lines under a
// deliberately simple, orthography-based rhyme predicate — not a
// dictionary-grade phonological judgment.
package rhyme

import (
	"strings"

	"github.com/heartmarshall/parodyforge/internal/domain"
)

const vowels = "aeiouy"

// commonSuffixes is the fixed set the "common-suffix" rhyme rule checks
// against. Order does not matter; every entry is tried.
var commonSuffixes = []string{
	"ing", "tion", "sion", "ness", "ment", "ly", "ed", "er", "est",
	"ight", "ite", "ate", "ake", "oke", "eak", "ook", "ank", "ink",
}

// Analyze assigns a dense RhymeGroupId to every line and returns the
// concatenated scheme string. Lines are compared left to right; a line's
// key is its last word token, lowercased and stripped to letters. An
// empty key (no word token) never matches any other line and always
// starts its own singleton group.
func Analyze(lines []string) (labels []string, scheme string) {
	keys := make([]string, len(lines))
	for i, line := range lines {
		if tok, ok := domain.LastWordToken(line); ok {
			keys[i] = domain.LettersOnly(tok.Text)
		}
	}

	labels = make([]string, len(lines))
	next := 0
	for i := range lines {
		if keys[i] == "" {
			labels[i] = labelForIndex(next)
			next++
			continue
		}

		matched := ""
		for j := 0; j < i; j++ {
			if keys[j] == "" {
				continue
			}
			if Rhymes(keys[i], keys[j]) {
				matched = labels[j]
				break
			}
		}
		if matched != "" {
			labels[i] = matched
		} else {
			labels[i] = labelForIndex(next)
			next++
		}
	}

	var b strings.Builder
	for _, l := range labels {
		b.WriteString(l)
	}
	return labels, b.String()
}

// GroupOf returns the rhyme-group label of the line at index.
func GroupOf(index int, labels []string) string {
	return labels[index]
}

// PeersOf returns every other index sharing labels[index]'s label.
func PeersOf(index int, labels []string) []int {
	var peers []int
	for i, l := range labels {
		if i != index && l == labels[index] {
			peers = append(peers, i)
		}
	}
	return peers
}

// Rhymes reports whether two letter-only, lowercase words rhyme under
// any of the four rules: exact match, shared short suffix, vowel-skeleton
// match with equal trailing consonants, or a shared entry from the fixed
// common-suffix set with a matching preceding character.
func Rhymes(a, b string) bool {
	if a == b {
		return true
	}
	if suffixMatch(a, b) {
		return true
	}
	if vowelSkeletonMatch(a, b) {
		return true
	}
	return commonSuffixMatch(a, b)
}

func suffixMatch(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < 2 || len(rb) < 2 {
		return false
	}
	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}
	if n > 4 {
		n = 4
	}
	return string(ra[len(ra)-n:]) == string(rb[len(rb)-n:])
}

func vowelSkeletonMatch(a, b string) bool {
	va, vb := vowelChars(a), vowelChars(b)
	if len(va) < 2 || len(vb) < 2 {
		return false
	}
	if va[len(va)-2:] != vb[len(vb)-2:] {
		return false
	}
	return trailingConsonants(a) == trailingConsonants(b)
}

func commonSuffixMatch(a, b string) bool {
	for _, suf := range commonSuffixes {
		if !strings.HasSuffix(a, suf) || !strings.HasSuffix(b, suf) {
			continue
		}
		ca, okA := precedingRune(a, suf)
		cb, okB := precedingRune(b, suf)
		if okA != okB {
			continue
		}
		if !okA || ca == cb {
			return true
		}
	}
	return false
}

// precedingRune returns the rune immediately before suf in s, or false
// if s has nothing before suf (s exactly equals suf, rune-for-rune).
func precedingRune(s, suf string) (rune, bool) {
	rs, rsuf := []rune(s), []rune(suf)
	if len(rs) <= len(rsuf) {
		return 0, false
	}
	return rs[len(rs)-len(rsuf)-1], true
}

// vowelChars returns the vowel runes of s, in order, dropping consonants.
func vowelChars(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(vowels, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// trailingConsonants returns the suffix of s following its final vowel
// run — the consonant cluster (possibly empty) that closes the word.
func trailingConsonants(s string) string {
	runes := []rune(s)
	last := -1
	for i, r := range runes {
		if strings.ContainsRune(vowels, r) {
			last = i
		}
	}
	return string(runes[last+1:])
}

// labelForIndex maps a dense 0-based index to a RhymeGroupId using
// bijective base-26: 0→A, 25→Z, 26→AA, 27→AB, …
func labelForIndex(n int) string {
	n++
	var out []byte
	for n > 0 {
		n--
		out = append([]byte{byte('A' + n%26)}, out...)
		n /= 26
	}
	return string(out)
}
