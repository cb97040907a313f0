package parody

import (
	"strings"

	"github.com/heartmarshall/parodyforge/internal/syllable"
)

// matchesWordSyllablePattern reports whether candidate breaks into
// exactly len(target) words whose per-word syllable counts equal target,
// in order.
func matchesWordSyllablePattern(candidate string, target []int) bool {
	words := syllable.AnalyzeLine(candidate)
	if len(words) != len(target) {
		return false
	}
	for i, w := range words {
		if w.Count != target[i] {
			return false
		}
	}
	return true
}

// withinSyllableDeviation reports whether candidate's total syllable
// count is within maxDeviation of targetTotal.
func withinSyllableDeviation(candidate string, targetTotal, maxDeviation int) bool {
	diff := syllable.CountLine(candidate) - targetTotal
	if diff < 0 {
		diff = -diff
	}
	return diff <= maxDeviation
}

// sanitizeCandidate takes a completer's raw response and extracts a
// single clean line: the first non-blank line, trimmed and stripped of
// wrapping quotes per stripQuotes.
func sanitizeCandidate(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return stripQuotes(line)
	}
	return ""
}

// stripQuotes removes one matching pair of wrapping double quotes if
// present, then one matching pair of wrapping single quotes — but only
// when no other single quote remains inside, so a contraction like
// "don't" is never mistaken for a closing quote.
func stripQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}
	if len(s) >= 2 && strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") {
		inner := s[1 : len(s)-1]
		if !strings.Contains(inner, "'") {
			s = inner
		}
	}
	return s
}
