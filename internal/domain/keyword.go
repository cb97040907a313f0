package domain

import "sort"

// KeywordMap maps a short thematic keyword to its definition. Iteration
// order carries no semantic meaning, but any code that embeds a
// KeywordMap in generated text (PromptBuilder) must commit to one order
// for determinism; this package commits to sorted-by-key.
type KeywordMap map[string]string

// SortedKeys returns the map's keys in ascending lexical order, giving
// every caller that serializes a KeywordMap the same deterministic
// sequence.
func (m KeywordMap) SortedKeys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
