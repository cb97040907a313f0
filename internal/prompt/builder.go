// Package prompt builds the exact text sent to a TextCompleter for each
// stage of a single line's generation. Prompt text is a tested contract:
// two conforming builders must produce byte-identical output for the
// same LineContext.
package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

// LineContext carries everything a prompt builder needs to describe one
// input line's constraints and surrounding material.
type LineContext struct {
	// OriginalLine is the source lyric line being parodied.
	OriginalLine string

	// TotalSyllables is the target syllable count for the whole line.
	TotalSyllables int

	// WordSyllables is the target per-word syllable breakdown, in
	// original word order.
	WordSyllables []int

	// RhymeExamples holds already-generated lines from the same rhyme
	// group, earliest first. Empty if this line opens its group.
	RhymeExamples []string

	// RecentLines holds the most recently accepted non-blank parody
	// lines, oldest first, for semantic continuity.
	RecentLines []string

	// Theme, if non-empty, lists the run's keywords with their
	// definitions ("keyword: definition" pairs joined by "; ") that the
	// line should lean toward when natural.
	Theme string
}

// BuildInitial constructs the first-pass generation prompt for a line.
func BuildInitial(lc LineContext) string {
	var b strings.Builder
	b.WriteString("You are writing a parody lyric, one line at a time.\n\n")
	fmt.Fprintf(&b, "Original line: %q\n\n", lc.OriginalLine)
	fmt.Fprintf(&b, "Write a replacement line with exactly %d syllables total, ", lc.TotalSyllables)
	fmt.Fprintf(&b, "split across %d words with this exact per-word syllable pattern: %s.\n\n",
		len(lc.WordSyllables), formatIntList(lc.WordSyllables))

	writeContext(&b, lc)

	b.WriteString("Output ONLY the replacement line, no quotes, no explanation, no markdown.")
	return b.String()
}

// BuildWordSyllableRefinement asks the completer to fix a candidate line
// whose per-word syllable pattern does not yet match the target.
// actualPattern is the candidate's own current per-word syllable
// breakdown, shown alongside the required one so the completer can see
// exactly where the mismatch is instead of recomputing it itself.
func BuildWordSyllableRefinement(lc LineContext, candidate string, actualPattern []int) string {
	var b strings.Builder
	b.WriteString("The following candidate lyric line does not match the required syllable pattern.\n\n")
	fmt.Fprintf(&b, "Candidate: %q\n\n", candidate)
	fmt.Fprintf(&b, "Its current per-word syllable pattern is: %s.\n", formatIntList(actualPattern))
	fmt.Fprintf(&b, "Rewrite it so it has exactly %d words with this exact per-word syllable pattern: %s.\n",
		len(lc.WordSyllables), formatIntList(lc.WordSyllables))
	fmt.Fprintf(&b, "Total syllables must equal %d.\n\n", lc.TotalSyllables)

	writeContext(&b, lc)

	b.WriteString("Output ONLY the corrected line, no quotes, no explanation, no markdown.")
	return b.String()
}

// BuildSemanticCoherence asks the completer to improve a candidate
// line's fit with the surrounding accepted lyric, without touching its
// syllable pattern.
func BuildSemanticCoherence(lc LineContext, candidate string) string {
	var b strings.Builder
	b.WriteString("The following candidate lyric line needs to flow better with the lines around it.\n\n")
	fmt.Fprintf(&b, "Candidate: %q\n\n", candidate)

	writeContext(&b, lc)

	fmt.Fprintf(&b, "Rewrite it to read more naturally in context, keeping exactly %d words ", len(lc.WordSyllables))
	fmt.Fprintf(&b, "and this exact per-word syllable pattern: %s.\n\n", formatIntList(lc.WordSyllables))
	b.WriteString("Output ONLY the rewritten line, no quotes, no explanation, no markdown.")
	return b.String()
}

// BuildPolish asks the completer for a light punctuation and wording
// pass over a candidate that already satisfies the syllable and
// semantic constraints.
func BuildPolish(lc LineContext, candidate string) string {
	var b strings.Builder
	b.WriteString("Polish the following candidate lyric line's wording and punctuation, ")
	b.WriteString("without changing its meaning or word count.\n\n")
	fmt.Fprintf(&b, "Candidate: %q\n\n", candidate)
	fmt.Fprintf(&b, "Keep exactly %d words and this exact per-word syllable pattern: %s.\n\n",
		len(lc.WordSyllables), formatIntList(lc.WordSyllables))
	b.WriteString("Output ONLY the polished line, no quotes, no explanation, no markdown.")
	return b.String()
}

func writeContext(b *strings.Builder, lc LineContext) {
	if len(lc.RecentLines) > 0 {
		b.WriteString("Preceding lines, for context:\n")
		for _, l := range lc.RecentLines {
			fmt.Fprintf(b, "- %s\n", l)
		}
		b.WriteString("\n")
	}
	if len(lc.RhymeExamples) > 0 {
		b.WriteString("This line must rhyme with these already-written lines:\n")
		for _, l := range lc.RhymeExamples {
			fmt.Fprintf(b, "- %s\n", l)
		}
		b.WriteString("\n")
	}
	if lc.Theme != "" {
		fmt.Fprintf(b, "Lean toward this theme where natural: %s\n\n", lc.Theme)
	}
}

// BuildKeywordRequest asks the completer for exactly count thematic
// keywords with short definitions, one "keyword: definition" pair per
// line, for theme.
func BuildKeywordRequest(theme string, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Suggest exactly %d short thematic keywords for a parody lyric about: %s.\n\n", count, theme)
	b.WriteString("Output one keyword per line, in this exact format:\n")
	b.WriteString("keyword: a short definition of how it relates to the theme\n\n")
	b.WriteString("Output ONLY the keyword lines, no numbering, no headers, no markdown, no explanation.")
	return b.String()
}

func formatIntList(ints []int) string {
	parts := make([]string, len(ints))
	for i, n := range ints {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
