package parody

import (
	"context"

	"github.com/heartmarshall/parodyforge/internal/prompt"
	"github.com/heartmarshall/parodyforge/internal/syllable"
)

// A refinement call's failure is never fatal: it is logged and the
// pass is treated as a no-op, keeping whatever candidate came in.
// Only the initial generation (generate.go) can abort a run.

// applyWordSyllablePass corrects candidate's per-word syllable pattern
// if it doesn't already match. A completer response that fails to fix
// the mismatch is a no-op: the prior candidate is kept.
func (s *Service) applyWordSyllablePass(ctx context.Context, lc prompt.LineContext, candidate string) string {
	if matchesWordSyllablePattern(candidate, lc.WordSyllables) {
		return candidate
	}
	resp, err := s.completer.Complete(ctx, prompt.BuildWordSyllableRefinement(lc, candidate, actualWordSyllables(candidate)))
	if err != nil {
		s.log.WarnContext(ctx, "word-syllable refinement call failed, keeping prior candidate", "error", err)
		return candidate
	}
	return acceptIfValid(candidate, resp, lc.WordSyllables)
}

// applySemanticCoherencePass asks for a more natural-sounding line when
// there is preceding accepted context to be coherent with. Skipped
// entirely for the first accepted line of a run.
func (s *Service) applySemanticCoherencePass(ctx context.Context, lc prompt.LineContext, candidate string) string {
	if len(lc.RecentLines) == 0 {
		return candidate
	}
	resp, err := s.completer.Complete(ctx, prompt.BuildSemanticCoherence(lc, candidate))
	if err != nil {
		s.log.WarnContext(ctx, "semantic-coherence refinement call failed, keeping prior candidate", "error", err)
		return candidate
	}
	return acceptIfValid(candidate, resp, lc.WordSyllables)
}

// applyPolishPass asks for a light wording and punctuation pass. Unlike
// the syllable and semantic passes, punctuation refinement only has to
// stay within the overall syllable deviation budget — it isn't required
// to preserve the exact per-word pattern.
func (s *Service) applyPolishPass(ctx context.Context, lc prompt.LineContext, candidate string) string {
	resp, err := s.completer.Complete(ctx, prompt.BuildPolish(lc, candidate))
	if err != nil {
		s.log.WarnContext(ctx, "polish refinement call failed, keeping prior candidate", "error", err)
		return candidate
	}
	refined := sanitizeCandidate(resp)
	if refined == "" || !withinSyllableDeviation(refined, lc.TotalSyllables, s.cfg.MaxSyllableDeviation) {
		return candidate
	}
	return refined
}

// actualWordSyllables returns candidate's own current per-word syllable
// breakdown, for display alongside the required pattern in the
// word-syllable refinement prompt.
func actualWordSyllables(candidate string) []int {
	words := syllable.AnalyzeLine(candidate)
	counts := make([]int, len(words))
	for i, w := range words {
		counts[i] = w.Count
	}
	return counts
}

// acceptIfValid sanitizes a completer response and accepts it only if
// it still satisfies the target word-syllable pattern; otherwise the
// refinement pass is treated as a no-op and prior is returned unchanged.
func acceptIfValid(prior, rawResponse string, target []int) string {
	refined := sanitizeCandidate(rawResponse)
	if refined == "" || !matchesWordSyllablePattern(refined, target) {
		return prior
	}
	return refined
}
