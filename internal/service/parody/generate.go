package parody

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/parodyforge/internal/domain"
	"github.com/heartmarshall/parodyforge/internal/prompt"
	"github.com/heartmarshall/parodyforge/internal/rhyme"
	"github.com/heartmarshall/parodyforge/internal/style"
	"github.com/heartmarshall/parodyforge/internal/syllable"
	"github.com/heartmarshall/parodyforge/pkg/ctxutil"
)

// Generate runs the full per-line generate-then-refine loop over
// input.Lines and returns the completed parody. Blank input lines become
// empty output lines and never reach the completer.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.completer.Verify(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCompleterUnavailable, err)
	}

	labels, scheme := rhyme.Analyze(input.Lines)
	theme := themeSummary(input.Keywords)

	pc := domain.NewParodyContext(len(input.Lines))
	ctx = ctxutil.WithRunID(ctx, pc.RunID)
	s.log.InfoContext(ctx, "parody run starting",
		"lines", len(input.Lines),
		"rhyme_scheme", scheme,
	)

	for j, line := range input.Lines {
		if err := ctx.Err(); err != nil {
			return nil, domain.NewLineError(j, domain.ErrCancelled)
		}

		if domain.IsBlankLine(line) {
			pc.Accept("", true)
			reportProgress(input.OnProgress, j, len(input.Lines))
			continue
		}

		words := syllable.AnalyzeLine(line)
		targetCounts := make([]int, len(words))
		total := 0
		for i, w := range words {
			targetCounts[i] = w.Count
			total += w.Count
		}

		lc := prompt.LineContext{
			OriginalLine:   line,
			TotalSyllables: total,
			WordSyllables:  targetCounts,
			RhymeExamples:  rhymeExamplesFor(j, labels, pc.AcceptedParody),
			RecentLines:    pc.LastNonBlank(s.cfg.ContextWindowSize),
			Theme:          theme,
		}

		final, err := s.generateLine(ctx, j, lc)
		if err != nil {
			return nil, err
		}

		pc.Accept(final, false)
		reportProgress(input.OnProgress, j, len(input.Lines))
	}

	s.log.InfoContext(ctx, "parody run complete")

	return &Result{RunID: pc.RunID, Lines: pc.AcceptedParody, RhymeScheme: scheme}, nil
}

// generateLine produces one committed output line: an initial
// generation, a mandatory word-syllable repair pass, an optional
// semantic-coherence pass, and whatever polish passes remain in the
// configured refinement budget. A candidate that still falls outside
// the allowed syllable deviation after all passes falls back to the
// original line, guaranteeing the run always terminates with valid
// output.
func (s *Service) generateLine(ctx context.Context, index int, lc prompt.LineContext) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.NewLineError(index, domain.ErrCancelled)
	}

	resp, err := s.completer.Complete(ctx, prompt.BuildInitial(lc))
	if err != nil {
		return "", domain.NewLineError(index, fmt.Errorf("%w: %v", domain.ErrCompleterFailed, err))
	}
	candidate := sanitizeCandidate(resp)
	if candidate == "" {
		candidate = lc.OriginalLine
	}

	candidate = s.applyWordSyllablePass(ctx, lc, candidate)

	remaining := s.cfg.RefinementPasses
	if remaining > 0 {
		candidate = s.applySemanticCoherencePass(ctx, lc, candidate)
		remaining--
	}

	for ; remaining > 0; remaining-- {
		if err := ctx.Err(); err != nil {
			return "", domain.NewLineError(index, domain.ErrCancelled)
		}
		candidate = s.applyPolishPass(ctx, lc, candidate)
	}

	if !withinSyllableDeviation(candidate, lc.TotalSyllables, s.cfg.MaxSyllableDeviation) {
		candidate = lc.OriginalLine
	}

	return style.Apply(lc.OriginalLine, candidate), nil
}

// rhymeExamplesFor returns the already-committed lines sharing index's
// rhyme group, in input order.
func rhymeExamplesFor(index int, labels []string, accepted []string) []string {
	var examples []string
	for _, peer := range rhyme.PeersOf(index, labels) {
		if peer < index {
			examples = append(examples, accepted[peer])
		}
	}
	return examples
}

func themeSummary(keywords domain.KeywordMap) string {
	if len(keywords) == 0 {
		return ""
	}
	parts := make([]string, 0, len(keywords))
	for _, k := range keywords.SortedKeys() {
		parts = append(parts, fmt.Sprintf("%s: %s", k, keywords[k]))
	}
	return strings.Join(parts, "; ")
}

func reportProgress(fn ProgressFunc, index, total int) {
	if fn != nil {
		fn(index, total)
	}
}
