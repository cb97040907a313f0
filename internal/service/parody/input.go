package parody

import "github.com/heartmarshall/parodyforge/internal/domain"

// ProgressFunc is called after each input line has been committed to
// the run's output, so a caller can render a progress bar.
type ProgressFunc func(lineIndex, totalLines int)

// GenerateInput holds the parameters for a single parody run.
type GenerateInput struct {
	// Lines is the source lyric sheet, one entry per line. Blank lines
	// (whitespace-only) come out as empty strings at the same positions.
	Lines []string

	// Keywords, if non-empty, nudges generation toward a theme.
	Keywords domain.KeywordMap

	// OnProgress, if set, is called once per input line as it commits.
	OnProgress ProgressFunc
}

// Validate checks that the input has at least one non-blank line to
// generate from.
func (i GenerateInput) Validate() error {
	for _, l := range i.Lines {
		if !domain.IsBlankLine(l) {
			return nil
		}
	}
	return domain.ErrEmptyInput
}
