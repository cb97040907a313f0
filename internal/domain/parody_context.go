package domain

import "github.com/google/uuid"

// ParodyContext is the evolving state of a single engine run. It is
// created once per run, mutated only by appending accepted lines as the
// per-line loop commits them, and discarded once the run returns.
type ParodyContext struct {
	// RunID correlates this run's log lines; it has no bearing on
	// generation semantics.
	RunID uuid.UUID

	// AcceptedParody holds the final accepted line for every input
	// position processed so far, positionally aligned with the input
	// (blank positions hold "").
	AcceptedParody []string

	// AcceptedNonBlank holds only the non-blank accepted lines, in
	// input order — the context fed to rhyme and semantic refinement.
	AcceptedNonBlank []string
}

// NewParodyContext creates an empty context sized for a run over
// totalLines input lines.
func NewParodyContext(totalLines int) *ParodyContext {
	return &ParodyContext{
		RunID:          uuid.New(),
		AcceptedParody: make([]string, 0, totalLines),
	}
}

// Accept appends a committed line to the context. isBlank must match the
// corresponding input line's blankness, preserving the invariant that
// blank input positions stay blank in the output.
func (c *ParodyContext) Accept(line string, isBlank bool) {
	c.AcceptedParody = append(c.AcceptedParody, line)
	if !isBlank {
		c.AcceptedNonBlank = append(c.AcceptedNonBlank, line)
	}
}

// LastNonBlank returns up to n of the most recently accepted non-blank
// lines, oldest first. Returns nil if n <= 0 or nothing has been
// accepted yet.
func (c *ParodyContext) LastNonBlank(n int) []string {
	if n <= 0 || len(c.AcceptedNonBlank) == 0 {
		return nil
	}
	if len(c.AcceptedNonBlank) <= n {
		return append([]string(nil), c.AcceptedNonBlank...)
	}
	start := len(c.AcceptedNonBlank) - n
	return append([]string(nil), c.AcceptedNonBlank[start:]...)
}
