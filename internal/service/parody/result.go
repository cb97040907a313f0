package parody

import "github.com/google/uuid"

// Result is the completed output of one parody generation run.
type Result struct {
	// RunID correlates this run's log lines.
	RunID uuid.UUID

	// Lines is the generated parody, positionally aligned with the
	// input: blank input positions are blank here too.
	Lines []string

	// RhymeScheme is the concatenated rhyme-group label sequence
	// computed over the input (e.g. "ABAB").
	RhymeScheme string
}
