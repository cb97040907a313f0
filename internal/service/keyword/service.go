// Package keyword implements the KeywordGenerator: a single completer
// call that proposes a themed `keyword: definition` map for a parody
// run to lean toward.
package keyword

import (
	"log/slog"

	"github.com/heartmarshall/parodyforge/internal/completer"
)

// Service generates keyword maps from a short theme description.
type Service struct {
	completer completer.TextCompleter
	log       *slog.Logger
}

// NewService builds a Service backed by c.
func NewService(log *slog.Logger, c completer.TextCompleter) *Service {
	return &Service{
		completer: c,
		log:       log.With("service", "keyword"),
	}
}
