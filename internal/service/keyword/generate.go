package keyword

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/parodyforge/internal/domain"
	"github.com/heartmarshall/parodyforge/internal/prompt"
)

// Generate asks the completer for input.Count thematic keywords and
// parses the response into a KeywordMap. A malformed or empty response
// yields an empty, non-nil map rather than an error; callers that
// require at least one keyword check for that themselves.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (domain.KeywordMap, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.completer.Verify(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCompleterUnavailable, err)
	}

	resp, err := s.completer.Complete(ctx, prompt.BuildKeywordRequest(input.Theme, input.Count))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCompleterFailed, err)
	}

	keywords := ParseResponse(resp)
	s.log.InfoContext(ctx, "keyword generation complete",
		"theme", input.Theme,
		"requested", input.Count,
		"parsed", len(keywords),
	)

	return keywords, nil
}

// ParseResponse reads one "keyword: definition" pair per line. Lines
// without a colon, or with an empty keyword or definition after
// trimming, are skipped. A later duplicate keyword overwrites an
// earlier one. Used both for completer responses and for standalone
// keywords files, whose format is identical.
func ParseResponse(resp string) domain.KeywordMap {
	keywords := domain.KeywordMap{}

	for _, line := range strings.Split(resp, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}

		key := unquote(strings.TrimSpace(line[:idx]))
		def := unquote(strings.TrimSpace(line[idx+1:]))
		if key == "" || def == "" {
			continue
		}

		keywords[key] = def
	}

	return keywords
}

// unquote strips a single layer of matching surrounding quotes, if
// present.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
