// Package anthropic implements a TextCompleter backed by the Anthropic
// Messages API, adapted from the dictionary backend's LLM enrichment
// client to the narrow completer.TextCompleter contract.
package anthropic

import (
	"context"
	"errors"
	"fmt"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/parodyforge/internal/completer"
)

const backendName = "anthropic"

// Completer wraps a single Anthropic model behind the TextCompleter
// contract.
type Completer struct {
	client    anthropicsdk.Client
	model     string
	maxTokens int64
}

// New builds a Completer for model (e.g. "claude-3-5-sonnet-20241022")
// using apiKey for authentication.
func New(apiKey, model string, maxTokens int64) *Completer {
	return &Completer{
		client:    anthropicsdk.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: maxTokens,
	}
}

// Verify sends a minimal one-token request to confirm the API key and
// model are both usable.
func (c *Completer) Verify(ctx context.Context) error {
	_, err := c.client.Messages.New(ctx, anthropicsdk.MessageNewParams{
		Model:     anthropicsdk.Model(c.model),
		MaxTokens: 1,
		Messages: []anthropicsdk.MessageParam{
			anthropicsdk.NewUserMessage(anthropicsdk.NewTextBlock("ping")),
		},
	})
	if err != nil {
		return completer.NewError(backendName, classifyErr(err), err)
	}
	return nil
}

// Complete sends prompt as a single user message and returns the first
// text block of the reply.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropicsdk.MessageNewParams{
		Model:     anthropicsdk.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropicsdk.MessageParam{
			anthropicsdk.NewUserMessage(anthropicsdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", completer.NewError(backendName, classifyErr(err), err)
	}

	if len(msg.Content) == 0 {
		return "", completer.NewError(backendName, completer.KindMalformed,
			fmt.Errorf("empty response content"))
	}

	return msg.Content[0].Text, nil
}

func classifyErr(err error) completer.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return completer.KindTimeout
	}
	return completer.KindTransport
}
