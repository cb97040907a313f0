// Package ollama implements a TextCompleter backed by a local Ollama
// server's /api/generate endpoint.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/heartmarshall/parodyforge/internal/completer"
)

const backendName = "ollama"

// Completer talks to a single Ollama model over HTTP.
type Completer struct {
	baseURL     string
	model       string
	temperature float64
	topP        float64
	numPredict  int
	httpClient  *http.Client
}

// New builds a Completer targeting baseURL (e.g. "http://localhost:11434")
// and model (e.g. "llama3"). A zero-value http.Client timeout means no
// per-request timeout beyond ctx's own deadline.
func New(baseURL, model string, temperature, topP float64, numPredict int, httpClient *http.Client) *Completer {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Completer{
		baseURL:     baseURL,
		model:       model,
		temperature: temperature,
		topP:        topP,
		numPredict:  numPredict,
		httpClient:  httpClient,
	}
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	NumPredict  int     `json:"num_predict"`
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Verify confirms the server is reachable and the configured model is
// present among its tags.
func (c *Completer) Verify(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return completer.NewError(backendName, completer.KindUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return completer.NewError(backendName, classifyNetErr(err), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return completer.NewError(backendName, completer.KindUnavailable,
			fmt.Errorf("unexpected status %d from /api/tags", resp.StatusCode))
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return completer.NewError(backendName, completer.KindMalformed, err)
	}

	for _, m := range tags.Models {
		if m.Name == c.model {
			return nil
		}
	}
	return completer.NewError(backendName, completer.KindModelMissing,
		fmt.Errorf("model %q not found on server", c.model))
}

// Complete sends prompt to Ollama's /api/generate with streaming
// disabled and returns the single response field.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: c.temperature,
			TopP:        c.topP,
			NumPredict:  c.numPredict,
		},
	})
	if err != nil {
		return "", completer.NewError(backendName, completer.KindMalformed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", completer.NewError(backendName, completer.KindTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", completer.NewError(backendName, classifyNetErr(err), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return "", completer.NewError(backendName, completer.KindTransport,
			fmt.Errorf("status %d: %s", resp.StatusCode, string(data)))
	}

	var gen generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gen); err != nil {
		return "", completer.NewError(backendName, completer.KindMalformed, err)
	}

	return gen.Response, nil
}

func classifyNetErr(err error) completer.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return completer.KindTimeout
	}
	return completer.KindUnavailable
}
