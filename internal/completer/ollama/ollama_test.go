package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/parodyforge/internal/completer"
)

func TestComplete_ReturnsResponseField(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Stream {
			t.Fatal("expected stream=false")
		}
		_ = json.NewEncoder(w).Encode(generateResponse{Response: "a generated line", Done: true})
	}))
	defer srv.Close()

	c := New(srv.URL, "llama3", 0.7, 0.9, 64, nil)
	got, err := c.Complete(context.Background(), "write a line")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "a generated line" {
		t.Fatalf("Complete() = %q", got)
	}
}

func TestVerify_ModelPresent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(tagsResponse{Models: []struct {
			Name string `json:"name"`
		}{{Name: "llama3"}}})
	}))
	defer srv.Close()

	c := New(srv.URL, "llama3", 0, 0, 0, nil)
	if err := c.Verify(context.Background()); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
}

func TestVerify_ModelMissing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(tagsResponse{})
	}))
	defer srv.Close()

	c := New(srv.URL, "missing-model", 0, 0, 0, nil)
	err := c.Verify(context.Background())
	if err == nil {
		t.Fatal("expected error for missing model")
	}
	var cerr *completer.Error
	if !asCompleterError(err, &cerr) {
		t.Fatalf("expected *completer.Error, got %T", err)
	}
	if cerr.Kind != completer.KindModelMissing {
		t.Errorf("Kind = %v, want KindModelMissing", cerr.Kind)
	}
}

func TestVerify_ServerUnreachable(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1", "llama3", 0, 0, 0, nil)
	err := c.Verify(context.Background())
	if err == nil {
		t.Fatal("expected error for unreachable server")
	}
}

func asCompleterError(err error, target **completer.Error) bool {
	ce, ok := err.(*completer.Error)
	if ok {
		*target = ce
	}
	return ok
}
