package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
completer:
  backend: "ollama"
  temperature: 0.7
  top_p: 0.9
  num_predict: 64

ollama:
  base_url: "http://localhost:11434"
  model: "llama3"

engine:
  refinement_passes: 3
  context_window_size: 8
  max_syllable_deviation: 2

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Completer.Backend != "ollama" {
		t.Errorf("completer.backend = %q, want ollama", cfg.Completer.Backend)
	}
	if cfg.Completer.Temperature != 0.7 {
		t.Errorf("completer.temperature = %v, want 0.7", cfg.Completer.Temperature)
	}
	if cfg.Ollama.Model != "llama3" {
		t.Errorf("ollama.model = %q, want llama3", cfg.Ollama.Model)
	}
	if cfg.Engine.RefinementPasses != 3 {
		t.Errorf("engine.refinement_passes = %d, want 3", cfg.Engine.RefinementPasses)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("OLLAMA_MODEL", "mistral")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Ollama.Model != "mistral" {
		t.Errorf("ollama.model = %q, want mistral (ENV override)", cfg.Ollama.Model)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want warn (ENV override)", cfg.Log.Level)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Completer.Backend != "ollama" {
		t.Errorf("completer.backend = %q, want ollama (default)", cfg.Completer.Backend)
	}
	if cfg.Engine.ContextWindowSize != 8 {
		t.Errorf("engine.context_window_size = %d, want 8 (default)", cfg.Engine.ContextWindowSize)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_UnknownBackend(t *testing.T) {
	cfg := validConfig()
	cfg.Completer.Backend = "gpt"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown completer backend")
	}
}

func TestValidate_AnthropicRequiresAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.Completer.Backend = "anthropic"
	cfg.Anthropic.APIKey = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing anthropic.api_key")
	}
}

func TestValidate_AnthropicWithAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.Completer.Backend = "anthropic"
	cfg.Anthropic.APIKey = "sk-ant-test"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MockBackendNeedsNoCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.Completer.Backend = "mock"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error for mock backend: %v", err)
	}
}

func TestValidate_TemperatureOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.Completer.Temperature = 2.5

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for temperature out of range")
	}
}

func TestValidate_TopPOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.Completer.TopP = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for top_p out of range")
	}
}

func TestValidate_NegativeRefinementPasses(t *testing.T) {
	cfg := validConfig()
	cfg.Engine.RefinementPasses = -1

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative refinement_passes")
	}
}

func TestValidate_NegativeContextWindowSize(t *testing.T) {
	cfg := validConfig()
	cfg.Engine.ContextWindowSize = -1

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative context_window_size")
	}
}

func TestValidate_NegativeMaxSyllableDeviation(t *testing.T) {
	cfg := validConfig()
	cfg.Engine.MaxSyllableDeviation = -1

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative max_syllable_deviation")
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Completer: CompleterConfig{
			Backend:     "ollama",
			Temperature: 0.8,
			TopP:        0.9,
			NumPredict:  64,
		},
		Ollama: OllamaConfig{
			BaseURL: "http://localhost:11434",
			Model:   "llama3",
		},
		Engine: EngineConfig{
			RefinementPasses:     2,
			ContextWindowSize:    8,
			MaxSyllableDeviation: 2,
		},
	}
}
