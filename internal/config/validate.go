package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Completer.Backend {
	case "ollama":
		if c.Ollama.Model == "" {
			return fmt.Errorf("ollama.model must not be empty")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("anthropic.api_key must be set when completer.backend is \"anthropic\"")
		}
	case "mock":
		// nothing to validate; the mock backend is wired by the caller.
	default:
		return fmt.Errorf("completer.backend must be one of ollama, anthropic, mock (got %q)", c.Completer.Backend)
	}

	if c.Completer.Temperature < 0 || c.Completer.Temperature > 2 {
		return fmt.Errorf("completer.temperature must be between 0 and 2 (got %v)", c.Completer.Temperature)
	}
	if c.Completer.TopP <= 0 || c.Completer.TopP > 1 {
		return fmt.Errorf("completer.top_p must be between 0 and 1 (got %v)", c.Completer.TopP)
	}

	if c.Engine.RefinementPasses < 0 {
		return fmt.Errorf("engine.refinement_passes must be >= 0 (got %d)", c.Engine.RefinementPasses)
	}
	if c.Engine.ContextWindowSize < 0 {
		return fmt.Errorf("engine.context_window_size must be >= 0 (got %d)", c.Engine.ContextWindowSize)
	}
	if c.Engine.MaxSyllableDeviation < 0 {
		return fmt.Errorf("engine.max_syllable_deviation must be >= 0 (got %d)", c.Engine.MaxSyllableDeviation)
	}

	return nil
}
