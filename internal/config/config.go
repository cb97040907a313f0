package config

// Config is the root application configuration.
type Config struct {
	Completer CompleterConfig `yaml:"completer"`
	Ollama    OllamaConfig    `yaml:"ollama"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
	Engine    EngineConfig    `yaml:"engine"`
	Log       LogConfig       `yaml:"log"`
}

// CompleterConfig selects and tunes the text-generation backend.
type CompleterConfig struct {
	Backend     string  `yaml:"backend"     env:"COMPLETER_BACKEND"     env-default:"ollama"`
	Temperature float64 `yaml:"temperature" env:"COMPLETER_TEMPERATURE" env-default:"0.8"`
	TopP        float64 `yaml:"top_p"       env:"COMPLETER_TOP_P"       env-default:"0.9"`
	NumPredict  int     `yaml:"num_predict" env:"COMPLETER_NUM_PREDICT" env-default:"64"`
}

// OllamaConfig holds connection settings for a local Ollama server.
// Only read when CompleterConfig.Backend == "ollama".
type OllamaConfig struct {
	BaseURL string `yaml:"base_url" env:"OLLAMA_BASE_URL" env-default:"http://localhost:11434"`
	Model   string `yaml:"model"    env:"OLLAMA_MODEL"    env-default:"llama3"`
}

// AnthropicConfig holds Anthropic Messages API settings. Only read when
// CompleterConfig.Backend == "anthropic".
type AnthropicConfig struct {
	APIKey    string `yaml:"api_key"    env:"ANTHROPIC_API_KEY"`
	Model     string `yaml:"model"      env:"ANTHROPIC_MODEL"      env-default:"claude-3-5-sonnet-20241022"`
	MaxTokens int64  `yaml:"max_tokens" env:"ANTHROPIC_MAX_TOKENS" env-default:"1024"`
}

// EngineConfig tunes the parody-generation loop itself.
type EngineConfig struct {
	// RefinementPasses is the per-line refinement budget on top of the
	// word-syllable pass, which always runs: one pass goes to semantic
	// coherence (spent even when that pass is skipped for lack of
	// context), and the rest are polish passes.
	RefinementPasses int `yaml:"refinement_passes" env:"ENGINE_REFINEMENT_PASSES" env-default:"2"`

	// ContextWindowSize is how many recently accepted non-blank lines
	// are fed to the completer as semantic context.
	ContextWindowSize int `yaml:"context_window_size" env:"ENGINE_CONTEXT_WINDOW_SIZE" env-default:"8"`

	// MaxSyllableDeviation is the maximum allowed difference between a
	// candidate line's total syllable count and its target. A polish
	// result outside it is rejected and the prior candidate kept; a final
	// candidate outside it is replaced by the original line.
	MaxSyllableDeviation int `yaml:"max_syllable_deviation" env:"ENGINE_MAX_SYLLABLE_DEVIATION" env-default:"2"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
