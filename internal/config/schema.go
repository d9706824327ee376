package config

// GenerationConfig holds the fixed parameters of every completion call.
// They are set per deployment and never per request.
type GenerationConfig struct {
	Model            string  `yaml:"model"`
	Temperature      float64 `yaml:"temperature"`
	MaxTokens        int     `yaml:"max_tokens"`
	TopP             float64 `yaml:"top_p"`
	FrequencyPenalty float64 `yaml:"frequency_penalty"`
	PresencePenalty  float64 `yaml:"presence_penalty"`
}

// DefaultGeneration favors determinism over creativity.
func DefaultGeneration() GenerationConfig {
	return GenerationConfig{
		Model:            "gpt-4-turbo",
		Temperature:      0.2,
		MaxTokens:        1000,
		TopP:             1.0,
		FrequencyPenalty: 0.0,
		PresencePenalty:  0.0,
	}
}
