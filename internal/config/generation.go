package config

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

var (
	ErrMissingModel       = errors.New("model is required")
	ErrInvalidTemperature = errors.New("temperature must be within [0.0, 2.0]")
	ErrInvalidMaxTokens   = errors.New("max_tokens must be positive")
	ErrInvalidTopP        = errors.New("top_p must be within (0.0, 1.0]")
	ErrInvalidPenalty     = errors.New("penalties must be within [-2.0, 2.0]")
)

// LoadGenerationConfig reads generation parameters from a YAML file. Keys missing
// from the file keep their default value. An empty path returns the defaults.
func LoadGenerationConfig(path string) (*GenerationConfig, error) {
	cfg := DefaultGeneration()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read generation config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unable to parse generation config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation config %s: %w", path, err)
	}

	return &cfg, nil
}

func (c *GenerationConfig) Validate() error {
	if c.Model == "" {
		return ErrMissingModel
	}
	if c.Temperature < 0.0 || c.Temperature > 2.0 {
		return ErrInvalidTemperature
	}
	if c.MaxTokens <= 0 {
		return ErrInvalidMaxTokens
	}
	if c.TopP <= 0.0 || c.TopP > 1.0 {
		return ErrInvalidTopP
	}
	if !validPenalty(c.FrequencyPenalty) || !validPenalty(c.PresencePenalty) {
		return ErrInvalidPenalty
	}
	return nil
}

func validPenalty(p float64) bool {
	return p >= -2.0 && p <= 2.0
}
