package setup

import (
	"context"
	"fmt"
	"os"

	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/config"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/diagram"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/llm/gpt"
	"github.com/rs/zerolog"
)

const (
	ProviderOpenAI  = "openai"
	ProviderBedrock = "bedrock"
)

type Config struct {
	OpenAIKey            string
	Provider             string
	AWSRegion            string
	ClaudeModelID        string
	Host                 string
	Port                 string
	LogLevel             string
	GenerationConfigPath string
}

type Dependencies struct {
	Generator *diagram.Generator
	Logger    *zerolog.Logger
}

// LoadConfig reads the process environment once.
func LoadConfig() *Config {
	return &Config{
		OpenAIKey:            getEnv("OPENAI_API_KEY", ""),
		Provider:             getEnv("LLM_PROVIDER", ProviderOpenAI),
		AWSRegion:            getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:        getEnv("CLAUDE_MODEL_ID", ""),
		Host:                 getEnv("API_HOST", "127.0.0.1"),
		Port:                 getEnv("API_PORT", "8000"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		GenerationConfigPath: getEnv("GENERATION_CONFIG_PATH", ""),
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Wire builds the generator. A missing or unusable credential does not fail:
// the generator is built without a client and rejects every request.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	params, err := config.LoadGenerationConfig(cfg.GenerationConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load generation config: %w", err)
	}

	var client llm.Client
	llmClient, err := createLLMClient(ctx, cfg, params.Model)
	if err != nil {
		logger.Error().Err(err).Str("provider", cfg.Provider).Msg("Configuration Error")
	} else {
		client = llmClient
		logger.Info().Str("provider", cfg.Provider).Msg("LLM client initialized successfully")
	}

	return &Dependencies{
		Generator: diagram.NewGenerator(client, *params, logger),
		Logger:    logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func createLLMClient(ctx context.Context, cfg *Config, model string) (llm.Client, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		client, err := gpt.NewClient(cfg.OpenAIKey, model)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderBedrock:
		client, err := bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
