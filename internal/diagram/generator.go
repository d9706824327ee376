// Package diagram turns a database description into Mermaid ER diagram code.
package diagram

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/config"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/models"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/prompt"
	"github.com/rs/zerolog"
)

// Generator is built once at startup and shared by all requests. A nil client
// means the service is unavailable for the life of the process.
type Generator struct {
	client llm.Client
	params config.GenerationConfig
	logger *zerolog.Logger
}

func NewGenerator(client llm.Client, params config.GenerationConfig, logger *zerolog.Logger) *Generator {
	return &Generator{
		client: client,
		params: params,
		logger: logger,
	}
}

func (g *Generator) Available() bool {
	return g.client != nil
}

// Generate issues exactly one completion call for a non-empty description.
func (g *Generator) Generate(ctx context.Context, description string) (models.DiagramResponse, error) {
	if !g.Available() {
		g.logger.Error().Msg("LLM client is not available")
		return models.DiagramResponse{}, ErrServiceUnavailable
	}

	if strings.TrimSpace(description) == "" {
		g.logger.Warn().Msg("Rejecting empty prompt")
		return models.DiagramResponse{}, ErrEmptyPrompt
	}

	g.logger.Info().Str("prompt", truncate(description, 100)).Msg("Received prompt")

	request := llm.ChatRequest{
		SystemPrompt:     prompt.System(),
		UserPrompt:       prompt.User(description),
		MaxTokens:        g.params.MaxTokens,
		Temperature:      g.params.Temperature,
		TopP:             g.params.TopP,
		FrequencyPenalty: g.params.FrequencyPenalty,
		PresencePenalty:  g.params.PresencePenalty,
	}

	now := time.Now()
	g.logger.Info().Msg("Sending request to completion service")

	resp, err := g.client.Complete(ctx, request)
	if err != nil {
		var upstreamErr *llm.UpstreamError
		if errors.As(err, &upstreamErr) {
			g.logger.Error().
				Err(err).
				Str("provider", upstreamErr.Provider).
				Dur("duration", time.Since(now)).
				Msg("Completion service error")
			return models.DiagramResponse{}, err
		}

		g.logger.Error().Err(err).Msg("Unexpected error while generating diagram")
		return models.DiagramResponse{}, err
	}

	g.logger.Info().Dur("duration", time.Since(now)).Msg("Received response from completion service")

	if resp == nil || resp.Content == "" {
		g.logger.Warn().Msg("Completion service returned an empty response")
		return models.DiagramResponse{}, ErrEmptyResult
	}

	code := strings.TrimSpace(resp.Content)
	explanation := CheckFormat(code)

	if explanation != nil {
		g.logger.Warn().
			Str("response", truncate(code, 200)).
			Msgf("Response did not start with '%s'", prompt.DiagramKeyword)
	} else {
		g.logger.Info().
			Str("response", truncate(code, 50)).
			Msg("Successfully generated Mermaid code")
	}

	return models.DiagramResponse{
		MermaidCode: code,
		Explanation: explanation,
	}, nil
}
