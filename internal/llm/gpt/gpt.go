package gpt

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/llm"
)

func (c *Client) Complete(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(request.SystemPrompt),
			openai.UserMessage(request.UserPrompt),
		},
		Model:               openai.ChatModel(c.ModelID),
		MaxCompletionTokens: openai.Int(int64(request.MaxTokens)),
		Temperature:         openai.Float(request.Temperature),
		TopP:                openai.Float(request.TopP),
		FrequencyPenalty:    openai.Float(request.FrequencyPenalty),
		PresencePenalty:     openai.Float(request.PresencePenalty),
	}

	output, err := c.Client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, llm.NewUpstreamError(providerName, err)
	}

	// No choices is treated as an absent completion, not a transport failure.
	if len(output.Choices) == 0 {
		return &llm.ChatResponse{}, nil
	}

	choice := output.Choices[0]
	return &llm.ChatResponse{
		Content:    choice.Message.Content,
		StopReason: string(choice.FinishReason),
	}, nil
}
