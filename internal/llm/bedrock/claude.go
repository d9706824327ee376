package bedrock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/llm"
)

type claudeMessageRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Temperature      float64         `json:"temperature"`
	TopP             float64         `json:"top_p"`
	System           string          `json:"system,omitempty"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeMessageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

var anthropicVersion = "bedrock-2023-05-31"

// Complete invokes Claude through the Bedrock messages API. Claude has no
// frequency or presence penalties, so those request fields are not sent.
func (c *Client) Complete(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
	body, err := json.Marshal(newClaudeRequest(request))
	if err != nil {
		return nil, fmt.Errorf("unable to serialize claude request: %w", err)
	}

	output, err := c.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.ModelID),
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, llm.NewUpstreamError(providerName, err)
	}

	var response claudeMessageResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, llm.NewUpstreamError(providerName, fmt.Errorf("malformed claude response: %w", err))
	}

	var content string
	if len(response.Content) > 0 {
		content = response.Content[0].Text
	}

	return &llm.ChatResponse{
		Content:    content,
		StopReason: response.StopReason,
	}, nil
}

func newClaudeRequest(request llm.ChatRequest) claudeMessageRequest {
	return claudeMessageRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        request.MaxTokens,
		Temperature:      request.Temperature,
		TopP:             request.TopP,
		System:           request.SystemPrompt,
		Messages: []claudeMessage{
			{
				Role:    "user",
				Content: request.UserPrompt,
			},
		},
	}
}
