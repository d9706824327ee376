package gpt

import (
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const providerName = "openai"

type Client struct {
	Client  openai.Client
	ModelID string
}

// NewClient builds an OpenAI chat client. Extra options are appended after the
// defaults, so callers can point it at another base URL.
func NewClient(apiKey string, model string, opts ...option.RequestOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	if model == "" {
		return nil, fmt.Errorf("OpenAI model ID is required")
	}

	options := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)

	return &Client{
		Client:  openai.NewClient(options...),
		ModelID: model,
	}, nil
}
