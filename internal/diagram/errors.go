package diagram

import (
	"errors"

	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/llm"
)

var (
	ErrServiceUnavailable = errors.New("completion client is not available")
	ErrEmptyPrompt        = errors.New("prompt is empty")
	ErrEmptyResult        = errors.New("completion service returned an empty response")
)

// Detail returns the user-facing description of a generation failure.
func Detail(err error) string {
	var upstreamErr *llm.UpstreamError

	switch {
	case errors.Is(err, ErrServiceUnavailable):
		return "AI service is unavailable due to configuration error."
	case errors.Is(err, ErrEmptyPrompt):
		return "Prompt cannot be empty."
	case errors.Is(err, ErrEmptyResult):
		return "AI service returned an empty response."
	case errors.As(err, &upstreamErr):
		return "AI service error: " + upstreamErr.Err.Error()
	default:
		return "An internal server error occurred: " + err.Error()
	}
}
