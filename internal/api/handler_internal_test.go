package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/diagram"
	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/llm"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "empty prompt", err: diagram.ErrEmptyPrompt, want: http.StatusBadRequest},
		{name: "unavailable", err: diagram.ErrServiceUnavailable, want: http.StatusServiceUnavailable},
		{name: "upstream", err: llm.NewUpstreamError("openai", errors.New("401")), want: http.StatusServiceUnavailable},
		{name: "wrapped upstream", err: fmt.Errorf("generate: %w", llm.NewUpstreamError("bedrock", errors.New("timeout"))), want: http.StatusServiceUnavailable},
		{name: "empty result", err: diagram.ErrEmptyResult, want: http.StatusInternalServerError},
		{name: "unexpected", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := statusFor(test.err); got != test.want {
				t.Errorf("statusFor(%v) = %d, want %d", test.err, got, test.want)
			}
		})
	}
}
