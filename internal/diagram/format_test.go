package diagram

import (
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/llm"
)

func TestCheckFormat(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		warning bool
	}{
		{name: "keyword only", code: "erDiagram", warning: false},
		{name: "full diagram", code: "erDiagram\n    A ||--|| B : has", warning: false},
		{name: "code fence", code: "```mermaid\nerDiagram\n```", warning: true},
		{name: "prose", code: "Here is your diagram: erDiagram", warning: true},
		{name: "wrong case", code: "ERDIAGRAM", warning: true},
		{name: "empty", code: "", warning: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := CheckFormat(test.code)
			if test.warning && (got == nil || *got != FormatWarning) {
				t.Errorf("CheckFormat(%q) = %v, want warning", test.code, got)
			}
			if !test.warning && got != nil {
				t.Errorf("CheckFormat(%q) = %q, want nil", test.code, *got)
			}
		})
	}
}

func TestFormatWarning(t *testing.T) {
	want := "Warning: AI response format might be incorrect (did not start with 'erDiagram')."
	if FormatWarning != want {
		t.Errorf("FormatWarning = %q, want %q", FormatWarning, want)
	}
}

func TestDetail(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "unavailable", err: ErrServiceUnavailable, want: "AI service is unavailable due to configuration error."},
		{name: "empty prompt", err: ErrEmptyPrompt, want: "Prompt cannot be empty."},
		{name: "empty result", err: ErrEmptyResult, want: "AI service returned an empty response."},
		{name: "upstream", err: llm.NewUpstreamError("bedrock", errors.New("ThrottlingException")), want: "AI service error: ThrottlingException"},
		{name: "other", err: errors.New("boom"), want: "An internal server error occurred: boom"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Detail(test.err); got != test.want {
				t.Errorf("Detail() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("ééééé", 2); got != "éé..." {
		t.Errorf("truncate = %q, want rune-safe cut", got)
	}
}
