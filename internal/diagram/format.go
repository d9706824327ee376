package diagram

import (
	"strings"

	"github.com/povarna/generative-ai-agents/er-diagram-agent/internal/prompt"
)

const FormatWarning = "Warning: AI response format might be incorrect (did not start with '" + prompt.DiagramKeyword + "')."

// CheckFormat flags output that does not start with the diagram keyword.
// The output itself is never rejected or repaired.
func CheckFormat(code string) *string {
	if strings.HasPrefix(code, prompt.DiagramKeyword) {
		return nil
	}

	warning := FormatWarning
	return &warning
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
