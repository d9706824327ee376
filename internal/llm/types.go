package llm

// ChatRequest is a two message conversation: a system instruction and a user instruction.
type ChatRequest struct {
	SystemPrompt     string
	UserPrompt       string
	MaxTokens        int
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

type ChatResponse struct {
	Content    string
	StopReason string
}
