package models

import (
	"encoding/json"
	"errors"
)

var ErrPromptRequired = errors.New("prompt is required and must be a string")

// DiagramRequest carries the natural language description of a database.
type DiagramRequest struct {
	Prompt string `json:"prompt" description:"Natural language description of the database" jsonschema:"natural language description of the database"`
}

// UnmarshalJSON rejects a body whose prompt is missing or null. An empty
// string is accepted here and left to the generator.
func (r *DiagramRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Prompt *string `json:"prompt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Prompt == nil {
		return ErrPromptRequired
	}

	r.Prompt = *raw.Prompt
	return nil
}

// DiagramResponse is the generated Mermaid code. Explanation is only set when
// the output looks suspect.
type DiagramResponse struct {
	MermaidCode string  `json:"mermaid_code" description:"Generated Mermaid erDiagram code" jsonschema:"generated Mermaid erDiagram code"`
	Explanation *string `json:"explanation" description:"Advisory note when the output format looks incorrect" jsonschema:"advisory note when the output format looks incorrect"`
}

type WelcomeResponse struct {
	Message string `json:"message"`
}
