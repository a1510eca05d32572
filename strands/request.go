package strands

import (
	"encoding/json"

	"github.com/hupe1980/strandsbridge/core"
)

// ModelInfo selects the model an AgentCore runtime invocation should use.
type ModelInfo struct {
	ModelID string `json:"modelId"`
	Region  string `json:"region,omitempty"`
}

// Request is the body of an AgentCore /invocations call: converted history,
// an optional system prompt, the current prompt and the model selection. The
// transport delivering it is a caller concern.
type Request struct {
	Messages     []Message `json:"messages"`
	SystemPrompt string    `json:"system_prompt,omitempty"`
	Prompt       Prompt    `json:"prompt"`
	Model        ModelInfo `json:"model"`
}

// Prompt is the current turn's input: plain text, or a list of content
// blocks when the turn carries attachments. Exactly one of the two is set.
type Prompt struct {
	Text   string
	Blocks []ContentBlock
}

// MarshalJSON emits either a JSON string or a block list, matching what the
// runtime accepts for its prompt field.
func (p Prompt) MarshalJSON() ([]byte, error) {
	if len(p.Blocks) > 0 {
		return json.Marshal(p.Blocks)
	}
	return json.Marshal(p.Text)
}

// NewRequest assembles a runtime request. Model fields left empty fall back
// to the environment configuration.
func NewRequest(messages []Message, systemPrompt string, prompt Prompt, model ModelInfo, cfg *Config) Request {
	if cfg != nil {
		if model.ModelID == "" {
			model.ModelID = cfg.ModelID
		}
		if model.Region == "" {
			model.Region = cfg.Region
		}
	}
	return Request{
		Messages:     messages,
		SystemPrompt: systemPrompt,
		Prompt:       prompt,
		Model:        model,
	}
}

// NewErrorMessage shapes a runtime-level failure as a single-text-block
// assistant message.
func NewErrorMessage(errorMessage string) Message {
	return Message{
		Role: core.RoleAssistant,
		Content: []ContentBlock{
			TextBlock{Text: "An error occurred while processing your request: " + errorMessage},
		},
	}
}

// NewEmptyMessage shapes an empty generation as an apologetic assistant
// message, so consumers always receive renderable content.
func NewEmptyMessage() Message {
	return Message{
		Role: core.RoleAssistant,
		Content: []ContentBlock{
			TextBlock{Text: "I apologize, but I couldn't generate a response. Please try again."},
		},
	}
}
