package stream

// Frame is the top-level shape of one streaming protocol record. Unknown
// top-level shapes deserialize with a nil Event and are ignored.
type Frame struct {
	Event *Event `json:"event"`
}

// Event carries exactly one of the tagged variants below; dispatch is by
// which single field is non-nil.
type Event struct {
	MessageStart      *MessageStart      `json:"messageStart,omitempty"`
	ContentBlockStart *ContentBlockStart `json:"contentBlockStart,omitempty"`
	ContentBlockDelta *ContentBlockDelta `json:"contentBlockDelta,omitempty"`
	ContentBlockStop  *ContentBlockStop  `json:"contentBlockStop,omitempty"`
	MessageStop       *MessageStop       `json:"messageStop,omitempty"`
	Metadata          *Metadata          `json:"metadata,omitempty"`

	InternalServerException     *Exception `json:"internalServerException,omitempty"`
	ModelStreamErrorException   *Exception `json:"modelStreamErrorException,omitempty"`
	ServiceUnavailableException *Exception `json:"serviceUnavailableException,omitempty"`
	ThrottlingException         *Exception `json:"throttlingException,omitempty"`
	ValidationException         *Exception `json:"validationException,omitempty"`

	RedactContent *RedactContent `json:"redactContent,omitempty"`
}

// MessageStart opens a new assistant message.
type MessageStart struct {
	Role string `json:"role"`
}

// ContentBlockStart opens a content block. Start.ToolUse distinguishes a
// tool-use block from a text block.
type ContentBlockStart struct {
	Start             BlockStart `json:"start"`
	ContentBlockIndex int        `json:"contentBlockIndex"`
}

// BlockStart is the union inside a content-block-start frame.
type BlockStart struct {
	ToolUse *ToolUseStart `json:"toolUse,omitempty"`
	Text    string        `json:"text,omitempty"`
}

// ToolUseStart announces a tool invocation by id and name.
type ToolUseStart struct {
	ToolUseID string `json:"toolUseId"`
	Name      string `json:"name"`
}

// ContentBlockDelta carries one incremental piece of the open block.
type ContentBlockDelta struct {
	Delta             BlockDelta `json:"delta"`
	ContentBlockIndex int        `json:"contentBlockIndex"`
}

// BlockDelta is the union inside a content-block-delta frame. Text uses a
// pointer so an empty text delta is distinguishable from an unrecognized
// delta shape.
type BlockDelta struct {
	Text             *string         `json:"text,omitempty"`
	ToolUse          *ToolUseDelta   `json:"toolUse,omitempty"`
	ReasoningContent *ReasoningDelta `json:"reasoningContent,omitempty"`
}

// ToolUseDelta carries an incremental piece of the tool argument string.
type ToolUseDelta struct {
	Input string `json:"input"`
}

// ReasoningDelta carries an incremental piece of the reasoning trace.
type ReasoningDelta struct {
	Text string `json:"text"`
}

// ContentBlockStop closes the open content block.
type ContentBlockStop struct {
	ContentBlockIndex int `json:"contentBlockIndex"`
}

// MessageStop closes the assistant message.
type MessageStop struct {
	StopReason string `json:"stopReason,omitempty"`
}

// Metadata reports token usage for the response so far.
type Metadata struct {
	Usage *Usage `json:"usage,omitempty"`
}

// Usage mirrors the provider's token accounting. The cache fields are
// present only when prompt caching was active.
type Usage struct {
	InputTokens           int  `json:"inputTokens"`
	OutputTokens          int  `json:"outputTokens"`
	TotalTokens           int  `json:"totalTokens"`
	CacheReadInputTokens  *int `json:"cacheReadInputTokens,omitempty"`
	CacheWriteInputTokens *int `json:"cacheWriteInputTokens,omitempty"`
}

// Exception is a provider-reported error frame payload.
type Exception struct {
	Message string `json:"message,omitempty"`
}

// RedactContent signals that previously streamed content was redacted.
type RedactContent struct {
	RedactAssistantContentMessage *string `json:"redactAssistantContentMessage,omitempty"`
	RedactUserContentMessage      *string `json:"redactUserContentMessage,omitempty"`
}
