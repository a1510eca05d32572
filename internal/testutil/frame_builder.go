package testutil

import (
	"encoding/json"
	"fmt"
)

// Frame builds a raw protocol frame {"event":{<variant>:<payload>}} for
// processor tests. The payload is serialized with encoding/json so tests
// exercise the same deserialization path as production frames.
func Frame(variant string, payload any) []byte {
	body, err := json.Marshal(payload)
	if err != nil {
		panic(fmt.Sprintf("testutil: marshal frame payload: %v", err))
	}
	return []byte(fmt.Sprintf(`{"event":{%q:%s}}`, variant, body))
}

// MessageStartFrame opens an assistant message.
func MessageStartFrame() []byte {
	return Frame("messageStart", map[string]string{"role": "assistant"})
}

// MessageStopFrame closes the assistant message.
func MessageStopFrame(stopReason string) []byte {
	return Frame("messageStop", map[string]string{"stopReason": stopReason})
}

// TextStartFrame opens a text content block.
func TextStartFrame(index int) []byte {
	return Frame("contentBlockStart", map[string]any{"start": map[string]any{}, "contentBlockIndex": index})
}

// ToolStartFrame opens a tool-use content block.
func ToolStartFrame(index int, id, name string) []byte {
	return Frame("contentBlockStart", map[string]any{
		"start":             map[string]any{"toolUse": map[string]string{"toolUseId": id, "name": name}},
		"contentBlockIndex": index,
	})
}

// TextDeltaFrame carries a text delta.
func TextDeltaFrame(index int, text string) []byte {
	return Frame("contentBlockDelta", map[string]any{
		"delta":             map[string]any{"text": text},
		"contentBlockIndex": index,
	})
}

// ToolDeltaFrame carries a tool argument delta.
func ToolDeltaFrame(index int, input string) []byte {
	return Frame("contentBlockDelta", map[string]any{
		"delta":             map[string]any{"toolUse": map[string]string{"input": input}},
		"contentBlockIndex": index,
	})
}

// ReasoningDeltaFrame carries a reasoning trace delta.
func ReasoningDeltaFrame(index int, text string) []byte {
	return Frame("contentBlockDelta", map[string]any{
		"delta":             map[string]any{"reasoningContent": map[string]string{"text": text}},
		"contentBlockIndex": index,
	})
}

// BlockStopFrame closes the open content block.
func BlockStopFrame(index int) []byte {
	return Frame("contentBlockStop", map[string]any{"contentBlockIndex": index})
}

// MetadataFrame reports token usage. Cache counts are attached only when
// non-negative.
func MetadataFrame(input, output, total, cacheRead, cacheWrite int) []byte {
	usage := map[string]any{
		"inputTokens":  input,
		"outputTokens": output,
		"totalTokens":  total,
	}
	if cacheRead >= 0 {
		usage["cacheReadInputTokens"] = cacheRead
	}
	if cacheWrite >= 0 {
		usage["cacheWriteInputTokens"] = cacheWrite
	}
	return Frame("metadata", map[string]any{"usage": usage})
}

// ExceptionFrame builds one of the provider error frames; variant must be
// the wire member name (e.g. "throttlingException"). An empty message is
// omitted from the payload.
func ExceptionFrame(variant, message string) []byte {
	payload := map[string]any{}
	if message != "" {
		payload["message"] = message
	}
	return Frame(variant, payload)
}

// RedactionFrame signals redaction of assistant content.
func RedactionFrame(message string) []byte {
	return Frame("redactContent", map[string]string{"redactAssistantContentMessage": message})
}
