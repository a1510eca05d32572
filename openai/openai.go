// Package openai converts the generic message model into OpenAI Chat
// Completions parameters. Binary attachments travel as data-URL content
// parts, which is how the Chat Completions API accepts inline media.
package openai

import (
	"strings"

	"github.com/hupe1980/strandsbridge/core"
	"github.com/hupe1980/strandsbridge/logging"
	"github.com/hupe1980/strandsbridge/strands"
	"github.com/openai/openai-go"
)

// Options configures the OpenAI converter.
type Options struct {
	Logger logging.Logger
}

// Converter maps generic messages to OpenAI chat message parameters.
type Converter struct {
	logger logging.Logger
}

// NewConverter creates a Converter. A nil logger defaults to NoOp.
func NewConverter(optFns ...func(o *Options)) *Converter {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Converter{logger: opts.Logger}
}

// ConvertMessages converts generic messages to OpenAI chat messages,
// preserving order and role. Messages without renderable content degrade to
// a plain text message so the output never carries an empty part list.
func (c *Converter) ConvertMessages(
	messages []core.Message,
	rctx *core.ResolutionContext,
) []openai.ChatCompletionMessageParamUnion {
	var out []openai.ChatCompletionMessageParamUnion

	for _, msg := range messages {
		switch msg.Role {
		case core.RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case core.RoleAssistant:
			// The API rejects media parts on assistant turns; text only.
			out = append(out, openai.AssistantMessage(msg.Content))
		default:
			out = append(out, c.buildUserMessage(msg, rctx))
		}
	}

	return out
}

// buildUserMessage builds a user message, multimodal when any attachment
// resolves.
func (c *Converter) buildUserMessage(msg core.Message, rctx *core.ResolutionContext) openai.ChatCompletionMessageParamUnion {
	var parts []openai.ChatCompletionContentPartUnionParam

	if strings.TrimSpace(msg.Content) != "" {
		parts = append(parts, openai.TextContentPart(msg.Content))
	}

	for _, att := range msg.Attachments {
		if part, ok := c.buildAttachment(att, rctx); ok {
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 {
		return openai.UserMessage(msg.Content)
	}

	return openai.UserMessage(parts)
}

// buildAttachment converts a single attachment to a content part, or
// reports false when the API has no part kind for it.
func (c *Converter) buildAttachment(att core.Attachment, rctx *core.ResolutionContext) (openai.ChatCompletionContentPartUnionParam, bool) {
	data, ok := strands.ResolvePayload(att, rctx)
	if !ok {
		c.logger.Warn("attachment payload unavailable, dropping", "name", att.Name, "mediaType", att.MediaType)
		return openai.ChatCompletionContentPartUnionParam{}, false
	}

	switch att.Kind {
	case core.AttachmentImage:
		return openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
			URL: dataURL(att.MediaType, data),
		}), true
	case core.AttachmentFile:
		return openai.FileContentPart(openai.ChatCompletionContentPartFileFileParam{
			FileData: openai.String(dataURL(att.MediaType, data)),
			Filename: openai.String(strands.SanitizeName(att.Name)),
		}), true
	default:
		c.logger.Warn("attachment kind not supported by the Chat Completions API, dropping",
			"kind", string(att.Kind), "name", att.Name)
		return openai.ChatCompletionContentPartUnionParam{}, false
	}
}

// dataURL wraps a base64 payload in a data URL for inline transport.
func dataURL(mediaType, data string) string {
	return "data:" + strings.ToLower(mediaType) + ";base64," + data
}
