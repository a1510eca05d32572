// Package anthropic converts the generic message model into Anthropic
// Messages API parameters. It proves the core model is provider agnostic:
// the same messages and resolution context that feed the Strands converter
// can target Claude directly.
package anthropic

import (
	"encoding/base64"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/hupe1980/strandsbridge/core"
	"github.com/hupe1980/strandsbridge/logging"
	"github.com/hupe1980/strandsbridge/strands"
)

// Options configures the Anthropic converter.
type Options struct {
	Logger logging.Logger
}

// Converter maps generic messages to Anthropic message parameters.
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

// ConvertMessages converts generic messages to Anthropic message parameters,
// preserving order. System messages are returned separately as system
// blocks, the way the Messages API expects them. Attachments the API cannot
// carry (video, non-PDF binary documents) are dropped with a diagnostic.
func (c *Converter) ConvertMessages(
	messages []core.Message,
	rctx *core.ResolutionContext,
) ([]anthropic.MessageParam, []anthropic.TextBlockParam) {
	var out []anthropic.MessageParam
	var system []anthropic.TextBlockParam

	for _, msg := range messages {
		if msg.Role == core.RoleSystem {
			if strings.TrimSpace(msg.Content) != "" {
				system = append(system, anthropic.TextBlockParam{Text: msg.Content})
			}
			continue
		}

		blocks := c.buildContent(msg, rctx)
		if len(blocks) == 0 {
			blocks = append(blocks, anthropic.NewTextBlock(msg.Content))
		}

		switch msg.Role {
		case core.RoleAssistant:
			out = append(out, anthropic.NewAssistantMessage(blocks...))
		default:
			out = append(out, anthropic.NewUserMessage(blocks...))
		}
	}

	return out, system
}

// buildContent builds the content blocks for one message.
func (c *Converter) buildContent(msg core.Message, rctx *core.ResolutionContext) []anthropic.ContentBlockParamUnion {
	var blocks []anthropic.ContentBlockParamUnion

	if strings.TrimSpace(msg.Content) != "" {
		blocks = append(blocks, anthropic.NewTextBlock(msg.Content))
	}

	for _, att := range msg.Attachments {
		if block, ok := c.buildAttachment(att, rctx); ok {
			blocks = append(blocks, block)
		}
	}

	return blocks
}

// buildAttachment converts a single attachment, or reports false when the
// API has no block kind for it.
func (c *Converter) buildAttachment(att core.Attachment, rctx *core.ResolutionContext) (anthropic.ContentBlockParamUnion, bool) {
	data, ok := strands.ResolvePayload(att, rctx)
	if !ok {
		c.logger.Warn("attachment payload unavailable, dropping", "name", att.Name, "mediaType", att.MediaType)
		return anthropic.ContentBlockParamUnion{}, false
	}

	switch att.Kind {
	case core.AttachmentImage:
		return anthropic.NewImageBlockBase64(normalizeImageMediaType(att.MediaType), data), true
	case core.AttachmentFile:
		return c.buildDocument(att, data)
	default:
		c.logger.Warn("attachment kind not supported by the Messages API, dropping",
			"kind", string(att.Kind), "name", att.Name)
		return anthropic.ContentBlockParamUnion{}, false
	}
}

// buildDocument maps a document attachment: PDFs as base64 sources, plain
// text decoded into a text source. Everything else is dropped.
func (c *Converter) buildDocument(att core.Attachment, data string) (anthropic.ContentBlockParamUnion, bool) {
	switch strings.ToLower(att.MediaType) {
	case "application/pdf":
		return anthropic.ContentBlockParamUnion{
			OfDocument: &anthropic.DocumentBlockParam{
				Source: anthropic.DocumentBlockParamSourceUnion{
					OfBase64: &anthropic.Base64PDFSourceParam{Data: data},
				},
				Title: anthropic.String(strands.SanitizeName(att.Name)),
			},
		}, true
	case "text/plain", "text/markdown", "text/csv", "text/html":
		decoded, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			c.logger.Warn("text document payload is not valid base64, dropping", "name", att.Name, "error", err.Error())
			return anthropic.ContentBlockParamUnion{}, false
		}
		return anthropic.ContentBlockParamUnion{
			OfDocument: &anthropic.DocumentBlockParam{
				Source: anthropic.DocumentBlockParamSourceUnion{
					OfText: &anthropic.PlainTextSourceParam{Data: string(decoded)},
				},
				Title: anthropic.String(strands.SanitizeName(att.Name)),
			},
		}, true
	default:
		c.logger.Warn("document media type not supported by the Messages API, dropping",
			"name", att.Name, "mediaType", att.MediaType)
		return anthropic.ContentBlockParamUnion{}, false
	}
}

// normalizeImageMediaType folds the image/jpg alias onto image/jpeg; the
// Messages API accepts only the canonical form.
func normalizeImageMediaType(mediaType string) string {
	mt := strings.ToLower(mediaType)
	if mt == "image/jpg" {
		return "image/jpeg"
	}
	return mt
}
