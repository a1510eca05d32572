package testutil

import (
	"github.com/hupe1980/strandsbridge/core"
)

// MessageBuilder provides a fluent helper for constructing generic messages
// in tests. Example:
//
//	msg := NewMessageBuilder().User().Content("hi").InlineImage("image/png", "QUJD").Build()
//
// Chain only the parts you need; sensible defaults are applied.
type MessageBuilder struct {
	role        core.Role
	content     string
	attachments []core.Attachment
}

// NewMessageBuilder creates a builder with default role "user".
func NewMessageBuilder() *MessageBuilder { return &MessageBuilder{role: core.RoleUser} }

// User sets the user role (chainable).
func (b *MessageBuilder) User() *MessageBuilder { b.role = core.RoleUser; return b }

// Assistant sets the assistant role (chainable).
func (b *MessageBuilder) Assistant() *MessageBuilder { b.role = core.RoleAssistant; return b }

// System sets the system role (chainable).
func (b *MessageBuilder) System() *MessageBuilder { b.role = core.RoleSystem; return b }

// Content sets the plain text body.
func (b *MessageBuilder) Content(text string) *MessageBuilder { b.content = text; return b }

// Attachment appends an arbitrary attachment descriptor.
func (b *MessageBuilder) Attachment(att core.Attachment) *MessageBuilder {
	b.attachments = append(b.attachments, att)
	return b
}

// InlineImage appends an image attachment with an inline base64 payload.
func (b *MessageBuilder) InlineImage(mediaType, data string) *MessageBuilder {
	return b.Attachment(core.Attachment{
		Kind:      core.AttachmentImage,
		MediaType: mediaType,
		Source:    core.NewInlineSource(data),
	})
}

// InlineFile appends a named document attachment with an inline base64 payload.
func (b *MessageBuilder) InlineFile(name, mediaType, data string) *MessageBuilder {
	return b.Attachment(core.Attachment{
		Kind:      core.AttachmentFile,
		MediaType: mediaType,
		Name:      name,
		Source:    core.NewInlineSource(data),
	})
}

// RemoteAttachment appends an attachment referencing an external locator.
func (b *MessageBuilder) RemoteAttachment(kind core.AttachmentKind, mediaType, locator string) *MessageBuilder {
	return b.Attachment(core.Attachment{
		Kind:      kind,
		MediaType: mediaType,
		Source:    core.NewRemoteSource(locator),
	})
}

// Build materializes the message.
func (b *MessageBuilder) Build() core.Message {
	return core.Message{Role: b.role, Content: b.content, Attachments: b.attachments}
}

// NewResolutionContext builds a ResolutionContext from a plain cache map.
func NewResolutionContext(cache map[string]string, uploaded ...core.UploadedFile) *core.ResolutionContext {
	return &core.ResolutionContext{UploadedFiles: uploaded, Cache: cache}
}
