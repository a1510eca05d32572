package strands

import (
	"encoding/json"

	"github.com/hupe1980/strandsbridge/core"
)

// ContentBlock represents one unit of a Strands message payload. Concrete
// block types implement the unexported isContentBlock marker enabling a
// closed set.
type ContentBlock interface{ isContentBlock() }

// TextBlock is a plain text content segment.
type TextBlock struct {
	Text string
}

// isContentBlock implements the ContentBlock interface for TextBlock.
func (TextBlock) isContentBlock() {}

// ImageBlock carries resolved, prefix-stripped base64 image bytes plus the
// provider format classification. Format may be empty when the declared MIME
// type has no mapping; the provider rejects such blocks.
type ImageBlock struct {
	Format ImageFormat
	Bytes  string
}

// isContentBlock implements the ContentBlock interface for ImageBlock.
func (ImageBlock) isContentBlock() {}

// DocumentBlock carries a named document's base64 bytes.
type DocumentBlock struct {
	Format DocumentFormat
	Name   string
	Bytes  string
}

// isContentBlock implements the ContentBlock interface for DocumentBlock.
func (DocumentBlock) isContentBlock() {}

// VideoBlock carries base64 video bytes.
type VideoBlock struct {
	Format VideoFormat
	Bytes  string
}

// isContentBlock implements the ContentBlock interface for VideoBlock.
func (VideoBlock) isContentBlock() {}

// Message is a Strands message: role plus an ordered, non-empty list of
// content blocks. The Converter guarantees Content always holds at least one
// block.
type Message struct {
	Role    core.Role      `json:"role"`
	Content []ContentBlock `json:"content"`
}

// Wire envelopes. Strands nests binary payloads one level deeper than the
// in-memory blocks: {"image":{"format":…,"source":{"bytes":…}}}.
type byteSource struct {
	Bytes string `json:"bytes"`
}

type imageWire struct {
	Format ImageFormat `json:"format,omitempty"`
	Source byteSource  `json:"source"`
}

type documentWire struct {
	Format DocumentFormat `json:"format,omitempty"`
	Name   string         `json:"name"`
	Source byteSource     `json:"source"`
}

type videoWire struct {
	Format VideoFormat `json:"format,omitempty"`
	Source byteSource  `json:"source"`
}

// MarshalJSON serializes the block as {"text": …}.
func (b TextBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Text string `json:"text"`
	}{Text: b.Text})
}

// MarshalJSON serializes the block in Strands image wire form. An empty
// format is omitted rather than serialized as "".
func (b ImageBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Image imageWire `json:"image"`
	}{Image: imageWire{Format: b.Format, Source: byteSource{Bytes: b.Bytes}}})
}

// MarshalJSON serializes the block in Strands document wire form.
func (b DocumentBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Document documentWire `json:"document"`
	}{Document: documentWire{Format: b.Format, Name: b.Name, Source: byteSource{Bytes: b.Bytes}}})
}

// MarshalJSON serializes the block in Strands video wire form.
func (b VideoBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Video videoWire `json:"video"`
	}{Video: videoWire{Format: b.Format, Source: byteSource{Bytes: b.Bytes}}})
}
