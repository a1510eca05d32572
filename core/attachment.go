package core

import "context"

// AttachmentKind classifies an attachment descriptor. The closed set maps to
// the three binary Strands content-block kinds (file becomes document).
type AttachmentKind string

const (
	// AttachmentImage is a raster image attachment.
	AttachmentImage AttachmentKind = "image"
	// AttachmentFile is a document attachment.
	AttachmentFile AttachmentKind = "file"
	// AttachmentVideo is a video attachment.
	AttachmentVideo AttachmentKind = "video"
)

// SourceKind tags the origin of an attachment's binary payload.
type SourceKind string

const (
	// SourceInline means Data holds the base64-encoded payload itself.
	SourceInline SourceKind = "inline"
	// SourceRemote means Data holds an opaque locator resolved against the
	// caller-supplied ResolutionContext.
	SourceRemote SourceKind = "remote"
)

// BinarySource is the tagged origin of an attachment's bytes. For inline
// sources Data is the base64 payload verbatim; for remote sources it is an
// opaque locator string.
type BinarySource struct {
	Kind SourceKind `json:"kind"`
	Data string     `json:"data"`
}

// NewInlineSource wraps a base64 payload as an inline binary source.
func NewInlineSource(data string) BinarySource {
	return BinarySource{Kind: SourceInline, Data: data}
}

// NewRemoteSource wraps an opaque locator as a remote-reference binary source.
func NewRemoteSource(locator string) BinarySource {
	return BinarySource{Kind: SourceRemote, Data: locator}
}

// Attachment describes one non-text item to include in a message. Name is an
// optional display name; MediaType is the declared MIME type used for format
// classification.
type Attachment struct {
	Kind      AttachmentKind `json:"kind"`
	MediaType string         `json:"mediaType"`
	Name      string         `json:"name,omitempty"`
	Source    BinarySource   `json:"source"`
}

// RawFile is a raw binary file object (e.g. a just-selected upload) that has
// not yet been shaped into an Attachment. Kind is derived from the MIME type
// prefix during conversion.
type RawFile struct {
	Name      string
	MediaType string
	Data      []byte
}

// Encoder is the caller-supplied capability that asynchronously turns a raw
// file into a base64 string. Implementations may return a payload carrying a
// data-URL prefix; the converter strips it. A returned error fails only the
// one file, never the batch.
type Encoder func(ctx context.Context, file RawFile) (string, error)
