package strands

import (
	"regexp"
	"strings"

	"github.com/hupe1980/strandsbridge/core"
	"github.com/hupe1980/strandsbridge/logging"
)

// unsafeNameChars matches every character that must be replaced in a display
// name before it is sent to the provider.
var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9 \-()\[\]]`)

// dataURLPrefix matches a leading data-URL segment (data:<mime>;base64, or
// any degenerate variant up to the first comma).
var dataURLPrefix = regexp.MustCompile(`^data:[^,]*,`)

// ResolverOptions configures the attachment Resolver.
type ResolverOptions struct {
	Logger logging.Logger
}

// Resolver turns one attachment descriptor into a Strands content block,
// obtaining its binary payload from an inline source or from the caller's
// ResolutionContext and classifying it via the static MIME tables.
type Resolver struct {
	logger logging.Logger
}

// NewResolver creates a Resolver. A nil logger defaults to NoOp.
func NewResolver(optFns ...func(o *ResolverOptions)) *Resolver {
	opts := ResolverOptions{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Resolver{logger: opts.Logger}
}

// Resolve produces the content block for an attachment, or false when no
// block can be produced. Unresolvable payloads and unsupported kinds are
// diagnostics, not errors: the attachment is dropped from the message.
func (r *Resolver) Resolve(att core.Attachment, rctx *core.ResolutionContext) (ContentBlock, bool) {
	data, ok := ResolvePayload(att, rctx)
	if !ok {
		r.logger.Warn("attachment payload unavailable, dropping", "name", att.Name, "mediaType", att.MediaType)
		return nil, false
	}

	switch att.Kind {
	case core.AttachmentImage:
		return ImageBlock{
			Format: ImageFormatFromMediaType(att.MediaType),
			Bytes:  data,
		}, true
	case core.AttachmentFile:
		return DocumentBlock{
			Format: DocumentFormatFromMediaType(att.MediaType),
			Name:   SanitizeName(att.Name),
			Bytes:  data,
		}, true
	case core.AttachmentVideo:
		return VideoBlock{
			Format: VideoFormatFromMediaType(att.MediaType),
			Bytes:  data,
		}, true
	default:
		r.logger.Warn("unsupported attachment kind, dropping", "kind", string(att.Kind), "name", att.Name)
		return nil, false
	}
}

// ResolveFile produces the content block for a raw binary file. The kind is
// derived from the MIME type prefix (image/… and video/…; everything else is
// a document) and the caller-supplied encoder must already have produced the
// base64 payload.
func (r *Resolver) ResolveFile(file core.RawFile, encoded string) (ContentBlock, bool) {
	data := StripDataURLPrefix(encoded)
	if data == "" {
		r.logger.Warn("file payload empty after encoding, dropping", "name", file.Name)
		return nil, false
	}

	switch {
	case strings.HasPrefix(file.MediaType, "image/"):
		return ImageBlock{
			Format: ImageFormatFromMediaType(file.MediaType),
			Bytes:  data,
		}, true
	case strings.HasPrefix(file.MediaType, "video/"):
		return VideoBlock{
			Format: VideoFormatFromMediaType(file.MediaType),
			Bytes:  data,
		}, true
	default:
		return DocumentBlock{
			Format: DocumentFormatFromMediaType(file.MediaType),
			Name:   SanitizeName(file.Name),
			Bytes:  data,
		}, true
	}
}

// ResolvePayload obtains the base64 payload for an attachment. Inline
// sources are used verbatim; remote references consult the uploaded-file
// list first, then the locator-keyed cache. Cached values may carry a
// data-URL prefix, which is stripped, and missing trailing padding, which is
// restored.
func ResolvePayload(att core.Attachment, rctx *core.ResolutionContext) (string, bool) {
	switch att.Source.Kind {
	case core.SourceInline:
		if att.Source.Data == "" {
			return "", false
		}
		return att.Source.Data, true
	case core.SourceRemote:
		payload, ok := rctx.Lookup(att.Source.Data)
		if !ok {
			return "", false
		}
		return padBase64(StripDataURLPrefix(payload)), true
	default:
		return "", false
	}
}

// StripDataURLPrefix removes a leading data:…, segment from a base64 string.
// Tolerant of an absent MIME segment (data:,payload). Strings without the
// prefix are returned unchanged.
func StripDataURLPrefix(s string) string {
	return dataURLPrefix.ReplaceAllString(s, "")
}

// SanitizeName replaces every character outside [A-Za-z0-9 \-()[]] in a
// display name with an underscore.
func SanitizeName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}

// padBase64 restores missing trailing padding on cached payloads. Browser
// and upload paths occasionally persist unpadded base64.
func padBase64(s string) string {
	if rem := len(s) % 4; rem != 0 {
		return s + strings.Repeat("=", 4-rem)
	}
	return s
}
