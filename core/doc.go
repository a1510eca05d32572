// Package core provides the provider-agnostic domain types shared by the
// converters and the streaming processor. It defines:
//
//   - Messages (role + plain text + ordered attachment descriptors)
//   - Attachment descriptors and their tagged binary sources (inline or
//     referenced by an external locator)
//   - The ResolutionContext supplied by callers to resolve remote-reference
//     attachments from previously uploaded files or a locator-keyed cache
//   - RawFile and the asynchronous Encoder capability for user-selected files
//
// The package intentionally holds no provider-specific vocabulary; the
// Strands content-block shapes live in the strands package. All types here
// are immutable inputs from the core's perspective.
package core
