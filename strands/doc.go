// Package strands implements the bidirectional adapter between the generic
// message model in core and the Strands multimodal wire format.
//
// It provides:
//
//   - The closed content-block union (text, image, document, video) with the
//     Strands JSON nesting ({"image":{"format":…,"source":{"bytes":…}}})
//   - Static MIME-type tables mapping declared media types onto the provider
//     format enumerations
//   - The attachment Resolver, which obtains base64 bytes from an inline
//     source or from the caller's ResolutionContext and classifies the
//     attachment into a content block
//   - The message Converter, which maps generic messages to Strands messages
//     and raw files to content blocks (concurrently, order preserving)
//   - The AgentCore runtime request/response shapes and their environment
//     defaults
//
// Unresolvable or unsupported attachments are dropped with a diagnostic,
// never turned into a conversion failure; an unmapped MIME type yields a
// block with an absent format, which the provider is responsible for
// rejecting.
package strands
