// Package logging provides a minimal logging interface and adapters for the
// bridge's diagnostic sink.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) the converters and the stream processor use for recoverable
// anomalies (unresolvable attachments, malformed frames, per-file conversion
// failures). This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	conv := strands.NewConverter(func(o *strands.ConverterOptions) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal so any append-only
// log sink can serve; nothing in the core consumes a return value from it.
package logging
