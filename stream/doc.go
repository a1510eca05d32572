// Package stream implements the stateful processor for the Strands
// incremental streaming protocol. Each incoming frame is a self-contained
// JSON record {"event": {…}} holding exactly one tagged event variant;
// ProcessEvent consumes one frame at a time and emits zero or one normalized
// Chunk for the UI.
//
// The processor is an explicit state machine over the content-block
// lifecycle (none, text, tool-use, reasoning). It separates the main text
// channel from the trace channel (tool invocations, reasoning), aggregates
// token usage from metadata frames, surfaces provider-reported errors as
// visible "Error: …" text, and tolerates malformed or unrecognized frames
// without interrupting the stream.
//
// A Processor instance is dedicated to one in-flight streamed response;
// concurrent responses require one instance each. ProcessEvent never panics
// and never returns an error to its caller.
package stream
