// Package strandsbridge provides a high-level façade over the two halves of
// the bridge: the converters that turn generic chat messages and raw files
// into Strands wire shapes, and the stream processor that turns the Strands
// incremental event protocol back into normalized UI chunks. Most
// applications interact with this package by:
//  1. Creating a Bridge via New() (optionally supplying a logger and an
//     encode-to-base64 capability)
//  2. Converting the conversation history and the current turn's files into
//     a runtime Request
//  3. Feeding each streamed response frame to a dedicated Processor obtained
//     from NewProcessor()
//
// The façade delegates to the strands and stream packages while keeping
// setup ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply a structured logger.
package strandsbridge

import (
	"context"

	"github.com/hupe1980/strandsbridge/core"
	"github.com/hupe1980/strandsbridge/logging"
	"github.com/hupe1980/strandsbridge/strands"
	"github.com/hupe1980/strandsbridge/stream"
)

// Options configures the Bridge instance.
type Options struct {
	// Logger receives recoverable-anomaly diagnostics (defaults to NoOp if nil).
	Logger logging.Logger

	// Encoder is the capability that asynchronously base64-encodes raw
	// files. Required only when ConvertFiles is used.
	Encoder core.Encoder

	// Config supplies environment defaults for runtime requests. Loaded
	// from the environment when nil.
	Config *strands.Config
}

// Bridge is the high-level façade aggregating the converters and processor
// construction.
type Bridge struct {
	opts      Options
	converter *strands.Converter
}

// New creates a new Bridge instance with optional overrides.
func New(optFns ...func(o *Options)) (*Bridge, error) {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Config == nil {
		cfg, err := strands.LoadConfig()
		if err != nil {
			return nil, err
		}
		opts.Config = cfg
	}

	converter := strands.NewConverter(func(o *strands.ConverterOptions) {
		o.Logger = opts.Logger
		o.Encoder = opts.Encoder
	})

	return &Bridge{opts: opts, converter: converter}, nil
}

// ConvertMessages maps generic messages to Strands messages.
func (b *Bridge) ConvertMessages(messages []core.Message, rctx *core.ResolutionContext) []strands.Message {
	return b.converter.ConvertMessages(messages, rctx)
}

// ConvertFiles maps raw binary files to content blocks, preserving input
// order and isolating per-file failures.
func (b *Bridge) ConvertFiles(ctx context.Context, files []core.RawFile) []strands.ContentBlock {
	return b.converter.ConvertFiles(ctx, files)
}

// NewRequest assembles an AgentCore runtime request, applying the bridge's
// environment defaults to an unset model selection.
func (b *Bridge) NewRequest(messages []strands.Message, systemPrompt string, prompt strands.Prompt, model strands.ModelInfo) strands.Request {
	return strands.NewRequest(messages, systemPrompt, prompt, model, b.opts.Config)
}

// NewProcessor creates a stream processor dedicated to one in-flight
// streamed response.
func (b *Bridge) NewProcessor() *stream.Processor {
	return stream.NewProcessor(func(o *stream.ProcessorOptions) {
		o.Logger = b.opts.Logger
	})
}
