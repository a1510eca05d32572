package strands

import (
	"context"
	"strings"
	"sync"

	"github.com/hupe1980/strandsbridge/core"
	"github.com/hupe1980/strandsbridge/logging"
)

// ConverterOptions configures the message Converter.
type ConverterOptions struct {
	Logger logging.Logger
	// Encoder resolves raw files to base64. Required only for ConvertFiles.
	Encoder core.Encoder
}

// Converter maps generic messages to Strands messages, invoking the Resolver
// per attachment, and converts raw binary files to content blocks.
type Converter struct {
	resolver *Resolver
	encoder  core.Encoder
	logger   logging.Logger
}

// NewConverter creates a Converter. A nil logger defaults to NoOp.
func NewConverter(optFns ...func(o *ConverterOptions)) *Converter {
	opts := ConverterOptions{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Converter{
		resolver: NewResolver(func(o *ResolverOptions) { o.Logger = opts.Logger }),
		encoder:  opts.Encoder,
		logger:   opts.Logger,
	}
}

// ConvertMessages maps an ordered list of generic messages to Strands
// messages, preserving order and role. Every output message carries at least
// one content block: when neither text nor any attachment survives, a single
// text block holding the original content (possibly empty) is appended.
func (c *Converter) ConvertMessages(messages []core.Message, rctx *core.ResolutionContext) []Message {
	out := make([]Message, 0, len(messages))

	for _, msg := range messages {
		var blocks []ContentBlock

		if strings.TrimSpace(msg.Content) != "" {
			blocks = append(blocks, TextBlock{Text: msg.Content})
		}

		for _, att := range msg.Attachments {
			if block, ok := c.resolver.Resolve(att, rctx); ok {
				blocks = append(blocks, block)
			}
		}

		// A message never ships an empty content list.
		if len(blocks) == 0 {
			blocks = append(blocks, TextBlock{Text: msg.Content})
		}

		out = append(out, Message{Role: msg.Role, Content: blocks})
	}

	return out
}

// ConvertFiles turns raw binary files into content blocks. Each file is
// encoded through the caller-supplied Encoder; encodes run concurrently but
// the result preserves the input order. A failing file is logged and skipped
// without aborting the rest of the batch.
func (c *Converter) ConvertFiles(ctx context.Context, files []core.RawFile) []ContentBlock {
	if c.encoder == nil {
		c.logger.Error("no encoder configured, dropping all files", "count", len(files))
		return nil
	}

	results := make([]ContentBlock, len(files))
	resolved := make([]bool, len(files))

	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file core.RawFile) {
			defer wg.Done()

			encoded, err := c.encoder(ctx, file)
			if err != nil {
				c.logger.Warn("file encoding failed, dropping", "name", file.Name, "error", err.Error())
				return
			}

			if block, ok := c.resolver.ResolveFile(file, encoded); ok {
				results[i] = block
				resolved[i] = true
			}
		}(i, file)
	}
	wg.Wait()

	blocks := make([]ContentBlock, 0, len(files))
	for i := range results {
		if resolved[i] {
			blocks = append(blocks, results[i])
		}
	}

	return blocks
}
