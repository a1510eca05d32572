package stream

import (
	"encoding/json"
	"strings"

	"github.com/hupe1980/strandsbridge/core"
	"github.com/hupe1980/strandsbridge/logging"
)

// State identifies the kind of content block currently open.
type State int

const (
	// StateNone means no content block is open.
	StateNone State = iota
	// StateText means a text block is open.
	StateText
	// StateToolUse means a tool-use block is open.
	StateToolUse
	// StateReasoning means reasoning deltas are being received. The protocol
	// never announces reasoning with a start frame; the state is observed
	// from the first reasoning delta.
	StateReasoning
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateText:
		return "text"
	case StateToolUse:
		return "tool-use"
	case StateReasoning:
		return "reasoning"
	default:
		return "unknown"
	}
}

// ChunkMetadata carries non-content information attached to a chunk.
type ChunkMetadata struct {
	Usage *Usage `json:"usage,omitempty"`
}

// Chunk is one normalized output record for the UI. Text is the main
// channel; Trace is the secondary channel carrying tool-invocation and
// reasoning content, rendered separately by the consumer.
type Chunk struct {
	Text     string         `json:"text"`
	Trace    string         `json:"trace,omitempty"`
	Metadata *ChunkMetadata `json:"metadata,omitempty"`
}

// genericErrorMessage is emitted for error frames carrying no message.
const genericErrorMessage = "An error occurred"

// ProcessorOptions configures a stream Processor.
type ProcessorOptions struct {
	Logger logging.Logger
}

// Processor consumes one serialized event frame at a time and emits zero or
// one Chunk per frame. It owns the per-response session state: the open
// block kind and the tool-argument accumulation buffer. Not safe for
// concurrent use; dedicate one instance per in-flight streamed response.
type Processor struct {
	state     State
	toolBuf   strings.Builder
	sessionID string
	logger    logging.Logger
}

// NewProcessor creates a Processor in the initial state. A nil logger
// defaults to NoOp.
func NewProcessor(optFns ...func(o *ProcessorOptions)) *Processor {
	opts := ProcessorOptions{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Processor{
		state:     StateNone,
		sessionID: core.NewID(),
		logger:    opts.Logger,
	}
}

// ProcessEvent deserializes one frame and applies it to the session state.
// It returns nil when the frame produces no output. Malformed frames are
// logged and skipped; the contract is "always returns a value or nil, never
// panics or errors".
func (p *Processor) ProcessEvent(raw []byte) *Chunk {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		p.logger.Warn("malformed stream frame, skipping", "session_id", p.sessionID, "error", err.Error())
		return nil
	}
	if frame.Event == nil {
		return nil
	}

	ev := frame.Event
	switch {
	case ev.MessageStart != nil, ev.MessageStop != nil:
		p.Reset()
		return nil
	case ev.ContentBlockStart != nil:
		return p.handleBlockStart(ev.ContentBlockStart)
	case ev.ContentBlockDelta != nil:
		return p.handleBlockDelta(ev.ContentBlockDelta)
	case ev.ContentBlockStop != nil:
		return p.handleBlockStop()
	case ev.Metadata != nil:
		return p.handleMetadata(ev.Metadata)
	case ev.RedactContent != nil:
		return p.handleRedaction(ev.RedactContent)
	default:
		if msg, ok := exceptionMessage(ev); ok {
			return &Chunk{Text: "Error: " + msg}
		}
		return nil
	}
}

// Reset returns the processor to the initial state with an empty tool
// buffer. Idempotent; callers may invoke it out of band when they detect a
// new conversation turn.
func (p *Processor) Reset() {
	p.state = StateNone
	p.toolBuf.Reset()
}

// State reports the kind of content block currently open.
func (p *Processor) State() State { return p.state }

// ToolBuffer returns the tool-call argument text accumulated for the most
// recently opened tool-use block. It is a side-channel for consumers that
// reconstruct full tool invocations; the processor never emits it itself.
func (p *Processor) ToolBuffer() string { return p.toolBuf.String() }

// SessionID returns the correlation id attached to this processor's log
// output.
func (p *Processor) SessionID() string { return p.sessionID }

func (p *Processor) handleBlockStart(start *ContentBlockStart) *Chunk {
	if tu := start.Start.ToolUse; tu != nil {
		p.state = StateToolUse
		p.toolBuf.Reset()
		return &Chunk{Trace: "```" + tu.Name + "\n"}
	}

	p.state = StateText
	return &Chunk{Text: start.Start.Text}
}

func (p *Processor) handleBlockDelta(delta *ContentBlockDelta) *Chunk {
	d := delta.Delta
	switch {
	case d.ToolUse != nil:
		p.state = StateToolUse
		p.toolBuf.WriteString(d.ToolUse.Input)
		return &Chunk{Trace: d.ToolUse.Input}
	case d.ReasoningContent != nil:
		p.state = StateReasoning
		return &Chunk{Trace: d.ReasoningContent.Text}
	case d.Text != nil:
		p.state = StateText
		return &Chunk{Text: *d.Text}
	default:
		p.logger.Debug("unrecognized delta shape, skipping", "session_id", p.sessionID)
		return nil
	}
}

func (p *Processor) handleBlockStop() *Chunk {
	prev := p.state
	p.state = StateNone

	switch prev {
	case StateText:
		return &Chunk{Text: "\n"}
	case StateToolUse:
		return &Chunk{Trace: "\n```\n"}
	default:
		return nil
	}
}

func (p *Processor) handleMetadata(md *Metadata) *Chunk {
	if md.Usage == nil {
		return nil
	}
	usage := *md.Usage
	return &Chunk{Metadata: &ChunkMetadata{Usage: &usage}}
}

func (p *Processor) handleRedaction(rc *RedactContent) *Chunk {
	if rc.RedactAssistantContentMessage == nil {
		return nil
	}
	return &Chunk{Text: *rc.RedactAssistantContentMessage}
}

// exceptionMessage extracts the message of whichever error variant the event
// carries, substituting the generic fallback for an empty one.
func exceptionMessage(ev *Event) (string, bool) {
	for _, exc := range []*Exception{
		ev.InternalServerException,
		ev.ModelStreamErrorException,
		ev.ServiceUnavailableException,
		ev.ThrottlingException,
		ev.ValidationException,
	} {
		if exc == nil {
			continue
		}
		if exc.Message == "" {
			return genericErrorMessage, true
		}
		return exc.Message, true
	}
	return "", false
}
