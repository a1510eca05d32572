package strandsbridge

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/hupe1980/strandsbridge/core"
	"github.com/hupe1980/strandsbridge/internal/testutil"
	"github.com/hupe1980/strandsbridge/strands"
	"github.com/hupe1980/strandsbridge/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBridge(t *testing.T, optFns ...func(o *Options)) *Bridge {
	t.Helper()

	optFns = append([]func(o *Options){func(o *Options) {
		o.Config = &strands.Config{ModelID: "test-model", Region: "us-east-1"}
	}}, optFns...)

	b, err := New(optFns...)
	require.NoError(t, err)
	return b
}

func TestBridge_ConvertMessages(t *testing.T) {
	b := newTestBridge(t)

	out := b.ConvertMessages([]core.Message{
		testutil.NewMessageBuilder().User().Content("hi").Build(),
	}, nil)

	require.Len(t, out, 1)
	assert.Equal(t, strands.TextBlock{Text: "hi"}, out[0].Content[0])
}

func TestBridge_ConvertFilesUsesConfiguredEncoder(t *testing.T) {
	b := newTestBridge(t, func(o *Options) {
		o.Encoder = func(ctx context.Context, file core.RawFile) (string, error) {
			return base64.StdEncoding.EncodeToString(file.Data), nil
		}
	})

	blocks := b.ConvertFiles(context.Background(), []core.RawFile{
		{Name: "a.png", MediaType: "image/png", Data: []byte("abc")},
	})

	require.Len(t, blocks, 1)
	assert.IsType(t, strands.ImageBlock{}, blocks[0])
}

func TestBridge_NewRequestAppliesDefaults(t *testing.T) {
	b := newTestBridge(t)

	req := b.NewRequest(nil, "", strands.Prompt{Text: "go"}, strands.ModelInfo{})
	assert.Equal(t, "test-model", req.Model.ModelID)
	assert.Equal(t, "us-east-1", req.Model.Region)
}

func TestBridge_NewProcessorIsIndependentPerResponse(t *testing.T) {
	b := newTestBridge(t)

	p1 := b.NewProcessor()
	p2 := b.NewProcessor()
	require.NotSame(t, p1, p2)

	p1.ProcessEvent(testutil.ToolStartFrame(0, "id", "X"))
	assert.Equal(t, stream.StateToolUse, p1.State())
	assert.Equal(t, stream.StateNone, p2.State())
}
