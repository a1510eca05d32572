package strands

import (
	"encoding/json"
	"testing"

	"github.com/hupe1980/strandsbridge/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalBlock(t *testing.T, b ContentBlock) string {
	t.Helper()
	raw, err := json.Marshal(b)
	require.NoError(t, err)
	return string(raw)
}

func TestContentBlock_WireShapes(t *testing.T) {
	assert.JSONEq(t, `{"text":"hi"}`, marshalBlock(t, TextBlock{Text: "hi"}))

	assert.JSONEq(t,
		`{"image":{"format":"png","source":{"bytes":"QUJD"}}}`,
		marshalBlock(t, ImageBlock{Format: ImageFormatPNG, Bytes: "QUJD"}),
	)

	assert.JSONEq(t,
		`{"document":{"format":"pdf","name":"report","source":{"bytes":"QUJD"}}}`,
		marshalBlock(t, DocumentBlock{Format: DocumentFormatPDF, Name: "report", Bytes: "QUJD"}),
	)

	assert.JSONEq(t,
		`{"video":{"format":"mp4","source":{"bytes":"QUJD"}}}`,
		marshalBlock(t, VideoBlock{Format: VideoFormatMP4, Bytes: "QUJD"}),
	)
}

func TestContentBlock_EmptyFormatOmitted(t *testing.T) {
	assert.JSONEq(t,
		`{"image":{"source":{"bytes":"QUJD"}}}`,
		marshalBlock(t, ImageBlock{Bytes: "QUJD"}),
	)
}

func TestMessage_MarshalsRoleAndContent(t *testing.T) {
	msg := Message{
		Role:    core.RoleUser,
		Content: []ContentBlock{TextBlock{Text: "hi"}},
	}

	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"user","content":[{"text":"hi"}]}`, string(raw))
}
