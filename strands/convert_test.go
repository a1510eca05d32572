package strands

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/hupe1980/strandsbridge/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_TextOnlyMessage(t *testing.T) {
	c := NewConverter()

	out := c.ConvertMessages([]core.Message{
		{Role: core.RoleUser, Content: "hello"},
	}, nil)

	require.Len(t, out, 1)
	assert.Equal(t, core.RoleUser, out[0].Role)
	require.Len(t, out[0].Content, 1)
	assert.Equal(t, TextBlock{Text: "hello"}, out[0].Content[0])
}

func TestConverter_BlankContentYieldsSingleTextBlock(t *testing.T) {
	c := NewConverter()

	out := c.ConvertMessages([]core.Message{
		{Role: core.RoleUser, Content: "   "},
	}, nil)

	require.Len(t, out, 1)
	require.Len(t, out[0].Content, 1, "a message never ships an empty content list")
	assert.Equal(t, TextBlock{Text: "   "}, out[0].Content[0])
}

func TestConverter_EmptyMessageDegradesToEmptyTextBlock(t *testing.T) {
	c := NewConverter()

	out := c.ConvertMessages([]core.Message{{Role: core.RoleAssistant}}, nil)

	require.Len(t, out, 1)
	require.Len(t, out[0].Content, 1)
	assert.Equal(t, TextBlock{Text: ""}, out[0].Content[0])
}

func TestConverter_UnresolvableAttachmentFallsBackToText(t *testing.T) {
	c := NewConverter()

	out := c.ConvertMessages([]core.Message{
		{
			Role:    core.RoleUser,
			Content: "",
			Attachments: []core.Attachment{
				{Kind: core.AttachmentImage, MediaType: "image/png", Source: core.NewRemoteSource("gone")},
			},
		},
	}, nil)

	require.Len(t, out, 1)
	require.Len(t, out[0].Content, 1)
	assert.Equal(t, TextBlock{Text: ""}, out[0].Content[0])
}

func TestConverter_AttachmentOrderPreserved(t *testing.T) {
	c := NewConverter()

	rctx := &core.ResolutionContext{Cache: map[string]string{"ok": "QUJD"}}

	out := c.ConvertMessages([]core.Message{
		{
			Role:    core.RoleUser,
			Content: "look at these",
			Attachments: []core.Attachment{
				{Kind: core.AttachmentImage, MediaType: "image/png", Source: core.NewInlineSource("Zmlyc3Q=")},
				{Kind: core.AttachmentImage, MediaType: "image/png", Source: core.NewRemoteSource("missing")},
				{Kind: core.AttachmentVideo, MediaType: "video/mp4", Source: core.NewRemoteSource("ok")},
			},
		},
	}, rctx)

	require.Len(t, out, 1)
	blocks := out[0].Content
	// Text first, then the two resolvable attachments in input order; the
	// unresolvable one is omitted, not replaced by a placeholder.
	require.Len(t, blocks, 3)
	assert.Equal(t, TextBlock{Text: "look at these"}, blocks[0])
	assert.Equal(t, "Zmlyc3Q=", blocks[1].(ImageBlock).Bytes)
	assert.Equal(t, VideoFormatMP4, blocks[2].(VideoBlock).Format)
}

func TestConverter_RolePassedThroughVerbatim(t *testing.T) {
	c := NewConverter()

	out := c.ConvertMessages([]core.Message{
		{Role: core.Role("critic"), Content: "hm"},
	}, nil)

	require.Len(t, out, 1)
	assert.Equal(t, core.Role("critic"), out[0].Role)
}

func TestConverter_ConvertFilesPreservesOrderAndIsolatesFailures(t *testing.T) {
	enc := func(ctx context.Context, file core.RawFile) (string, error) {
		if file.Name == "bad" {
			return "", fmt.Errorf("encode blew up")
		}
		return base64.StdEncoding.EncodeToString(file.Data), nil
	}

	c := NewConverter(func(o *ConverterOptions) { o.Encoder = enc })

	blocks := c.ConvertFiles(context.Background(), []core.RawFile{
		{Name: "a.png", MediaType: "image/png", Data: []byte("aaa")},
		{Name: "bad", MediaType: "image/png", Data: []byte("bbb")},
		{Name: "c.pdf", MediaType: "application/pdf", Data: []byte("ccc")},
	})

	require.Len(t, blocks, 2, "one failing file must not abort the batch")
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("aaa")), blocks[0].(ImageBlock).Bytes)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("ccc")), blocks[1].(DocumentBlock).Bytes)
}

func TestConverter_ConvertFilesStripsEncoderDataURL(t *testing.T) {
	enc := func(ctx context.Context, file core.RawFile) (string, error) {
		return "data:" + file.MediaType + ";base64," + base64.StdEncoding.EncodeToString(file.Data), nil
	}

	c := NewConverter(func(o *ConverterOptions) { o.Encoder = enc })

	blocks := c.ConvertFiles(context.Background(), []core.RawFile{
		{Name: "a.png", MediaType: "image/png", Data: []byte("abc")},
	})

	require.Len(t, blocks, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("abc")), blocks[0].(ImageBlock).Bytes)
}

func TestConverter_ConvertFilesWithoutEncoder(t *testing.T) {
	c := NewConverter()

	blocks := c.ConvertFiles(context.Background(), []core.RawFile{
		{Name: "a.png", MediaType: "image/png", Data: []byte("abc")},
	})

	assert.Empty(t, blocks)
}
