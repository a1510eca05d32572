package anthropic

import (
	"testing"

	"github.com/hupe1980/strandsbridge/core"
	"github.com/hupe1980/strandsbridge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_SystemMessagesExtracted(t *testing.T) {
	c := NewConverter()

	messages, system := c.ConvertMessages([]core.Message{
		testutil.NewMessageBuilder().System().Content("be helpful").Build(),
		testutil.NewMessageBuilder().User().Content("hi").Build(),
		testutil.NewMessageBuilder().Assistant().Content("hello!").Build(),
	}, nil)

	require.Len(t, system, 1)
	assert.Equal(t, "be helpful", system[0].Text)

	require.Len(t, messages, 2)
	assert.Equal(t, "user", string(messages[0].Role))
	assert.Equal(t, "assistant", string(messages[1].Role))
}

func TestConverter_InlineImageBecomesBase64Block(t *testing.T) {
	c := NewConverter()

	messages, _ := c.ConvertMessages([]core.Message{
		testutil.NewMessageBuilder().User().Content("what is this?").InlineImage("image/jpg", "QUJD").Build(),
	}, nil)

	require.Len(t, messages, 1)
	require.Len(t, messages[0].Content, 2)

	img := messages[0].Content[1].OfImage
	require.NotNil(t, img)
	require.NotNil(t, img.Source.OfBase64)
	assert.Equal(t, "QUJD", img.Source.OfBase64.Data)
	// image/jpg is folded onto the canonical media type.
	assert.Equal(t, "image/jpeg", string(img.Source.OfBase64.MediaType))
}

func TestConverter_PDFDocument(t *testing.T) {
	c := NewConverter()

	messages, _ := c.ConvertMessages([]core.Message{
		testutil.NewMessageBuilder().User().InlineFile("report.pdf", "application/pdf", "QUJD").Build(),
	}, nil)

	require.Len(t, messages, 1)
	require.Len(t, messages[0].Content, 1)

	doc := messages[0].Content[0].OfDocument
	require.NotNil(t, doc)
	require.NotNil(t, doc.Source.OfBase64)
	assert.Equal(t, "QUJD", doc.Source.OfBase64.Data)
}

func TestConverter_PlainTextDocumentDecoded(t *testing.T) {
	c := NewConverter()

	// "hello" base64-encoded.
	messages, _ := c.ConvertMessages([]core.Message{
		testutil.NewMessageBuilder().User().InlineFile("notes.txt", "text/plain", "aGVsbG8=").Build(),
	}, nil)

	require.Len(t, messages, 1)
	doc := messages[0].Content[0].OfDocument
	require.NotNil(t, doc)
	require.NotNil(t, doc.Source.OfText)
	assert.Equal(t, "hello", doc.Source.OfText.Data)
}

func TestConverter_VideoDropped(t *testing.T) {
	c := NewConverter()

	messages, _ := c.ConvertMessages([]core.Message{
		testutil.NewMessageBuilder().User().Content("watch").Attachment(core.Attachment{
			Kind:      core.AttachmentVideo,
			MediaType: "video/mp4",
			Source:    core.NewInlineSource("QUJD"),
		}).Build(),
	}, nil)

	require.Len(t, messages, 1)
	require.Len(t, messages[0].Content, 1, "video attachments have no Messages API block kind")
	assert.NotNil(t, messages[0].Content[0].OfText)
}

func TestConverter_RemoteAttachmentResolvedFromCache(t *testing.T) {
	c := NewConverter()

	rctx := testutil.NewResolutionContext(map[string]string{
		"file-1": "data:image/png;base64,QUJD",
	})

	messages, _ := c.ConvertMessages([]core.Message{
		testutil.NewMessageBuilder().User().RemoteAttachment(core.AttachmentImage, "image/png", "file-1").Build(),
	}, rctx)

	require.Len(t, messages, 1)
	img := messages[0].Content[0].OfImage
	require.NotNil(t, img)
	assert.Equal(t, "QUJD", img.Source.OfBase64.Data)
}

func TestConverter_EmptyMessageDegradesToText(t *testing.T) {
	c := NewConverter()

	messages, _ := c.ConvertMessages([]core.Message{
		testutil.NewMessageBuilder().User().Build(),
	}, nil)

	require.Len(t, messages, 1)
	require.Len(t, messages[0].Content, 1)
	assert.NotNil(t, messages[0].Content[0].OfText)
}
