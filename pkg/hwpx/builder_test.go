package hwpx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderChain(t *testing.T) {
	data, err := NewBuilderWithSeed(42).
		Style(StyleConfig{FontBody: "맑은 고딕"}).
		Page(A4(false)).
		Header("report").
		Heading("Report", 1).
		Paragraph("Quarterly summary.").
		Formatted(Span{Text: "bold", Bold: true}).
		Hyperlink("docs", "https://example.com").
		Table([]string{"Name", "Age"}, [][]string{{"Kim", "30"}}).
		CodeBlock("x := 1", "go").
		BulletList([]ListItem{{Spans: []Span{{Text: "a"}}}}).
		OrderedList([]ListItem{{Spans: []Span{{Text: "b"}}}}).
		Blockquote(Span{Text: "quote"}).
		HorizontalRule().
		TableOfContents("").
		Bytes()

	require.NoError(t, err)
	assert.Positive(t, len(data))
}

func TestBuilderErrorSticks(t *testing.T) {
	b := NewBuilder().
		Style(StyleConfig{FontSizeBody: 1}).
		Heading("never added", 1)

	require.Error(t, b.Err())
	assert.True(t, IsValidationError(b.Err()))
	// The failed chain adds nothing after the error.
	assert.Empty(t, b.Document().Blocks())

	_, err := b.Bytes()
	assert.Equal(t, b.Err(), err)
}

func TestBuilderTableErrorPropagates(t *testing.T) {
	b := NewBuilder().Table([]string{"A", "B"}, [][]string{{"1"}})
	require.Error(t, b.Err())
	assert.True(t, IsModelError(b.Err()))
}

func TestBuilderWriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := NewBuilderWithSeed(1).Paragraph("x").WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
}

func TestBuilderSave(t *testing.T) {
	path := t.TempDir() + "/builder.hwpx"
	err := NewBuilderWithSeed(1).Heading("t", 1).Save(path)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
