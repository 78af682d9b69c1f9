package hwpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Span
	}{
		{
			name: "plain",
			in:   "hello world",
			want: []Span{{Text: "hello world"}},
		},
		{
			name: "bold",
			in:   "a **b** c",
			want: []Span{{Text: "a "}, {Text: "b", Bold: true}, {Text: " c"}},
		},
		{
			name: "italic",
			in:   "*x*",
			want: []Span{{Text: "x", Italic: true}},
		},
		{
			name: "bold italic",
			in:   "***x***",
			want: []Span{{Text: "x", Bold: true, Italic: true}},
		},
		{
			name: "inline code",
			in:   "run `go test` now",
			want: []Span{{Text: "run "}, {Text: "go test", Code: true}, {Text: " now"}},
		},
		{
			name: "strikethrough",
			in:   "~~gone~~",
			want: []Span{{Text: "gone", Strike: true}},
		},
		{
			name: "link",
			in:   "see [docs](https://example.com)",
			want: []Span{{Text: "see "}, {Text: "docs", Link: "https://example.com"}},
		},
		{
			name: "single tilde is plain",
			in:   "a ~ b",
			want: []Span{{Text: "a ~ b"}},
		},
		{
			name: "mixed",
			in:   "**b** and `c`",
			want: []Span{{Text: "b", Bold: true}, {Text: " and "}, {Text: "c", Code: true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInline(tt.in))
		})
	}
}

func TestParseMarkdownHeadings(t *testing.T) {
	nodes := ParseMarkdown("# Title\n\n## Section")
	require.Len(t, nodes, 2)

	h1, ok := nodes[0].(*MarkdownHeading)
	require.True(t, ok)
	assert.Equal(t, 1, h1.Level)
	assert.Equal(t, "Title", h1.Text)

	h2 := nodes[1].(*MarkdownHeading)
	assert.Equal(t, 2, h2.Level)
}

func TestParseMarkdownParagraphJoinsLines(t *testing.T) {
	nodes := ParseMarkdown("line one\nline two\n\nnext para")
	require.Len(t, nodes, 2)

	p := nodes[0].(*MarkdownParagraph)
	assert.Equal(t, "line one line two", p.Spans[0].Text)
}

func TestParseMarkdownCodeBlock(t *testing.T) {
	nodes := ParseMarkdown("```go\nfunc main() {}\n\nreturn\n```")
	require.Len(t, nodes, 1)

	cb := nodes[0].(*MarkdownCodeBlock)
	assert.Equal(t, "go", cb.Language)
	assert.Equal(t, "func main() {}\n\nreturn", cb.Code)
}

func TestParseMarkdownBulletList(t *testing.T) {
	nodes := ParseMarkdown("- Level 0\n  - Level 1\n    - Level 2")
	require.Len(t, nodes, 1)

	list := nodes[0].(*MarkdownList)
	assert.False(t, list.Ordered)
	require.Len(t, list.Items, 3)
	assert.Equal(t, 0, list.Items[0].Level)
	assert.Equal(t, 1, list.Items[1].Level)
	assert.Equal(t, 2, list.Items[2].Level)
}

func TestParseMarkdownOrderedList(t *testing.T) {
	nodes := ParseMarkdown("1. First\n2. Second\n3) Third")
	require.Len(t, nodes, 1)

	list := nodes[0].(*MarkdownList)
	assert.True(t, list.Ordered)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "First", list.Items[0].Spans[0].Text)
}

func TestParseMarkdownDeepIndentClamped(t *testing.T) {
	nodes := ParseMarkdown("- L0\n        - Deep indent")
	list := nodes[0].(*MarkdownList)
	require.Len(t, list.Items, 2)
	assert.Equal(t, MaxListLevel, list.Items[1].Level)
}

func TestParseMarkdownListItemFormatting(t *testing.T) {
	nodes := ParseMarkdown("1. **Bold** item\n2. Normal item")
	list := nodes[0].(*MarkdownList)
	bold := false
	for _, s := range list.Items[0].Spans {
		if s.Bold {
			bold = true
		}
	}
	assert.True(t, bold)
}

func TestParseMarkdownTable(t *testing.T) {
	md := "| Name | Age |\n|------|-----|\n| Kim | 30 |\n| Lee | 25 |"
	nodes := ParseMarkdown(md)
	require.Len(t, nodes, 1)

	tbl := nodes[0].(*MarkdownTable)
	assert.Equal(t, []string{"Name", "Age"}, tbl.Headers)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"Kim", "30"}, tbl.Rows[0])
}

func TestParseMarkdownHorizontalRule(t *testing.T) {
	for _, md := range []string{"---", "***", "___"} {
		nodes := ParseMarkdown(md)
		require.Len(t, nodes, 1, md)
		assert.IsType(t, &MarkdownHorizontalRule{}, nodes[0])
	}
}

func TestParseMarkdownBlockquote(t *testing.T) {
	nodes := ParseMarkdown("> first\n> second")
	require.Len(t, nodes, 1)

	q := nodes[0].(*MarkdownBlockquote)
	assert.Equal(t, "first second", q.Spans[0].Text)
}

func TestAppendMarkdownBuildsBlocks(t *testing.T) {
	doc := New()
	err := doc.AppendMarkdown("# Title\n\nBody with **bold**.\n\n- a\n- b")
	require.NoError(t, err)

	blocks := doc.Blocks()
	require.Len(t, blocks, 4)
	assert.Equal(t, ParaPrH1, blocks[0].(*Paragraph).ParaPrIDRef)
	assert.Equal(t, ParaPrBody, blocks[1].(*Paragraph).ParaPrIDRef)
	assert.Equal(t, ParaPrBullet, blocks[2].(*Paragraph).ParaPrIDRef)
}

func TestAppendMarkdownPadsShortTableRows(t *testing.T) {
	doc := New()
	err := doc.AppendMarkdown("| A | B | C |\n|---|---|---|\n| 1 | 2 |")
	require.NoError(t, err)

	tbl := doc.Blocks()[0].(*Table)
	assert.Equal(t, 3, tbl.ColCnt)
	require.Len(t, tbl.Rows[1].Cells, 3)
	assert.Equal(t, "", tbl.Rows[1].Cells[2].Paragraphs[0].Text())
}

func TestConvertMarkdown(t *testing.T) {
	doc, err := ConvertMarkdown("# Hello\n\nWorld")
	require.NoError(t, err)
	assert.Len(t, doc.Blocks(), 2)
}
