package hwpx

// ConvertMarkdown parses markdown text and builds a document from it.
func ConvertMarkdown(text string) (*Document, error) {
	doc := New()
	if err := doc.AppendMarkdown(text); err != nil {
		return nil, err
	}
	return doc, nil
}

// AppendMarkdown parses markdown text and appends the resulting blocks
// to the document. Table rows narrower than the header row are padded
// with empty cells and wider rows are cut, so the hand-written grid of
// a markdown table never trips the model's exact-grid check.
func (d *Document) AppendMarkdown(text string) error {
	for _, node := range ParseMarkdown(text) {
		switch n := node.(type) {
		case *MarkdownHeading:
			d.AddHeading(n.Text, n.Level)
		case *MarkdownParagraph:
			d.AddFormattedParagraph(n.Spans...)
		case *MarkdownTable:
			rows := normalizeTableRows(n.Rows, len(n.Headers))
			if _, err := d.AddTable(n.Headers, rows); err != nil {
				return err
			}
		case *MarkdownCodeBlock:
			d.AddCodeBlock(n.Code, n.Language)
		case *MarkdownList:
			if n.Ordered {
				d.AddOrderedList(n.Items)
			} else {
				d.AddBulletList(n.Items)
			}
		case *MarkdownHorizontalRule:
			d.AddHorizontalRule()
		case *MarkdownBlockquote:
			d.AddBlockquote(n.Spans...)
		}
	}
	return nil
}

func normalizeTableRows(rows [][]string, width int) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) == width {
			out[i] = row
			continue
		}
		norm := make([]string, width)
		copy(norm, row)
		out[i] = norm
	}
	return out
}
