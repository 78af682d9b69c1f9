package hwpx

import "io"

// Builder is a fluent wrapper around Document for linear construction.
// The first error sticks and short-circuits every later call, so a chain
// checks errors once at the end.
//
//	data, err := hwpx.NewBuilder().
//		Heading("Report", 1).
//		Paragraph("Quarterly summary.").
//		Table([]string{"Name", "Age"}, [][]string{{"Kim", "30"}}).
//		Bytes()
type Builder struct {
	doc *Document
	err error
}

// NewBuilder creates a builder over a fresh document.
func NewBuilder() *Builder {
	return &Builder{doc: New()}
}

// NewBuilderWithSeed creates a builder whose document generates
// deterministic structural IDs.
func NewBuilderWithSeed(seed int64) *Builder {
	return &Builder{doc: NewWithSeed(seed)}
}

// Document exposes the underlying document for operations the builder
// does not wrap.
func (b *Builder) Document() *Document {
	return b.doc
}

// Err returns the first error recorded by the chain, if any.
func (b *Builder) Err() error {
	return b.err
}

// Style applies a style configuration.
func (b *Builder) Style(cfg StyleConfig) *Builder {
	if b.err == nil {
		b.err = b.doc.SetStyle(cfg)
	}
	return b
}

// Page applies a page setup.
func (b *Builder) Page(ps PageSetup) *Builder {
	if b.err == nil {
		b.doc.SetPageSetup(ps)
	}
	return b
}

// Heading appends a heading paragraph.
func (b *Builder) Heading(text string, level int) *Builder {
	if b.err == nil {
		b.doc.AddHeading(text, level)
	}
	return b
}

// Paragraph appends a plain body paragraph.
func (b *Builder) Paragraph(text string) *Builder {
	if b.err == nil {
		b.doc.AddParagraph(text)
	}
	return b
}

// Formatted appends a body paragraph built from spans.
func (b *Builder) Formatted(spans ...Span) *Builder {
	if b.err == nil {
		b.doc.AddFormattedParagraph(spans...)
	}
	return b
}

// Hyperlink appends a paragraph containing a single link.
func (b *Builder) Hyperlink(text, url string) *Builder {
	if b.err == nil {
		b.doc.AddHyperlink(text, url)
	}
	return b
}

// Table appends a table from a header row and data rows.
func (b *Builder) Table(headers []string, rows [][]string) *Builder {
	if b.err == nil {
		_, b.err = b.doc.AddTable(headers, rows)
	}
	return b
}

// CodeBlock appends a fenced code block.
func (b *Builder) CodeBlock(code, language string) *Builder {
	if b.err == nil {
		b.doc.AddCodeBlock(code, language)
	}
	return b
}

// BulletList appends bullet list items.
func (b *Builder) BulletList(items []ListItem) *Builder {
	if b.err == nil {
		b.doc.AddBulletList(items)
	}
	return b
}

// OrderedList appends numbered list items.
func (b *Builder) OrderedList(items []ListItem) *Builder {
	if b.err == nil {
		b.doc.AddOrderedList(items)
	}
	return b
}

// Blockquote appends a quoted paragraph.
func (b *Builder) Blockquote(spans ...Span) *Builder {
	if b.err == nil {
		b.doc.AddBlockquote(spans...)
	}
	return b
}

// HorizontalRule appends a rule paragraph.
func (b *Builder) HorizontalRule() *Builder {
	if b.err == nil {
		b.doc.AddHorizontalRule()
	}
	return b
}

// Image embeds an image from raw bytes.
func (b *Builder) Image(data []byte) *Builder {
	if b.err == nil {
		b.doc.AddImage(data)
	}
	return b
}

// ImageFile embeds an image read from a file.
func (b *Builder) ImageFile(path string) *Builder {
	if b.err == nil {
		_, b.err = b.doc.AddImageFromFile(path)
	}
	return b
}

// TableOfContents appends a contents listing of the headings so far.
func (b *Builder) TableOfContents(title string) *Builder {
	if b.err == nil {
		b.doc.AddTableOfContents(title)
	}
	return b
}

// Header sets the page header text.
func (b *Builder) Header(text string) *Builder {
	if b.err == nil {
		b.doc.SetHeader(text)
	}
	return b
}

// Footer sets the page footer text.
func (b *Builder) Footer(text string) *Builder {
	if b.err == nil {
		b.doc.SetFooter(text)
	}
	return b
}

// Bytes finishes the chain and returns the assembled container.
func (b *Builder) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.doc.Bytes()
}

// WriteTo finishes the chain and writes the container to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	if b.err != nil {
		return 0, b.err
	}
	return b.doc.WriteTo(w)
}

// Save finishes the chain and writes the container to a file.
func (b *Builder) Save(path string) error {
	if b.err != nil {
		return b.err
	}
	return b.doc.Save(path)
}
