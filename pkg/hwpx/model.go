package hwpx

// Block is one structural unit of document content. The block sequence
// of a document preserves insertion order end-to-end into the serialized
// output.
type Block interface {
	isBlock()
}

// RunKind discriminates the run variants the serializer understands.
type RunKind int

const (
	// RunText is a plain text span.
	RunText RunKind = iota
	// RunFieldBegin opens a hyperlink field. It carries the target URL.
	RunFieldBegin
	// RunFieldEnd closes the hyperlink field opened by the run with the
	// matching FieldID.
	RunFieldEnd
)

// Run is a contiguous span within a paragraph sharing one character
// property reference. A hyperlink is always the atomic triplet
// {field-begin run, text run, field-end run}; the three runs share a
// FieldID issued by the document's ID generator.
type Run struct {
	Kind        RunKind
	CharPrIDRef int
	Text        string
	URL         string // RunFieldBegin only
	FieldID     int    // RunFieldBegin and RunFieldEnd
}

// Paragraph is a paragraph block (hp:p). Headings, list items, code
// lines, blockquotes and horizontal rules are all paragraphs
// distinguished by their property references.
type Paragraph struct {
	ParaPrIDRef int
	StyleIDRef  int
	Runs        []Run
}

func (*Paragraph) isBlock() {}

// TableCell is one cell of a table grid (hp:tc). Every cell carries its
// own sub-content list with a structural ID.
type TableCell struct {
	Paragraphs      []Paragraph
	SubListID       int
	ColAddr         int
	RowAddr         int
	ColSpan         int
	RowSpan         int
	Width           int
	Height          int
	BorderFillIDRef int
	Header          bool
}

// TableRow is one row of cells (hp:tr).
type TableRow struct {
	Cells []TableCell
}

// Table is a table block (hp:tbl) wrapped in its own paragraph on
// serialization. RowCnt and ColCnt must match the populated cell grid
// exactly.
type Table struct {
	ID              int
	Rows            []TableRow
	RowCnt          int
	ColCnt          int
	Width           int
	CellSpacing     int
	BorderFillIDRef int
}

func (*Table) isBlock() {}

// Picture is an embedded image block (hp:pic). Data is carried to the
// container as a binary attachment named by BinaryItemID.
type Picture struct {
	ID           int
	SubListID    int
	BinaryItemID string
	Format       string // "png", "jpg", "gif", "bmp"
	Width        int    // HWPUNIT
	Height       int    // HWPUNIT
	Data         []byte
}

func (*Picture) isBlock() {}

// MediaType returns the MIME type for the picture's format.
func (p *Picture) MediaType() string {
	switch p.Format {
	case "jpg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "bmp":
		return "image/bmp"
	default:
		return "image/png"
	}
}

// Region is a page header or footer region: a short sub-document
// rendered on every page.
type Region struct {
	SubListID  int
	Paragraphs []Paragraph
}

// PageSetup holds page size, margins and orientation, all in HWPUNIT.
type PageSetup struct {
	Width        int
	Height       int
	MarginLeft   int
	MarginRight  int
	MarginTop    int
	MarginBottom int
	MarginHeader int
	MarginFooter int
	Orientation  string // WIDELY = portrait, NARROWLY = landscape
}

// A4 returns an A4 (210 x 297 mm) page setup.
func A4(landscape bool) PageSetup {
	ps := PageSetup{
		Width:        defaultPageWidth,
		Height:       defaultPageHeight,
		MarginLeft:   defaultMarginLeft,
		MarginRight:  defaultMarginRight,
		MarginTop:    defaultMarginTop,
		MarginBottom: defaultMarginBottom,
		MarginHeader: defaultMarginHeader,
		MarginFooter: defaultMarginFooter,
		Orientation:  "WIDELY",
	}
	if landscape {
		ps.Width, ps.Height = ps.Height, ps.Width
		ps.Orientation = "NARROWLY"
	}
	return ps
}

// A3 returns an A3 (297 x 420 mm) page setup.
func A3(landscape bool) PageSetup {
	ps := A4(false)
	ps.Width = MMToHWPUnit(297)
	ps.Height = MMToHWPUnit(420)
	if landscape {
		ps.Width, ps.Height = ps.Height, ps.Width
		ps.Orientation = "NARROWLY"
	}
	return ps
}

// Letter returns a US Letter (216 x 279 mm) page setup.
func Letter(landscape bool) PageSetup {
	ps := A4(false)
	ps.Width = MMToHWPUnit(216)
	ps.Height = MMToHWPUnit(279)
	if landscape {
		ps.Width, ps.Height = ps.Height, ps.Width
		ps.Orientation = "NARROWLY"
	}
	return ps
}

// UsableWidth returns the content area width: page width minus the left
// and right margins.
func (ps PageSetup) UsableWidth() int {
	return ps.Width - ps.MarginLeft - ps.MarginRight
}

// Span is one inline segment of formatted text used by the high-level
// construction API and the content translator. At most one of Code and
// Link applies; Link takes precedence.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
	Strike bool
	Link   string // URL; non-empty makes this span a hyperlink
}

// charPr resolves the character property for a span's formatting flags.
func (s Span) charPr() int {
	switch {
	case s.Link != "":
		return CharPrLink
	case s.Code:
		return CharPrInlineCode
	case s.Strike:
		return CharPrStrikethrough
	case s.Bold && s.Italic:
		return CharPrBoldItalic
	case s.Bold:
		return CharPrBold
	case s.Italic:
		return CharPrItalic
	default:
		return CharPrBody
	}
}

// ListItem is one item of a bullet or ordered list with its nesting
// level. Levels deeper than MaxListLevel fold to MaxListLevel.
type ListItem struct {
	Spans []Span
	Level int
}

// Text returns the concatenated text of a paragraph's text runs.
func (p *Paragraph) Text() string {
	var out string
	for _, r := range p.Runs {
		if r.Kind == RunText {
			out += r.Text
		}
	}
	return out
}
