package hwpx

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Document is an in-progress HWPX document: an ordered block sequence,
// the active property registry snapshot, page setup, and optional header
// and footer regions. A document is confined to one goroutine; build
// independent documents concurrently instead of sharing one.
type Document struct {
	blocks   []Block
	registry *Registry
	idgen    *IDGenerator
	page     PageSetup
	header   *Region
	footer   *Region
	pictures []*Picture
	imageSeq int
	log      zerolog.Logger
}

// New creates an empty document with the default registry and a
// nondeterministic ID generator.
func New() *Document {
	return newDocument(NewRandomIDGenerator())
}

// NewWithSeed creates an empty document whose structural IDs are
// generated deterministically from seed, for reproducible output.
func NewWithSeed(seed int64) *Document {
	return newDocument(NewIDGenerator(seed))
}

func newDocument(gen *IDGenerator) *Document {
	reg, err := BuildRegistry(StyleConfig{})
	if err != nil {
		// The default configuration is validated by tests; failure here
		// is a defect in the defaults themselves.
		panic(err)
	}
	return &Document{
		registry: reg,
		idgen:    gen,
		page:     A4(false),
		log:      zerolog.Nop(),
	}
}

// SetLogger attaches a logger for build diagnostics. The default
// discards everything.
func (d *Document) SetLogger(log zerolog.Logger) {
	d.log = log
}

// SetStyle rebuilds the whole property registry from a style
// configuration. The rebuild is atomic: on validation failure the
// previous registry stays active and no record is modified.
func (d *Document) SetStyle(cfg StyleConfig) error {
	reg, err := BuildRegistry(cfg)
	if err != nil {
		return err
	}
	d.registry = reg
	d.log.Debug().Msg("registry rebuilt from style config")
	return nil
}

// SetPageSetup replaces the page geometry.
func (d *Document) SetPageSetup(ps PageSetup) {
	d.page = ps
}

// Registry returns the active property registry snapshot.
func (d *Document) Registry() *Registry {
	return d.registry
}

// PageSetup returns the current page geometry.
func (d *Document) PageSetup() PageSetup {
	return d.page
}

// Blocks returns the document's block sequence in insertion order.
func (d *Document) Blocks() []Block {
	return d.blocks
}

// Pictures returns the binary attachments added so far.
func (d *Document) Pictures() []*Picture {
	return d.pictures
}

// AppendBlock validates a block's property references against the active
// registry and appends it. A dangling reference is a construction-time
// defect reported here, never deferred to serialization.
func (d *Document) AppendBlock(b Block) error {
	if err := d.checkBlock(b); err != nil {
		return err
	}
	d.blocks = append(d.blocks, b)
	return nil
}

func (d *Document) checkBlock(b Block) error {
	switch blk := b.(type) {
	case *Paragraph:
		return d.checkParagraph(blk)
	case *Table:
		if err := d.checkTableGrid(blk); err != nil {
			return err
		}
		if !d.registry.HasBorderFill(blk.BorderFillIDRef) {
			return newModelError("table", "unknown borderFill %d", blk.BorderFillIDRef)
		}
		for _, row := range blk.Rows {
			for i := range row.Cells {
				cell := &row.Cells[i]
				if !d.registry.HasBorderFill(cell.BorderFillIDRef) {
					return newModelError("table cell", "unknown borderFill %d", cell.BorderFillIDRef)
				}
				for j := range cell.Paragraphs {
					if err := d.checkParagraph(&cell.Paragraphs[j]); err != nil {
						return err
					}
				}
			}
		}
		return nil
	case *Picture:
		return nil
	default:
		return newModelError("append", "unknown block variant %T", b)
	}
}

func (d *Document) checkParagraph(p *Paragraph) error {
	if !d.registry.HasParaPr(p.ParaPrIDRef) {
		return newModelError("paragraph", "unknown paraPr %d", p.ParaPrIDRef)
	}
	if !d.registry.HasStyle(p.StyleIDRef) {
		return newModelError("paragraph", "unknown style %d", p.StyleIDRef)
	}
	for _, r := range p.Runs {
		if !d.registry.HasCharPr(r.CharPrIDRef) {
			return newModelError("run", "unknown charPr %d", r.CharPrIDRef)
		}
	}
	return nil
}

func (d *Document) checkTableGrid(t *Table) error {
	if t.RowCnt != len(t.Rows) {
		return newModelError("table", "rowCnt %d does not match %d populated rows", t.RowCnt, len(t.Rows))
	}
	for i, row := range t.Rows {
		if t.ColCnt != len(row.Cells) {
			return newModelError("table", "colCnt %d does not match %d cells in row %d", t.ColCnt, len(row.Cells), i)
		}
	}
	return nil
}

// mustAppend appends a block built by the fixed mapping tables. The
// tables are validated at init, so a failure here is a defect in this
// package and panics immediately.
func (d *Document) mustAppend(b Block) {
	if err := d.AppendBlock(b); err != nil {
		panic(err)
	}
}

// AddHeading appends a heading paragraph. Levels outside 1..6 clamp to
// the nearest bound.
func (d *Document) AddHeading(text string, level int) *Paragraph {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	m := headingMap[level]
	p := &Paragraph{
		ParaPrIDRef: m.paraPr,
		StyleIDRef:  m.style,
		Runs:        []Run{{Kind: RunText, CharPrIDRef: m.charPr, Text: text}},
	}
	d.mustAppend(p)
	d.log.Debug().Int("level", level).Msg("heading added")
	return p
}

// AddParagraph appends a plain body paragraph.
func (d *Document) AddParagraph(text string) *Paragraph {
	return d.AddFormattedParagraph(Span{Text: text})
}

// AddFormattedParagraph appends a body paragraph built from inline
// spans. A span with a link emits the atomic field-begin / text /
// field-end run triplet.
func (d *Document) AddFormattedParagraph(spans ...Span) *Paragraph {
	p := &Paragraph{
		ParaPrIDRef: ParaPrBody,
		StyleIDRef:  StyleBody,
		Runs:        d.spanRuns(spans),
	}
	d.mustAppend(p)
	return p
}

// spanRuns converts spans to runs, expanding hyperlink spans into their
// three-run form.
func (d *Document) spanRuns(spans []Span) []Run {
	runs := make([]Run, 0, len(spans))
	for _, s := range spans {
		if s.Link != "" {
			fieldID := d.idgen.NextID()
			runs = append(runs,
				Run{Kind: RunFieldBegin, CharPrIDRef: CharPrLink, URL: s.Link, FieldID: fieldID},
				Run{Kind: RunText, CharPrIDRef: CharPrLink, Text: s.Text},
				Run{Kind: RunFieldEnd, CharPrIDRef: CharPrLink, FieldID: fieldID},
			)
			continue
		}
		runs = append(runs, Run{Kind: RunText, CharPrIDRef: s.charPr(), Text: s.Text})
	}
	return runs
}

// AddHyperlink appends a body paragraph containing a single hyperlink.
func (d *Document) AddHyperlink(text, url string) *Paragraph {
	return d.AddFormattedParagraph(Span{Text: text, Link: url})
}

// AddTable appends a table built from a header row and data rows. Every
// data row must have exactly as many cells as the header; a mismatched
// grid is a model consistency error, not padded or truncated here.
func (d *Document) AddTable(headers []string, rows [][]string) (*Table, error) {
	if len(headers) == 0 {
		return nil, newModelError("table", "header row is empty")
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return nil, newModelError("table", "row %d has %d cells, header has %d", i, len(row), len(headers))
		}
	}

	colCnt := len(headers)
	rowCnt := 1 + len(rows)
	usable := d.page.UsableWidth()
	colWidth := usable / colCnt

	cell := func(text string, col, row int, header bool) TableCell {
		charPr, borderFill := CharPrTableBody, BorderFillTable
		if header {
			charPr, borderFill = CharPrTableHeader, BorderFillTableHeader
		}
		return TableCell{
			Paragraphs: []Paragraph{{
				ParaPrIDRef: ParaPrTable,
				StyleIDRef:  StyleBody,
				Runs:        []Run{{Kind: RunText, CharPrIDRef: charPr, Text: text}},
			}},
			SubListID:       d.idgen.NextID(),
			ColAddr:         col,
			RowAddr:         row,
			ColSpan:         1,
			RowSpan:         1,
			Width:           colWidth,
			Height:          1000,
			BorderFillIDRef: borderFill,
			Header:          header,
		}
	}

	tableRows := make([]TableRow, 0, rowCnt)
	headerCells := make([]TableCell, 0, colCnt)
	for ci, h := range headers {
		headerCells = append(headerCells, cell(h, ci, 0, true))
	}
	tableRows = append(tableRows, TableRow{Cells: headerCells})
	for ri, row := range rows {
		cells := make([]TableCell, 0, colCnt)
		for ci, text := range row {
			cells = append(cells, cell(text, ci, ri+1, false))
		}
		tableRows = append(tableRows, TableRow{Cells: cells})
	}

	t := &Table{
		ID:              d.idgen.NextID(),
		Rows:            tableRows,
		RowCnt:          rowCnt,
		ColCnt:          colCnt,
		Width:           usable,
		BorderFillIDRef: BorderFillTable,
	}
	if err := d.AppendBlock(t); err != nil {
		return nil, err
	}
	d.log.Debug().Int("rows", rowCnt).Int("cols", colCnt).Msg("table added")
	return t, nil
}

// AddCodeBlock appends a fenced code block as one paragraph per line.
// The language tag is advisory and does not change formatting.
func (d *Document) AddCodeBlock(code, language string) []*Paragraph {
	_ = language
	var out []*Paragraph
	for _, line := range strings.Split(strings.TrimRight(code, "\n"), "\n") {
		// Keep a space in empty lines so they survive rendering.
		if line == "" {
			line = " "
		}
		p := &Paragraph{
			ParaPrIDRef: ParaPrCode,
			StyleIDRef:  StyleBody,
			Runs:        []Run{{Kind: RunText, CharPrIDRef: CharPrCodeBlock, Text: line}},
		}
		d.mustAppend(p)
		out = append(out, p)
	}
	return out
}

// AddBulletList appends one paragraph per bullet item. Item nesting
// levels clamp to MaxListLevel.
func (d *Document) AddBulletList(items []ListItem) []*Paragraph {
	return d.addList(false, items)
}

// AddOrderedList appends one paragraph per numbered item. Item nesting
// levels clamp to MaxListLevel.
func (d *Document) AddOrderedList(items []ListItem) []*Paragraph {
	return d.addList(true, items)
}

func (d *Document) addList(ordered bool, items []ListItem) []*Paragraph {
	levels := listParaPrMap[ordered]
	var out []*Paragraph
	for _, item := range items {
		level := item.Level
		if level < 0 {
			level = 0
		}
		if level > MaxListLevel {
			level = MaxListLevel
		}
		p := &Paragraph{
			ParaPrIDRef: levels[level],
			StyleIDRef:  StyleBody,
			Runs:        d.spanRuns(item.Spans),
		}
		d.mustAppend(p)
		out = append(out, p)
	}
	return out
}

// AddBlockquote appends a quoted paragraph.
func (d *Document) AddBlockquote(spans ...Span) *Paragraph {
	p := &Paragraph{
		ParaPrIDRef: ParaPrBlockquote,
		StyleIDRef:  StyleBody,
		Runs:        d.spanRuns(spans),
	}
	d.mustAppend(p)
	return p
}

// AddHorizontalRule appends a thin rule paragraph.
func (d *Document) AddHorizontalRule() *Paragraph {
	p := &Paragraph{
		ParaPrIDRef: ParaPrHR,
		StyleIDRef:  StyleBody,
		Runs:        []Run{{Kind: RunText, CharPrIDRef: CharPrBody, Text: ""}},
	}
	d.mustAppend(p)
	return p
}

// AddImage embeds an image from raw bytes. Format and pixel dimensions
// are detected from the data; an unrecognized format falls back to the
// documented defaults instead of failing. Pixel dimensions convert to
// HWPUNIT at the fixed scale factor.
func (d *Document) AddImage(data []byte) *Picture {
	info := InspectImage(data)
	return d.addPicture(data, info, info.Width*hwpUnitPerPixel, info.Height*hwpUnitPerPixel)
}

// AddImageSized embeds an image with an explicit size in HWPUNIT,
// overriding the detected pixel dimensions.
func (d *Document) AddImageSized(data []byte, width, height int) *Picture {
	info := InspectImage(data)
	return d.addPicture(data, info, width, height)
}

// AddImageFromFile embeds an image read from a file path.
func (d *Document) AddImageFromFile(path string) (*Picture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	return d.AddImage(data), nil
}

func (d *Document) addPicture(data []byte, info ImageInfo, width, height int) *Picture {
	d.imageSeq++
	pic := &Picture{
		ID:           d.idgen.NextID(),
		SubListID:    d.idgen.NextID(),
		BinaryItemID: fmt.Sprintf("image%d", d.imageSeq),
		Format:       info.Format,
		Width:        width,
		Height:       height,
		Data:         data,
	}
	d.mustAppend(pic)
	d.pictures = append(d.pictures, pic)
	d.log.Debug().Str("item", pic.BinaryItemID).Str("format", pic.Format).Msg("image embedded")
	return pic
}

// SetHeader sets the page header region to a single body paragraph.
func (d *Document) SetHeader(text string) {
	d.header = d.region(text)
}

// SetFooter sets the page footer region to a single body paragraph.
func (d *Document) SetFooter(text string) {
	d.footer = d.region(text)
}

func (d *Document) region(text string) *Region {
	p := Paragraph{
		ParaPrIDRef: ParaPrBody,
		StyleIDRef:  StyleBody,
		Runs:        []Run{{Kind: RunText, CharPrIDRef: CharPrBody, Text: text}},
	}
	if err := d.checkParagraph(&p); err != nil {
		panic(err)
	}
	return &Region{
		SubListID:  d.idgen.NextID(),
		Paragraphs: []Paragraph{p},
	}
}

// Header returns the page header region, or nil.
func (d *Document) Header() *Region {
	return d.header
}

// Footer returns the page footer region, or nil.
func (d *Document) Footer() *Region {
	return d.footer
}

// PreviewText returns up to 200 runes of the document's plain text for
// the container's preview entry.
func (d *Document) PreviewText() string {
	var texts []string
	collect := func(p *Paragraph) {
		if t := p.Text(); strings.TrimSpace(t) != "" {
			texts = append(texts, t)
		}
	}
	for _, b := range d.blocks {
		switch blk := b.(type) {
		case *Paragraph:
			collect(blk)
		case *Table:
			for _, row := range blk.Rows {
				for i := range row.Cells {
					for j := range row.Cells[i].Paragraphs {
						collect(&row.Cells[i].Paragraphs[j])
					}
				}
			}
		}
	}
	joined := strings.Join(texts, " ")
	runes := []rune(joined)
	if len(runes) > 200 {
		return string(runes[:200])
	}
	if joined == "" {
		return " "
	}
	return joined
}

// Serialize renders the document to its two XML payloads.
func (d *Document) Serialize() (headerXML, sectionXML string, err error) {
	return Serialize(d.registry, d)
}

// WriteTo assembles the complete HWPX container and writes it to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	pkg, err := d.buildPackage()
	if err != nil {
		return 0, err
	}
	return pkg.WriteTo(w)
}

// Bytes returns the complete HWPX container as bytes.
func (d *Document) Bytes() ([]byte, error) {
	pkg, err := d.buildPackage()
	if err != nil {
		return nil, err
	}
	return pkg.Bytes()
}

// Save writes the complete HWPX container to a file.
func (d *Document) Save(path string) error {
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
