package hwpx

import (
	"fmt"
	"strings"
)

// section0.xml rendering. The first run of the first paragraph carries
// the section properties, the column control and, when set, the page
// header and footer controls. Every other structural element keeps the
// reference layout's exact attribute order.

// Serialize renders a registry and document into the header.xml and
// section0.xml payloads.
func Serialize(reg *Registry, doc *Document) (headerXML, sectionXML string, err error) {
	sectionXML, err = renderSectionXML(doc)
	if err != nil {
		return "", "", err
	}
	return renderHeaderXML(reg), sectionXML, nil
}

func renderSectionXML(doc *Document) (string, error) {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	fmt.Fprintf(&b, "<hs:sec xmlns:hp=%q xmlns:hs=%q xmlns:hc=%q>\n", nsHP, nsHS, nsHC)

	blocks := doc.blocks
	if len(blocks) == 0 {
		blocks = []Block{&Paragraph{}}
	}

	// A table or picture cannot host the section properties; lead with
	// an empty paragraph when the document starts with one.
	if _, ok := blocks[0].(*Paragraph); !ok {
		lead := &Paragraph{}
		writeParagraphXML(&b, doc, lead, true)
		b.WriteString("\n")
	}

	for i, blk := range blocks {
		first := i == 0
		switch v := blk.(type) {
		case *Paragraph:
			writeParagraphXML(&b, doc, v, first)
		case *Table:
			writeTableParagraph(&b, v)
		case *Picture:
			writePictureParagraph(&b, v)
		default:
			return "", newSerializeError("section", "unknown block variant %T", blk)
		}
		b.WriteString("\n")
	}

	b.WriteString("</hs:sec>")
	return b.String(), nil
}

func writeParagraphXML(b *strings.Builder, doc *Document, p *Paragraph, first bool) {
	fmt.Fprintf(b, "<hp:p paraPrIDRef=\"%d\" styleIDRef=\"%d\" pageBreak=\"0\" columnBreak=\"0\" merged=\"0\">",
		p.ParaPrIDRef, p.StyleIDRef)

	runs := p.Runs
	if len(runs) == 0 {
		runs = []Run{{Kind: RunText, CharPrIDRef: CharPrBody}}
	}
	for i, r := range runs {
		fmt.Fprintf(b, "<hp:run charPrIDRef=\"%d\">", r.CharPrIDRef)
		if first && i == 0 {
			writeSecPr(b, doc.page)
			writeColPr(b)
			if doc.header != nil {
				writeRegionCtrl(b, "header", doc.header)
			}
			if doc.footer != nil {
				writeRegionCtrl(b, "footer", doc.footer)
			}
		}
		switch r.Kind {
		case RunFieldBegin:
			writeFieldBegin(b, r)
		case RunFieldEnd:
			writeFieldEnd(b, r)
		default:
			fmt.Fprintf(b, "<hp:t>%s</hp:t>", escapeText(r.Text))
		}
		b.WriteString("</hp:run>")
	}
	b.WriteString("</hp:p>")
}

// writeFieldBegin opens a hyperlink field. The target URL travels in the
// Command parameter using the viewer's "url;1;0;0;" convention.
func writeFieldBegin(b *strings.Builder, r Run) {
	fmt.Fprintf(b, "<hp:ctrl><hp:fieldBegin id=\"%d\" type=\"HYPERLINK\" name=\"\" editable=\"0\" dirty=\"0\" zorder=\"0\" fieldid=\"%d\">",
		r.FieldID, r.FieldID)
	b.WriteString("<hp:parameters count=\"1\">")
	fmt.Fprintf(b, "<hp:stringParam name=\"Command\">%s;1;0;0;</hp:stringParam>", escapeText(r.URL))
	b.WriteString("</hp:parameters>")
	b.WriteString("</hp:fieldBegin></hp:ctrl>")
}

func writeFieldEnd(b *strings.Builder, r Run) {
	fmt.Fprintf(b, "<hp:ctrl><hp:fieldEnd beginIDRef=\"%d\" fieldid=\"%d\" /></hp:ctrl>", r.FieldID, r.FieldID)
}

func writeColPr(b *strings.Builder) {
	fmt.Fprintf(b, "\n      <hp:ctrl xmlns:hp=%q>\n", nsHP)
	b.WriteString("        <hp:colPr id=\"\" type=\"NEWSPAPER\" layout=\"LEFT\" colCount=\"1\" sameSz=\"1\" sameGap=\"0\" />\n")
	b.WriteString("      </hp:ctrl>\n    ")
}

func writeRegionCtrl(b *strings.Builder, kind string, reg *Region) {
	fmt.Fprintf(b, "<hp:ctrl><hp:%s id=\"%d\" applyPageType=\"BOTH\">", kind, reg.SubListID)
	writeSubListOpen(b, reg.SubListID)
	for i := range reg.Paragraphs {
		writeCellParagraph(b, &reg.Paragraphs[i])
	}
	b.WriteString("</hp:subList>")
	fmt.Fprintf(b, "</hp:%s></hp:ctrl>", kind)
}

func writeSubListOpen(b *strings.Builder, id int) {
	fmt.Fprintf(b, "<hp:subList id=\"%d\" textDirection=\"HORIZONTAL\" lineWrap=\"BREAK\" vertAlign=\"TOP\" linkListIDRef=\"0\" linkListNextIDRef=\"0\" textWidth=\"0\" textHeight=\"0\" hasTextRef=\"0\" hasNumRef=\"0\">", id)
}

// writeCellParagraph renders a paragraph inside a sub-list, which never
// carries section properties.
func writeCellParagraph(b *strings.Builder, p *Paragraph) {
	fmt.Fprintf(b, "<hp:p paraPrIDRef=\"%d\" styleIDRef=\"%d\" pageBreak=\"0\" columnBreak=\"0\" merged=\"0\">",
		p.ParaPrIDRef, p.StyleIDRef)
	for _, r := range p.Runs {
		fmt.Fprintf(b, "<hp:run charPrIDRef=\"%d\">", r.CharPrIDRef)
		switch r.Kind {
		case RunFieldBegin:
			writeFieldBegin(b, r)
		case RunFieldEnd:
			writeFieldEnd(b, r)
		default:
			fmt.Fprintf(b, "<hp:t>%s</hp:t>", escapeText(r.Text))
		}
		b.WriteString("</hp:run>")
	}
	b.WriteString("</hp:p>")
}

func writeTableParagraph(b *strings.Builder, t *Table) {
	fmt.Fprintf(b, "<hp:p paraPrIDRef=\"%d\" styleIDRef=\"%d\" pageBreak=\"0\" columnBreak=\"0\" merged=\"0\">",
		ParaPrBody, StyleBody)
	b.WriteString("<hp:run charPrIDRef=\"0\">")
	fmt.Fprintf(b, "<hp:tbl id=\"%d\" zOrder=\"0\" numberingType=\"TABLE\" textWrap=\"TOP_AND_BOTTOM\" textFlow=\"BOTH_SIDES\" lock=\"0\" dropcapstyle=\"None\" pageBreak=\"CELL\" repeatHeader=\"1\" rowCnt=\"%d\" colCnt=\"%d\" cellSpacing=\"%d\" borderFillIDRef=\"%d\" noAdjust=\"0\">",
		t.ID, t.RowCnt, t.ColCnt, t.CellSpacing, t.BorderFillIDRef)
	fmt.Fprintf(b, "<hp:sz width=\"%d\" widthRelTo=\"ABSOLUTE\" height=\"5000\" heightRelTo=\"ABSOLUTE\" protect=\"0\"/>", t.Width)
	b.WriteString("<hp:pos treatAsChar=\"0\" affectLSpacing=\"0\" flowWithText=\"1\" allowOverlap=\"0\" holdAnchorAndSO=\"0\" vertRelTo=\"PARA\" horzRelTo=\"COLUMN\" vertAlign=\"TOP\" horzAlign=\"LEFT\" vertOffset=\"0\" horzOffset=\"0\"/>")
	b.WriteString("<hp:outMargin left=\"0\" right=\"0\" top=\"0\" bottom=\"1417\"/>")
	b.WriteString("<hp:inMargin left=\"510\" right=\"510\" top=\"141\" bottom=\"141\"/>")

	for _, row := range t.Rows {
		b.WriteString("<hp:tr>")
		for i := range row.Cells {
			writeTableCell(b, &row.Cells[i])
		}
		b.WriteString("</hp:tr>")
	}

	b.WriteString("</hp:tbl>")
	b.WriteString("</hp:run>")
	b.WriteString("</hp:p>")
}

func writeTableCell(b *strings.Builder, c *TableCell) {
	header := 0
	if c.Header {
		header = 1
	}
	fmt.Fprintf(b, "<hp:tc name=\"\" header=\"%d\" hasMargin=\"0\" protect=\"0\" editable=\"0\" dirty=\"0\" borderFillIDRef=\"%d\">",
		header, c.BorderFillIDRef)
	writeSubListOpen(b, c.SubListID)
	for i := range c.Paragraphs {
		writeCellParagraph(b, &c.Paragraphs[i])
	}
	b.WriteString("</hp:subList>")
	fmt.Fprintf(b, "<hp:cellAddr colAddr=\"%d\" rowAddr=\"%d\"/>", c.ColAddr, c.RowAddr)
	fmt.Fprintf(b, "<hp:cellSpan colSpan=\"%d\" rowSpan=\"%d\"/>", c.ColSpan, c.RowSpan)
	fmt.Fprintf(b, "<hp:cellSz width=\"%d\" height=\"%d\"/>", c.Width, c.Height)
	b.WriteString("<hp:cellMargin left=\"510\" right=\"510\" top=\"141\" bottom=\"141\"/>")
	b.WriteString("</hp:tc>")
}

func writePictureParagraph(b *strings.Builder, p *Picture) {
	fmt.Fprintf(b, "<hp:p paraPrIDRef=\"%d\" styleIDRef=\"%d\" pageBreak=\"0\" columnBreak=\"0\" merged=\"0\">",
		ParaPrBody, StyleBody)
	b.WriteString("<hp:run charPrIDRef=\"0\">")
	fmt.Fprintf(b, "<hp:pic id=\"%d\" zOrder=\"0\" numberingType=\"PICTURE\" textWrap=\"TOP_AND_BOTTOM\" textFlow=\"BOTH_SIDES\" lock=\"0\" dropcapstyle=\"None\" href=\"\" groupLevel=\"0\" instid=\"%d\" reverse=\"0\">",
		p.ID, p.SubListID)
	fmt.Fprintf(b, "<hp:sz width=\"%d\" widthRelTo=\"ABSOLUTE\" height=\"%d\" heightRelTo=\"ABSOLUTE\" protect=\"0\"/>", p.Width, p.Height)
	b.WriteString("<hp:pos treatAsChar=\"1\" affectLSpacing=\"0\" flowWithText=\"1\" allowOverlap=\"0\" holdAnchorAndSO=\"0\" vertRelTo=\"PARA\" horzRelTo=\"COLUMN\" vertAlign=\"TOP\" horzAlign=\"LEFT\" vertOffset=\"0\" horzOffset=\"0\"/>")
	b.WriteString("<hp:outMargin left=\"0\" right=\"0\" top=\"0\" bottom=\"0\"/>")
	fmt.Fprintf(b, "<hp:imgRect><hc:pt0 x=\"0\" y=\"0\"/><hc:pt1 x=\"%d\" y=\"0\"/><hc:pt2 x=\"%d\" y=\"%d\"/><hc:pt3 x=\"0\" y=\"%d\"/></hp:imgRect>",
		p.Width, p.Width, p.Height, p.Height)
	fmt.Fprintf(b, "<hp:imgClip left=\"0\" right=\"%d\" top=\"0\" bottom=\"%d\"/>", p.Width, p.Height)
	b.WriteString("<hp:inMargin left=\"0\" right=\"0\" top=\"0\" bottom=\"0\"/>")
	fmt.Fprintf(b, "<hp:imgDim dimwidth=\"%d\" dimheight=\"%d\"/>", p.Width, p.Height)
	fmt.Fprintf(b, "<hc:img binaryItemIDRef=%q bright=\"0\" contrast=\"0\" effect=\"REAL_PIC\" alpha=\"0\"/>", p.BinaryItemID)
	b.WriteString("</hp:pic>")
	b.WriteString("</hp:run>")
	b.WriteString("</hp:p>")
}

func writeSecPr(b *strings.Builder, ps PageSetup) {
	fmt.Fprintf(b, "<hp:secPr xmlns:hp=%q id=\"\" textDirection=\"HORIZONTAL\" spaceColumns=\"1134\" tabStop=\"8000\" tabStopVal=\"4000\" tabStopUnit=\"HWPUNIT\" outlineShapeIDRef=\"1\" memoShapeIDRef=\"1\" textVerticalWidthHead=\"0\" masterPageCnt=\"0\">\n", nsHP)
	b.WriteString("        <hp:grid lineGrid=\"0\" charGrid=\"0\" wonggojiFormat=\"0\" />\n")
	b.WriteString("        <hp:startNum pageStartsOn=\"BOTH\" page=\"0\" pic=\"0\" tbl=\"0\" equation=\"0\" />\n")
	b.WriteString("        <hp:visibility hideFirstHeader=\"0\" hideFirstFooter=\"0\" hideFirstMasterPage=\"0\" border=\"SHOW_ALL\" fill=\"SHOW_ALL\" hideFirstPageNum=\"0\" hideFirstEmptyLine=\"0\" showLineNumber=\"0\" />\n")
	b.WriteString("        <hp:lineNumberShape restartType=\"0\" countBy=\"0\" distance=\"0\" startNumber=\"0\" />\n")
	fmt.Fprintf(b, "        <hp:pagePr landscape=%q width=\"%d\" height=\"%d\" gutterType=\"LEFT_ONLY\">\n",
		ps.Orientation, ps.Width, ps.Height)
	fmt.Fprintf(b, "          <hp:margin header=\"%d\" footer=\"%d\" gutter=\"0\" left=\"%d\" right=\"%d\" top=\"%d\" bottom=\"%d\" />\n",
		ps.MarginHeader, ps.MarginFooter, ps.MarginLeft, ps.MarginRight, ps.MarginTop, ps.MarginBottom)
	b.WriteString("        </hp:pagePr>\n")
	b.WriteString("        <hp:footNotePr>\n")
	b.WriteString("          <hp:autoNumFormat type=\"DIGIT\" userChar=\"\" prefixChar=\"\" suffixChar=\"\" supscript=\"1\" />\n")
	b.WriteString("          <hp:noteLine length=\"-1\" type=\"SOLID\" width=\"0.25 mm\" color=\"#000000\" />\n")
	b.WriteString("          <hp:noteSpacing betweenNotes=\"283\" belowLine=\"0\" aboveLine=\"1000\" />\n")
	b.WriteString("          <hp:numbering type=\"CONTINUOUS\" newNum=\"1\" />\n")
	b.WriteString("          <hp:placement place=\"EACH_COLUMN\" beneathText=\"0\" />\n")
	b.WriteString("        </hp:footNotePr>\n")
	b.WriteString("        <hp:endNotePr>\n")
	b.WriteString("          <hp:autoNumFormat type=\"ROMAN_SMALL\" userChar=\"\" prefixChar=\"\" suffixChar=\"\" supscript=\"1\" />\n")
	b.WriteString("          <hp:noteLine length=\"-1\" type=\"SOLID\" width=\"0.25 mm\" color=\"#000000\" />\n")
	b.WriteString("          <hp:noteSpacing betweenNotes=\"0\" belowLine=\"0\" aboveLine=\"1000\" />\n")
	b.WriteString("          <hp:numbering type=\"CONTINUOUS\" newNum=\"1\" />\n")
	b.WriteString("          <hp:placement place=\"END_OF_DOCUMENT\" beneathText=\"0\" />\n")
	b.WriteString("        </hp:endNotePr>\n")
	for _, t := range []string{"BOTH", "EVEN", "ODD"} {
		fmt.Fprintf(b, "        <hp:pageBorderFill type=%q borderFillIDRef=\"1\" textBorder=\"PAPER\" headerInside=\"0\" footerInside=\"0\" fillArea=\"PAPER\">\n", t)
		b.WriteString("          <hp:offset left=\"1417\" right=\"1417\" top=\"1417\" bottom=\"1417\" />\n")
		b.WriteString("        </hp:pageBorderFill>\n")
	}
	b.WriteString("      </hp:secPr>")
}
