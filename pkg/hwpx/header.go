package hwpx

import (
	"fmt"
	"strings"
)

// header.xml rendering. Element and attribute order is part of the
// format contract: Hancom Office rejects or misreads files whose
// records deviate from the reference layout, so every element kind has
// its own render function with a fixed field order.

// escapeText escapes the characters XML forbids in character data.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// escapeAttr escapes attribute values, including both quote kinds so a
// parsed-back attribute recovers the original string exactly.
func escapeAttr(s string) string {
	s = escapeText(s)
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

func writeFontFace(b *strings.Builder, ff FontFace) {
	fmt.Fprintf(b, "      <hh:fontface lang=%q fontCnt=\"%d\">\n", ff.Lang, len(ff.Fonts))
	for _, f := range ff.Fonts {
		fmt.Fprintf(b, "        <hh:font id=\"%d\" face=\"%s\" type=%q isEmbedded=\"0\" />\n",
			f.ID, escapeAttr(f.Face), f.Type)
	}
	b.WriteString("      </hh:fontface>\n")
}

func writeBorderFill(b *strings.Builder, bf BorderFill) {
	fmt.Fprintf(b, "      <hh:borderFill id=\"%d\" threeD=\"0\" shadow=\"0\" centerLine=\"NONE\" breakCellSeparateLine=\"0\">\n", bf.ID)
	b.WriteString("        <hh:slash type=\"NONE\" Crooked=\"0\" isCounter=\"0\" />\n")
	b.WriteString("        <hh:backSlash type=\"NONE\" Crooked=\"0\" isCounter=\"0\" />\n")
	fmt.Fprintf(b, "        <hh:leftBorder type=%q width=%q color=%q />\n", bf.LeftType, bf.LeftWidth, bf.BorderColor)
	fmt.Fprintf(b, "        <hh:rightBorder type=%q width=%q color=%q />\n", bf.RightType, bf.RightWidth, bf.BorderColor)
	fmt.Fprintf(b, "        <hh:topBorder type=%q width=%q color=%q />\n", bf.TopType, bf.TopWidth, bf.BorderColor)
	fmt.Fprintf(b, "        <hh:bottomBorder type=%q width=%q color=%q />\n", bf.BottomType, bf.BottomWidth, bf.BorderColor)
	b.WriteString("        <hh:diagonal type=\"SOLID\" width=\"0.1 mm\" color=\"#000000\" />\n")
	b.WriteString("        <hc:fillBrush>\n")
	fmt.Fprintf(b, "          <hc:winBrush faceColor=%q hatchColor=\"#000000\" alpha=\"0\" />\n", bf.FillColor)
	b.WriteString("        </hc:fillBrush>\n")
	b.WriteString("      </hh:borderFill>\n")
}

func writeCharPr(b *strings.Builder, cp CharPr) {
	fmt.Fprintf(b, "      <hh:charPr id=\"%d\" height=\"%d\" textColor=%q shadeColor=%q useFontSpace=\"0\" useKerning=\"0\" symMark=\"NONE\" borderFillIDRef=\"%d\">\n",
		cp.ID, cp.Height, cp.TextColor, cp.ShadeColor, cp.BorderFillIDRef)
	fr := cp.FontRef
	fmt.Fprintf(b, "        <hh:fontRef hangul=\"%d\" latin=\"%d\" hanja=\"%d\" japanese=\"%d\" other=\"%d\" symbol=\"%d\" user=\"%d\" />\n",
		fr.Hangul, fr.Latin, fr.Hanja, fr.Japanese, fr.Other, fr.Symbol, fr.User)
	b.WriteString("        <hh:ratio hangul=\"100\" latin=\"100\" hanja=\"100\" japanese=\"100\" other=\"100\" symbol=\"100\" user=\"100\" />\n")
	b.WriteString("        <hh:spacing hangul=\"0\" latin=\"0\" hanja=\"0\" japanese=\"0\" other=\"0\" symbol=\"0\" user=\"0\" />\n")
	b.WriteString("        <hh:relSz hangul=\"100\" latin=\"100\" hanja=\"100\" japanese=\"100\" other=\"100\" symbol=\"100\" user=\"100\" />\n")
	fmt.Fprintf(b, "        <hh:offset hangul=\"%d\" latin=\"%d\" hanja=\"%d\" japanese=\"%d\" other=\"%d\" symbol=\"%d\" user=\"%d\" />\n",
		cp.Offset, cp.Offset, cp.Offset, cp.Offset, cp.Offset, cp.Offset, cp.Offset)
	if cp.Bold {
		b.WriteString("        <hh:bold />\n")
	}
	if cp.Italic {
		b.WriteString("        <hh:italic />\n")
	}
	fmt.Fprintf(b, "        <hh:underline type=%q shape=\"SOLID\" color=%q />\n", cp.UnderlineType, cp.UnderlineColor)
	fmt.Fprintf(b, "        <hh:strikeout shape=%q color=\"#000000\" />\n", cp.Strikeout)
	b.WriteString("        <hh:outline type=\"NONE\" />\n")
	b.WriteString("        <hh:shadow type=\"NONE\" color=\"#C0C0C0\" offsetX=\"5\" offsetY=\"5\" />\n")
	b.WriteString("      </hh:charPr>\n")
}

func writeParaPrMargin(b *strings.Builder, pp ParaPr) {
	b.WriteString("            <hh:margin>\n")
	fmt.Fprintf(b, "              <hc:intent value=\"%d\" unit=\"HWPUNIT\" />\n", pp.MarginIntent)
	fmt.Fprintf(b, "              <hc:left value=\"%d\" unit=\"HWPUNIT\" />\n", pp.MarginLeft)
	fmt.Fprintf(b, "              <hc:right value=\"%d\" unit=\"HWPUNIT\" />\n", pp.MarginRight)
	fmt.Fprintf(b, "              <hc:prev value=\"%d\" unit=\"HWPUNIT\" />\n", pp.MarginPrev)
	fmt.Fprintf(b, "              <hc:next value=\"%d\" unit=\"HWPUNIT\" />\n", pp.MarginNext)
	b.WriteString("            </hh:margin>\n")
	fmt.Fprintf(b, "            <hh:lineSpacing type=%q value=\"%d\" unit=\"HWPUNIT\" />\n",
		pp.LineSpacingType, pp.LineSpacingValue)
}

func writeParaPr(b *strings.Builder, pp ParaPr) {
	fmt.Fprintf(b, "      <hh:paraPr id=\"%d\" tabPrIDRef=\"%d\" condense=\"0\" fontLineHeight=\"0\" snapToGrid=\"1\" suppressLineNumbers=\"0\" checked=\"0\">\n",
		pp.ID, pp.TabPrIDRef)
	fmt.Fprintf(b, "        <hh:align horizontal=%q vertical=\"BASELINE\" />\n", pp.AlignHorizontal)
	fmt.Fprintf(b, "        <hh:heading type=%q idRef=\"%d\" level=\"%d\" />\n", pp.HeadingType, pp.HeadingIDRef, pp.HeadingLevel)
	fmt.Fprintf(b, "        <hh:breakSetting breakLatinWord=\"KEEP_WORD\" breakNonLatinWord=\"BREAK_WORD\" widowOrphan=\"0\" keepWithNext=\"%d\" keepLines=\"%d\" pageBreakBefore=\"0\" lineWrap=\"BREAK\" />\n",
		pp.KeepWithNext, pp.KeepLines)
	b.WriteString("        <hh:autoSpacing eAsianEng=\"0\" eAsianNum=\"0\" />\n")
	b.WriteString("        <hp:switch>\n")
	b.WriteString("          <hp:case hp:required-namespace=\"http://www.hancom.co.kr/hwpml/2016/HwpUnitChar\">\n")
	writeParaPrMargin(b, pp)
	b.WriteString("          </hp:case>\n")
	b.WriteString("          <hp:default>\n")
	writeParaPrMargin(b, pp)
	b.WriteString("          </hp:default>\n")
	b.WriteString("        </hp:switch>\n")
	fmt.Fprintf(b, "        <hh:border borderFillIDRef=\"%d\" offsetLeft=\"400\" offsetRight=\"400\" offsetTop=\"100\" offsetBottom=\"100\" connect=\"0\" ignoreMargin=\"0\" />\n",
		pp.BorderFillIDRef)
	b.WriteString("      </hh:paraPr>\n")
}

func writeStyle(b *strings.Builder, s StyleDef) {
	fmt.Fprintf(b, "      <hh:style id=\"%d\" type=%q name=\"%s\" engName=\"%s\" paraPrIDRef=\"%d\" charPrIDRef=\"%d\" nextStyleIDRef=\"%d\" langID=\"%d\" lockForm=\"0\" />\n",
		s.ID, s.Type, escapeAttr(s.Name), escapeAttr(s.EngName),
		s.ParaPrIDRef, s.CharPrIDRef, s.NextStyleIDRef, s.LangID)
}

func writeParaHead(b *strings.Builder, h ParaHead) {
	fmt.Fprintf(b, "        <hh:paraHead start=\"1\" level=\"%d\" align=\"LEFT\" useInstWidth=\"1\" autoIndent=\"%d\" widthAdjust=\"0\" textOffsetType=%q textOffset=\"%d\" numFormat=%q charPrIDRef=\"%d\" checkable=\"0\" />\n",
		h.Level, h.AutoIndent, h.TextOffsetType, h.TextOffset, h.NumFormat, h.CharPrIDRef)
}

func writeNumbering(b *strings.Builder, n Numbering) {
	fmt.Fprintf(b, "      <hh:numbering id=\"%d\" start=\"%d\">\n", n.ID, n.Start)
	for _, h := range n.Heads {
		writeParaHead(b, h)
	}
	b.WriteString("      </hh:numbering>\n")
}

func writeBullet(b *strings.Builder, bl Bullet) {
	fmt.Fprintf(b, "      <hh:bullet id=\"%d\" char=\"%s\" checkedChar=\"%s\">\n",
		bl.ID, escapeAttr(bl.Char), escapeAttr(bl.CheckedChar))
	for _, h := range bl.Heads {
		writeParaHead(b, h)
	}
	b.WriteString("      </hh:bullet>\n")
}

// renderHeaderXML produces the complete header.xml payload from a
// registry.
func renderHeaderXML(reg *Registry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<hh:head xmlns:hc=%q xmlns:hh=%q xmlns:hp=%q version=\"1.5\" secCnt=\"1\">\n",
		nsHC, nsHH, nsHP)
	b.WriteString("  <hh:beginNum page=\"1\" footnote=\"1\" endnote=\"1\" pic=\"1\" tbl=\"1\" equation=\"1\" />\n")
	b.WriteString("  <hh:refList>\n")

	fmt.Fprintf(&b, "    <hh:fontfaces itemCnt=\"%d\">\n", len(reg.FontFaces))
	for _, ff := range reg.FontFaces {
		writeFontFace(&b, ff)
	}
	b.WriteString("    </hh:fontfaces>\n")

	fmt.Fprintf(&b, "    <hh:borderFills itemCnt=\"%d\">\n", len(reg.BorderFills))
	for _, bf := range reg.BorderFills {
		writeBorderFill(&b, bf)
	}
	b.WriteString("    </hh:borderFills>\n")

	fmt.Fprintf(&b, "    <hh:charProperties itemCnt=\"%d\">\n", len(reg.CharPrs))
	for _, cp := range reg.CharPrs {
		writeCharPr(&b, cp)
	}
	b.WriteString("    </hh:charProperties>\n")

	fmt.Fprintf(&b, "    <hh:paraProperties itemCnt=\"%d\">\n", len(reg.ParaPrs))
	for _, pp := range reg.ParaPrs {
		writeParaPr(&b, pp)
	}
	b.WriteString("    </hh:paraProperties>\n")

	b.WriteString("    <hh:tabProperties itemCnt=\"2\">\n")
	b.WriteString("      <hh:tabPr id=\"0\" autoTabLeft=\"0\" autoTabRight=\"0\" />\n")
	b.WriteString("      <hh:tabPr id=\"1\" autoTabLeft=\"1\" autoTabRight=\"0\" />\n")
	b.WriteString("    </hh:tabProperties>\n")

	fmt.Fprintf(&b, "    <hh:numberings itemCnt=\"%d\">\n", len(reg.Numberings))
	for _, n := range reg.Numberings {
		writeNumbering(&b, n)
	}
	b.WriteString("    </hh:numberings>\n")

	fmt.Fprintf(&b, "    <hh:bullets itemCnt=\"%d\">\n", len(reg.Bullets))
	for _, bl := range reg.Bullets {
		writeBullet(&b, bl)
	}
	b.WriteString("    </hh:bullets>\n")

	b.WriteString("  </hh:refList>\n")

	fmt.Fprintf(&b, "  <hh:styles itemCnt=\"%d\">\n", len(reg.Styles))
	for _, s := range reg.Styles {
		writeStyle(&b, s)
	}
	b.WriteString("  </hh:styles>\n")

	b.WriteString("</hh:head>")
	return b.String()
}
