package hwpx

import "math"

// OWPML namespace URIs. Hancom Office is sensitive to the exact prefix
// strings, so serialization assigns prefixes by convention (hh/hp/hs/hc)
// instead of deriving them generically.
const (
	nsHH  = "http://www.hancom.co.kr/hwpml/2011/head"
	nsHP  = "http://www.hancom.co.kr/hwpml/2011/paragraph"
	nsHS  = "http://www.hancom.co.kr/hwpml/2011/section"
	nsHC  = "http://www.hancom.co.kr/hwpml/2011/core"
	nsHV  = "http://www.hancom.co.kr/hwpml/2011/version"
	nsHA  = "http://www.hancom.co.kr/hwpml/2011/app"
	nsOCF = "urn:oasis:names:tc:opendocument:xmlns:container"
	nsODF = "urn:oasis:names:tc:opendocument:xmlns:manifest:1.0"
	nsRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	nsOPF = "http://www.idpf.org/2007/opf/"
)

// Unit conversions. 1 pt = 100 HWPUNIT, 1 inch = 7200 HWPUNIT,
// 1 mm = 283.46 HWPUNIT.
const (
	HWPUnitPerPt   = 100
	HWPUnitPerMM   = 283.46
	HWPUnitPerInch = 7200

	// Pixel dimensions of embedded images scale by this factor.
	hwpUnitPerPixel = 75
)

// PtToHWPUnit converts points to HWPUNIT.
func PtToHWPUnit(pt float64) int {
	return int(math.Round(pt * HWPUnitPerPt))
}

// MMToHWPUnit converts millimeters to HWPUNIT.
func MMToHWPUnit(mm float64) int {
	return int(math.Round(mm * HWPUnitPerMM))
}

// HWPUnitToPt converts HWPUNIT to points.
func HWPUnitToPt(unit int) float64 {
	return float64(unit) / HWPUnitPerPt
}

// Default page geometry (A4 portrait) in HWPUNIT.
const (
	defaultPageWidth  = 59530 // 210mm
	defaultPageHeight = 84190 // 297mm

	defaultMarginLeft   = 8504
	defaultMarginRight  = 8504
	defaultMarginTop    = 5668
	defaultMarginBottom = 4252
	defaultMarginHeader = 4252
	defaultMarginFooter = 4252
)

// Default font sizes in HWPUNIT (1000 = 10pt).
const (
	defaultFontSizeBody  = 1000
	defaultFontSizeH1    = 2200
	defaultFontSizeH2    = 1800
	defaultFontSizeH3    = 1400
	defaultFontSizeH4    = 1200
	defaultFontSizeH5    = 1100
	defaultFontSizeH6    = 1000
	defaultFontSizeCode  = 900
	defaultFontSizeTable = 900
)

// Default colors.
const (
	colorBlack           = "#000000"
	colorHeading         = "#323E4F"
	colorCodeText        = "#E74C3C"
	colorCodeBG          = "#F5F5F5"
	colorCodeBlockText   = "#333333"
	colorCodeBlockBG     = "#F8F8F8"
	colorTableHeaderText = "#FFFFFF"
	colorTableHeaderBG   = "#4472C4"
	colorLink            = "#0000FF"
)

// Default font names.
const (
	defaultFontBody = "나눔고딕"
	defaultFontCode = "나눔고딕코딩"
)

// Default line spacing percentages.
const (
	defaultLineSpacing      = 160
	defaultLineSpacingCode  = 130
	defaultLineSpacingTable = 130
)

// Character property IDs (0-based).
const (
	CharPrBody = iota
	CharPrBold
	CharPrItalic
	CharPrBoldItalic
	CharPrH1
	CharPrH2
	CharPrH3
	CharPrH4
	CharPrH5
	CharPrH6
	CharPrInlineCode
	CharPrCodeBlock
	CharPrTableHeader
	CharPrTableBody
	CharPrLink
	CharPrStrikethrough
	CharPrSuperscript
	CharPrSubscript

	charPrCount
)

// Paragraph property IDs (0-based).
const (
	ParaPrBody = iota
	ParaPrH1
	ParaPrH2
	ParaPrH3
	ParaPrH4
	ParaPrH5
	ParaPrH6
	ParaPrCode
	ParaPrBullet
	ParaPrTable
	ParaPrOrdered
	ParaPrBulletL2
	ParaPrBulletL3
	ParaPrOrderedL2
	ParaPrOrderedL3
	ParaPrHR
	ParaPrBlockquote

	paraPrCount
)

// Style IDs (0-based). Style n is heading level n; style 0 is body.
const (
	StyleBody = iota
	StyleH1
	StyleH2
	StyleH3
	StyleH4
	StyleH5
	StyleH6

	styleCount
)

// Border fill IDs. These are 1-based: the consumer expects borderFill
// numbering to start at 1 while every other property table starts at 0.
// Do not "fix" this asymmetry.
const (
	BorderFillNone = iota + 1
	BorderFillDefault
	BorderFillTable
	BorderFillTableHeader
	BorderFillCodeBlock
	BorderFillInlineCode
	BorderFillHR
	BorderFillBlockquote

	borderFillEnd
)

const borderFillCount = borderFillEnd - 1

// MaxListLevel is the deepest list nesting level. Deeper input folds to
// this level rather than being rejected.
const MaxListLevel = 2

// headingMap maps heading level 1..6 to the (charPr, paraPr, style)
// triple. Validated for completeness in validateMappings.
var headingMap = [7]struct{ charPr, paraPr, style int }{
	{}, // level 0 unused
	{CharPrH1, ParaPrH1, StyleH1},
	{CharPrH2, ParaPrH2, StyleH2},
	{CharPrH3, ParaPrH3, StyleH3},
	{CharPrH4, ParaPrH4, StyleH4},
	{CharPrH5, ParaPrH5, StyleH5},
	{CharPrH6, ParaPrH6, StyleH6},
}

// listParaPrMap maps (ordered, clamped level 0..2) to a paragraph
// property ID.
var listParaPrMap = map[bool][MaxListLevel + 1]int{
	false: {ParaPrBullet, ParaPrBulletL2, ParaPrBulletL3},
	true:  {ParaPrOrdered, ParaPrOrderedL2, ParaPrOrderedL3},
}

func validateMappings() {
	for level := 1; level <= 6; level++ {
		m := headingMap[level]
		if m.charPr != CharPrBody+3+level || m.paraPr != level || m.style != level {
			panic(newModelError("heading map", "incomplete heading mapping table"))
		}
	}
	for _, ordered := range []bool{false, true} {
		levels, ok := listParaPrMap[ordered]
		if !ok {
			panic(newModelError("list map", "missing list kind"))
		}
		for _, id := range levels {
			if id < 0 || id >= paraPrCount {
				panic(newModelError("list map", "paragraph property out of range"))
			}
		}
	}
}

func init() {
	validateMappings()
}
