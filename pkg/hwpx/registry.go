package hwpx

// Property record types. Records are created once at registry build and
// never mutated afterwards; customization rebuilds the whole registry so
// a partially updated record set can never be observed.

// FontRef selects a font ID per language group.
type FontRef struct {
	Hangul   int
	Latin    int
	Hanja    int
	Japanese int
	Other    int
	Symbol   int
	User     int
}

// fontRefAll returns a FontRef pointing every language group at id.
func fontRefAll(id int) FontRef {
	return FontRef{id, id, id, id, id, id, id}
}

// Font is one typeface entry inside a font face group.
type Font struct {
	ID   int
	Face string
	Type string
}

// FontFace groups the fonts registered for one language.
type FontFace struct {
	Lang  string
	Fonts []Font
}

// CharPr is a character formatting record (hh:charPr).
type CharPr struct {
	ID              int
	Height          int
	TextColor       string
	ShadeColor      string
	BorderFillIDRef int
	FontRef         FontRef
	Bold            bool
	Italic          bool
	UnderlineType   string
	UnderlineColor  string
	Strikeout       string
	Offset          int // vertical offset percent; >0 superscript, <0 subscript
}

// ParaPr is a paragraph formatting record (hh:paraPr).
type ParaPr struct {
	ID               int
	TabPrIDRef       int
	AlignHorizontal  string
	HeadingType      string
	HeadingIDRef     int
	HeadingLevel     int
	KeepWithNext     int
	KeepLines        int
	MarginIntent     int
	MarginLeft       int
	MarginRight      int
	MarginPrev       int
	MarginNext       int
	LineSpacingType  string
	LineSpacingValue int
	BorderFillIDRef  int
}

// StyleDef is a named style record (hh:style).
type StyleDef struct {
	ID             int
	Type           string
	Name           string
	EngName        string
	ParaPrIDRef    int
	CharPrIDRef    int
	NextStyleIDRef int
	LangID         int
}

// BorderFill is a border and fill record (hh:borderFill). IDs start at 1.
type BorderFill struct {
	ID          int
	LeftType    string
	LeftWidth   string
	RightType   string
	RightWidth  string
	TopType     string
	TopWidth    string
	BottomType  string
	BottomWidth string
	BorderColor string
	FillColor   string // "none" means transparent
}

// ParaHead is one numbering or bullet level definition (hh:paraHead).
type ParaHead struct {
	Level          int
	NumFormat      string
	TextOffsetType string
	TextOffset     int
	AutoIndent     int
	CharPrIDRef    int
}

// Numbering is an ordered-list numbering record (hh:numbering).
type Numbering struct {
	ID    int
	Start int
	Heads []ParaHead
}

// Bullet is a bullet-list record (hh:bullet).
type Bullet struct {
	ID          int
	Char        string
	CheckedChar string
	Heads       []ParaHead
}

// Registry is the complete, internally consistent set of property
// records for one document build. Once built it is immutable and safe to
// share read-only across concurrent builds.
type Registry struct {
	FontFaces   []FontFace
	BorderFills []BorderFill
	CharPrs     []CharPr
	ParaPrs     []ParaPr
	Styles      []StyleDef
	Numberings  []Numbering
	Bullets     []Bullet
}

// BuildRegistry derives a registry from a style configuration. Unset
// fields fall back to the documented defaults; values outside documented
// ranges are rejected with a ValidationError naming the field. Identical
// configuration always yields identical records.
func BuildRegistry(overrides StyleConfig) (*Registry, error) {
	cfg := NewStyleConfigWithDefaults(overrides)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reg := &Registry{
		FontFaces:   buildFontFaces(cfg),
		BorderFills: buildBorderFills(cfg),
		CharPrs:     buildCharPrs(cfg),
		ParaPrs:     buildParaPrs(cfg),
		Styles:      buildStyles(),
		Numberings:  buildNumberings(),
		Bullets:     buildBullets(),
	}
	if err := reg.check(); err != nil {
		return nil, err
	}
	return reg, nil
}

var fontFaceLangs = []string{"HANGUL", "LATIN", "HANJA", "JAPANESE", "OTHER", "SYMBOL", "USER"}

func buildFontFaces(cfg StyleConfig) []FontFace {
	faces := make([]FontFace, 0, len(fontFaceLangs))
	for _, lang := range fontFaceLangs {
		faces = append(faces, FontFace{
			Lang: lang,
			Fonts: []Font{
				{ID: 0, Face: cfg.FontBody, Type: "TTF"},
				{ID: 1, Face: cfg.FontCode, Type: "TTF"},
			},
		})
	}
	return faces
}

func plainBorderFill(id int, fill string) BorderFill {
	return BorderFill{
		ID:          id,
		LeftType:    "NONE",
		LeftWidth:   "0.1 mm",
		RightType:   "NONE",
		RightWidth:  "0.1 mm",
		TopType:     "NONE",
		TopWidth:    "0.1 mm",
		BottomType:  "NONE",
		BottomWidth: "0.1 mm",
		BorderColor: colorBlack,
		FillColor:   fill,
	}
}

func solidBorderFill(id int, fill string) BorderFill {
	bf := plainBorderFill(id, fill)
	bf.LeftType, bf.LeftWidth = "SOLID", "0.12 mm"
	bf.RightType, bf.RightWidth = "SOLID", "0.12 mm"
	bf.TopType, bf.TopWidth = "SOLID", "0.12 mm"
	bf.BottomType, bf.BottomWidth = "SOLID", "0.12 mm"
	return bf
}

func buildBorderFills(cfg StyleConfig) []BorderFill {
	hr := plainBorderFill(BorderFillHR, "none")
	hr.BottomType, hr.BottomWidth = "SOLID", "0.12 mm"
	hr.BorderColor = "#BFBFBF"

	quote := plainBorderFill(BorderFillBlockquote, "none")
	quote.LeftType, quote.LeftWidth = "SOLID", "0.5 mm"
	quote.BorderColor = "#BFBFBF"

	return []BorderFill{
		plainBorderFill(BorderFillNone, "none"),
		plainBorderFill(BorderFillDefault, "none"),
		solidBorderFill(BorderFillTable, "none"),
		solidBorderFill(BorderFillTableHeader, cfg.ColorTableHeaderBG),
		plainBorderFill(BorderFillCodeBlock, cfg.ColorCodeBlockBG),
		plainBorderFill(BorderFillInlineCode, cfg.ColorCodeBG),
		hr,
		quote,
	}
}

func buildCharPrs(cfg StyleConfig) []CharPr {
	bodyFont := fontRefAll(0)
	codeFont := fontRefAll(1)

	base := func(id, height int, color string) CharPr {
		return CharPr{
			ID:              id,
			Height:          height,
			TextColor:       color,
			ShadeColor:      "none",
			BorderFillIDRef: BorderFillDefault,
			FontRef:         bodyFont,
			UnderlineType:   "NONE",
			UnderlineColor:  colorBlack,
			Strikeout:       "NONE",
		}
	}

	heading := func(id, height int) CharPr {
		cp := base(id, height, cfg.ColorHeading)
		cp.Bold = true
		return cp
	}

	body := base(CharPrBody, cfg.FontSizeBody, cfg.ColorBody)

	bold := base(CharPrBold, cfg.FontSizeBody, cfg.ColorBody)
	bold.Bold = true

	italic := base(CharPrItalic, cfg.FontSizeBody, cfg.ColorBody)
	italic.Italic = true

	boldItalic := base(CharPrBoldItalic, cfg.FontSizeBody, cfg.ColorBody)
	boldItalic.Bold = true
	boldItalic.Italic = true

	inlineCode := base(CharPrInlineCode, cfg.FontSizeCode, cfg.ColorCodeText)
	inlineCode.FontRef = codeFont
	inlineCode.BorderFillIDRef = BorderFillInlineCode

	codeBlock := base(CharPrCodeBlock, cfg.FontSizeCode, cfg.ColorCodeBlockText)
	codeBlock.FontRef = codeFont

	tableHeader := base(CharPrTableHeader, cfg.FontSizeTable, cfg.ColorTableHeaderText)
	tableHeader.Bold = true

	tableBody := base(CharPrTableBody, cfg.FontSizeTable, cfg.ColorBody)

	link := base(CharPrLink, cfg.FontSizeBody, cfg.ColorLink)
	link.UnderlineType = "BOTTOM"
	link.UnderlineColor = cfg.ColorLink

	strike := base(CharPrStrikethrough, cfg.FontSizeBody, cfg.ColorBody)
	strike.Strikeout = "CONTINUOUS"

	superscript := base(CharPrSuperscript, cfg.FontSizeBody, cfg.ColorBody)
	superscript.Offset = 30

	subscript := base(CharPrSubscript, cfg.FontSizeBody, cfg.ColorBody)
	subscript.Offset = -30

	return []CharPr{
		body,
		bold,
		italic,
		boldItalic,
		heading(CharPrH1, cfg.FontSizeH1),
		heading(CharPrH2, cfg.FontSizeH2),
		heading(CharPrH3, cfg.FontSizeH3),
		heading(CharPrH4, cfg.FontSizeH4),
		heading(CharPrH5, cfg.FontSizeH5),
		heading(CharPrH6, cfg.FontSizeH6),
		inlineCode,
		codeBlock,
		tableHeader,
		tableBody,
		link,
		strike,
		superscript,
		subscript,
	}
}

func buildParaPrs(cfg StyleConfig) []ParaPr {
	base := func(id int) ParaPr {
		return ParaPr{
			ID:               id,
			TabPrIDRef:       1,
			AlignHorizontal:  "LEFT",
			HeadingType:      "NONE",
			LineSpacingType:  "PERCENT",
			LineSpacingValue: cfg.LineSpacing,
			BorderFillIDRef:  BorderFillDefault,
		}
	}

	heading := func(id, level, marginPrev, marginNext int) ParaPr {
		pp := base(id)
		pp.HeadingType = "OUTLINE"
		pp.HeadingLevel = level
		pp.KeepWithNext = 1
		pp.KeepLines = 1
		pp.MarginPrev = marginPrev
		pp.MarginNext = marginNext
		return pp
	}

	list := func(id int, headingType string, level int) ParaPr {
		pp := base(id)
		pp.HeadingType = headingType
		pp.HeadingIDRef = 1
		pp.HeadingLevel = level
		pp.MarginIntent = 800
		pp.MarginLeft = 800 * (level + 1)
		pp.MarginNext = 200
		return pp
	}

	body := base(ParaPrBody)
	body.MarginNext = 500

	code := base(ParaPrCode)
	code.MarginLeft = 400
	code.MarginRight = 400
	code.LineSpacingValue = cfg.LineSpacingCode
	code.BorderFillIDRef = BorderFillCodeBlock

	table := base(ParaPrTable)
	table.AlignHorizontal = "CENTER"
	table.LineSpacingValue = cfg.LineSpacingTable

	hr := base(ParaPrHR)
	hr.MarginPrev = 400
	hr.MarginNext = 400
	hr.BorderFillIDRef = BorderFillHR

	quote := base(ParaPrBlockquote)
	quote.MarginLeft = 800
	quote.MarginPrev = 200
	quote.MarginNext = 200
	quote.BorderFillIDRef = BorderFillBlockquote

	return []ParaPr{
		body,
		heading(ParaPrH1, 0, 2400, 400),
		heading(ParaPrH2, 1, 1800, 400),
		heading(ParaPrH3, 2, 1200, 300),
		heading(ParaPrH4, 3, 1000, 200),
		heading(ParaPrH5, 4, 800, 200),
		heading(ParaPrH6, 5, 600, 200),
		code,
		list(ParaPrBullet, "BULLET", 0),
		table,
		list(ParaPrOrdered, "NUMBER", 0),
		list(ParaPrBulletL2, "BULLET", 1),
		list(ParaPrBulletL3, "BULLET", 2),
		list(ParaPrOrderedL2, "NUMBER", 1),
		list(ParaPrOrderedL3, "NUMBER", 2),
		hr,
		quote,
	}
}

func buildStyles() []StyleDef {
	style := func(id int, name, engName string, paraPr, charPr int) StyleDef {
		return StyleDef{
			ID:          id,
			Type:        "PARA",
			Name:        name,
			EngName:     engName,
			ParaPrIDRef: paraPr,
			CharPrIDRef: charPr,
			LangID:      1042,
		}
	}
	return []StyleDef{
		style(StyleBody, "본문", "Normal", ParaPrBody, CharPrBody),
		style(StyleH1, "제목 1", "Heading 1", ParaPrH1, CharPrH1),
		style(StyleH2, "제목 2", "Heading 2", ParaPrH2, CharPrH2),
		style(StyleH3, "제목 3", "Heading 3", ParaPrH3, CharPrH3),
		style(StyleH4, "제목 4", "Heading 4", ParaPrH4, CharPrH4),
		style(StyleH5, "제목 5", "Heading 5", ParaPrH5, CharPrH5),
		style(StyleH6, "제목 6", "Heading 6", ParaPrH6, CharPrH6),
	}
}

func levelHeads(numFormat string, textOffset, autoIndent, charPr int) []ParaHead {
	heads := make([]ParaHead, 0, 10)
	for level := 1; level <= 10; level++ {
		heads = append(heads, ParaHead{
			Level:          level,
			NumFormat:      numFormat,
			TextOffsetType: "PERCENT",
			TextOffset:     textOffset,
			AutoIndent:     autoIndent,
			CharPrIDRef:    charPr,
		})
	}
	return heads
}

func buildNumberings() []Numbering {
	return []Numbering{
		{ID: 1, Start: 0, Heads: levelHeads("DIGIT", 35, 0, 1)},
	}
}

func buildBullets() []Bullet {
	return []Bullet{
		{ID: 1, Char: "●", CheckedChar: "●", Heads: levelHeads("BULLET", 50, 1, 0)},
	}
}

// check verifies the registry's numbering bases: borderFill IDs are
// 1-based and sequential, everything else is 0-based and sequential.
func (r *Registry) check() error {
	for i, bf := range r.BorderFills {
		if bf.ID != i+1 {
			return newModelError("registry", "borderFill IDs must be sequential from 1, got %d at index %d", bf.ID, i)
		}
	}
	for i, cp := range r.CharPrs {
		if cp.ID != i {
			return newModelError("registry", "charPr IDs must be sequential from 0, got %d at index %d", cp.ID, i)
		}
	}
	for i, pp := range r.ParaPrs {
		if pp.ID != i {
			return newModelError("registry", "paraPr IDs must be sequential from 0, got %d at index %d", pp.ID, i)
		}
	}
	for i, s := range r.Styles {
		if s.ID != i {
			return newModelError("registry", "style IDs must be sequential from 0, got %d at index %d", s.ID, i)
		}
	}
	return nil
}

// HasCharPr reports whether a character property with this ID exists.
func (r *Registry) HasCharPr(id int) bool {
	return id >= 0 && id < len(r.CharPrs)
}

// HasParaPr reports whether a paragraph property with this ID exists.
func (r *Registry) HasParaPr(id int) bool {
	return id >= 0 && id < len(r.ParaPrs)
}

// HasStyle reports whether a style with this ID exists.
func (r *Registry) HasStyle(id int) bool {
	return id >= 0 && id < len(r.Styles)
}

// HasBorderFill reports whether a border fill with this ID exists.
// Border fill IDs are 1-based.
func (r *Registry) HasBorderFill(id int) bool {
	return id >= 1 && id <= len(r.BorderFills)
}
