package hwpx

import "regexp"

// StyleConfig contains the customizable style settings for a document.
// Every field is optional: zero values fall back to the documented
// defaults when the registry is built. Font sizes are in HWPUNIT
// (1000 = 10pt), colors are "#RRGGBB" hex strings, and line spacing is a
// percentage (160 = 160%).
type StyleConfig struct {
	// Fonts
	FontBody string
	FontCode string

	// Font sizes (HWPUNIT)
	FontSizeBody  int
	FontSizeH1    int
	FontSizeH2    int
	FontSizeH3    int
	FontSizeH4    int
	FontSizeH5    int
	FontSizeH6    int
	FontSizeCode  int
	FontSizeTable int

	// Colors
	ColorBody            string
	ColorHeading         string
	ColorCodeText        string
	ColorCodeBG          string
	ColorCodeBlockText   string
	ColorCodeBlockBG     string
	ColorTableHeaderText string
	ColorTableHeaderBG   string
	ColorLink            string

	// Line spacing (percent)
	LineSpacing      int
	LineSpacingCode  int
	LineSpacingTable int
}

// DefaultStyleConfig returns the default style configuration.
func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		FontBody:             defaultFontBody,
		FontCode:             defaultFontCode,
		FontSizeBody:         defaultFontSizeBody,
		FontSizeH1:           defaultFontSizeH1,
		FontSizeH2:           defaultFontSizeH2,
		FontSizeH3:           defaultFontSizeH3,
		FontSizeH4:           defaultFontSizeH4,
		FontSizeH5:           defaultFontSizeH5,
		FontSizeH6:           defaultFontSizeH6,
		FontSizeCode:         defaultFontSizeCode,
		FontSizeTable:        defaultFontSizeTable,
		ColorBody:            colorBlack,
		ColorHeading:         colorHeading,
		ColorCodeText:        colorCodeText,
		ColorCodeBG:          colorCodeBG,
		ColorCodeBlockText:   colorCodeBlockText,
		ColorCodeBlockBG:     colorCodeBlockBG,
		ColorTableHeaderText: colorTableHeaderText,
		ColorTableHeaderBG:   colorTableHeaderBG,
		ColorLink:            colorLink,
		LineSpacing:          defaultLineSpacing,
		LineSpacingCode:      defaultLineSpacingCode,
		LineSpacingTable:     defaultLineSpacingTable,
	}
}

// NewStyleConfigWithDefaults returns a copy of overrides with defaults
// applied to every unset field. The result is complete: no field is left
// at its zero value.
func NewStyleConfigWithDefaults(overrides StyleConfig) StyleConfig {
	defaults := DefaultStyleConfig()
	cfg := overrides

	if cfg.FontBody == "" {
		cfg.FontBody = defaults.FontBody
	}
	if cfg.FontCode == "" {
		cfg.FontCode = defaults.FontCode
	}
	if cfg.FontSizeBody == 0 {
		cfg.FontSizeBody = defaults.FontSizeBody
	}
	if cfg.FontSizeH1 == 0 {
		cfg.FontSizeH1 = defaults.FontSizeH1
	}
	if cfg.FontSizeH2 == 0 {
		cfg.FontSizeH2 = defaults.FontSizeH2
	}
	if cfg.FontSizeH3 == 0 {
		cfg.FontSizeH3 = defaults.FontSizeH3
	}
	if cfg.FontSizeH4 == 0 {
		cfg.FontSizeH4 = defaults.FontSizeH4
	}
	if cfg.FontSizeH5 == 0 {
		cfg.FontSizeH5 = defaults.FontSizeH5
	}
	if cfg.FontSizeH6 == 0 {
		cfg.FontSizeH6 = defaults.FontSizeH6
	}
	if cfg.FontSizeCode == 0 {
		cfg.FontSizeCode = defaults.FontSizeCode
	}
	if cfg.FontSizeTable == 0 {
		cfg.FontSizeTable = defaults.FontSizeTable
	}
	if cfg.ColorBody == "" {
		cfg.ColorBody = defaults.ColorBody
	}
	if cfg.ColorHeading == "" {
		cfg.ColorHeading = defaults.ColorHeading
	}
	if cfg.ColorCodeText == "" {
		cfg.ColorCodeText = defaults.ColorCodeText
	}
	if cfg.ColorCodeBG == "" {
		cfg.ColorCodeBG = defaults.ColorCodeBG
	}
	if cfg.ColorCodeBlockText == "" {
		cfg.ColorCodeBlockText = defaults.ColorCodeBlockText
	}
	if cfg.ColorCodeBlockBG == "" {
		cfg.ColorCodeBlockBG = defaults.ColorCodeBlockBG
	}
	if cfg.ColorTableHeaderText == "" {
		cfg.ColorTableHeaderText = defaults.ColorTableHeaderText
	}
	if cfg.ColorTableHeaderBG == "" {
		cfg.ColorTableHeaderBG = defaults.ColorTableHeaderBG
	}
	if cfg.ColorLink == "" {
		cfg.ColorLink = defaults.ColorLink
	}
	if cfg.LineSpacing == 0 {
		cfg.LineSpacing = defaults.LineSpacing
	}
	if cfg.LineSpacingCode == 0 {
		cfg.LineSpacingCode = defaults.LineSpacingCode
	}
	if cfg.LineSpacingTable == 0 {
		cfg.LineSpacingTable = defaults.LineSpacingTable
	}

	return cfg
}

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Documented ranges: font sizes 100-40000 HWPUNIT (1pt-400pt), line
// spacing 50-400 percent.
const (
	minFontSize    = 100
	maxFontSize    = 40000
	minLineSpacing = 50
	maxLineSpacing = 400
)

// Validate checks that every configured value is inside its documented
// range. It assumes defaults have already been applied.
func (c StyleConfig) Validate() error {
	sizes := []struct {
		field string
		value int
	}{
		{"FontSizeBody", c.FontSizeBody},
		{"FontSizeH1", c.FontSizeH1},
		{"FontSizeH2", c.FontSizeH2},
		{"FontSizeH3", c.FontSizeH3},
		{"FontSizeH4", c.FontSizeH4},
		{"FontSizeH5", c.FontSizeH5},
		{"FontSizeH6", c.FontSizeH6},
		{"FontSizeCode", c.FontSizeCode},
		{"FontSizeTable", c.FontSizeTable},
	}
	for _, s := range sizes {
		if s.value < minFontSize || s.value > maxFontSize {
			return NewValidationError(s.field, "font size out of range 100-40000 HWPUNIT")
		}
	}

	colors := []struct {
		field string
		value string
	}{
		{"ColorBody", c.ColorBody},
		{"ColorHeading", c.ColorHeading},
		{"ColorCodeText", c.ColorCodeText},
		{"ColorCodeBG", c.ColorCodeBG},
		{"ColorCodeBlockText", c.ColorCodeBlockText},
		{"ColorCodeBlockBG", c.ColorCodeBlockBG},
		{"ColorTableHeaderText", c.ColorTableHeaderText},
		{"ColorTableHeaderBG", c.ColorTableHeaderBG},
		{"ColorLink", c.ColorLink},
	}
	for _, col := range colors {
		if !hexColorPattern.MatchString(col.value) {
			return NewValidationError(col.field, "color must be a #RRGGBB hex string")
		}
	}

	spacings := []struct {
		field string
		value int
	}{
		{"LineSpacing", c.LineSpacing},
		{"LineSpacingCode", c.LineSpacingCode},
		{"LineSpacingTable", c.LineSpacingTable},
	}
	for _, sp := range spacings {
		if sp.value < minLineSpacing || sp.value > maxLineSpacing {
			return NewValidationError(sp.field, "line spacing out of range 50-400 percent")
		}
	}

	return nil
}
