package hwpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRegistryDefaults(t *testing.T) {
	reg, err := BuildRegistry(StyleConfig{})
	require.NoError(t, err)

	assert.Len(t, reg.CharPrs, charPrCount)
	assert.Len(t, reg.ParaPrs, paraPrCount)
	assert.Len(t, reg.Styles, styleCount)
	assert.Len(t, reg.BorderFills, borderFillCount)
	assert.Len(t, reg.FontFaces, 7)
	assert.Len(t, reg.Numberings, 1)
	assert.Len(t, reg.Bullets, 1)
}

func TestRegistryIDNumberingBases(t *testing.T) {
	reg, err := BuildRegistry(StyleConfig{})
	require.NoError(t, err)

	// Border fills are 1-based and sequential.
	for i, bf := range reg.BorderFills {
		assert.Equal(t, i+1, bf.ID)
	}
	// Every other record kind is 0-based and sequential.
	for i, cp := range reg.CharPrs {
		assert.Equal(t, i, cp.ID)
	}
	for i, pp := range reg.ParaPrs {
		assert.Equal(t, i, pp.ID)
	}
	for i, s := range reg.Styles {
		assert.Equal(t, i, s.ID)
	}
}

func TestBuildRegistryDeterministic(t *testing.T) {
	a, err := BuildRegistry(StyleConfig{FontBody: "맑은 고딕"})
	require.NoError(t, err)
	b, err := BuildRegistry(StyleConfig{FontBody: "맑은 고딕"})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildRegistryRejectsBadConfig(t *testing.T) {
	_, err := BuildRegistry(StyleConfig{FontSizeBody: 50})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestBuildRegistryPartialOverride(t *testing.T) {
	reg, err := BuildRegistry(StyleConfig{FontSizeBody: 1200})
	require.NoError(t, err)

	// Body-derived records pick up the override.
	assert.Equal(t, 1200, reg.CharPrs[CharPrBody].Height)
	assert.Equal(t, 1200, reg.CharPrs[CharPrBold].Height)
	assert.Equal(t, 1200, reg.CharPrs[CharPrLink].Height)
	// Table records keep their own default, not the body size.
	assert.Equal(t, 900, reg.CharPrs[CharPrTableBody].Height)
	assert.Equal(t, 900, reg.CharPrs[CharPrTableHeader].Height)
}

func TestHeadingMapping(t *testing.T) {
	tests := []struct {
		level  int
		charPr int
		paraPr int
		style  int
	}{
		{1, CharPrH1, ParaPrH1, StyleH1},
		{2, CharPrH2, ParaPrH2, StyleH2},
		{3, CharPrH3, ParaPrH3, StyleH3},
		{4, CharPrH4, ParaPrH4, StyleH4},
		{5, CharPrH5, ParaPrH5, StyleH5},
		{6, CharPrH6, ParaPrH6, StyleH6},
	}
	for _, tt := range tests {
		m := headingMap[tt.level]
		assert.Equal(t, tt.charPr, m.charPr, "level %d charPr", tt.level)
		assert.Equal(t, tt.paraPr, m.paraPr, "level %d paraPr", tt.level)
		assert.Equal(t, tt.style, m.style, "level %d style", tt.level)
	}
}

func TestCharPrFontReferences(t *testing.T) {
	reg, err := BuildRegistry(StyleConfig{})
	require.NoError(t, err)

	// Code records point at the code font, everything else at the body
	// font.
	assert.Equal(t, 1, reg.CharPrs[CharPrInlineCode].FontRef.Hangul)
	assert.Equal(t, 1, reg.CharPrs[CharPrCodeBlock].FontRef.Hangul)
	assert.Equal(t, 0, reg.CharPrs[CharPrBody].FontRef.Hangul)
	assert.Equal(t, 0, reg.CharPrs[CharPrTableBody].FontRef.Hangul)
}

func TestBorderFillRoles(t *testing.T) {
	reg, err := BuildRegistry(StyleConfig{})
	require.NoError(t, err)

	header := reg.BorderFills[BorderFillTableHeader-1]
	assert.Equal(t, "SOLID", header.LeftType)
	assert.Equal(t, "#4472C4", header.FillColor)

	hr := reg.BorderFills[BorderFillHR-1]
	assert.Equal(t, "NONE", hr.TopType)
	assert.Equal(t, "SOLID", hr.BottomType)

	quote := reg.BorderFills[BorderFillBlockquote-1]
	assert.Equal(t, "SOLID", quote.LeftType)
	assert.Equal(t, "NONE", quote.RightType)
}
