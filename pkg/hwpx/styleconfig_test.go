package hwpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStyleConfig(t *testing.T) {
	cfg := DefaultStyleConfig()
	assert.Equal(t, "나눔고딕", cfg.FontBody)
	assert.Equal(t, "나눔고딕코딩", cfg.FontCode)
	assert.Equal(t, 1000, cfg.FontSizeBody)
	assert.Equal(t, 2200, cfg.FontSizeH1)
	assert.Equal(t, 900, cfg.FontSizeCode)
	assert.Equal(t, "#323E4F", cfg.ColorHeading)
	assert.Equal(t, 160, cfg.LineSpacing)
	assert.Equal(t, 130, cfg.LineSpacingCode)
}

func TestStyleConfigDefaultsApplied(t *testing.T) {
	cfg := NewStyleConfigWithDefaults(StyleConfig{
		FontBody:     "맑은 고딕",
		FontSizeBody: 1100,
	})

	assert.Equal(t, "맑은 고딕", cfg.FontBody)
	assert.Equal(t, 1100, cfg.FontSizeBody)
	// Unset fields fall back.
	assert.Equal(t, "나눔고딕코딩", cfg.FontCode)
	assert.Equal(t, 2200, cfg.FontSizeH1)
	assert.Equal(t, "#0000FF", cfg.ColorLink)
	assert.Equal(t, 160, cfg.LineSpacing)
}

func TestStyleConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*StyleConfig)
		wantField string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *StyleConfig) {},
		},
		{
			name:      "font size too small",
			mutate:    func(c *StyleConfig) { c.FontSizeBody = 50 },
			wantField: "FontSizeBody",
		},
		{
			name:      "font size too large",
			mutate:    func(c *StyleConfig) { c.FontSizeH3 = 50000 },
			wantField: "FontSizeH3",
		},
		{
			name:      "bad hex color",
			mutate:    func(c *StyleConfig) { c.ColorHeading = "red" },
			wantField: "ColorHeading",
		},
		{
			name:      "short hex color",
			mutate:    func(c *StyleConfig) { c.ColorLink = "#FFF" },
			wantField: "ColorLink",
		},
		{
			name:      "line spacing out of range",
			mutate:    func(c *StyleConfig) { c.LineSpacing = 20 },
			wantField: "LineSpacing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultStyleConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}
