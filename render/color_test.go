package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestRGB_Blend(t *testing.T) {
	black := RGB{0, 0, 0}
	white := RGB{255, 255, 255}
	assert.Equal(t, black, black.Blend(white, 0))
	assert.Equal(t, white, black.Blend(white, 1))
	assert.Equal(t, RGB{128, 128, 128}, black.Blend(white, 0.5))
}

func TestFade(t *testing.T) {
	from := RGB{8, 9, 20}
	to := RGB{240, 236, 230}
	assert.Equal(t, from, Fade(from, to, 0))
	assert.Equal(t, to, Fade(from, to, 1))

	mid := Fade(from, to, 0.5)
	assert.Greater(t, mid.R, from.R)
	assert.Less(t, mid.R, to.R)
}

func TestRGBTo256(t *testing.T) {
	assert.Equal(t, uint8(16), RGBTo256(RGB{0, 0, 0}))
	assert.Equal(t, uint8(231), RGBTo256(RGB{255, 255, 255}))
	assert.Equal(t, uint8(196), RGBTo256(RGB{255, 0, 0}))
	// Mid gray uses the grayscale ramp
	assert.GreaterOrEqual(t, RGBTo256(RGB{128, 128, 128}), uint8(232))
}

func TestRGBToTcell(t *testing.T) {
	assert.Equal(t, tcell.NewRGBColor(1, 2, 3), RGBToTcell(RGB{1, 2, 3}, ColorModeTrueColor))
	assert.Equal(t, tcell.PaletteColor(196), RGBToTcell(RGB{255, 0, 0}, ColorMode256))
}

func TestParseColorMode(t *testing.T) {
	assert.Equal(t, ColorMode256, ParseColorMode("256"))
	assert.Equal(t, ColorModeTrueColor, ParseColorMode("truecolor"))

	t.Setenv("COLORTERM", "truecolor")
	assert.Equal(t, ColorModeTrueColor, ParseColorMode("auto"))
}

func TestCenterText(t *testing.T) {
	screen := newSimScreen(t, 11, 1)
	CenterText(screen, 0, "ДАТА", tcell.StyleDefault)

	r, _, _, _ := screen.GetContent(3, 0)
	assert.Equal(t, 'Д', r)
	r, _, _, _ = screen.GetContent(6, 0)
	assert.Equal(t, 'А', r)
	assert.Equal(t, 4, TextWidth("ДАТА"))
}

func TestCenterText_Truncates(t *testing.T) {
	screen := newSimScreen(t, 5, 1)
	CenterText(screen, 0, "ПРИГЛАСИТЬ", tcell.StyleDefault)
	r, _, _, _ := screen.GetContent(4, 0)
	assert.Equal(t, '…', r)
}
