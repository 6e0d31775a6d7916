package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawText writes s starting at cell (x, y), advancing by each rune's display width
// Returns the column after the last written rune
func DrawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= 0 && x+rw <= w {
			screen.SetContent(x, y, r, nil, style)
		}
		x += rw
	}
	return x
}

// CenterText writes s centred on row y, truncated to the screen width
func CenterText(screen tcell.Screen, y int, s string, style tcell.Style) {
	w, _ := screen.Size()
	s = runewidth.Truncate(s, w, "…")
	x := (w - runewidth.StringWidth(s)) / 2
	DrawText(screen, x, y, s, style)
}

// TextWidth returns the display width of s in cells
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// FillRow paints row y with spaces in style
func FillRow(screen tcell.Screen, y int, style tcell.Style) {
	w, _ := screen.Size()
	for x := 0; x < w; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
