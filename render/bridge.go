package render

import "github.com/gdamore/tcell/v2"

// RGBToTcell converts RGB to a tcell color for the given mode
func RGBToTcell(rgb RGB, mode ColorMode) tcell.Color {
	if mode == ColorMode256 {
		return tcell.PaletteColor(int(RGBTo256(rgb)))
	}
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// Style builds a foreground/background style
func Style(fg, bg RGB, mode ColorMode) tcell.Style {
	return tcell.StyleDefault.Foreground(RGBToTcell(fg, mode)).Background(RGBToTcell(bg, mode))
}
