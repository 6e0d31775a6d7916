package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Braille dot bit for (column, row) within a 2×4 cell
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const (
	brailleBase = 0x2800

	// dotThreshold is the coverage below which a dot stays dark
	dotThreshold = 0.12
)

type dot struct {
	col   RGB
	alpha float64
}

// DotCanvas is a braille sub-cell raster: every terminal cell holds 2×4 dots
// Coordinates are in dots; FillCircle and StrokeLine composite with source-over alpha
type DotCanvas struct {
	cols, rows int
	w, h       int
	dots       []dot

	// strokeMark[i] == stroke when dot i was painted by the current stroke
	strokeMark []uint32
	stroke     uint32
}

// NewDotCanvas creates a canvas covering cols×rows cells
func NewDotCanvas(cols, rows int) *DotCanvas {
	c := &DotCanvas{}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates for cols×rows cells and clears
func (c *DotCanvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.w, c.h = c.cols*2, c.rows*4
	if cap(c.dots) >= c.w*c.h {
		c.dots = c.dots[:c.w*c.h]
	} else {
		c.dots = make([]dot, c.w*c.h)
	}
	if cap(c.strokeMark) >= c.w*c.h {
		c.strokeMark = c.strokeMark[:c.w*c.h]
	} else {
		c.strokeMark = make([]uint32, c.w*c.h)
	}
	clear(c.strokeMark)
	c.stroke = 0
	c.Clear()
}

// Size returns the raster size in dots
func (c *DotCanvas) Size() (w, h int) {
	return c.w, c.h
}

// Cells returns the covered size in cells
func (c *DotCanvas) Cells() (cols, rows int) {
	return c.cols, c.rows
}

// Clear resets every dot to transparent
func (c *DotCanvas) Clear() {
	clear(c.dots)
}

// At returns the colour and coverage of dot (x, y)
func (c *DotCanvas) At(x, y int) (RGB, float64) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return RGBBlack, 0
	}
	d := c.dots[y*c.w+x]
	return d.col, d.alpha
}

func (c *DotCanvas) plot(x, y int, src RGB, a float64) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h || a <= 0 {
		return
	}
	d := &c.dots[y*c.w+x]
	out := a + d.alpha*(1-a)
	if out <= 0 {
		return
	}
	d.col = d.col.Blend(src, a/out)
	d.alpha = out
}

// FillCircle lights every dot whose centre lies within r of (x, y)
// A circle smaller than a dot still lights the dot it falls in
func (c *DotCanvas) FillCircle(x, y, r float64, col color.NRGBA) {
	src, a := FromNRGBA(col)
	if r < 0.5 {
		c.plot(int(math.Floor(x)), int(math.Floor(y)), src, a)
		return
	}

	x0 := max(int(math.Floor(x-r)), 0)
	x1 := min(int(math.Ceil(x+r)), c.w-1)
	y0 := max(int(math.Floor(y-r)), 0)
	y1 := min(int(math.Ceil(y+r)), c.h-1)
	r2 := r * r
	for py := y0; py <= y1; py++ {
		dy := float64(py) + 0.5 - y
		for px := x0; px <= x1; px++ {
			dx := float64(px) + 0.5 - x
			if dx*dx+dy*dy <= r2 {
				c.plot(px, py, src, a)
			}
		}
	}
}

// StrokeLine draws a segment of the given width, clipped to the raster
func (c *DotCanvas) StrokeLine(x0, y0, x1, y1, width float64, col color.NRGBA) {
	half := max(width/2, 0.5)
	ok, cx0, cy0, cx1, cy1 := clipSegment(x0, y0, x1, y1, -half, -half, float64(c.w)+half, float64(c.h)+half)
	if !ok {
		return
	}

	src, a := FromNRGBA(col)
	length := math.Hypot(cx1-cx0, cy1-cy0)
	steps := max(int(math.Ceil(length*2)), 1)

	// Each dot is painted at most once per stroke so overlapping samples don't accumulate
	c.stroke++
	if c.stroke == 0 {
		clear(c.strokeMark)
		c.stroke = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		sx := cx0 + (cx1-cx0)*t
		sy := cy0 + (cy1-cy0)*t
		c.stamp(sx, sy, half, src, a)
	}
}

func (c *DotCanvas) stamp(x, y, r float64, src RGB, a float64) {
	x0 := max(int(math.Floor(x-r)), 0)
	x1 := min(int(math.Ceil(x+r)), c.w-1)
	y0 := max(int(math.Floor(y-r)), 0)
	y1 := min(int(math.Ceil(y+r)), c.h-1)
	r2 := r * r
	for py := y0; py <= y1; py++ {
		dy := float64(py) + 0.5 - y
		for px := x0; px <= x1; px++ {
			dx := float64(px) + 0.5 - x
			if dx*dx+dy*dy > r2 {
				continue
			}
			idx := py*c.w + px
			if c.strokeMark[idx] == c.stroke {
				continue
			}
			c.strokeMark[idx] = c.stroke
			c.plot(px, py, src, a)
		}
	}
}

// clipSegment clips to the rectangle with Liang-Barsky; ok is false when nothing remains
func clipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (ok bool, ax, ay, bx, by float64) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return false, 0, 0, 0, 0
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false, 0, 0, 0, 0
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return false, 0, 0, 0, 0
			}
			t1 = min(t1, r)
		}
	}
	return true, x0 + dx*t0, y0 + dy*t0, x0 + dx*t1, y0 + dy*t1
}

// Cell returns the braille rune for cell (cx, cy) and its composite colour and coverage
// The rune is 0 when no dot passes the threshold
func (c *DotCanvas) Cell(cx, cy int) (rune, RGB, float64) {
	var bits rune
	var r, g, b, weight, peak float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 2; col++ {
			col0, a := c.At(cx*2+col, cy*4+row)
			if a < dotThreshold {
				continue
			}
			bits |= brailleBits[row][col]
			r += float64(col0.R) * a
			g += float64(col0.G) * a
			b += float64(col0.B) * a
			weight += a
			peak = max(peak, a)
		}
	}
	if bits == 0 {
		return 0, RGBBlack, 0
	}
	return brailleBase + bits, RGB{uint8(r/weight + 0.5), uint8(g/weight + 0.5), uint8(b/weight + 0.5)}, peak
}

// Flush writes the raster onto screen at cell offset (ox, oy)
// Each dot's colour is composited over bg and then scaled by opacity
func (c *DotCanvas) Flush(screen tcell.Screen, ox, oy int, bg RGB, opacity float64, mode ColorMode) {
	bgStyle := Style(bg, bg, mode)
	for cy := 0; cy < c.rows; cy++ {
		for cx := 0; cx < c.cols; cx++ {
			r, col, a := c.Cell(cx, cy)
			if r == 0 {
				screen.SetContent(ox+cx, oy+cy, ' ', nil, bgStyle)
				continue
			}
			fg := bg.Blend(col, a*opacity)
			screen.SetContent(ox+cx, oy+cy, r, nil, Style(fg, bg, mode))
		}
	}
}
