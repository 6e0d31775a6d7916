package render

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var white = color.NRGBA{255, 255, 255, 255}

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestDotCanvas_BrailleBits(t *testing.T) {
	tests := []struct {
		x, y float64
		want rune
	}{
		{0.5, 0.5, 0x2801},
		{0.5, 1.5, 0x2802},
		{0.5, 2.5, 0x2804},
		{1.5, 0.5, 0x2808},
		{1.5, 1.5, 0x2810},
		{1.5, 2.5, 0x2820},
		{0.5, 3.5, 0x2840},
		{1.5, 3.5, 0x2880},
	}
	for _, tt := range tests {
		c := NewDotCanvas(1, 1)
		c.FillCircle(tt.x, tt.y, 0.45, white)
		r, col, a := c.Cell(0, 0)
		assert.Equal(t, tt.want, r, "dot at (%v, %v)", tt.x, tt.y)
		assert.Equal(t, RGB{255, 255, 255}, col)
		assert.Equal(t, 1.0, a)
	}
}

func TestDotCanvas_ClearAndResize(t *testing.T) {
	c := NewDotCanvas(4, 2)
	w, h := c.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)

	c.FillCircle(4, 4, 3, white)
	r, _, _ := c.Cell(1, 1)
	assert.NotZero(t, r)

	c.Clear()
	r, _, _ = c.Cell(1, 1)
	assert.Zero(t, r)

	c.Resize(10, 3)
	cols, rows := c.Cells()
	assert.Equal(t, 10, cols)
	assert.Equal(t, 3, rows)
}

func TestDotCanvas_AlphaCompositing(t *testing.T) {
	c := NewDotCanvas(1, 1)
	half := color.NRGBA{255, 0, 0, 128}
	c.FillCircle(0.5, 0.5, 0.4, half)
	_, a := c.At(0, 0)
	assert.InDelta(t, 0.502, a, 0.01)

	c.FillCircle(0.5, 0.5, 0.4, half)
	_, a = c.At(0, 0)
	assert.InDelta(t, 0.752, a, 0.01)
}

func TestDotCanvas_OutOfBoundsIgnored(t *testing.T) {
	c := NewDotCanvas(2, 2)
	assert.NotPanics(t, func() {
		c.FillCircle(-100, -100, 5, white)
		c.FillCircle(1e9, 1e9, 5, white)
		c.StrokeLine(-1e6, -1e6, -1e6+1, -1e6, 1, white)
	})
	for cy := 0; cy < 2; cy++ {
		for cx := 0; cx < 2; cx++ {
			r, _, _ := c.Cell(cx, cy)
			assert.Zero(t, r)
		}
	}
}

func TestDotCanvas_StrokeLineHorizontal(t *testing.T) {
	c := NewDotCanvas(4, 1)
	c.StrokeLine(0, 1.5, 8, 1.5, 1, white)
	for x := 0; x < 8; x++ {
		_, a := c.At(x, 1)
		assert.Equal(t, 1.0, a, "dot %d on the line", x)
		_, a = c.At(x, 3)
		assert.Zero(t, a, "dot %d off the line", x)
	}
}

func TestDotCanvas_StrokeLineNoAccumulation(t *testing.T) {
	c := NewDotCanvas(4, 1)
	c.StrokeLine(0, 1.5, 8, 1.5, 2, color.NRGBA{255, 255, 255, 100})
	_, a := c.At(3, 1)
	assert.InDelta(t, 100.0/255, a, 1e-9)
}

func TestDotCanvas_SeparateStrokesComposite(t *testing.T) {
	c := NewDotCanvas(4, 1)
	half := color.NRGBA{255, 255, 255, 128}
	c.StrokeLine(0, 1.5, 8, 1.5, 1, half)
	c.StrokeLine(0, 1.5, 8, 1.5, 1, half)
	_, a := c.At(3, 1)
	a1 := 128.0 / 255
	assert.InDelta(t, a1+a1*(1-a1), a, 1e-9, "second stroke composites over the first")
}

func TestDotCanvas_StrokeMarkWraps(t *testing.T) {
	c := NewDotCanvas(4, 1)
	c.stroke = math.MaxUint32
	c.StrokeLine(0, 1.5, 8, 1.5, 1, white)
	assert.EqualValues(t, 1, c.stroke)
	_, a := c.At(3, 1)
	assert.Equal(t, 1.0, a)
}

func TestDotCanvas_StrokeLineDoesNotAllocate(t *testing.T) {
	c := NewDotCanvas(40, 20)
	allocs := testing.AllocsPerRun(100, func() {
		c.StrokeLine(5, 5, 70, 60, 1.5, white)
	})
	assert.Zero(t, allocs)
}

func TestDotCanvas_HugeLineIsClipped(t *testing.T) {
	c := NewDotCanvas(10, 5)
	done := make(chan struct{})
	go func() {
		c.StrokeLine(-1e7, 10, 1e7, 10, 2, white)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stroke did not clip")
	}
	_, a := c.At(5, 10)
	assert.Equal(t, 1.0, a)
}

func TestDotCanvas_Flush(t *testing.T) {
	screen := newSimScreen(t, 4, 2)
	c := NewDotCanvas(2, 1)
	c.FillCircle(0.5, 0.5, 0.4, white)

	bg := RGB{8, 9, 20}
	c.Flush(screen, 1, 1, bg, 1, ColorModeTrueColor)

	r, _, style, _ := screen.GetContent(1, 1)
	assert.Equal(t, rune(0x2801), r)
	fg, bgc, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), fg)
	assert.Equal(t, tcell.NewRGBColor(8, 9, 20), bgc)

	r, _, _, _ = screen.GetContent(2, 1)
	assert.Equal(t, ' ', r)

	// Fully faded dots take the background colour
	c.Flush(screen, 1, 1, bg, 0, ColorModeTrueColor)
	_, _, style, _ = screen.GetContent(1, 1)
	fg, _, _ = style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(8, 9, 20), fg)
}
