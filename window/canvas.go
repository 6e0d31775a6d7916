package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageCanvas draws in logical units onto a device-pixel offscreen image
type imageCanvas struct {
	img   *ebiten.Image
	scale float64
}

func (c *imageCanvas) resize(w, h int, scale float64) {
	if c.img != nil {
		c.img.Deallocate()
	}
	c.img = ebiten.NewImage(max(w, 1), max(h, 1))
	c.scale = scale
}

func (c *imageCanvas) Clear() {
	c.img.Clear()
}

func (c *imageCanvas) FillCircle(x, y, r float64, col color.NRGBA) {
	s := c.scale
	vector.DrawFilledCircle(c.img, float32(x*s), float32(y*s), float32(r*s), col, true)
}

func (c *imageCanvas) StrokeLine(x0, y0, x1, y1, width float64, col color.NRGBA) {
	s := c.scale
	vector.StrokeLine(c.img, float32(x0*s), float32(y0*s), float32(x1*s), float32(y1*s), float32(width*s), col, true)
}
