package intro

import (
	"math"

	"github.com/lixenwraith/invite/parameter"
)

// Parallax is the bounded 2D offset shared by pointer and orientation input
// Both axes stay in [-1, 1]; the most recent write wins
type Parallax struct {
	X, Y float64
}

// Set clamps and stores a raw offset
func (p *Parallax) Set(x, y float64) {
	p.X = clampUnit(x)
	p.Y = clampUnit(y)
}

// FromPointer maps a position within a width×height box onto [-1, 1]
func (p *Parallax) FromPointer(x, y, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	p.Set(x/width*2-1, y/height*2-1)
}

// FromOrientation maps tilt angles in degrees
func (p *Parallax) FromOrientation(gamma, beta float64) {
	p.Set(gamma/parameter.OrientationGammaDivisor, beta/parameter.OrientationBetaDivisor)
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(v, -1), 1)
}
