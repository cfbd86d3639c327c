// Package palette provides structured HSLA colors for rendering. Colors are
// kept as hue/saturation/lightness/alpha fields and only converted to RGBA
// at draw time.
package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/skyburst/internal/randx"
)

// Color is an HSLA value. H in degrees [0,360), S and L in percent [0,100],
// A in [0,1].
type Color struct {
	H float64
	S float64
	L float64
	A float64
}

// RandomVivid returns a saturated bright color with the given alpha.
func RandomVivid(r *randx.Rand, alpha float64) Color {
	return Color{
		H: r.Range(0, 360),
		S: r.Range(80, 100),
		L: r.Range(50, 60),
		A: alpha,
	}
}

// Mix ignores both inputs and derives everything from t: hue sweeps the
// full wheel, saturation and lightness are fixed, alpha equals t. Kept for
// compatibility with the observed behavior of the original blend.
func Mix(_, _ Color, t float64) Color {
	return Color{H: t * 360, S: 90, L: 60, A: t}
}

// WithAlpha returns a copy with the alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGBA converts to premultiplied-free 8-bit RGBA. Alpha is clamped to [0,1].
func (c Color) RGBA() color.RGBA {
	a := c.A
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	rr, gg, bb := colorful.Hsl(c.H, c.S/100, c.L/100).Clamped().RGB255()
	return color.RGBA{R: rr, G: gg, B: bb, A: uint8(a*255 + 0.5)}
}
