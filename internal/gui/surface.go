package gui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/san-kum/skyburst/internal/palette"
)

const dotTexSize = 64

// dotImage is a procedural radial-falloff sprite shared by every particle
// draw. Built once at package init.
var dotImage *ebiten.Image

// whiteImage backs the full-surface translucent fills.
var whiteImage *ebiten.Image

func init() {
	img := image.NewRGBA(image.Rect(0, 0, dotTexSize, dotTexSize))
	cx, cy := dotTexSize/2.0, dotTexSize/2.0
	maxR := dotTexSize / 2.0
	for y := 0; y < dotTexSize; y++ {
		for x := 0; x < dotTexSize; x++ {
			d := math.Hypot(float64(x)-cx+0.5, float64(y)-cy+0.5)
			t := 1.0 - d/maxR
			if t < 0 {
				t = 0
			}
			a := uint8(t * t * 255)
			img.SetRGBA(x, y, color.RGBA{R: a, G: a, B: a, A: a})
		}
	}
	dotImage = ebiten.NewImageFromImage(img)

	whiteImage = ebiten.NewImage(1, 1)
	whiteImage.Fill(color.White)
}

// surface renders show draw calls onto an offscreen image. Logical show
// coordinates are multiplied by scale into backing pixels.
type surface struct {
	dst   *ebiten.Image
	scale float64
}

func (s *surface) FillCircle(x, y, r float64, c palette.Color, additive bool) {
	// The dot sprite fades toward its rim, so draw it slightly larger than
	// the requested radius to keep the bright core at full size.
	d := 2.6 * r * s.scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(d/dotTexSize, d/dotTexSize)
	op.GeoM.Translate(x*s.scale-d/2, y*s.scale-d/2)
	if additive {
		op.Blend = ebiten.BlendLighter
	}
	rgba := c.RGBA()
	a := float32(rgba.A) / 255
	op.ColorScale.Scale(float32(rgba.R)/255*a, float32(rgba.G)/255*a, float32(rgba.B)/255*a, a)
	s.dst.DrawImage(dotImage, op)
}

func (s *surface) Fade(c palette.Color) {
	w, h := s.dst.Bounds().Dx(), s.dst.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	rgba := c.RGBA()
	a := float32(rgba.A) / 255
	op.ColorScale.Scale(float32(rgba.R)/255*a, float32(rgba.G)/255*a, float32(rgba.B)/255*a, a)
	s.dst.DrawImage(whiteImage, op)
}

func (s *surface) Glow(x, y, radius float64, c palette.Color) {
	d := 2 * radius * s.scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(d/dotTexSize, d/dotTexSize)
	op.GeoM.Translate(x*s.scale-d/2, y*s.scale-d/2)
	op.Blend = ebiten.BlendLighter
	rgba := c.RGBA()
	a := float32(rgba.A) / 255
	op.ColorScale.Scale(float32(rgba.R)/255*a, float32(rgba.G)/255*a, float32(rgba.B)/255*a, a)
	s.dst.DrawImage(dotImage, op)
}
