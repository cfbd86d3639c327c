package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/skyburst/internal/palette"
)

// Braille Patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Cells dimmer than this lose their dots entirely.
const minBrightness = 0.05

// Canvas is a braille sub-pixel drawing surface with one color per cell.
// It implements pyro.Surface: logical show coordinates are scaled onto the
// sub-pixel grid (Width*2 x Height*4), and Fade decays cell brightness
// instead of alpha-compositing, which produces the same motion-trail look.
type Canvas struct {
	Width, Height int // cells
	LogicalW      float64
	LogicalH      float64

	grid   [][]rune
	colors [][]palette.Color // A carries the cell brightness
}

func NewCanvas(w, h int, logicalW, logicalH float64) *Canvas {
	c := &Canvas{
		Width:    w,
		Height:   h,
		LogicalW: logicalW,
		LogicalH: logicalH,
		grid:     make([][]rune, h),
		colors:   make([][]palette.Color, h),
	}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		c.colors[i] = make([]palette.Color, w)
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
	return c
}

// Resize changes the cell grid, dropping any lit dots.
func (c *Canvas) Resize(w, h int) {
	if w == c.Width && h == c.Height {
		return
	}
	c.Width, c.Height = w, h
	c.grid = make([][]rune, h)
	c.colors = make([][]palette.Color, h)
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		c.colors[i] = make([]palette.Color, w)
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) subScale() (float64, float64) {
	return float64(c.Width*2) / c.LogicalW, float64(c.Height*4) / c.LogicalH
}

// Set lights the dot at sub-pixel (x, y) and folds the color into the cell.
// Additive draws stack brightness; plain draws keep the brightest.
func (c *Canvas) Set(x, y int, col palette.Color, additive bool) {
	if x < 0 || y < 0 {
		return
	}
	cx := x / 2
	cy := y / 4
	if cx >= c.Width || cy >= c.Height {
		return
	}

	c.grid[cy][cx] |= rune(pixelMap[y%4][x%2])

	cur := c.colors[cy][cx]
	if additive {
		b := cur.A + col.A
		if b > 1 {
			b = 1
		}
		if col.A >= cur.A {
			col.A = b
			c.colors[cy][cx] = col
		} else {
			cur.A = b
			c.colors[cy][cx] = cur
		}
		return
	}
	if col.A >= cur.A {
		c.colors[cy][cx] = col
	}
}

// FillCircle draws a filled circle in logical coordinates.
func (c *Canvas) FillCircle(x, y, r float64, col palette.Color, additive bool) {
	sx, sy := c.subScale()
	px := x * sx
	py := y * sy
	// Radii are given in logical pixels; use the horizontal scale so dot
	// sizes track the canvas width.
	pr := r * sx
	if pr < 0.5 {
		pr = 0.5
	}

	x0, x1 := int(math.Floor(px-pr)), int(math.Ceil(px+pr))
	y0, y1 := int(math.Floor(py-pr)), int(math.Ceil(py+pr))
	for iy := y0; iy <= y1; iy++ {
		for ix := x0; ix <= x1; ix++ {
			dx := float64(ix) - px
			dy := float64(iy) - py
			if dx*dx+dy*dy <= pr*pr {
				c.Set(ix, iy, col, additive)
			}
		}
	}
}

// Fade dims every cell by the fill's alpha; cells that drop below the
// brightness floor go dark.
func (c *Canvas) Fade(col palette.Color) {
	decay := 1 - col.A
	for i := range c.colors {
		for j := range c.colors[i] {
			if c.grid[i][j] == 0x2800 {
				continue
			}
			c.colors[i][j].A *= decay
			if c.colors[i][j].A < minBrightness {
				c.grid[i][j] = 0x2800
				c.colors[i][j] = palette.Color{}
			}
		}
	}
}

// Glow is a no-op: terminal cells are too coarse for the ambient gradient.
func (c *Canvas) Glow(x, y, radius float64, col palette.Color) {}

// Clear resets the canvas.
func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
			c.colors[i][j] = palette.Color{}
		}
	}
}

// String renders the canvas with ANSI colors, batching runs of same-colored
// cells into a single styled segment.
func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.grid {
		var run []rune
		var runColor string
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(string(run))
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(string(run)))
			}
			run = run[:0]
		}
		for j, r := range row {
			hex := cellHex(c.colors[i][j], r)
			if hex != runColor {
				flush()
				runColor = hex
			}
			run = append(run, r)
		}
		flush()
		b.WriteString("\n")
	}
	return b.String()
}

// cellHex maps a cell color to a terminal hex string, premultiplying the
// brightness into the channels. Empty cells carry no color.
func cellHex(col palette.Color, r rune) string {
	if r == 0x2800 || col.A <= 0 {
		return ""
	}
	rgba := col.WithAlpha(1).RGBA()
	b := col.A
	if b > 1 {
		b = 1
	}
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(float64(rgba.R)*b),
		uint8(float64(rgba.G)*b),
		uint8(float64(rgba.B)*b))
}
