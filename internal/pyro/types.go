// Package pyro implements the firework simulation entities: rockets that
// ascend under decaying thrust, explode into particle clouds, and fade out.
package pyro

import "github.com/san-kum/skyburst/internal/palette"

// Surface is the immediate-mode drawing target the entities render onto.
// Coordinates are logical pixels with the origin at the top-left and y
// growing downward.
type Surface interface {
	// FillCircle draws a filled circle. When additive is set the renderer
	// uses additive ("lighter") blending.
	FillCircle(x, y, r float64, c palette.Color, additive bool)
	// Fade applies a translucent fill over the whole surface, producing the
	// motion-trail effect instead of a hard clear.
	Fade(c palette.Color)
	// Glow paints a radial ambient gradient centered at (x, y).
	Glow(x, y, radius float64, c palette.Color)
}

// Entity is anything the show updates and draws each frame. There are two
// concrete implementations: Particle and Firework.
type Entity interface {
	Update(dt float64)
	Draw(s Surface)
	Dead() bool
}
