package palette

import (
	"testing"

	"github.com/san-kum/skyburst/internal/randx"
)

func TestRandomVivid_Ranges(t *testing.T) {
	r := randx.New(42)

	for i := 0; i < 500; i++ {
		c := RandomVivid(r, 0.7)
		if c.H < 0 || c.H >= 360 {
			t.Fatalf("hue %f out of [0,360)", c.H)
		}
		if c.S < 80 || c.S > 100 {
			t.Fatalf("saturation %f out of [80,100]", c.S)
		}
		if c.L < 50 || c.L > 60 {
			t.Fatalf("lightness %f out of [50,60]", c.L)
		}
		if c.A != 0.7 {
			t.Fatalf("alpha %f, want 0.7", c.A)
		}
	}
}

func TestMix_IgnoresInputs(t *testing.T) {
	a := Color{H: 10, S: 20, L: 30, A: 0.1}
	b := Color{H: 200, S: 90, L: 50, A: 1.0}

	got := Mix(a, b, 0.5)
	want := Color{H: 180, S: 90, L: 60, A: 0.5}
	if got != want {
		t.Errorf("Mix = %+v, want %+v", got, want)
	}

	// Different inputs, same t, same output.
	if Mix(b, a, 0.5) != got {
		t.Error("Mix output should depend on t only")
	}
}

func TestWithAlpha(t *testing.T) {
	c := Color{H: 120, S: 90, L: 55, A: 1.0}
	faded := c.WithAlpha(0.25)

	if faded.A != 0.25 {
		t.Errorf("alpha = %f, want 0.25", faded.A)
	}
	if faded.H != c.H || faded.S != c.S || faded.L != c.L {
		t.Error("WithAlpha changed hue/sat/lightness")
	}
}

func TestRGBA_AlphaClamped(t *testing.T) {
	tests := []struct {
		alpha float64
		want  uint8
	}{
		{-0.5, 0},
		{0.0, 0},
		{1.0, 255},
		{1.7, 255},
	}

	for _, tt := range tests {
		c := Color{H: 0, S: 90, L: 55, A: tt.alpha}
		if got := c.RGBA().A; got != tt.want {
			t.Errorf("alpha %f: RGBA().A = %d, want %d", tt.alpha, got, tt.want)
		}
	}
}

func TestRGBA_Hues(t *testing.T) {
	// Red-ish hue should be red dominant, green-ish green dominant.
	red := Color{H: 0, S: 100, L: 50, A: 1}.RGBA()
	if red.R <= red.G || red.R <= red.B {
		t.Errorf("hue 0 not red dominant: %+v", red)
	}

	green := Color{H: 120, S: 100, L: 50, A: 1}.RGBA()
	if green.G <= green.R || green.G <= green.B {
		t.Errorf("hue 120 not green dominant: %+v", green)
	}
}
