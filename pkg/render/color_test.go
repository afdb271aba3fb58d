package render

import (
	"image/color"
	"testing"

	"elemental-td/internal/defs"
)

func TestElementColorsAreDistinct(t *testing.T) {
	seen := make(map[color.RGBA]defs.ElementType)
	for _, e := range defs.AllElements() {
		c := ElementColor(e)
		if prev, dup := seen[c]; dup {
			t.Errorf("%v and %v share color %v", prev, e, c)
		}
		seen[c] = e
	}
}

func TestMixAndAlpha(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}

	if got := Mix(black, white, 0); got != black {
		t.Errorf("Mix t=0 = %v", got)
	}
	if got := Mix(black, white, 2); got != white {
		t.Errorf("Mix clamps t, got %v", got)
	}
	if got := WithAlpha(white, 0); got != (color.RGBA{}) {
		t.Errorf("WithAlpha 0 = %v, want transparent", got)
	}
	if got := DarkenColor(color.RGBA{200, 100, 50, 255}); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("DarkenColor = %v", got)
	}
}
