// pkg/render/color.go
package render

import (
	"image/color"

	"elemental-td/internal/defs"
)

var elementColors = map[defs.ElementType]color.RGBA{
	defs.Fire:               {230, 80, 40, 255},
	defs.Ice:                {90, 180, 255, 255},
	defs.Lightning:          {250, 230, 70, 255},
	defs.FireFire:           {255, 40, 10, 255},
	defs.IceIce:             {200, 240, 255, 255},
	defs.LightningLightning: {255, 255, 160, 255},
	defs.FireIce:            {210, 150, 220, 255},
	defs.FireLightning:      {255, 150, 60, 255},
	defs.IceLightning:       {140, 230, 200, 255},
}

// ElementColor — цвет стихии для дуг, импульсов и вспышек.
func ElementColor(e defs.ElementType) color.RGBA {
	if c, ok := elementColors[e]; ok {
		return c
	}
	return color.RGBA{200, 200, 200, 255}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with alpha scaled by a in 0..1.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// Mix смешивает два цвета, t=0 даёт a, t=1 даёт b.
func Mix(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}
}
