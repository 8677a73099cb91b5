package render

import (
	"image/color"

	"go-scurve-defense/internal/config"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor moves every channel a fixed step towards white.
func LightenColor(c color.RGBA, step int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+step)),
		G: uint8(min(255, int(c.G)+step)),
		B: uint8(min(255, int(c.B)+step)),
		A: c.A,
	}
}

// WithAlpha replaces the alpha channel, scaling the (premultiplied) color channels with it.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	if c.A == 0 {
		return color.RGBA{}
	}
	f := float64(a) / float64(c.A)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: a,
	}
}

// Fade scales the alpha of c by k in [0, 1].
func Fade(c color.RGBA, k float64) color.RGBA {
	if k <= 0 {
		return color.RGBA{}
	}
	if k >= 1 {
		return c
	}
	return WithAlpha(c, uint8(float64(c.A)*k))
}

// HealthColor picks the health bar color for the remaining fraction.
func HealthColor(frac float64) color.RGBA {
	switch {
	case frac > 0.5:
		return config.HealthHighColor
	case frac > 0.25:
		return config.HealthMidColor
	default:
		return config.HealthLowColor
	}
}
