package core

import "math"

// RGB stores explicit 8-bit color channels, decoupled from the
// terminal backend. Shading math runs in float space and clamps back
// to bytes per channel
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Add performs additive blend with clamping (light accumulation)
func (c RGB) Add(src RGB) RGB {
	return RGB{
		R: uint8(min(int(c.R)+int(src.R), 255)),
		G: uint8(min(int(c.G)+int(src.G), 255)),
		B: uint8(min(int(c.B)+int(src.B), 255)),
	}
}

// Scale multiplies each channel by factor. Factors above one brighten
// with per-channel clamping
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	return RGB{
		R: ClampChannel(float64(c.R) * factor),
		G: ClampChannel(float64(c.G) * factor),
		B: ClampChannel(float64(c.B) * factor),
	}
}

// Lerp blends a toward b by t in [0,1]
func Lerp(a, b RGB, t float64) RGB {
	return a.Blend(b, t)
}

// ClampChannel folds a float light value into one byte channel
func ClampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
