package layerstore

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an opaque cell color with red, green, and blue components.
// Each component is in the range [0, 255]. There is no alpha channel: a cell
// always has exactly one fully opaque color, and any intermediate alpha used
// by a layer effect must be resolved before it returns.
type Color struct {
	R, G, B uint8
}

// RGBA implements the standard color.Color interface.
// The alpha component is always 0xffff.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return
}

// FromColor converts a standard color.Color to Color, discarding alpha.
// Premultiplied components are scaled back up so that a half-transparent
// red converts to full red, not dark red. Fully transparent input converts
// to Black.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Black
	}
	return Color{
		R: uint8((r*255 + a/2) / a),
		G: uint8((g*255 + a/2) / a),
		B: uint8((b*255 + a/2) / a),
	}
}

// RGB creates a color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex creates a color from a hex string.
// Supports "RGB" and "RRGGBB" forms, with or without a leading '#'.
// Invalid input returns Black.
func Hex(hex string) Color {
	if hex == "" {
		return Black
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}
	cc, err := colorful.Hex(hex)
	if err != nil {
		return Black
	}
	return fromColorful(cc)
}

// HexString returns the color as a lowercase "#rrggbb" string.
func (c Color) HexString() string {
	return c.toColorful().Hex()
}

// HSL creates a color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) Color {
	return fromColorful(colorful.Hsl(h, s, l))
}

// Lerp performs linear interpolation between two colors in RGB space.
// t=0 returns c, t=1 returns other.
func (c Color) Lerp(other Color, t float64) Color {
	return fromColorful(c.toColorful().BlendRgb(other.toColorful(), t))
}

// Invert returns the photographic negative: each component x becomes 255-x.
func (c Color) Invert() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// toColorful converts to a go-colorful color with components in [0, 1].
func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// fromColorful converts back to 8-bit components, clamping out-of-gamut
// values first.
func fromColorful(cc colorful.Color) Color {
	cc = cc.Clamped()
	return Color{
		R: uint8(cc.R*255 + 0.5),
		G: uint8(cc.G*255 + 0.5),
		B: uint8(cc.B*255 + 0.5),
	}
}

// Common colors
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
)
