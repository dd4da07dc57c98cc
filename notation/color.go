// Package notation converts colors to and from their textual notations: hex triplets,
// functional rgb()/hsl() forms, Objective-C and MacRuby constructor literals and the
// compact CSS forms.
package notation

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Tolerance is the per component difference under which two colors are considered equal.
// Conversions through 8-bit channels or whole percents are lossy.
const Tolerance = 0.005

// Color is an RGBA color with every component in [0, 1].
type Color struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

// HSB is the hue/saturation/brightness view of a color. Hue is in degrees,
// saturation and brightness in [0, 1].
type HSB struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
}

// HSL is the hue/saturation/lightness view of a color. Hue is in degrees [0, 360),
// saturation and lightness in [0, 1].
type HSL struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Magenta     = RGB(1, 0, 1)
	Transparent = New(0, 0, 0, 0)
)

// New creates a color, clamping every component to [0, 1].
func New(r, g, b, a float64) Color {
	return Color{
		Red:   clamp01(r),
		Green: clamp01(g),
		Blue:  clamp01(b),
		Alpha: clamp01(a),
	}
}

// RGB creates an opaque color.
func RGB(r, g, b float64) Color {
	return New(r, g, b, 1)
}

// FromBytes creates a color from 8-bit channels and a [0, 1] alpha.
func FromBytes(r, g, b uint8, a float64) Color {
	return New(float64(r)/255, float64(g)/255, float64(b)/255, a)
}

// Equal reports whether every component of c is within Tolerance of other.
func (c Color) Equal(other Color) bool {
	return math.Abs(c.Red-other.Red) <= Tolerance &&
		math.Abs(c.Green-other.Green) <= Tolerance &&
		math.Abs(c.Blue-other.Blue) <= Tolerance &&
		math.Abs(c.Alpha-other.Alpha) <= Tolerance
}

// Opaque reports whether the alpha component is exactly 1.
func (c Color) Opaque() bool {
	return c.Alpha == 1
}

// HSB returns the hue/saturation/brightness components of c.
//
// Achromatic colors report hue 0. A hue in the red sector is reported in (0, 360],
// so pure red has hue 360.
func (c Color) HSB() HSB {
	h, s, v := c.toColorful().Hsv()
	if h == 0 && s > 0 {
		h = 360
	}
	return HSB{Hue: h, Saturation: s, Brightness: v}
}

// FromHSB creates a color from hue in degrees and saturation, brightness in [0, 1].
func FromHSB(h, s, v, a float64) Color {
	return fromColorful(colorful.Hsv(normalizeHue(h), clamp01(s), clamp01(v)), a)
}

// HSL returns the hue/saturation/lightness components of c.
func (c Color) HSL() HSL {
	h, s, l := c.toColorful().Hsl()
	return HSL{Hue: normalizeHue(h), Saturation: s, Lightness: l}
}

// FromHSL creates a color from hue in degrees and saturation, lightness in [0, 1].
func FromHSL(h, s, l, a float64) Color {
	return fromColorful(colorful.Hsl(normalizeHue(h), clamp01(s), clamp01(l)), a)
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: c.Red, G: c.Green, B: c.Blue}
}

func fromColorful(c colorful.Color, a float64) Color {
	return New(c.R, c.G, c.B, a)
}

// normalizeHue maps h into [0, 360); colorful treats 360 as out of range.
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.Alpha*0xffff + 0.5)
	r = uint32(c.Red*c.Alpha*0xffff + 0.5)
	g = uint32(c.Green*c.Alpha*0xffff + 0.5)
	b = uint32(c.Blue*c.Alpha*0xffff + 0.5)
	return r, g, b, a
}

// FromImageColor converts a standard color.Color.
func FromImageColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	return New(
		float64(r)/float64(a),
		float64(g)/float64(a),
		float64(b)/float64(a),
		float64(a)/0xffff,
	)
}

// Components is implemented by host toolkit colors exposing their components as floats.
type Components interface {
	RedComponent() float64
	GreenComponent() float64
	BlueComponent() float64
	AlphaComponent() float64
}

// FromComponents reads a host color.
func FromComponents(h Components) Color {
	return New(h.RedComponent(), h.GreenComponent(), h.BlueComponent(), h.AlphaComponent())
}

// ToHost builds a host color through its four-float constructor.
func ToHost[T any](c Color, factory func(r, g, b, a float64) T) T {
	return factory(c.Red, c.Green, c.Blue, c.Alpha)
}

// clamp01 restricts a value to [0, 1].
func clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
