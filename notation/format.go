package notation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Format names a textual notation.
type Format string

const (
	FormatHex     Format = "hex"
	FormatRGB     Format = "rgb"
	FormatRGBA    Format = "rgba"
	FormatHSL     Format = "hsl"
	FormatHSLA    Format = "hsla"
	FormatObjC    Format = "objc"
	FormatMacRuby Format = "macruby"
	FormatCSSRGB  Format = "css-rgb"
	FormatCSSRGBA Format = "css-rgba"
	FormatCSS     Format = "css"
)

var formats = []Format{
	FormatHex,
	FormatRGB,
	FormatRGBA,
	FormatHSL,
	FormatHSLA,
	FormatObjC,
	FormatMacRuby,
	FormatCSSRGB,
	FormatCSSRGBA,
	FormatCSS,
}

// renderers take the short flag even where the notation has no short form.
var renderers = map[Format]func(Color, bool) string{
	FormatHex:     func(c Color, _ bool) string { return HexString(c) },
	FormatRGB:     RGBString,
	FormatRGBA:    RGBAString,
	FormatHSL:     HSLString,
	FormatHSLA:    HSLAString,
	FormatObjC:    ObjcNSColor,
	FormatMacRuby: MacRubyNSColor,
	FormatCSSRGB:  func(c Color, _ bool) string { return CSSRGBString(c) },
	FormatCSSRGBA: func(c Color, _ bool) string { return CSSRGBAString(c) },
	FormatCSS:     func(c Color, _ bool) string { return CSSString(c) },
}

// Formats returns every supported output notation in a stable order.
func Formats() []Format {
	return append([]Format(nil), formats...)
}

// ParseFormat resolves a notation name, ignoring case and surrounding whitespace.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := renderers[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// Render formats c in the notation f.
func Render(c Color, f Format, short bool) (string, error) {
	render, ok := renderers[f]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	return render(c, short), nil
}

// RenderAll formats c in every notation.
func RenderAll(c Color, short bool) map[Format]string {
	return lo.SliceToMap(formats, func(f Format) (Format, string) {
		return f, renderers[f](c, short)
	})
}

// HexString returns #rrggbb, or #rgb when every channel has two identical hex digits.
// Alpha is ignored.
func HexString(c Color) string {
	return hex(byte8(c.Red), byte8(c.Green), byte8(c.Blue))
}

// RGBString returns rgb(R, G, B), or "R, G, B" when short. Alpha is ignored.
func RGBString(c Color, short bool) string {
	s := fmt.Sprintf("%d, %d, %d", byte8(c.Red), byte8(c.Green), byte8(c.Blue))
	if short {
		return s
	}
	return "rgb(" + s + ")"
}

// RGBAString returns rgba(R, G, B, A), or "R, G, B, A" when short.
func RGBAString(c Color, short bool) string {
	s := fmt.Sprintf("%d, %d, %d, %s", byte8(c.Red), byte8(c.Green), byte8(c.Blue), decimal(c.Alpha))
	if short {
		return s
	}
	return "rgba(" + s + ")"
}

// HSLString returns hsl(H, S%, B%) built from the hue, saturation and brightness of c,
// or "H, S%, B%" when short. Alpha is ignored.
func HSLString(c Color, short bool) string {
	s := hsbFields(c)
	if short {
		return s
	}
	return "hsl(" + s + ")"
}

// HSLAString is HSLString with the alpha component appended.
func HSLAString(c Color, short bool) string {
	s := hsbFields(c) + ", " + decimal(c.Alpha)
	if short {
		return s
	}
	return "hsla(" + s + ")"
}

func hsbFields(c Color) string {
	hsb := c.HSB()
	return fmt.Sprintf("%d, %d%%, %d%%",
		int(math.Floor(hsb.Hue)),
		int(math.Round(hsb.Saturation*100)),
		int(math.Round(hsb.Brightness*100)),
	)
}

// ObjcNSColor returns an Objective-C NSColor constructor message, or the four raw
// components separated by spaces when short. Components are float literals (1.0, not 1).
func ObjcNSColor(c Color, short bool) string {
	r, g, b, a := floatLiteral(c.Red), floatLiteral(c.Green), floatLiteral(c.Blue), floatLiteral(c.Alpha)
	if short {
		return strings.Join([]string{r, g, b, a}, " ")
	}
	return fmt.Sprintf("[NSColor colorWithCalibratedRed:%s green:%s blue:%s alpha:%s]", r, g, b, a)
}

// MacRubyNSColor returns a MacRuby NSColor constructor call, or the four raw components
// separated by spaces when short.
func MacRubyNSColor(c Color, short bool) string {
	r, g, b, a := decimal(c.Red), decimal(c.Green), decimal(c.Blue), decimal(c.Alpha)
	if short {
		return strings.Join([]string{r, g, b, a}, " ")
	}
	return fmt.Sprintf("NSColor.colorWithCalibratedRed(%s, green: %s, blue: %s, alpha: %s)", r, g, b, a)
}

// CSSRGBString returns the CSS hex form of c over device bytes. Alpha is ignored.
func CSSRGBString(c Color) string {
	return hex(cssByte(c.Red), cssByte(c.Green), cssByte(c.Blue))
}

// CSSRGBAString returns rgb(R,G,B,A) over device bytes, without spaces. Alpha is
// always present.
func CSSRGBAString(c Color) string {
	return fmt.Sprintf("rgb(%d,%d,%d,%s)", cssByte(c.Red), cssByte(c.Green), cssByte(c.Blue), decimal(c.Alpha))
}

// CSSString returns the shortest CSS form: hex for opaque colors, rgb(R,G,B,A) otherwise.
func CSSString(c Color) string {
	if c.Opaque() {
		return CSSRGBString(c)
	}
	return CSSRGBAString(c)
}

func hex(r, g, b uint8) string {
	if r>>4 == r&0xf && g>>4 == g&0xf && b>>4 == b&0xf {
		return fmt.Sprintf("#%x%x%x", r&0xf, g&0xf, b&0xf)
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// byte8 truncates a [0, 1] component to an 8-bit channel.
func byte8(v float64) uint8 {
	return uint8(math.Floor(clamp01(v) * 255))
}

// cssByte maps a [0, 1] component to a device channel: 255 at full intensity, otherwise
// the largest integer strictly below v*255.
func cssByte(v float64) uint8 {
	v = clamp01(v)
	if v >= 1 {
		return 255
	}
	n := math.Ceil(v*255) - 1
	if n < 0 {
		return 0
	}
	return uint8(n)
}

// decimal formats f with the fewest digits that read back exactly: 1, 0.5, 0.54.
func decimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// floatLiteral is decimal with a guaranteed decimal point.
func floatLiteral(f float64) string {
	s := decimal(f)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
