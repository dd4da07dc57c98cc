package notation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// number matches an unsigned or signed decimal literal such as 1, 0.54, .5 or 1.
const number = `([-+]?(?:\d+(?:\.\d*)?|\.\d+))`

// Host color classes and constructor selectors accepted in constructor literals.
const class = `(?:NSColor|UIColor)`
const selector = `colorWith(?:Calibrated|Device|SRGB)?Red`

var (
	hex3Pattern = regexp.MustCompile(`(?i)^#?([0-9a-f])([0-9a-f])([0-9a-f])$`)
	hex6Pattern = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)

	rgbPattern = regexp.MustCompile(`(?i)^rgb\(\s*` + number + `\s*,\s*` + number + `\s*,\s*` + number +
		`\s*(?:,\s*` + number + `\s*)?\)$`)
	rgbaPattern = regexp.MustCompile(`(?i)^rgba\(\s*` + number + `\s*,\s*` + number + `\s*,\s*` + number +
		`\s*,\s*` + number + `\s*\)$`)

	hslPattern = regexp.MustCompile(`(?i)^hsl\(\s*` + number + `\s*,\s*` + number + `\s*%\s*,\s*` + number +
		`\s*%\s*\)$`)
	hslaPattern = regexp.MustCompile(`(?i)^hsla\(\s*` + number + `\s*,\s*` + number + `\s*%\s*,\s*` + number +
		`\s*%\s*,?\s*` + number + `\s*\)$`)

	messagePattern = regexp.MustCompile(`(?i)^\[\s*` + class + `\s+` + selector + `\s*:\s*` + number +
		`\s*green\s*:\s*` + number + `\s*blue\s*:\s*` + number + `\s*alpha\s*:\s*` + number + `\s*\]$`)
	callPattern = regexp.MustCompile(`(?i)^` + class + `\s*\.\s*` + selector + `\s*\(\s*` + number +
		`\s*,?\s*green\s*:\s*` + number + `\s*,?\s*blue\s*:\s*` + number + `\s*,?\s*alpha\s*:\s*` + number + `\s*\)$`)

	componentsPattern = regexp.MustCompile(`^` + number + `\s+` + number + `\s+` + number + `\s+` + number + `$`)
)

// matcher recognizes a single grammar. It returns None for input of a different shape
// so the next matcher can try.
type matcher struct {
	name  string
	match func(string) mo.Option[Color]
}

// matchers in priority order. Hex forms come first since they are unambiguous.
var matchers = []matcher{
	{"hex3", matchHex3},
	{"hex6", matchHex6},
	{"rgb", matchRGB},
	{"rgba", matchRGBA},
	{"hsl", matchHSL},
	{"hsla", matchHSLA},
	{"objc", matchMessage},
	{"macruby", matchCall},
	{"components", matchComponents},
}

// Parse reads a color in any supported notation. Surrounding whitespace is ignored and
// keywords are matched without regard to case.
func Parse(text string) (Color, error) {
	trimmed := strings.TrimSpace(text)
	for _, m := range matchers {
		if c, ok := m.match(trimmed).Get(); ok {
			return c, nil
		}
	}
	return Color{}, &UnrecognizedColorFormatError{Input: text}
}

// MustParse is like Parse but panics on unrecognized input.
func MustParse(text string) Color {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

// Matchers returns the names of the grammars Parse tries, in order.
func Matchers() []string {
	return lo.Map(matchers, func(m matcher, _ int) string {
		return m.name
	})
}

func matchHex3(s string) mo.Option[Color] {
	groups := hex3Pattern.FindStringSubmatch(s)
	if groups == nil {
		return mo.None[Color]()
	}
	return hexColor(groups[1]+groups[1], groups[2]+groups[2], groups[3]+groups[3])
}

func matchHex6(s string) mo.Option[Color] {
	groups := hex6Pattern.FindStringSubmatch(s)
	if groups == nil {
		return mo.None[Color]()
	}
	return hexColor(groups[1], groups[2], groups[3])
}

func hexColor(r, g, b string) mo.Option[Color] {
	var channels [3]uint8
	for i, digits := range []string{r, g, b} {
		v, err := strconv.ParseUint(digits, 16, 8)
		if err != nil {
			return mo.None[Color]()
		}
		channels[i] = uint8(v)
	}
	return mo.Some(FromBytes(channels[0], channels[1], channels[2], 1))
}

func matchRGB(s string) mo.Option[Color] {
	groups := rgbPattern.FindStringSubmatch(s)
	if groups == nil {
		return mo.None[Color]()
	}
	if groups[4] == "" {
		groups[4] = "1"
	}
	return rgbColor(groups[1:])
}

func matchRGBA(s string) mo.Option[Color] {
	groups := rgbaPattern.FindStringSubmatch(s)
	if groups == nil {
		return mo.None[Color]()
	}
	return rgbColor(groups[1:])
}

// rgbColor builds a color from three 0-255 channels and a [0, 1] alpha.
func rgbColor(fields []string) mo.Option[Color] {
	v, ok := floats(fields)
	if !ok {
		return mo.None[Color]()
	}
	return mo.Some(New(clamp(v[0], 255)/255, clamp(v[1], 255)/255, clamp(v[2], 255)/255, v[3]))
}

func matchHSL(s string) mo.Option[Color] {
	groups := hslPattern.FindStringSubmatch(s)
	if groups == nil {
		return mo.None[Color]()
	}
	return hsbColor(append(groups[1:], "1"))
}

func matchHSLA(s string) mo.Option[Color] {
	groups := hslaPattern.FindStringSubmatch(s)
	if groups == nil {
		return mo.None[Color]()
	}
	return hsbColor(groups[1:])
}

// hsbColor builds a color from hue degrees, two percentages and an alpha.
func hsbColor(fields []string) mo.Option[Color] {
	v, ok := floats(fields)
	if !ok {
		return mo.None[Color]()
	}
	return mo.Some(FromHSB(v[0], clamp(v[1], 100)/100, clamp(v[2], 100)/100, v[3]))
}

func matchMessage(s string) mo.Option[Color] {
	return componentColor(messagePattern.FindStringSubmatch(s))
}

func matchCall(s string) mo.Option[Color] {
	return componentColor(callPattern.FindStringSubmatch(s))
}

func matchComponents(s string) mo.Option[Color] {
	return componentColor(componentsPattern.FindStringSubmatch(s))
}

// componentColor builds a color from four [0, 1] floats captured by a pattern.
func componentColor(groups []string) mo.Option[Color] {
	if groups == nil {
		return mo.None[Color]()
	}
	v, ok := floats(groups[1:])
	if !ok {
		return mo.None[Color]()
	}
	return mo.Some(New(v[0], v[1], v[2], v[3]))
}

func floats(fields []string) ([]float64, bool) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// clamp restricts a value to [0, hi].
func clamp(x, hi float64) float64 {
	if x < 0 {
		return 0
	}
	if x > hi {
		return hi
	}
	return x
}
