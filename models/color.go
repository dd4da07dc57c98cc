package models

import (
	"github.com/color-game/swatchbook/notation"
)

// ColorAPIResponse represents the part of the thecolorapi.com /id response used to name colors
type ColorAPIResponse struct {
	Hex  ColorHex  `json:"hex"`
	RGB  ColorRGB  `json:"rgb"`
	Name ColorName `json:"name"`
}

type ColorHex struct {
	Value string `json:"value"`
	Clean string `json:"clean"`
}

type ColorRGB struct {
	R     int    `json:"r"`
	G     int    `json:"g"`
	B     int    `json:"b"`
	Value string `json:"value"`
}

type ColorName struct {
	Value           string `json:"value"`
	ClosestNamedHex string `json:"closest_named_hex"`
	ExactMatchName  bool   `json:"exact_match_name"`
	Distance        int    `json:"distance"`
}

// ColorNotations holds a color rendered in every supported notation
type ColorNotations struct {
	Hex     string `json:"hex"`
	RGB     string `json:"rgb"`
	RGBA    string `json:"rgba"`
	HSL     string `json:"hsl"`
	HSLA    string `json:"hsla"`
	ObjC    string `json:"objc"`
	MacRuby string `json:"macruby"`
	CSSRGB  string `json:"css_rgb"`
	CSSRGBA string `json:"css_rgba"`
	CSS     string `json:"css"`
}

func NewColorNotations(c notation.Color, short bool) ColorNotations {
	all := notation.RenderAll(c, short)
	return ColorNotations{
		Hex:     all[notation.FormatHex],
		RGB:     all[notation.FormatRGB],
		RGBA:    all[notation.FormatRGBA],
		HSL:     all[notation.FormatHSL],
		HSLA:    all[notation.FormatHSLA],
		ObjC:    all[notation.FormatObjC],
		MacRuby: all[notation.FormatMacRuby],
		CSSRGB:  all[notation.FormatCSSRGB],
		CSSRGBA: all[notation.FormatCSSRGBA],
		CSS:     all[notation.FormatCSS],
	}
}

// ColorParseRequest is the body of POST /v1/colors/parse
type ColorParseRequest struct {
	Input string `json:"input"`
	Short bool   `json:"short"`
}

// ColorParseResponse describes a parsed color from every angle
type ColorParseResponse struct {
	Input     string         `json:"input"`
	Color     notation.Color `json:"color"`
	HSB       notation.HSB   `json:"hsb"`
	HSL       notation.HSL   `json:"hsl"`
	Notations ColorNotations `json:"notations"`
}

func NewColorParseResponse(input string, c notation.Color, short bool) ColorParseResponse {
	return ColorParseResponse{
		Input:     input,
		Color:     c,
		HSB:       c.HSB(),
		HSL:       c.HSL(),
		Notations: NewColorNotations(c, short),
	}
}

// ColorConvertRequest is the body of POST /v1/colors/convert
type ColorConvertRequest struct {
	Input  string `json:"input"`
	Format string `json:"format"`
	Short  bool   `json:"short"`
}

type ColorConvertResponse struct {
	Input  string          `json:"input"`
	Format notation.Format `json:"format"`
	Output string          `json:"output"`
}

// FormatInfo names an output format and shows what it looks like
type FormatInfo struct {
	Name    notation.Format `json:"name"`
	Example string          `json:"example"`
	Short   string          `json:"short"`
}

func NewFormatInfo(f notation.Format, sample notation.Color) FormatInfo {
	long, _ := notation.Render(sample, f, false)
	short, _ := notation.Render(sample, f, true)
	return FormatInfo{Name: f, Example: long, Short: short}
}
