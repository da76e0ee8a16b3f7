// Package colorful implements color derivation using the go-colorful library.
package colorful

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fwojciec/maple"
	colorfullib "github.com/lucasb-eyer/go-colorful"
)

// Compile-time interface verification.
var _ maple.ColorModel = (*Model)(nil)

// Default text colors returned by ContrastText.
const (
	DefaultLightText maple.Color = "#ffffff"
	DefaultDarkText  maple.Color = "#000000"
)

// luminanceThreshold is the relative luminance above which dark text has
// more contrast than light text (WCAG contrast ratios are equal at ~0.179).
const luminanceThreshold = 0.179

// Model implements maple.ColorModel with linear RGB arithmetic.
// Colors are written as lowercase "#rrggbb", or "#rrggbbaa" when translucent.
type Model struct {
	Light maple.Color // Text color for dark backgrounds
	Dark  maple.Color // Text color for light backgrounds
}

// NewModel returns a Model with white and black text colors.
func NewModel() *Model {
	return &Model{
		Light: DefaultLightText,
		Dark:  DefaultDarkText,
	}
}

// Alpha returns c with its opacity multiplied by alpha. Alpha is clamped to
// [0, 1] and NaN is treated as 0. The result always carries an alpha byte.
func (m *Model) Alpha(c maple.Color, alpha float64) (maple.Color, error) {
	rgb, a, err := Parse(c)
	if err != nil {
		return "", err
	}
	return format(rgb, a*clamp(alpha), true), nil
}

// ContrastText returns Dark for light backgrounds and Light otherwise, based
// on the relative luminance of the background. Background alpha is ignored.
func (m *Model) ContrastText(background maple.Color) (maple.Color, error) {
	rgb, _, err := Parse(background)
	if err != nil {
		return "", err
	}
	if Luminance(rgb) > luminanceThreshold {
		return m.Dark, nil
	}
	return m.Light, nil
}

// Mix interpolates linearly in RGB and alpha from a to b. T is clamped to [0, 1].
func (m *Model) Mix(a, b maple.Color, t float64) (maple.Color, error) {
	rgbA, alphaA, err := Parse(a)
	if err != nil {
		return "", err
	}
	rgbB, alphaB, err := Parse(b)
	if err != nil {
		return "", err
	}
	t = clamp(t)
	return format(rgbA.BlendRgb(rgbB, t), alphaA+t*(alphaB-alphaA), false), nil
}

// Parse splits a "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa" color into its RGB
// part and an opacity in [0, 1].
func Parse(c maple.Color) (colorfullib.Color, float64, error) {
	s := strings.TrimPrefix(string(c), "#")
	var rgb, alpha string
	switch len(s) {
	case 3, 6:
		rgb = s
	case 4:
		rgb, alpha = s[:3], strings.Repeat(s[3:], 2)
	case 8:
		rgb, alpha = s[:6], s[6:]
	default:
		return colorfullib.Color{}, 0, fmt.Errorf("%w: %q", maple.ErrInvalidColor, c)
	}

	col, err := colorfullib.Hex("#" + rgb)
	if err != nil {
		return colorfullib.Color{}, 0, fmt.Errorf("%w: %q", maple.ErrInvalidColor, c)
	}
	if alpha == "" {
		return col, 1, nil
	}
	v, err := strconv.ParseUint(alpha, 16, 8)
	if err != nil {
		return colorfullib.Color{}, 0, fmt.Errorf("%w: %q", maple.ErrInvalidColor, c)
	}
	return col, float64(v) / 255, nil
}

// Luminance returns the relative luminance of c in [0, 1].
func Luminance(c colorfullib.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func format(c colorfullib.Color, alpha float64, withAlpha bool) maple.Color {
	hex := c.Clamped().Hex()
	a := uint8(math.Round(clamp(alpha) * 255))
	if !withAlpha && a == 255 {
		return maple.Color(hex)
	}
	return maple.Color(fmt.Sprintf("%s%02x", hex, a))
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
