package maple

import "fmt"

// ANSIHue names one of the eight ANSI terminal color positions.
type ANSIHue string

// ANSI hues in terminal order.
const (
	ANSIBlack   ANSIHue = "black"
	ANSIRed     ANSIHue = "red"
	ANSIGreen   ANSIHue = "green"
	ANSIYellow  ANSIHue = "yellow"
	ANSIBlue    ANSIHue = "blue"
	ANSIMagenta ANSIHue = "magenta"
	ANSICyan    ANSIHue = "cyan"
	ANSIWhite   ANSIHue = "white"
)

// ANSIHues lists the eight ANSI hues in terminal order.
var ANSIHues = [...]ANSIHue{
	ANSIBlack, ANSIRed, ANSIGreen, ANSIYellow,
	ANSIBlue, ANSIMagenta, ANSICyan, ANSIWhite,
}

// SlotNamer returns the output key for an ANSI hue at normal or bright intensity.
type SlotNamer func(hue ANSIHue, bright bool) string

// BrightPrefixNamer names slots "red" and "bright_red", as the theme schema expects.
func BrightPrefixNamer(hue ANSIHue, bright bool) string {
	if bright {
		return "bright_" + string(hue)
	}
	return string(hue)
}

// FallbackGray is used for any terminal slot whose hue chain and the gray
// hue are all undefined.
const FallbackGray Color = "#808080"

// hueSources lists, per chromatic ANSI hue, the base hues tried in order.
var hueSources = map[ANSIHue][]Hue{
	ANSIRed:     {HueRed, HueOrange, HuePink},
	ANSIGreen:   {HueGreen, HueCyan},
	ANSIYellow:  {HueYellow, HueOrange},
	ANSIBlue:    {HueBlue, HueCyan, HuePurple},
	ANSIMagenta: {HuePurple, HuePink, HueRed},
	ANSICyan:    {HueCyan, HueBlue, HueGreen},
}

const (
	// toneMix is how far gray is pushed toward black or white when the base
	// palette has no explicit black or white hue.
	toneMix = 0.7
	// brightMix is how far a bright slot moves away from its normal color.
	brightMix = 0.25
)

// BuildTerminalPalette derives the 16 ANSI terminal colors from a base palette.
//
// Chromatic slots take the first defined hue from a fixed fallback chain
// (e.g. magenta: purple, pink, red), then gray, then FallbackGray. The black
// and white slots use the black and white hues, or gray mixed 70% toward
// #000000 and #ffffff. Light schemes swap them so the black slot holds the
// background-adjacent light tone.
//
// Bright slots are the normal color mixed 25% toward white on dark schemes and
// toward black on light schemes. When that leaves the color unchanged the mix
// goes the other way, so a normal slot and its bright slot always differ.
func BuildTerminalPalette(m ColorModel, base BaseColor, isDark bool, name SlotNamer) (map[string]Color, error) {
	gray := FallbackGray
	if c, ok := base[HueGray]; ok && c != "" {
		gray = c
	}

	normal := make(map[ANSIHue]Color, len(ANSIHues))
	for hue, sources := range hueSources {
		normal[hue] = firstDefined(base, sources, gray)
	}

	darkTone, err := tone(m, base, HueBlack, gray, "#000000")
	if err != nil {
		return nil, err
	}
	lightTone, err := tone(m, base, HueWhite, gray, "#ffffff")
	if err != nil {
		return nil, err
	}

	toward, away := Color("#ffffff"), Color("#000000")
	if isDark {
		normal[ANSIBlack], normal[ANSIWhite] = darkTone, lightTone
	} else {
		normal[ANSIBlack], normal[ANSIWhite] = lightTone, darkTone
		toward, away = away, toward
	}

	result := make(map[string]Color, 2*len(ANSIHues))
	for _, hue := range ANSIHues {
		c, err := m.Mix(normal[hue], normal[hue], 0)
		if err != nil {
			return nil, fmt.Errorf("terminal %s: %w", hue, err)
		}
		bright, err := m.Mix(c, toward, brightMix)
		if err != nil {
			return nil, fmt.Errorf("terminal %s: %w", hue, err)
		}
		if bright == c {
			if bright, err = m.Mix(c, away, brightMix); err != nil {
				return nil, fmt.Errorf("terminal %s: %w", hue, err)
			}
		}

		for _, slot := range []struct {
			bright bool
			color  Color
		}{{false, c}, {true, bright}} {
			key := name(hue, slot.bright)
			if _, dup := result[key]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateSlot, key)
			}
			result[key] = slot.color
		}
	}
	return result, nil
}

func firstDefined(base BaseColor, hues []Hue, fallback Color) Color {
	for _, h := range hues {
		if c, ok := base[h]; ok && c != "" {
			return c
		}
	}
	return fallback
}

func tone(m ColorModel, base BaseColor, hue Hue, gray, target Color) (Color, error) {
	if c, ok := base[hue]; ok && c != "" {
		return c, nil
	}
	c, err := m.Mix(gray, target, toneMix)
	if err != nil {
		return "", fmt.Errorf("terminal %s: %w", hue, err)
	}
	return c, nil
}
