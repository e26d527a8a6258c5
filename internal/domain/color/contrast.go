// Package color implements hex color parsing and WCAG 2.x contrast math.
package color

import (
	"math"
	"regexp"
	"strconv"
)

var (
	// hexPattern is the broad format check: #RGB, #RRGGBB or #RRGGBBAA.
	hexPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)
	// rgbPattern is the only form contrast math accepts.
	rgbPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})$`)
)

// RGB is a color with three 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// IsHex reports whether s is a 3, 6 or 8 digit hex color with a leading '#'.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// ParseHex decodes "#RRGGBB" (case-insensitive). Any other form, including
// the 3 and 8 digit ones, is rejected.
func ParseHex(s string) (RGB, bool) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}

// RelativeLuminance returns the WCAG relative luminance of c, in [0,1].
func RelativeLuminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// linearize converts an sRGB channel to linear light.
func linearize(c uint8) float64 {
	s := float64(c) / 255
	if s <= 0.03928 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between two "#RRGGBB"
// colors, in [1,21]. ok is false when either color does not parse; callers
// skip the comparison in that case.
func ContrastRatio(a, b string) (ratio float64, ok bool) {
	ca, ok := ParseHex(a)
	if !ok {
		return 0, false
	}
	cb, ok := ParseHex(b)
	if !ok {
		return 0, false
	}
	la, lb := RelativeLuminance(ca), RelativeLuminance(cb)
	lighter, darker := math.Max(la, lb), math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05), true
}
