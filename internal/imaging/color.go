package imaging

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/region-tools-mcp/internal/regions"
)

// ParseHexColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (the '#' is
// optional). Shorthand digits are doubled, so "03F" means "0033FF". Colors
// without an alpha part are fully opaque.
func ParseHexColor(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	alpha := uint8(255)
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	case 8:
		a, err := strconv.ParseUint(s[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		alpha = uint8(a)
		s = s[:6]
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: want 3, 6 or 8 hex digits", hex)
	}

	c, err := colorful.Hex("#" + strings.ToLower(s))
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// HexString formats c as "#RRGGBB", dropping alpha.
func HexString(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// goldenAngle spreads consecutive hues around the color wheel so that
// neighboring labels get clearly different colors.
const goldenAngle = 137.50776405003785

// LabelColor returns the display color for a region label. The mapping is
// deterministic and depends only on l, so any number of labels can be shown
// regardless of the 8-bit channel range.
func LabelColor(l regions.Label) color.NRGBA {
	hue := math.Mod(float64(l)*goldenAngle, 360)
	if hue < 0 {
		hue += 360
	}
	// alternate value bands so hues that wrap close together still differ
	value := 0.95
	if l%2 != 0 {
		value = 0.75
	}
	r, g, b := colorful.Hsv(hue, 0.70, value).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
