package datasets

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses hex colors (#RGB, #RRGGBB, #RRGGBBAA), rgb()/rgba()
// functions and CSS color names.
// An rgba alpha above 1 is clamped to fully opaque.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return color.RGBA{}, fmt.Errorf("empty color")
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(strings.ToLower(s), "rgb"):
		return parseFunc(s)
	}

	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color name %q", s)
	}
	return c, nil
}

// MustParseColor is like ParseColor but panics on invalid input.
func MustParseColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(hex string) (color.RGBA, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color #%s", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color #%s: %w", hex, err)
	}
	a := uint32(v & 0xff)
	return color.RGBA{
		R: uint8((v >> 24 & 0xff) * uint64(a) / 0xff),
		G: uint8((v >> 16 & 0xff) * uint64(a) / 0xff),
		B: uint8((v >> 8 & 0xff) * uint64(a) / 0xff),
		A: uint8(a),
	}, nil
}

func parseFunc(s string) (color.RGBA, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return color.RGBA{}, fmt.Errorf("invalid color function %q", s)
	}
	name := strings.ToLower(strings.TrimSpace(s[:open]))
	parts := strings.Split(s[open+1:len(s)-1], ",")
	switch {
	case name == "rgb" && len(parts) == 3:
	case name == "rgba" && len(parts) == 4:
	default:
		return color.RGBA{}, fmt.Errorf("invalid color function %q", s)
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("invalid color channel %q in %q", parts[i], s)
		}
		channels[i] = uint8(v)
	}

	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 {
			return color.RGBA{}, fmt.Errorf("invalid alpha %q in %q", parts[3], s)
		}
		alpha = min(a, 1)
	}

	// color.RGBA is alpha-premultiplied.
	return color.RGBA{
		R: uint8(float64(channels[0]) * alpha),
		G: uint8(float64(channels[1]) * alpha),
		B: uint8(float64(channels[2]) * alpha),
		A: uint8(255 * alpha),
	}, nil
}
