package convert

import (
	"fmt"
	"strconv"
	"strings"
)

const fallbackColor = "#000000"

func parseHex(hex string) (r, g, b int, ok bool) {
	clean := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(clean) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(clean, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF), true
}

func formatHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(r), clampChannel(g), clampChannel(b))
}

func clampChannel(c int) int {
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}

// LightenColor blends a 6-digit hex color toward white by percent (0-100).
// Invalid input yields black rather than an error; color math runs on
// LLM-authored theme values and must never fail a conversion.
func LightenColor(hex string, percent float64) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return fallbackColor
	}
	blend := func(c int) int {
		return c + int(float64(255-c)*percent/100)
	}
	return formatHex(blend(r), blend(g), blend(b))
}

// DarkenColor scales each channel by factor (0-1); 0.8 gives the shade the
// theme uses for primaryDark. Invalid input yields black.
func DarkenColor(hex string, factor float64) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return fallbackColor
	}
	scale := func(c int) int {
		return int(float64(c) * factor)
	}
	return formatHex(scale(r), scale(g), scale(b))
}
