package convert

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SafeNumber coerces a loosely typed property value to a number. Numeric
// types pass through; strings are stripped down to digits and dots before
// parsing ("24px" -> 24). Anything else, including nil and unparsable
// leftovers, yields the default. Never panics.
func SafeNumber(value any, def float64) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
		return def
	case string:
		var b strings.Builder
		for _, r := range v {
			if (r >= '0' && r <= '9') || r == '.' {
				b.WriteRune(r)
			}
		}
		cleaned := b.String()
		if cleaned == "" {
			return def
		}
		if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return f
		}
		return def
	case bool:
		return def
	case nil:
		return def
	default:
		return def
	}
}

// FormatNumber renders a float the way the generated TSX wants it: no
// exponent, no trailing zeros (16 not 16.000000, 42.5 stays 42.5).
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// EscapeString stringifies a property value and escapes it for interpolation
// inside a TSX string literal or JSX text node. Backslash goes first so later
// replacements cannot double up.
func EscapeString(value any) string {
	var s string
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		s = v
	case float64:
		s = FormatNumber(v)
	default:
		s = fmt.Sprint(v)
	}
	r := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		"\n", `\n`,
		`"`, `\"`,
	)
	return r.Replace(s)
}

// SanitizeName reduces a screen name to a PascalCase identifier usable as
// both a type name and a filename stem. Every non-alphanumeric rune is a word
// break; empty results fall back to "Screen", and a leading digit gets the
// same prefix so the identifier stays valid.
func SanitizeName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for _, w := range words {
		var clean []rune
		for _, r := range w {
			if r < 128 && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
				clean = append(clean, r)
			}
		}
		if len(clean) == 0 {
			continue
		}
		clean[0] = unicode.ToUpper(clean[0])
		b.WriteString(string(clean))
	}
	out := b.String()
	if out == "" {
		return "Screen"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "Screen" + out
	}
	return out
}

// indentOf returns n spaces. Generators thread indent depths through the
// walker so nested fragments line up in the emitted file.
func indentOf(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
