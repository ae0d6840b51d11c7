package convert

import "fmt"

// headerFontSizes is the named-size lookup for headers; unrecognized names
// fall back to the "xl" entry.
var headerFontSizes = map[string]int{
	"xs":   12,
	"sm":   14,
	"base": 16,
	"lg":   20,
	"xl":   24,
	"2xl":  30,
	"3xl":  36,
}

var textFontSizes = map[string]int{
	"xs":   12,
	"sm":   14,
	"base": 16,
	"lg":   18,
	"xl":   20,
}

func (c *Converter) genHeader(p props, indent int) string {
	title := p.escaped("title", "Header")
	size, ok := headerFontSizes[p.str("size", "xl")]
	if !ok {
		size = headerFontSizes["xl"]
	}
	align := p.str("align", "left")
	ind := indentOf(indent)
	return fmt.Sprintf("%s<Text style={{ fontSize: %d, fontWeight: 'bold', textAlign: '%s' }}>\n%s  %s\n%s</Text>",
		ind, size, align, ind, title, ind)
}

func (c *Converter) genText(p props, indent int) string {
	text := p.escaped("text", "")
	size, ok := textFontSizes[p.str("size", "base")]
	if !ok {
		size = textFontSizes["base"]
	}
	textColor := "theme.colors.text"
	switch p.str("color", "text") {
	case "secondary":
		textColor = "theme.colors.textSecondary"
	case "error":
		textColor = "theme.colors.error"
	}
	ind := indentOf(indent)
	return fmt.Sprintf("%s<Text style={{ fontSize: %d, color: %s }}>\n%s  %s\n%s</Text>",
		ind, size, textColor, ind, text, ind)
}

// genDivider renders a bare rule, or rule+label+rule when inline text is
// given.
func (c *Converter) genDivider(p props, indent int) string {
	ind := indentOf(indent)
	if !p.has("text") {
		return fmt.Sprintf("%s<Divider style={{ marginVertical: 8 }} />", ind)
	}
	text := p.escaped("text", "")
	return fmt.Sprintf(`%s<View style={{ flexDirection: 'row', alignItems: 'center', marginVertical: 16 }}>
%s  <Divider style={{ flex: 1 }} />
%s  <Text style={{ marginHorizontal: 16, color: theme.colors.textSecondary }}>%s</Text>
%s  <Divider style={{ flex: 1 }} />
%s</View>`, ind, ind, ind, text, ind, ind)
}

var badgeColors = map[string]string{
	"blue":   "#3B82F6",
	"green":  "#10B981",
	"red":    "#EF4444",
	"yellow": "#F59E0B",
	"purple": "#8B5CF6",
	"gray":   "#6B7280",
}

func (c *Converter) genBadge(p props, indent int) string {
	text := p.escaped("text", "Badge")
	color, ok := badgeColors[p.str("color", "blue")]
	if !ok {
		color = badgeColors["blue"]
	}
	ind := indentOf(indent)
	return fmt.Sprintf(`%s<Chip
%s  style={{ backgroundColor: '%s20', borderColor: '%s' }}
%s  textStyle={{ color: '%s', fontSize: 12, fontWeight: '600' }}
%s>
%s  %s
%s</Chip>`, ind, ind, color, color, ind, color, ind, ind, text, ind)
}
