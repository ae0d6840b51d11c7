package convert

import "fmt"

var buttonHeights = map[string]int{
	"sm": 32,
	"md": 44,
	"lg": 56,
}

// gradientRamps are the two-stop color pairs for gradient buttons, keyed by
// ramp name.
var gradientRamps = map[string][2]string{
	"teal":   {"#0D9488", "#14B8A6"},
	"blue":   {"#3B82F6", "#60A5FA"},
	"purple": {"#8B5CF6", "#A78BFA"},
	"orange": {"#F59E0B", "#FBBF24"},
	"green":  {"#10B981", "#34D399"},
	"pink":   {"#EC4899", "#F472B6"},
}

func (c *Converter) genButton(p props, indent int) string {
	text := p.escaped("text", "Button")
	mode := "text"
	switch p.str("variant", "contained") {
	case "contained", "solid":
		mode = "contained"
	case "outline":
		mode = "outlined"
	}
	height, ok := buttonHeights[p.str("size", "md")]
	if !ok {
		height = buttonHeights["md"]
	}
	ind := indentOf(indent)

	return fmt.Sprintf(`%s<Button
%s  mode="%s"
%s  contentStyle={{ height: %d }}
%s  style={{ marginBottom: 12 }}
%s  onPress={() => {}}
%s>
%s  %s
%s</Button>`, ind, ind, mode, ind, height, ind, ind, ind, ind, text, ind)
}

func (c *Converter) genGradientButton(p props, indent int) string {
	c.usesGradient = true
	text := p.escaped("text", "Button")
	ramp, ok := gradientRamps[p.str("gradient", "teal")]
	if !ok {
		ramp = gradientRamps["teal"]
	}
	ind := indentOf(indent)

	return fmt.Sprintf(`%s<LinearGradient
%s  colors={['%s', '%s']}
%s  start={{ x: 0, y: 0 }}
%s  end={{ x: 1, y: 0 }}
%s  style={{ borderRadius: 8, marginBottom: 12 }}
%s>
%s  <Button mode="text" textColor="#FFFFFF" contentStyle={{ height: 56 }} onPress={() => {}}>
%s    %s
%s  </Button>
%s</LinearGradient>`, ind, ind, ramp[0], ramp[1], ind, ind, ind, ind, ind,
		ind, text, ind, ind)
}

func (c *Converter) genSocialButton(p props, indent int) string {
	provider := p.str("provider", "Google")
	icon := MapIcon(provider)
	c.usedIcons[icon] = true
	ind := indentOf(indent)

	return fmt.Sprintf(`%s<Button
%s  mode="outlined"
%s  icon="%s"
%s  contentStyle={{ height: 56 }}
%s  style={{ marginBottom: 12 }}
%s  onPress={() => {}}
%s>
%s  Continue with %s
%s</Button>`, ind, ind, ind, icon, ind, ind, ind, ind, ind,
		EscapeString(provider), ind)
}

func (c *Converter) genIconButton(p props, indent int) string {
	icon := MapIcon(p.str("icon", "plus"))
	c.usedIcons[icon] = true
	return fmt.Sprintf("%s<IconButton icon=%q size={24} onPress={() => {}} />",
		indentOf(indent), icon)
}

func (c *Converter) genFAB(p props, indent int) string {
	icon := MapIcon(p.str("icon", "plus"))
	c.usedIcons[icon] = true
	ind := indentOf(indent)

	return fmt.Sprintf(`%s<FAB
%s  icon="%s"
%s  style={{ position: 'absolute', right: 16, bottom: 16 }}
%s  onPress={() => {}}
%s/>`, ind, ind, icon, ind, ind, ind)
}

func (c *Converter) genLinkButton(p props, indent int) string {
	text := p.escaped("text", "Link")
	align := p.str("align", "left")
	switch align {
	case "center", "right":
	default:
		align = "left"
	}
	ind := indentOf(indent)

	return fmt.Sprintf(`%s<Button
%s  mode="text"
%s  style={{ alignSelf: '%s' }}
%s  labelStyle={{ textAlign: '%s' }}
%s  onPress={() => {}}
%s>
%s  %s
%s</Button>`, ind, ind, ind, align, ind, align, ind, ind, ind, text, ind)
}
