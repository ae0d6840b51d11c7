package convert

import (
	"fmt"
	"strings"
)

// Images have no real asset pipeline behind them, so every image-like node
// renders as a neutral placeholder box with an icon.

func (c *Converter) genImage(p props, indent int) string {
	c.usedIcons["image"] = true
	height := p.num("height", 200)
	borderRadius := p.num("borderRadius", 8)
	ind := indentOf(indent)

	return fmt.Sprintf(`%s<View style={{
%s  height: %s,
%s  backgroundColor: '#E5E7EB',
%s  borderRadius: %s,
%s  justifyContent: 'center',
%s  alignItems: 'center',
%s  marginBottom: 16
%s}}>
%s  <Icon name="image" size={64} color="#9CA3AF" />
%s</View>`, ind, ind, FormatNumber(height), ind, ind, FormatNumber(borderRadius),
		ind, ind, ind, ind, ind, ind)
}

func (c *Converter) genAvatar(p props, indent int) string {
	size := p.num("size", 48)
	ind := indentOf(indent)

	// The initial is the first rune of the raw name, escaped afterwards, so
	// quote and backslash names cannot break the attribute.
	initial := "U"
	if name := strings.TrimSpace(p.str("name", "User")); name != "" {
		for _, r := range name {
			initial = strings.ToUpper(string(r))
			break
		}
	}

	return fmt.Sprintf(`%s<Avatar.Text
%s  size={%s}
%s  label="%s"
%s  style={{ marginBottom: 12 }}
%s/>`, ind, ind, FormatNumber(size), ind, EscapeString(initial), ind, ind)
}

func (c *Converter) genIllustrationHeader(p props, indent int) string {
	c.usedIcons["image"] = true
	title := p.escaped("title", "Welcome")
	subtitle := p.escaped("subtitle", "")
	ind := indentOf(indent)

	subtitleJSX := ""
	if subtitle != "" {
		subtitleJSX = fmt.Sprintf("\n%s  <Text style={{ fontSize: 16, color: theme.colors.textSecondary, textAlign: 'center', marginTop: 8 }}>\n%s    %s\n%s  </Text>",
			ind, ind, subtitle, ind)
	}

	return fmt.Sprintf(`%s<View style={{ alignItems: 'center', marginBottom: 32 }}>
%s  <Icon name="image" size={120} color="#9CA3AF" />
%s  <Text style={{ fontSize: 24, fontWeight: 'bold', textAlign: 'center', marginTop: 24 }}>%s</Text>%s
%s</View>`, ind, ind, ind, title, subtitleJSX, ind)
}

func (c *Converter) genHeroSection(p props, indent int) string {
	c.usesGradient = true
	height := p.num("height", 380)
	title := p.escaped("title", "Welcome to Your App")
	subtitle := p.escaped("subtitle", "Build something amazing today")
	ind := indentOf(indent)

	return fmt.Sprintf(`%s<LinearGradient
%s  colors={[theme.colors.primary, theme.colors.primaryDark]}
%s  style={{
%s    height: %s,
%s    borderRadius: 16,
%s    padding: 32,
%s    justifyContent: 'center',
%s    alignItems: 'center'
%s  }}
%s>
%s  <Text style={{
%s    fontSize: 36,
%s    fontWeight: '800',
%s    color: 'white',
%s    textAlign: 'center'
%s  }}>%s</Text>
%s  <Text style={{
%s    fontSize: 18,
%s    color: '#FFFFFFCC',
%s    textAlign: 'center',
%s    marginTop: 16
%s  }}>%s</Text>
%s</LinearGradient>`, ind, ind, ind, ind, FormatNumber(height), ind, ind, ind,
		ind, ind, ind, ind, ind, ind, ind, ind, ind, title, ind, ind, ind, ind,
		ind, ind, subtitle, ind)
}

// genImageGallery emits a fixed three-item horizontal strip of placeholders.
func (c *Converter) genImageGallery(indent int) string {
	c.usedIcons["image"] = true
	ind := indentOf(indent)
	ind2 := indentOf(indent + indentStep)
	ind4 := indentOf(indent + 2*indentStep)

	return fmt.Sprintf(`%s<ScrollView
%s  horizontal
%s  showsHorizontalScrollIndicator={false}
%s  style={{ marginBottom: 16 }}
%s>
%s{[1, 2, 3].map(i => (
%s<View key={i} style={{
%s  width: 200,
%s  height: 150,
%s  backgroundColor: '#E5E7EB',
%s  borderRadius: 8,
%s  marginRight: 12,
%s  justifyContent: 'center',
%s  alignItems: 'center'
%s}}>
%s  <Icon name="image" size={48} color="#9CA3AF" />
%s</View>
%s))}
%s</ScrollView>`, ind, ind, ind, ind, ind, ind2, ind4, ind4, ind4, ind4, ind4,
		ind4, ind4, ind4, ind4, ind4, ind4, ind2, ind)
}
