package convert

import (
	"fmt"
	"strings"

	"previewforge/internal/model"
)

var statColors = map[string]string{
	"blue":   "#3B82F6",
	"green":  "#10B981",
	"purple": "#8B5CF6",
	"orange": "#F59E0B",
	"red":    "#EF4444",
}

var progressColors = map[string]string{
	"teal":   "#0D9488",
	"blue":   "#3B82F6",
	"green":  "#10B981",
	"orange": "#F59E0B",
	"purple": "#8B5CF6",
}

func (c *Converter) genProductCard(p props, indent int) string {
	c.usedIcons["image"] = true
	title := p.escaped("title", "Premium Product")
	price := p.escaped("price", "$99.99")
	description := p.escaped("description", "")
	rating := int(p.num("rating", 0))
	badge := p.escaped("badge", "")
	ind := indentOf(indent)

	badgeJSX := ""
	if badge != "" {
		badgeJSX = fmt.Sprintf("\n%s    <Chip style={{ position: 'absolute', top: 8, right: 8, backgroundColor: '#EF4444' }}>\n%s      <Text style={{ color: '#FFFFFF', fontSize: 10 }}>%s</Text>\n%s    </Chip>",
			ind, ind, badge, ind)
	}

	ratingJSX := ""
	if rating > 0 {
		c.usedIcons["star"] = true
		c.usedIcons["star-outline"] = true
		ratingJSX = fmt.Sprintf(`
%s    <View style={{ flexDirection: 'row', marginTop: 4 }}>
%s      {[...Array(5)].map((_, i) => (
%s        <Icon key={i} name={i < %d ? 'star' : 'star-outline'} size={16} color="#F59E0B" />
%s      ))}
%s    </View>`, ind, ind, ind, rating, ind, ind)
	}

	return fmt.Sprintf(`%s<Card mode="elevated" style={{ marginBottom: 16 }} onPress={() => {}}>
%s  <View style={{ height: 180, backgroundColor: '#F3F4F6', borderRadius: 12, justifyContent: 'center', alignItems: 'center' }}>
%s    <Icon name="image" size={80} color="#9CA3AF" />%s
%s  </View>
%s  <Card.Content style={{ paddingTop: 12 }}>
%s    <Text style={{ fontSize: 16, fontWeight: 'bold' }}>%s</Text>
%s    <Text style={{ color: theme.colors.textSecondary, marginVertical: 4 }}>%s</Text>
%s    <View style={{ flexDirection: 'row', justifyContent: 'space-between', alignItems: 'center', marginTop: 12 }}>
%s      <Text style={{ fontSize: 24, fontWeight: 'bold', color: theme.colors.primary }}>%s</Text>
%s      <Button mode="contained">Add to Cart</Button>
%s    </View>%s
%s  </Card.Content>
%s</Card>`, ind, ind, ind, badgeJSX, ind, ind, ind, title, ind, description,
		ind, ind, price, ind, ind, ratingJSX, ind, ind)
}

func (c *Converter) genCartItem(p props, indent int) string {
	c.usedIcons["image"] = true
	title := p.escaped("title", "Item")
	price := p.escaped("price", "$0.00")
	quantity := int(p.num("quantity", 1))
	ind := indentOf(indent)

	return fmt.Sprintf(`%s<Card style={{ marginBottom: 12 }}>
%s  <Card.Content>
%s    <View style={{ flexDirection: 'row', alignItems: 'center' }}>
%s      <View style={{ width: 80, height: 80, backgroundColor: '#E5E7EB', borderRadius: 8, justifyContent: 'center', alignItems: 'center' }}>
%s        <Icon name="image" size={32} color="#9CA3AF" />
%s      </View>
%s      <View style={{ flex: 1, marginLeft: 12 }}>
%s        <Text style={{ fontSize: 16, fontWeight: 'bold' }}>%s</Text>
%s        <Text style={{ fontSize: 18, fontWeight: '600', color: theme.colors.primary, marginTop: 4 }}>%s</Text>
%s      </View>
%s      <View style={{ flexDirection: 'row', alignItems: 'center', backgroundColor: '#F3F4F6', borderRadius: 8 }}>
%s        <IconButton icon="minus" size={16} onPress={() => {}} />
%s        <Text style={{ fontWeight: 'bold' }}>%d</Text>
%s        <IconButton icon="plus" size={16} onPress={() => {}} />
%s      </View>
%s    </View>
%s  </Card.Content>
%s</Card>`, ind, ind, ind, ind, ind, ind, ind, ind, title, ind, price, ind,
		ind, ind, ind, quantity, ind, ind, ind, ind, ind)
}

func (c *Converter) genPriceBreakdown(p props, indent int) string {
	subtotal := p.escaped("subtotal", "$0.00")
	shipping := p.escaped("shipping", "$0.00")
	tax := p.escaped("tax", "$0.00")
	total := p.escaped("total", "$0.00")
	ind := indentOf(indent)

	return fmt.Sprintf(`%s<Card style={{ marginBottom: 16 }}>
%s  <Card.Content>
%s    <View style={{ flexDirection: 'row', justifyContent: 'space-between', marginBottom: 8 }}>
%s      <Text>Subtotal</Text><Text>%s</Text>
%s    </View>
%s    <View style={{ flexDirection: 'row', justifyContent: 'space-between', marginBottom: 8 }}>
%s      <Text>Shipping</Text><Text>%s</Text>
%s    </View>
%s    <View style={{ flexDirection: 'row', justifyContent: 'space-between', marginBottom: 8 }}>
%s      <Text>Tax</Text><Text>%s</Text>
%s    </View>
%s    <Divider style={{ marginVertical: 8 }} />
%s    <View style={{ flexDirection: 'row', justifyContent: 'space-between' }}>
%s      <Text style={{ fontSize: 18, fontWeight: 'bold' }}>Total</Text>
%s      <Text style={{ fontSize: 18, fontWeight: 'bold', color: theme.colors.primary }}>%s</Text>
%s    </View>
%s  </Card.Content>
%s</Card>`, ind, ind, ind, ind, subtotal, ind, ind, ind, shipping, ind, ind,
		ind, tax, ind, ind, ind, ind, ind, total, ind, ind, ind)
}

func (c *Converter) genStatCard(p props, indent int) string {
	value := p.escaped("value", "0")
	label := p.escaped("label", "Stat")
	color, ok := statColors[p.str("color", "blue")]
	if !ok {
		color = statColors["blue"]
	}
	ind := indentOf(indent)

	return fmt.Sprintf(`%s<Card style={{ marginBottom: 16, flex: 1, marginHorizontal: 4 }}>
%s  <Card.Content>
%s    <Text style={{ fontSize: 32, fontWeight: 'bold', color: '%s' }}>%s</Text>
%s    <Text style={{ fontSize: 14, color: theme.colors.textSecondary, marginTop: 4 }}>%s</Text>
%s  </Card.Content>
%s</Card>`, ind, ind, ind, color, value, ind, label, ind, ind)
}

// genProgressBar accepts both 0..1 fractions and 0..100 percentages; anything
// above 1 is treated as a percentage.
func (c *Converter) genProgressBar(p props, indent int) string {
	value := p.num("value", 0)
	if value > 1 {
		value = value / 100
	}
	color, ok := progressColors[p.str("color", "teal")]
	if !ok {
		color = progressColors["teal"]
	}
	ind := indentOf(indent)

	labelJSX := ""
	if p.has("label") {
		labelJSX = fmt.Sprintf("%s  <Text style={{ fontSize: 14, color: theme.colors.textSecondary, marginBottom: 8 }}>%s</Text>\n",
			ind, p.escaped("label", ""))
	}

	return fmt.Sprintf(`%s<View style={{ marginBottom: 16 }}>
%s%s  <ProgressBar progress={%s} color="%s" style={{ height: 12, borderRadius: 8 }} />
%s</View>`, ind, labelJSX, ind, FormatNumber(value), color, ind)
}

func (c *Converter) genFormSection(p props, children []*model.Node, indent int) string {
	title := p.escaped("title", "Section")
	fragments := c.parseChildren(children, indent+indentStep)
	if len(fragments) == 0 {
		return ""
	}
	ind := indentOf(indent)

	return fmt.Sprintf(`%s<View style={{ marginBottom: 24 }}>
%s  <Text style={{ fontSize: 18, fontWeight: 'bold', marginBottom: 12 }}>%s</Text>
%s
%s</View>`, ind, ind, title, strings.Join(fragments, "\n"), ind)
}

func (c *Converter) genListItem(p props, indent int) string {
	title := p.escaped("title", "Item")
	ind := indentOf(indent)

	descAttr := ""
	if p.has("subtitle") {
		descAttr = fmt.Sprintf("\n%s  description=%q", ind, p.escaped("subtitle", ""))
	}
	leftAttr := ""
	if p.has("icon") {
		icon := MapIcon(p.str("icon", ""))
		c.usedIcons[icon] = true
		leftAttr = fmt.Sprintf("\n%s  left={props => <List.Icon {...props} icon=%q />}", ind, icon)
	}
	rightAttr := fmt.Sprintf("\n%s  right={props => <List.Icon {...props} icon=\"chevron-right\" />}", ind)
	if p.str("trailing", "chevron-right") != "chevron-right" {
		rightAttr = fmt.Sprintf("\n%s  right={props => <Switch value={false} />}", ind)
	}

	return fmt.Sprintf(`%s<List.Item
%s  title="%s"%s%s%s
%s  onPress={() => {}}
%s  style={{ marginBottom: 8 }}
%s/>`, ind, ind, title, descAttr, leftAttr, rightAttr, ind, ind, ind)
}

func (c *Converter) genAlert(p props, indent int) string {
	message := p.escaped("message", "Alert")
	icon := MapIcon(p.str("type", "info"))
	c.usedIcons[icon] = true
	ind := indentOf(indent)

	return fmt.Sprintf(`%s<Banner visible={true} icon="%s" style={{ marginBottom: 16 }}>
%s  %s
%s</Banner>`, ind, icon, ind, message, ind)
}

func (c *Converter) genEmptyState(p props, indent int) string {
	c.usedIcons["inbox"] = true
	title := p.escaped("title", "No items")
	subtitle := p.escaped("subtitle", "")
	ind := indentOf(indent)

	subtitleJSX := ""
	if subtitle != "" {
		subtitleJSX = fmt.Sprintf("\n%s  <Text style={{ fontSize: 16, color: theme.colors.textSecondary, textAlign: 'center', marginTop: 8 }}>\n%s    %s\n%s  </Text>",
			ind, ind, subtitle, ind)
	}

	return fmt.Sprintf(`%s<View style={{ alignItems: 'center', justifyContent: 'center', paddingVertical: 64 }}>
%s  <Icon name="inbox" size={64} color="#9CA3AF" />
%s  <Text style={{ fontSize: 20, fontWeight: '600', marginTop: 16, textAlign: 'center' }}>%s</Text>%s
%s</View>`, ind, ind, ind, title, subtitleJSX, ind)
}

func (c *Converter) genRating(p props, indent int) string {
	c.usedIcons["star"] = true
	c.usedIcons["star-outline"] = true
	value := int(p.num("value", 4))
	max := int(p.num("max", 5))
	if max < 1 {
		max = 5
	}
	ind := indentOf(indent)

	reviewsJSX := ""
	if p.has("reviews") {
		reviewsJSX = fmt.Sprintf("\n%s  <Text style={{ marginLeft: 8, color: theme.colors.textSecondary }}>(%s reviews)</Text>",
			ind, p.escaped("reviews", ""))
	}

	return fmt.Sprintf(`%s<View style={{ flexDirection: 'row', alignItems: 'center', marginBottom: 12 }}>
%s  {[...Array(%d)].map((_, i) => (
%s    <Icon key={i} name={i < %d ? 'star' : 'star-outline'} size={20} color="#F59E0B" />
%s  ))}%s
%s</View>`, ind, ind, max, ind, value, ind, reviewsJSX, ind)
}

func (c *Converter) genQuantityControl(p props, indent int) string {
	quantity := int(p.num("quantity", 1))
	ind := indentOf(indent)

	return fmt.Sprintf(`%s<View style={{ flexDirection: 'row', alignItems: 'center', backgroundColor: '#F3F4F6', borderRadius: 8, paddingHorizontal: 4 }}>
%s  <IconButton icon="minus" size={20} onPress={() => {}} />
%s  <Text style={{ fontWeight: 'bold', paddingHorizontal: 16 }}>%d</Text>
%s  <IconButton icon="plus" size={20} onPress={() => {}} />
%s</View>`, ind, ind, ind, quantity, ind, ind)
}
