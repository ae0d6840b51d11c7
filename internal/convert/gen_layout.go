package convert

import (
	"fmt"
	"strings"

	"previewforge/internal/model"
)

func (c *Converter) genContainer(p props, children []*model.Node, indent int) string {
	padding := p.num("padding", 16)
	direction := p.str("direction", "column")
	gap := p.num("gap", 0)

	fragments := c.parseChildren(children, indent+indentStep)
	if len(fragments) == 0 {
		return ""
	}

	flexDirection := "column"
	if direction == "row" {
		flexDirection = "row"
	}
	gapStyle := ""
	if gap > 0 {
		gapStyle = fmt.Sprintf(", gap: %s", FormatNumber(gap))
	}
	ind := indentOf(indent)

	return fmt.Sprintf("%s<View style={{ padding: %s, flexDirection: '%s'%s }}>\n%s\n%s</View>",
		ind, FormatNumber(padding), flexDirection, gapStyle,
		strings.Join(fragments, "\n"), ind)
}

var cardElevations = map[string]int{
	"none": 0,
	"sm":   2,
	"md":   4,
	"lg":   8,
	"xl":   12,
}

func (c *Converter) genCard(p props, children []*model.Node, indent int) string {
	padding := p.num("padding", 20)
	elevation, ok := cardElevations[p.str("elevation", "md")]
	if !ok {
		elevation = 4
	}

	fragments := c.parseChildren(children, indent+indentStep)
	if len(fragments) == 0 {
		return ""
	}

	ind := indentOf(indent)
	return fmt.Sprintf("%s<Card style={{ padding: %s, elevation: %d }}>\n%s\n%s</Card>",
		ind, FormatNumber(padding), elevation,
		strings.Join(fragments, "\n"), ind)
}

func (c *Converter) genSpacer(p props, indent int) string {
	height := p.num("height", 16)
	return fmt.Sprintf("%s<View style={{ height: %s }} />", indentOf(indent), FormatNumber(height))
}

// genGrid lays items out with flexWrap rather than a grid primitive; the
// per-item width accounts for the gap so columns line up:
// width = 100/columns - gap*(columns-1)/columns (percent).
func (c *Converter) genGrid(p props, children []*model.Node, indent int) string {
	columns := p.intval("columns", 2)
	if columns < 1 {
		columns = 1
	}
	gap := p.num("gap", 16)
	widthPercent := 100/float64(columns) - gap*float64(columns-1)/float64(columns)

	ind := indentOf(indent)
	itemInd := indentOf(indent + indentStep)
	contentInd := indentOf(indent + 2*indentStep)

	items := make([]string, 0, len(children))
	for _, child := range children {
		fragment := strings.TrimSpace(c.parseNode(child, indent+indentStep))
		if fragment == "" {
			continue
		}
		items = append(items, fmt.Sprintf("%s<View style={{ width: '%s%%', marginBottom: %s }}>\n%s%s\n%s</View>",
			itemInd, FormatNumber(widthPercent), FormatNumber(gap),
			contentInd, fragment, itemInd))
	}
	if len(items) == 0 {
		return ""
	}

	return fmt.Sprintf("%s<View style={{ flexDirection: 'row', flexWrap: 'wrap', gap: %s }}>\n%s\n%s</View>",
		ind, FormatNumber(gap), strings.Join(items, "\n"), ind)
}

func (c *Converter) genStack(children []*model.Node, indent int) string {
	fragments := c.parseChildren(children, indent+indentStep)
	if len(fragments) == 0 {
		return ""
	}
	ind := indentOf(indent)
	return fmt.Sprintf("%s<View style={{ position: 'relative' }}>\n%s\n%s</View>",
		ind, strings.Join(fragments, "\n"), ind)
}
