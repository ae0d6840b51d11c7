package convert

import (
	"fmt"
	"strings"

	"previewforge/internal/model"
)

// parseNode is the single recursive entry point of the compiler. It guards
// against invalid nodes, canonicalizes the kind, records the emitted symbol
// for import generation, and dispatches to the matching generator. A panic in
// any generator is contained here: the node contributes an empty fragment and
// a warning, and the rest of the tree keeps rendering.
func (c *Converter) parseNode(n *model.Node, indent int) (out string) {
	if !n.Valid() {
		return ""
	}

	idx := c.preorder
	c.preorder++

	kind := Canonicalize(n.Kind)
	if sym, ok := rnSymbols[kind]; ok {
		c.usedComponents[sym] = true
	}

	defer func() {
		if r := recover(); r != nil {
			c.warnf("error generating %s: %v", kind, r)
			out = ""
		}
	}()

	p := nodeProps(n)

	switch kind {
	// Layout
	case KindContainer:
		return c.genContainer(p, n.Children, indent)
	case KindCard:
		return c.genCard(p, n.Children, indent)
	case KindSpacer:
		return c.genSpacer(p, indent)
	case KindGrid:
		return c.genGrid(p, n.Children, indent)
	case KindStack:
		return c.genStack(n.Children, indent)

	// Content
	case KindHeader:
		return c.genHeader(p, indent)
	case KindText:
		return c.genText(p, indent)
	case KindDivider:
		return c.genDivider(p, indent)
	case KindBadge, KindChip:
		return c.genBadge(p, indent)

	// Input
	case KindIconInput:
		return c.genIconInput(p, idx, indent)
	case KindSearchInput:
		return c.genSearchInput(p, idx, indent)
	case KindTextInput:
		return c.genTextInput(p, p.boolean("secure", false), idx, indent)
	case KindPasswordInput:
		return c.genTextInput(p, true, idx, indent)
	case KindCheckbox:
		return c.genCheckbox(p, idx, indent)
	case KindSwitch:
		return c.genSwitch(p, idx, indent)

	// Buttons
	case KindButton:
		if p.has("gradient") {
			return c.genGradientButton(p, indent)
		}
		return c.genButton(p, indent)
	case KindGradientButton:
		return c.genGradientButton(p, indent)
	case KindSocialButton:
		return c.genSocialButton(p, indent)
	case KindIconButton:
		return c.genIconButton(p, indent)
	case KindFAB:
		return c.genFAB(p, indent)
	case KindLinkButton:
		return c.genLinkButton(p, indent)

	// Media
	case KindImage:
		return c.genImage(p, indent)
	case KindAvatar:
		return c.genAvatar(p, indent)
	case KindIllustrationHeader:
		return c.genIllustrationHeader(p, indent)
	case KindHeroSection:
		return c.genHeroSection(p, indent)
	case KindImageGallery:
		return c.genImageGallery(indent)

	// Navigation
	case KindAppBar:
		return c.genAppBar(p, indent)
	case KindTabBar:
		return c.genTabBar(p, indent)

	// Domain
	case KindProductCard:
		return c.genProductCard(p, indent)
	case KindCartItem:
		return c.genCartItem(p, indent)
	case KindPriceBreakdown:
		return c.genPriceBreakdown(p, indent)
	case KindStatCard:
		return c.genStatCard(p, indent)
	case KindProgressBar:
		return c.genProgressBar(p, indent)
	case KindFormSection:
		return c.genFormSection(p, n.Children, indent)
	case KindListItem:
		return c.genListItem(p, indent)
	case KindAlert:
		return c.genAlert(p, indent)
	case KindEmptyState:
		return c.genEmptyState(p, indent)
	case KindRating:
		return c.genRating(p, indent)
	case KindQuantityControl:
		return c.genQuantityControl(p, indent)

	case KindUnknown:
		// Forward compatibility: an unmapped kind that still carries
		// children renders as a plain container; a childless one is dropped.
		if len(n.Children) > 0 {
			c.usedComponents["View"] = true
			return c.genContainer(p, n.Children, indent)
		}
		c.warnf("unknown component: %s", strings.TrimSpace(n.Kind))
		return ""
	}

	return ""
}

// parseChildren walks child nodes at one deeper indent level and drops empty
// fragments, so containers can collapse cleanly.
func (c *Converter) parseChildren(children []*model.Node, indent int) []string {
	out := make([]string, 0, len(children))
	for _, child := range children {
		if fragment := c.parseNode(child, indent); fragment != "" {
			out = append(out, fragment)
		}
	}
	return out
}

// stateVar derives the state variable and setter names for an interactive
// node from its pre-order index, keeping generated identifiers reproducible.
func stateVar(prefix string, idx int) (name, setter string) {
	name = fmt.Sprintf("%s%d", prefix, idx)
	setter = "set" + strings.ToUpper(name[:1]) + name[1:]
	return name, setter
}
