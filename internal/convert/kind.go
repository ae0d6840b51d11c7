package convert

import "strings"

// Kind is the canonical component kind after alias resolution. The component
// model arrives with loosely typed "type" strings authored by LLM calls, so
// every raw string must resolve to exactly one of these values or to
// KindUnknown.
type Kind int

const (
	KindUnknown Kind = iota

	// Layout
	KindContainer
	KindCard
	KindSpacer
	KindGrid
	KindStack

	// Content
	KindHeader
	KindText
	KindDivider
	KindBadge
	KindChip

	// Input
	KindIconInput
	KindSearchInput
	KindTextInput
	KindPasswordInput
	KindCheckbox
	KindSwitch

	// Buttons
	KindButton
	KindGradientButton
	KindSocialButton
	KindIconButton
	KindFAB
	KindLinkButton

	// Media
	KindImage
	KindAvatar
	KindIllustrationHeader
	KindHeroSection
	KindImageGallery

	// Navigation
	KindAppBar
	KindTabBar

	// Domain
	KindProductCard
	KindCartItem
	KindPriceBreakdown
	KindStatCard
	KindProgressBar
	KindFormSection
	KindListItem
	KindAlert
	KindEmptyState
	KindRating
	KindQuantityControl
)

// kindNames doubles as the canonical spelling used in diagnostics.
var kindNames = map[Kind]string{
	KindUnknown:            "unknown",
	KindContainer:          "container",
	KindCard:               "card",
	KindSpacer:             "spacer",
	KindGrid:               "grid",
	KindStack:              "stack",
	KindHeader:             "header",
	KindText:               "text",
	KindDivider:            "divider",
	KindBadge:              "badge",
	KindChip:               "chip",
	KindIconInput:          "iconinput",
	KindSearchInput:        "searchinput",
	KindTextInput:          "textinput",
	KindPasswordInput:      "passwordinput",
	KindCheckbox:           "checkbox",
	KindSwitch:             "switch",
	KindButton:             "button",
	KindGradientButton:     "gradientbutton",
	KindSocialButton:       "socialbutton",
	KindIconButton:         "iconbutton",
	KindFAB:                "floatingactionbutton",
	KindLinkButton:         "linkbutton",
	KindImage:              "image",
	KindAvatar:             "avatar",
	KindIllustrationHeader: "illustrationheader",
	KindHeroSection:        "herosection",
	KindImageGallery:       "imagegallery",
	KindAppBar:             "appbar",
	KindTabBar:             "tabbar",
	KindProductCard:        "productcard",
	KindCartItem:           "cartitem",
	KindPriceBreakdown:     "pricebreakdown",
	KindStatCard:           "statcard",
	KindProgressBar:        "progressbar",
	KindFormSection:        "formsection",
	KindListItem:           "listitem",
	KindAlert:              "alert",
	KindEmptyState:         "emptystate",
	KindRating:             "rating",
	KindQuantityControl:    "quantitycontrol",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// kindTable maps normalized raw type strings to canonical kinds. Keys are
// lowercase with separators stripped; the "custom" prefix is handled in
// Canonicalize so CustomCard, custom_card etc. resolve through the same rows.
var kindTable = map[string]Kind{
	// Layout
	"container": KindContainer,
	"card":      KindCard,
	"panel":     KindCard,
	"spacer":    KindSpacer,
	"grid":      KindGrid,
	"stack":     KindStack,

	// Content
	"header":  KindHeader,
	"text":    KindText,
	"label":   KindText,
	"divider": KindDivider,
	"badge":   KindBadge,
	"chip":    KindChip,

	// Input
	"iconinput":     KindIconInput,
	"searchinput":   KindSearchInput,
	"searchbar":     KindSearchInput,
	"textinput":     KindTextInput,
	"textfield":     KindTextInput,
	"input":         KindTextInput,
	"passwordinput": KindPasswordInput,
	"password":      KindPasswordInput,
	"pwd":           KindPasswordInput,
	"checkbox":      KindCheckbox,
	"switch":        KindSwitch,
	"toggle":        KindSwitch,

	// Buttons
	"button":               KindButton,
	"cta":                  KindButton,
	"action":               KindButton,
	"primarybutton":        KindButton,
	"submit":               KindButton,
	"gradientbutton":       KindGradientButton,
	"socialbutton":         KindSocialButton,
	"iconbutton":           KindIconButton,
	"floatingactionbutton": KindFAB,
	"fab":                  KindFAB,
	"linkbutton":           KindLinkButton,
	"link":                 KindLinkButton,
	"anchor":               KindLinkButton,
	"a":                    KindLinkButton,

	// Media
	"image":              KindImage,
	"heroimage":          KindImage,
	"avatar":             KindAvatar,
	"illustrationheader": KindIllustrationHeader,
	"hero":               KindHeroSection,
	"herosection":        KindHeroSection,
	"imagegallery":       KindImageGallery,

	// Navigation
	"appbar": KindAppBar,
	"tabbar": KindTabBar,

	// Domain
	"productcard":     KindProductCard,
	"cartitem":        KindCartItem,
	"pricebreakdown":  KindPriceBreakdown,
	"statcard":        KindStatCard,
	"progressbar":     KindProgressBar,
	"formsection":     KindFormSection,
	"form":            KindFormSection,
	"group":           KindFormSection,
	"listitem":        KindListItem,
	"alert":           KindAlert,
	"banner":          KindAlert,
	"emptystate":      KindEmptyState,
	"rating":          KindRating,
	"quantitycontrol": KindQuantityControl,
	"stepper":         KindQuantityControl,
}

// rnSymbols maps each kind to the React Native / paper symbol it emits. The
// walker records these into the usage set so screen imports stay minimal.
var rnSymbols = map[Kind]string{
	KindContainer:          "View",
	KindCard:               "Card",
	KindSpacer:             "View",
	KindGrid:               "View",
	KindStack:              "View",
	KindHeader:             "Text",
	KindText:               "Text",
	KindDivider:            "Divider",
	KindBadge:              "Chip",
	KindChip:               "Chip",
	KindIconInput:          "TextInput",
	KindSearchInput:        "Searchbar",
	KindTextInput:          "TextInput",
	KindPasswordInput:      "TextInput",
	KindCheckbox:           "Checkbox",
	KindSwitch:             "Switch",
	KindButton:             "Button",
	KindGradientButton:     "Button",
	KindSocialButton:       "Button",
	KindIconButton:         "IconButton",
	KindFAB:                "FAB",
	KindLinkButton:         "Button",
	KindImage:              "View",
	KindAvatar:             "Avatar",
	KindIllustrationHeader: "View",
	KindHeroSection:        "View",
	KindImageGallery:       "View",
	KindAppBar:             "Appbar",
	KindTabBar:             "BottomNavigation",
	KindProductCard:        "Card",
	KindCartItem:           "Card",
	KindPriceBreakdown:     "Card",
	KindStatCard:           "Card",
	KindProgressBar:        "ProgressBar",
	KindFormSection:        "View",
	KindListItem:           "List",
	KindAlert:              "Banner",
	KindEmptyState:         "View",
	KindRating:             "View",
	KindQuantityControl:    "IconButton",
}

// Canonicalize resolves a raw type string to a canonical kind. It is total:
// any string, including empty, whitespace or arbitrary unicode, yields a Kind
// without panicking. Empty input defaults to the generic container; unmatched
// non-empty input yields KindUnknown and the walker decides whether the node
// still renders as a container.
func Canonicalize(raw string) Kind {
	key := normalizeKindKey(raw)
	if key == "" {
		return KindContainer
	}
	if k, ok := kindTable[key]; ok {
		return k
	}
	if trimmed, ok := strings.CutPrefix(key, "custom"); ok && trimmed != "" {
		if k, ok := kindTable[trimmed]; ok {
			return k
		}
	}
	return KindUnknown
}

func normalizeKindKey(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			// separators and any other rune are dropped
		}
	}
	return b.String()
}
