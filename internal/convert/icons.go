package convert

import "strings"

// iconAliases maps human-friendly icon names from the component model to
// MaterialCommunityIcons names. Unknown names pass through unchanged so a
// correct-but-unlisted icon still renders.
var iconAliases = map[string]string{
	// Common
	"mail":    "email",
	"email":   "email",
	"user":    "account",
	"account": "account",
	"lock":    "lock",
	"phone":   "phone",
	"search":  "magnify",
	"magnify": "magnify",
	// Actions
	"add":           "plus",
	"plus":          "plus",
	"edit":          "pencil",
	"pencil":        "pencil",
	"delete":        "delete",
	"trash":         "delete",
	"settings":      "cog",
	"cog":           "cog",
	"menu":          "menu",
	"close":         "close",
	"x":             "close",
	"heart":         "heart",
	"share":         "share",
	"cart":          "cart",
	"shopping-cart": "cart",
	// Stats / dashboard
	"trending-up":   "trending-up",
	"trending-down": "trending-down",
	"users":         "account-multiple",
	"user-group":    "account-multiple",
	"chart":         "chart-line",
	"graph":         "chart-line",
	"dollar":        "currency-usd",
	"money":         "currency-usd",
	// Content
	"image":     "image",
	"photo":     "image",
	"camera":    "camera",
	"video":     "video",
	"file":      "file",
	"document":  "file-document",
	"folder":    "folder",
	"inbox":     "inbox",
	"mail-open": "email-open",
	// E-commerce
	"package":      "package-variant",
	"box":          "package-variant",
	"tag":          "tag",
	"star":         "star",
	"star-outline": "star-outline",
	"filter":       "filter",
	"sort":         "sort",
	// Social
	"google":   "google",
	"apple":    "apple",
	"facebook": "facebook",
	"twitter":  "twitter",
	"github":   "github",
	// Alerts
	"info":         "information",
	"information":  "information",
	"warning":      "alert",
	"alert":        "alert",
	"error":        "alert-circle",
	"alert-circle": "alert-circle",
	"success":      "check-circle",
	"check":        "check",
	"check-circle": "check-circle",
	// Navigation
	"home":          "home",
	"back":          "arrow-left",
	"arrow-left":    "arrow-left",
	"arrow-right":   "arrow-right",
	"chevron-right": "chevron-right",
	"chevron-left":  "chevron-left",
	"chevron-down":  "chevron-down",
	"chevron-up":    "chevron-up",
	// UI
	"eye":          "eye",
	"eye-off":      "eye-off",
	"bell":         "bell",
	"notification": "bell",
}

// MapIcon resolves an icon name through the alias table, passing unknown
// names through as-is (best effort).
func MapIcon(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := iconAliases[key]; ok {
		return mapped
	}
	return key
}
