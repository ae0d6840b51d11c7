package convert

import (
	"fmt"

	"previewforge/internal/model"
)

// palette is the resolved color set for one conversion run. Derived shades
// are computed once here so every generator and emitted file agrees on them.
type palette struct {
	primary      string
	primaryDark  string
	primaryLight string
	background   string
	surface      string
	text         string
}

func resolvePalette(m *model.ComponentModel) palette {
	primary := m.ThemeColor("primary", "#0D9488")
	return palette{
		primary:      primary,
		primaryDark:  DarkenColor(primary, 0.8),
		primaryLight: LightenColor(primary, 20),
		background:   m.ThemeColor("background", "#F7FAFC"),
		surface:      m.ThemeColor("surface", "#FFFFFF"),
		text:         m.ThemeColor("text", "#0F172A"),
	}
}

func (c *Converter) generateTheme() string {
	return fmt.Sprintf(`export const theme = {
  colors: {
    primary: '%s',
    primaryDark: '%s',
    primaryLight: '%s',
    background: '%s',
    surface: '%s',
    text: '%s',
    textSecondary: '#64748B',
    error: '#EF4444',
    success: '#10B981',
    warning: '#F59E0B',
    info: '#3B82F6',
  },
  spacing: { xs: 4, sm: 8, md: 16, lg: 24, xl: 32, xxl: 48 },
  borderRadius: { sm: 4, md: 8, lg: 12, xl: 16, full: 999 },
  fontSize: { xs: 12, sm: 14, base: 16, lg: 18, xl: 20, xxl: 24, xxxl: 30 },
};
`, c.pal.primary, c.pal.primaryDark, c.pal.primaryLight,
		c.pal.background, c.pal.surface, c.pal.text)
}
