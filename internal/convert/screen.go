package convert

import (
	"fmt"
	"strings"

	"previewforge/internal/jsonutil"
	"previewforge/internal/model"
)

// paperSymbols is the fixed import table for react-native-paper. Only symbols
// present in the usage set make it into a screen's import line, in this order.
var paperSymbols = []string{
	"Card", "Button", "TextInput", "Searchbar", "Checkbox", "Switch",
	"Chip", "Divider", "Avatar", "FAB", "IconButton", "List",
	"Banner", "ProgressBar", "Appbar", "BottomNavigation",
}

// generateScreen assembles one complete screen file: imports, the optional
// background wrapper with its config serialized inline, the walked component
// tree, and the style block.
func (c *Converter) generateScreen(stem string, screen model.Screen) string {
	jsx := make([]string, 0, len(screen.Components))
	for _, comp := range screen.Components {
		if fragment := c.parseNode(comp, 6); fragment != "" {
			jsx = append(jsx, fragment)
		}
	}

	content := "      <Text>No content</Text>"
	if len(jsx) > 0 {
		content = strings.Join(jsx, "\n")
	}

	hasBackground := false
	if screen.Background != nil {
		if enabled, ok := screen.Background["enabled"].(bool); ok && enabled {
			hasBackground = true
			c.usesBackground = true
		}
	}

	backgroundImport := ""
	backgroundConfig := ""
	wrapperStart := ""
	wrapperEnd := ""
	if hasBackground {
		backgroundImport = "\nimport DynamicBackground from '../components/backgrounds/DynamicBackground';"

		cfg, err := jsonutil.MarshalNoEscape(screen.Background)
		if err != nil {
			cfg = []byte("{}")
		}
		backgroundConfig = fmt.Sprintf("const backgroundConfig = %s;\n\n", cfg)

		wrapperStart = "      <DynamicBackground config={backgroundConfig}>\n"
		wrapperEnd = "\n      </DynamicBackground>"

		// Wrapped content sits one level deeper.
		lines := strings.Split(content, "\n")
		for i, line := range lines {
			if strings.TrimSpace(line) != "" {
				lines[i] = "  " + line
			}
		}
		content = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`%s%s

%sexport default function %sScreen() {
  return (
    <SafeAreaView style={styles.container}>
%s      <ScrollView
        contentContainerStyle={styles.scrollContent}
        showsVerticalScrollIndicator={false}
      >
%s
      </ScrollView>%s
    </SafeAreaView>
  );
}

const styles = StyleSheet.create({
  container: {
    flex: 1,
    backgroundColor: theme.colors.background,
  },
  scrollContent: {
    padding: 16,
  },
});
`, c.generateImports(), backgroundImport, backgroundConfig, stem,
		wrapperStart, content, wrapperEnd)
}

// generateImports builds the import block from the usage accumulated so far.
func (c *Converter) generateImports() string {
	lines := []string{
		"import React from 'react';",
		"import { View, Text, StyleSheet, ScrollView, SafeAreaView } from 'react-native';",
	}

	paper := make([]string, 0, len(paperSymbols))
	for _, sym := range paperSymbols {
		if c.usedComponents[sym] {
			paper = append(paper, sym)
		}
	}
	if len(paper) > 0 {
		lines = append(lines, fmt.Sprintf("import { %s } from 'react-native-paper';", strings.Join(paper, ", ")))
	}
	if c.usesGradient {
		lines = append(lines, "import LinearGradient from 'react-native-linear-gradient';")
	}
	if len(c.usedIcons) > 0 {
		lines = append(lines, "import Icon from 'react-native-vector-icons/MaterialCommunityIcons';")
	}
	lines = append(lines, "import { theme } from '../theme';")

	return strings.Join(lines, "\n")
}
