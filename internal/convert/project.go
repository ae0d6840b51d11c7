package convert

import (
	"fmt"
	"strings"
)

// Manifest files are emitted as fixed literals. Nothing in the component
// model feeds into them, and a literal keeps the output byte-stable.

func (c *Converter) generatePackageJSON() string {
	return `{
  "name": "generated-rn-app",
  "version": "1.0.0",
  "private": true,
  "scripts": {
    "android": "react-native run-android",
    "ios": "react-native run-ios",
    "start": "react-native start"
  },
  "dependencies": {
    "react": "18.2.0",
    "react-native": "0.73.0",
    "react-native-paper": "^5.11.0",
    "react-native-linear-gradient": "^2.8.3",
    "react-native-vector-icons": "^10.0.3",
    "react-native-reanimated": "^3.6.0",
    "@react-native-community/blur": "^4.3.2",
    "@react-navigation/native": "^6.1.9",
    "@react-navigation/native-stack": "^6.9.0",
    "react-native-safe-area-context": "^4.8.0",
    "react-native-screens": "^3.29.0",
    "react-native-gesture-handler": "^2.14.0"
  }
}`
}

func (c *Converter) generateApp() string {
	return `import React from 'react';
import { Provider as PaperProvider, DefaultTheme } from 'react-native-paper';
import { NavigationContainer } from '@react-navigation/native';
import RootNavigator from './src/navigation/RootNavigator';
import { theme } from './src/theme';

const paperTheme = {
  ...DefaultTheme,
  colors: {
    ...DefaultTheme.colors,
    primary: theme.colors.primary,
    background: theme.colors.background,
    surface: theme.colors.surface,
    text: theme.colors.text,
  },
};

export default function App() {
  return (
    <PaperProvider theme={paperTheme}>
      <NavigationContainer>
        <RootNavigator />
      </NavigationContainer>
    </PaperProvider>
  );
}
`
}

// generateNavigation registers every screen as a stack route in input order;
// the first route doubles as the initial one.
func (c *Converter) generateNavigation(stems []string) string {
	imports := make([]string, 0, len(stems))
	routes := make([]string, 0, len(stems))
	for _, stem := range stems {
		imports = append(imports, fmt.Sprintf("import %sScreen from '../screens/%sScreen';", stem, stem))
		routes = append(routes, fmt.Sprintf("      <Stack.Screen name=%q component={%sScreen} options={{ title: %q }} />", stem, stem, stem))
	}
	if len(imports) == 0 {
		imports = append(imports, "import HomeScreen from '../screens/HomeScreen';")
		routes = append(routes, `      <Stack.Screen name="Home" component={HomeScreen} />`)
	}

	return fmt.Sprintf(`import React from 'react';
import { createNativeStackNavigator } from '@react-navigation/native-stack';
%s

const Stack = createNativeStackNavigator();

export default function RootNavigator() {
  return (
    <Stack.Navigator>
%s
    </Stack.Navigator>
  );
}
`, strings.Join(imports, "\n"), strings.Join(routes, "\n"))
}

func (c *Converter) generateTSConfig() string {
	return `{
  "extends": "@react-native/typescript-config/tsconfig.json",
  "compilerOptions": {
    "strict": true
  }
}`
}

func (c *Converter) generateAppJSON() string {
	return `{
  "name": "GeneratedRNApp",
  "displayName": "Generated RN App"
}`
}

func (c *Converter) generateGitignore() string {
	return `node_modules/
.expo/
*.log
ios/Pods/
android/.gradle/
android/app/build/
`
}

func (c *Converter) generateReadme(stems []string) string {
	lines := make([]string, 0, len(stems))
	for _, stem := range stems {
		lines = append(lines, fmt.Sprintf("- **%sScreen** -> `src/screens/%sScreen.tsx`", stem, stem))
	}
	screenList := "- HomeScreen"
	if len(lines) > 0 {
		screenList = strings.Join(lines, "\n")
	}

	bgStatus := "DISABLED"
	if c.usesBackground {
		bgStatus = "ENABLED"
	}

	return fmt.Sprintf(`# Generated React Native App

Dynamic backgrounds: %s

## Features

- Component screens with local state wiring
- React Native Paper + custom theme
- Ready-to-use stack navigation
- Animated DynamicBackground (gradient / image / particles / blur)
- Deterministic output

## Generated Screens

%s

## How to run

`+"```bash"+`
npm install

npx react-native start
npx react-native run-android   # or run-ios
`+"```"+`

## Project Structure

`+"```"+`
src/
  screens/          all screen components
  components/
    ui/             shared UI library
    backgrounds/    DynamicBackground component
  theme/            theme configuration
  navigation/       navigation setup
`+"```"+`

## Dynamic Backgrounds

Each screen can carry a background configuration:

- solid: single color
- gradient: linear gradient (vertical / horizontal / diagonal)
- image: background image with optional blur
- particles: animated floating particles
`, bgStatus, screenList)
}
