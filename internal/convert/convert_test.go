package convert

import (
	"strings"
	"testing"

	"previewforge/internal/model"
)

func convertJSON(t *testing.T, raw string) *Result {
	t.Helper()
	m, err := model.Decode([]byte(raw))
	if err != nil {
		t.Fatalf("decode model: %v", err)
	}
	c, err := New(m)
	if err != nil {
		t.Fatalf("new converter: %v", err)
	}
	return c.Convert()
}

func mustFile(t *testing.T, r *Result, path string) string {
	t.Helper()
	content, ok := r.Files.Get(path)
	if !ok {
		t.Fatalf("missing file %s (have %v)", path, r.Files.Paths())
	}
	return content
}

const loginModel = `{
  "screens": [
    {
      "name": "Login",
      "components": [
        {"type": "illustrationheader", "props": {"title": "Welcome Back", "subtitle": "Sign in to continue"}},
        {"type": "iconinput", "props": {"label": "Email", "icon": "mail", "placeholder": "you@example.com"}},
        {"type": "passwordinput", "props": {"label": "Password"}},
        {"type": "button", "props": {"text": "Sign In", "variant": "contained", "size": "lg"}},
        {"type": "divider", "props": {"text": "OR"}},
        {"type": "socialbutton", "props": {"provider": "Google"}}
      ]
    }
  ],
  "theme": {"primary": "#0D9488"}
}`

func TestConvertLoginScreen(t *testing.T) {
	result := convertJSON(t, loginModel)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	screen := mustFile(t, result, "src/screens/LoginScreen.tsx")

	for _, want := range []string{
		"export default function LoginScreen()",
		"Welcome Back",
		"secureTextEntry={true}",
		"Sign In",
		">OR<",
		"Continue with Google",
		`icon="google"`,
		"contentStyle={{ height: 56 }}",
	} {
		if !strings.Contains(screen, want) {
			t.Fatalf("screen missing %q:\n%s", want, screen)
		}
	}

	// Password inputs get a reveal affordance.
	if !strings.Contains(screen, `<TextInput.Icon icon="eye" />`) {
		t.Fatalf("password input missing reveal icon")
	}

	// State variables derive from pre-order position: header is 0, inputs
	// are 1 and 2.
	if !strings.Contains(screen, "const [input1, setInput1]") {
		t.Fatalf("first input state var wrong:\n%s", screen)
	}
	if !strings.Contains(screen, "const [input2, setInput2]") {
		t.Fatalf("second input state var wrong:\n%s", screen)
	}

	// Imports only cover what the screen uses.
	if !strings.Contains(screen, "import { Button, TextInput, Divider } from 'react-native-paper';") {
		t.Fatalf("unexpected paper import line:\n%s", screen)
	}
	if strings.Contains(screen, "LinearGradient") {
		t.Fatalf("gradient import leaked into non-gradient screen")
	}

	for _, icon := range []string{"email", "eye", "google"} {
		found := false
		for _, got := range result.UsedIcons {
			if got == icon {
				found = true
			}
		}
		if !found {
			t.Fatalf("used icons missing %q: %v", icon, result.UsedIcons)
		}
	}
}

func TestConvertShopGrid(t *testing.T) {
	result := convertJSON(t, `{
  "screens": [
    {
      "name": "Shop",
      "components": [
        {"type": "grid", "props": {"columns": 2, "gap": 16}, "children": [
          {"type": "productcard", "props": {"title": "AirPods Pro", "price": "$249", "badge": "New"}},
          {"type": "productcard", "props": {"title": "iPhone 15", "price": "$799", "rating": 4}}
        ]}
      ]
    }
  ]
}`)

	screen := mustFile(t, result, "src/screens/ShopScreen.tsx")

	// 100/2 - 16*1/2 = 42
	if !strings.Contains(screen, "width: '42%'") {
		t.Fatalf("grid item width wrong:\n%s", screen)
	}
	for _, want := range []string{"AirPods Pro", "$249", "iPhone 15", "New", "Add to Cart", "i < 4 ? 'star' : 'star-outline'"} {
		if !strings.Contains(screen, want) {
			t.Fatalf("screen missing %q", want)
		}
	}
}

func TestConvertDeterminism(t *testing.T) {
	a := convertJSON(t, loginModel)
	b := convertJSON(t, loginModel)

	pathsA := a.Files.Paths()
	pathsB := b.Files.Paths()
	if len(pathsA) != len(pathsB) {
		t.Fatalf("file counts differ: %d vs %d", len(pathsA), len(pathsB))
	}
	for i := range pathsA {
		if pathsA[i] != pathsB[i] {
			t.Fatalf("path order differs at %d: %q vs %q", i, pathsA[i], pathsB[i])
		}
		ca, _ := a.Files.Get(pathsA[i])
		cb, _ := b.Files.Get(pathsB[i])
		if ca != cb {
			t.Fatalf("content differs for %s", pathsA[i])
		}
	}
}

func TestConvertFileOrder(t *testing.T) {
	result := convertJSON(t, loginModel)
	want := []string{
		"package.json",
		"src/theme/index.ts",
		"src/components/ui/index.tsx",
		"src/components/backgrounds/DynamicBackground.tsx",
		"src/screens/LoginScreen.tsx",
		"App.tsx",
		"src/navigation/RootNavigator.tsx",
		"tsconfig.json",
		"app.json",
		".gitignore",
		"README.md",
	}
	got := result.Files.Paths()
	if len(got) != len(want) {
		t.Fatalf("got %d files want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("file %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestConvertEmptyModel(t *testing.T) {
	result := convertJSON(t, `{"screens": []}`)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	home := mustFile(t, result, "src/screens/HomeScreen.tsx")
	if !strings.Contains(home, "Welcome") {
		t.Fatalf("default home screen content wrong:\n%s", home)
	}
	nav := mustFile(t, result, "src/navigation/RootNavigator.tsx")
	if !strings.Contains(nav, "HomeScreen") {
		t.Fatalf("navigation does not reference default screen:\n%s", nav)
	}
}

func TestConvertUnknownKind(t *testing.T) {
	result := convertJSON(t, `{
  "screens": [
    {"name": "Main", "components": [
      {"type": "zorp", "props": {}},
      {"type": "text", "props": {"text": "still here"}}
    ]}
  ]
}`)

	screen := mustFile(t, result, "src/screens/MainScreen.tsx")
	if !strings.Contains(screen, "still here") {
		t.Fatalf("sibling of unknown node was dropped:\n%s", screen)
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "unknown component: zorp") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected unknown-component warning, got %v", result.Warnings)
	}
}

func TestConvertUnknownKindWithChildren(t *testing.T) {
	result := convertJSON(t, `{
  "screens": [
    {"name": "Main", "components": [
      {"type": "mystery-wrapper", "children": [
        {"type": "text", "props": {"text": "nested"}}
      ]}
    ]}
  ]
}`)

	screen := mustFile(t, result, "src/screens/MainScreen.tsx")
	if !strings.Contains(screen, "nested") {
		t.Fatalf("unknown wrapper did not render as container:\n%s", screen)
	}
}

func TestConvertBackgroundWrapper(t *testing.T) {
	result := convertJSON(t, `{
  "screens": [
    {
      "name": "Splash",
      "background": {"enabled": true, "type": "gradient", "colors": ["#0D9488", "#14B8A6"]},
      "components": [{"type": "header", "props": {"title": "Hi"}}]
    }
  ]
}`)

	screen := mustFile(t, result, "src/screens/SplashScreen.tsx")
	for _, want := range []string{
		"import DynamicBackground from '../components/backgrounds/DynamicBackground';",
		"const backgroundConfig = ",
		"<DynamicBackground config={backgroundConfig}>",
		"</DynamicBackground>",
	} {
		if !strings.Contains(screen, want) {
			t.Fatalf("background screen missing %q:\n%s", want, screen)
		}
	}

	readme := mustFile(t, result, "README.md")
	if !strings.Contains(readme, "Dynamic backgrounds: ENABLED") {
		t.Fatalf("readme does not report backgrounds:\n%s", readme)
	}
}

func TestConvertThemeColors(t *testing.T) {
	result := convertJSON(t, `{"screens": [], "theme": {"primary": "#3B82F6"}}`)

	theme := mustFile(t, result, "src/theme/index.ts")
	if !strings.Contains(theme, "primary: '#3B82F6'") {
		t.Fatalf("theme primary wrong:\n%s", theme)
	}
	// 0x3B*0.8=47, 0x82*0.8=104, 0xF6*0.8=196
	if !strings.Contains(theme, "primaryDark: '#2f68c4'") {
		t.Fatalf("derived primaryDark wrong:\n%s", theme)
	}
}

func TestConvertGradientButton(t *testing.T) {
	result := convertJSON(t, `{
  "screens": [
    {"name": "Promo", "components": [
      {"type": "button", "props": {"text": "Go", "gradient": "purple"}}
    ]}
  ]
}`)

	screen := mustFile(t, result, "src/screens/PromoScreen.tsx")
	if !strings.Contains(screen, "colors={['#8B5CF6', '#A78BFA']}") {
		t.Fatalf("gradient ramp wrong:\n%s", screen)
	}
	if !strings.Contains(screen, "import LinearGradient from 'react-native-linear-gradient';") {
		t.Fatalf("gradient import missing:\n%s", screen)
	}
}

func TestNewRejectsNilModel(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatalf("expected error for nil model")
	}
}

func TestProgressBarNormalization(t *testing.T) {
	c, err := New(&model.ComponentModel{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out := c.genProgressBar(props{m: map[string]any{"value": 75.0}}, 0)
	if !strings.Contains(out, "progress={0.75}") {
		t.Fatalf("percent value not normalized: %s", out)
	}
	out = c.genProgressBar(props{m: map[string]any{"value": 0.4}}, 0)
	if !strings.Contains(out, "progress={0.4}") {
		t.Fatalf("fraction value changed: %s", out)
	}
}

func TestRatingReviewCount(t *testing.T) {
	c, err := New(&model.ComponentModel{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out := c.genRating(props{m: map[string]any{"value": 5.0, "reviews": 128.0}}, 0)
	if !strings.Contains(out, "(128 reviews)") {
		t.Fatalf("review count not rendered: %s", out)
	}
	out = c.genRating(props{m: map[string]any{"reviews": `it's "many"`}}, 0)
	if !strings.Contains(out, `(it\'s \"many\" reviews)`) {
		t.Fatalf("review text not escaped: %s", out)
	}
}

func TestAvatarInitial(t *testing.T) {
	c, err := New(&model.ComponentModel{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out := c.genAvatar(props{m: map[string]any{"name": "émile"}}, 0)
	if !strings.Contains(out, `label="É"`) {
		t.Fatalf("multibyte initial wrong: %s", out)
	}

	// A name starting with a quote must not terminate the attribute early.
	out = c.genAvatar(props{m: map[string]any{"name": `"Quoted`}}, 0)
	if !strings.Contains(out, `label="\""`) {
		t.Fatalf("quote initial not escaped: %s", out)
	}

	out = c.genAvatar(props{}, 0)
	if !strings.Contains(out, `label="U"`) {
		t.Fatalf("default initial wrong: %s", out)
	}
}

func TestConvertPlaceholderIconImport(t *testing.T) {
	result := convertJSON(t, `{
  "screens": [
    {"name": "Catalog", "components": [
      {"type": "productcard", "props": {"title": "Lamp", "price": "$20"}}
    ]}
  ]
}`)

	screen := mustFile(t, result, "src/screens/CatalogScreen.tsx")
	if !strings.Contains(screen, "import Icon from 'react-native-vector-icons/MaterialCommunityIcons';") {
		t.Fatalf("placeholder icon import missing:\n%s", screen)
	}

	found := false
	for _, icon := range result.UsedIcons {
		if icon == "image" {
			found = true
		}
	}
	if !found {
		t.Fatalf("placeholder icon not tracked: %v", result.UsedIcons)
	}
}

func TestObserverReceivesProgress(t *testing.T) {
	m, err := model.Decode([]byte(loginModel))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	var steps []string
	c, err := New(m, WithObserver(ObserverFunc(func(step, detail string) {
		steps = append(steps, step)
	})))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	c.Convert()

	if len(steps) == 0 {
		t.Fatalf("observer saw no progress")
	}
	if steps[len(steps)-1] != "done" {
		t.Fatalf("last step %q, want done", steps[len(steps)-1])
	}
}
