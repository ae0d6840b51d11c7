package convert

import "testing"

func TestCanonicalizeAliases(t *testing.T) {
	cases := []struct {
		raw  string
		want Kind
	}{
		{"container", KindContainer},
		{"Container", KindContainer},
		{"custom_card", KindCard},
		{"CustomCard", KindCard},
		{"panel", KindCard},
		{"text field", KindTextInput},
		{"textfield", KindTextInput},
		{"input", KindTextInput},
		{"pwd", KindPasswordInput},
		{"password", KindPasswordInput},
		{"search-bar", KindSearchInput},
		{"cta", KindButton},
		{"primary_button", KindButton},
		{"FAB", KindFAB},
		{"link", KindLinkButton},
		{"hero", KindHeroSection},
		{"banner", KindAlert},
		{"stepper", KindQuantityControl},
		{"toggle", KindSwitch},
		{"form", KindFormSection},
		{"", KindContainer},
		{"   ", KindContainer},
		{"zorp", KindUnknown},
		{"custom", KindUnknown},
	}
	for _, tc := range cases {
		if got := Canonicalize(tc.raw); got != tc.want {
			t.Fatalf("Canonicalize(%q): got %v want %v", tc.raw, got, tc.want)
		}
	}
}

func TestCanonicalizeIsTotal(t *testing.T) {
	// Arbitrary unicode and hostile strings must resolve without panicking.
	inputs := []string{"日本語", "💥", "a b c d e", "\x00\x01", "CUSTOM-----"}
	for _, raw := range inputs {
		_ = Canonicalize(raw)
	}
}

func TestEveryKindHasNameAndSymbol(t *testing.T) {
	for k := KindContainer; k <= KindQuantityControl; k++ {
		if _, ok := kindNames[k]; !ok {
			t.Fatalf("kind %d has no name", k)
		}
		if _, ok := rnSymbols[k]; !ok {
			t.Fatalf("kind %s has no emitted symbol", k)
		}
	}
}
