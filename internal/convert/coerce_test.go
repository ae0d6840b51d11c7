package convert

import "testing"

func TestSafeNumber(t *testing.T) {
	cases := []struct {
		name  string
		value any
		def   float64
		want  float64
	}{
		{"float passthrough", 42.5, 0, 42.5},
		{"int passthrough", 42, 0, 42},
		{"string with unit", "24px", 0, 24},
		{"plain numeric string", "16", 0, 16},
		{"garbage string", "abc", 16, 16},
		{"multi dot string", "1.2.3", 7, 7},
		{"nil", nil, 16, 16},
		{"bool", true, 5, 5},
		{"map", map[string]any{}, 3, 3},
	}
	for _, tc := range cases {
		if got := SafeNumber(tc.value, tc.def); got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(16); got != "16" {
		t.Fatalf("got %q", got)
	}
	if got := FormatNumber(42.5); got != "42.5" {
		t.Fatalf("got %q", got)
	}
}

func TestEscapeString(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{`it's "quoted"`, `it\'s \"quoted\"`},
		{"line\nbreak", `line\nbreak`},
		{`a\b'c`, `a\\b\'c`},
		{nil, ""},
		{42.0, "42"},
	}
	for _, tc := range cases {
		if got := EscapeString(tc.value); got != tc.want {
			t.Fatalf("EscapeString(%v): got %q want %q", tc.value, got, tc.want)
		}
	}
}

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"login screen", "LoginScreen"},
		{"user-profile", "UserProfile"},
		{"Home", "Home"},
		{"", "Screen"},
		{"   ", "Screen"},
		{"!!!", "Screen"},
		{"2fa setup", "Screen2faSetup"},
		{"café menu", "CafMenu"},
	}
	for _, tc := range cases {
		if got := SanitizeName(tc.in); got != tc.want {
			t.Fatalf("SanitizeName(%q): got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestColorTransforms(t *testing.T) {
	if got := DarkenColor("#0D9488", 0.8); got != "#0a766c" {
		t.Fatalf("darken: got %q", got)
	}
	if got := DarkenColor("0D9488", 0.8); got != "#0a766c" {
		t.Fatalf("darken without hash: got %q", got)
	}
	if got := LightenColor("#0D9488", 20); got != "#3da99f" {
		t.Fatalf("lighten: got %q", got)
	}
	if got := DarkenColor("nope", 0.8); got != "#000000" {
		t.Fatalf("invalid darken: got %q", got)
	}
	if got := LightenColor("#12345", 10); got != "#000000" {
		t.Fatalf("short hex lighten: got %q", got)
	}
}

func TestMapIcon(t *testing.T) {
	if got := MapIcon("Google"); got != "google" {
		t.Fatalf("got %q", got)
	}
	if got := MapIcon("user"); got != "account" {
		t.Fatalf("got %q", got)
	}
	// unmapped names pass through lowercased
	if got := MapIcon("Sparkle"); got != "sparkle" {
		t.Fatalf("got %q", got)
	}
}
