package model

import "testing"

func TestDecodeBasic(t *testing.T) {
	m, err := Decode([]byte(`{
		"screens": [{"name": " Login ", "components": [{"type": "text", "props": {"text": "hi"}}]}],
		"theme": {"primary": "#123456"}
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(m.Screens) != 1 {
		t.Fatalf("got %d screens", len(m.Screens))
	}
	if m.Screens[0].Name != "Login" {
		t.Fatalf("name not trimmed: %q", m.Screens[0].Name)
	}
	if got := m.ThemeColor("primary", "#000000"); got != "#123456" {
		t.Fatalf("theme color: %q", got)
	}
	if got := m.ThemeColor("missing", "#fallback"); got != "#fallback" {
		t.Fatalf("fallback: %q", got)
	}
}

func TestDecodeLayoutWrapper(t *testing.T) {
	m, err := Decode([]byte(`{"layout": {"screens": [{"name": "A", "components": []}]}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(m.Screens) != 1 || m.Screens[0].Name != "A" {
		t.Fatalf("layout wrapper not unwrapped: %+v", m.Screens)
	}
}

func TestDecodeSingularScreen(t *testing.T) {
	m, err := Decode([]byte(`{"screen": {"name": "Only", "components": []}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(m.Screens) != 1 || m.Screens[0].Name != "Only" {
		t.Fatalf("singular screen not lifted: %+v", m.Screens)
	}
}

func TestDecodeRejectsNonObject(t *testing.T) {
	for _, raw := range []string{`[1,2,3]`, `"nope"`, `42`, ``} {
		if _, err := Decode([]byte(raw)); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestNodeKindAliases(t *testing.T) {
	m, err := Decode([]byte(`{
		"screens": [{"name": "S", "components": [
			{"kind": "header", "props": {"title": "T"}},
			{"type": "card", "properties": {"padding": 8}}
		]}]
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	nodes := m.Screens[0].Components
	if nodes[0].Kind != "header" {
		t.Fatalf("kind alias not read: %q", nodes[0].Kind)
	}
	if nodes[1].Kind != "card" {
		t.Fatalf("type not read: %q", nodes[1].Kind)
	}
	if _, ok := nodes[1].Prop("padding"); !ok {
		t.Fatalf("properties alias not read")
	}
}

func TestNodeChildrenUnderProps(t *testing.T) {
	m, err := Decode([]byte(`{
		"screens": [{"name": "S", "components": [
			{"type": "container", "props": {"children": [{"type": "text", "props": {"text": "x"}}]}}
		]}]
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	node := m.Screens[0].Components[0]
	if len(node.Children) != 1 || node.Children[0].Kind != "text" {
		t.Fatalf("children under props not lifted: %+v", node.Children)
	}
}

func TestNodeNonObjectEntries(t *testing.T) {
	m, err := Decode([]byte(`{
		"screens": [{"name": "S", "components": [
			"garbage",
			{"type": "text", "props": {"text": "kept"}},
			null
		]}]
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	nodes := m.Screens[0].Components
	if len(nodes) != 3 {
		t.Fatalf("sibling order not preserved: %d nodes", len(nodes))
	}
	if nodes[0].Valid() || nodes[2].Valid() {
		t.Fatalf("non-object entries should be invalid placeholders")
	}
	if !nodes[1].Valid() {
		t.Fatalf("object entry should be valid")
	}
}
