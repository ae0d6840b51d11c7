package model

import (
	"encoding/json"
	"errors"
	"strings"

	"previewforge/internal/jsonutil"
)

// ComponentModel is the validated component tree handed to the converter. It
// is the single source of truth shared with the web preview renderer; the
// converter reads it and never writes back.
type ComponentModel struct {
	Screens []Screen       `json:"screens"`
	Theme   map[string]any `json:"theme"`
	Tokens  map[string]any `json:"tokens"`
}

// Screen is one top-level screen: a name, its ordered component nodes and an
// optional background configuration produced by the upstream enrichment
// stage (carried opaquely, serialized verbatim into the generated screen).
type Screen struct {
	Name       string         `json:"name"`
	Components []*Node        `json:"components"`
	Background map[string]any `json:"background,omitempty"`
}

// Node is the IR unit: a loosely typed kind, a schemaless property bag and
// ordered children. Upstream stages sometimes emit "kind" instead of "type"
// and occasionally tuck children under props; decoding tolerates both.
type Node struct {
	Kind     string
	Props    map[string]any
	Children []*Node

	valid bool
}

// NewNode builds a valid node programmatically (synthesized screens, tests).
func NewNode(kind string, props map[string]any, children ...*Node) *Node {
	return &Node{Kind: kind, Props: props, Children: children, valid: true}
}

// Valid reports whether the decoded JSON value was actually an object.
// Non-object entries (strings, numbers, null) are kept as placeholders so
// sibling order survives, and skipped by the tree walker.
func (n *Node) Valid() bool {
	return n != nil && n.valid
}

// Prop returns a property value. Nil-safe.
func (n *Node) Prop(key string) (any, bool) {
	if n == nil || n.Props == nil {
		return nil, false
	}
	v, ok := n.Props[key]
	return v, ok
}

func (n *Node) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Tolerated: the walker drops invalid nodes with a guard, the
		// decoder must not fail the whole screen over one entry.
		n.valid = false
		return nil
	}
	n.valid = true

	n.Kind = firstString(raw, "type", "kind")

	if b, ok := raw["props"]; ok {
		_ = json.Unmarshal(b, &n.Props)
	} else if b, ok := raw["properties"]; ok {
		_ = json.Unmarshal(b, &n.Props)
	}

	if b, ok := raw["children"]; ok {
		_ = json.Unmarshal(b, &n.Children)
	}
	if n.Children == nil && n.Props != nil {
		if nested, ok := n.Props["children"]; ok {
			if b, err := json.Marshal(nested); err == nil {
				_ = json.Unmarshal(b, &n.Children)
			}
		}
	}
	return nil
}

func firstString(raw map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		if b, ok := raw[key]; ok {
			var s string
			if err := json.Unmarshal(b, &s); err == nil {
				return s
			}
		}
	}
	return ""
}

// Decode parses raw JSON into a ComponentModel, applying the normalization
// shims the upstream stages rely on: a "layout" wrapper, "screen" instead of
// "screens", and a non-object theme. A payload that is not a JSON object at
// all is the one hard failure.
func Decode(raw []byte) (*ComponentModel, error) {
	var envelope map[string]json.RawMessage
	if err := jsonutil.UnmarshalFlex(raw, &envelope); err != nil {
		return nil, errors.New("component model must be a JSON object")
	}
	if inner, ok := envelope["layout"]; ok {
		var unwrapped map[string]json.RawMessage
		if err := json.Unmarshal(inner, &unwrapped); err == nil {
			envelope = unwrapped
		}
	}
	if inner, ok := envelope["component_model"]; ok {
		var unwrapped map[string]json.RawMessage
		if err := json.Unmarshal(inner, &unwrapped); err == nil {
			envelope = unwrapped
		}
	}

	m := &ComponentModel{}
	if b, ok := envelope["screens"]; ok {
		_ = json.Unmarshal(b, &m.Screens)
	} else if b, ok := envelope["screen"]; ok {
		var one Screen
		if err := json.Unmarshal(b, &m.Screens); err != nil {
			if err := json.Unmarshal(b, &one); err == nil {
				m.Screens = []Screen{one}
			}
		}
	}
	if b, ok := envelope["theme"]; ok {
		_ = json.Unmarshal(b, &m.Theme)
	}
	if b, ok := envelope["tokens"]; ok {
		_ = json.Unmarshal(b, &m.Tokens)
	}
	for i := range m.Screens {
		m.Screens[i].Name = strings.TrimSpace(m.Screens[i].Name)
	}
	return m, nil
}

// ThemeColor returns the named theme color when present and hex-like,
// otherwise fallback.
func (m *ComponentModel) ThemeColor(key, fallback string) string {
	if m == nil || m.Theme == nil {
		return fallback
	}
	if v, ok := m.Theme[key]; ok {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return fallback
}
