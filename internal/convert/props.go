package convert

import (
	"strings"

	"previewforge/internal/model"
)

// props is the narrow accessor each generator uses over a node's schemaless
// property bag: every read names its key and default, nothing assumes a
// schema, unrecognized keys are simply never read.
type props struct {
	m map[string]any
}

func nodeProps(n *model.Node) props {
	if n == nil {
		return props{}
	}
	return props{m: n.Props}
}

func (p props) raw(key string) (any, bool) {
	if p.m == nil {
		return nil, false
	}
	v, ok := p.m[key]
	return v, ok
}

// str returns the property as a plain string, def when missing or not a
// string-ish value.
func (p props) str(key, def string) string {
	v, ok := p.raw(key)
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		if strings.TrimSpace(s) == "" {
			return def
		}
		return s
	}
	return def
}

// escaped returns the property escaped for embedding in generated source.
// Non-string values are stringified first, so numeric badges and the like
// still render.
func (p props) escaped(key, def string) string {
	v, ok := p.raw(key)
	if !ok || v == nil {
		return EscapeString(def)
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return EscapeString(def)
	}
	return EscapeString(v)
}

func (p props) num(key string, def float64) float64 {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	return SafeNumber(v, def)
}

func (p props) intval(key string, def int) int {
	return int(p.num(key, float64(def)))
}

// boolean treats JSON truthiness loosely: real bools pass through, the
// strings "true"/"false" parse, anything else non-nil counts as set.
func (p props) boolean(key string, def bool) bool {
	v, ok := p.raw(key)
	if !ok || v == nil {
		return def
	}
	switch x := v.(type) {
	case bool:
		return x
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "yes", "1":
			return true
		case "false", "no", "0", "":
			return false
		}
		return true
	case float64:
		return x != 0
	default:
		return true
	}
}

// stringList returns a []string property, dropping non-string entries.
func (p props) stringList(key string, def []string) []string {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	items, ok := v.([]any)
	if !ok {
		return def
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func (p props) has(key string) bool {
	v, ok := p.raw(key)
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s) != ""
	}
	return true
}
