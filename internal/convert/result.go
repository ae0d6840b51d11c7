package convert

import (
	"bytes"
	"encoding/json"
	"sort"
)

// FileMap holds generated files keyed by project-relative path, preserving
// insertion order. Order is part of the determinism contract: identical input
// yields the same paths in the same sequence, so archives and JSON responses
// are byte-stable.
type FileMap struct {
	paths  []string
	byPath map[string]string
}

func NewFileMap() *FileMap {
	return &FileMap{byPath: make(map[string]string)}
}

// Set adds or replaces a file. Replacing keeps the original position.
func (m *FileMap) Set(path, content string) {
	if m == nil || path == "" {
		return
	}
	if _, exists := m.byPath[path]; !exists {
		m.paths = append(m.paths, path)
	}
	m.byPath[path] = content
}

func (m *FileMap) Get(path string) (string, bool) {
	if m == nil {
		return "", false
	}
	content, ok := m.byPath[path]
	return content, ok
}

// Paths returns the paths in generation order.
func (m *FileMap) Paths() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.paths))
	copy(out, m.paths)
	return out
}

func (m *FileMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.paths)
}

// TotalBytes is the summed content size, a cheap stat for the host layer.
func (m *FileMap) TotalBytes() int {
	if m == nil {
		return 0
	}
	total := 0
	for _, content := range m.byPath {
		total += len(content)
	}
	return total
}

// MarshalJSON emits an object with keys in insertion order.
func (m *FileMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, path := range m.paths {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(path)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.byPath[path])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Result is everything one conversion run produces: the file map plus
// diagnostics. Warnings never abort anything; a non-empty Errors list means
// the output is degraded but still usable where it generated.
type Result struct {
	Files          *FileMap `json:"files"`
	UsedComponents []string `json:"used_components"`
	UsedIcons      []string `json:"used_icons"`
	Warnings       []string `json:"warnings"`
	Errors         []string `json:"errors"`
}

func (r *Result) FileCount() int {
	if r == nil {
		return 0
	}
	return r.Files.Len()
}

func (r *Result) TotalBytes() int {
	if r == nil {
		return 0
	}
	return r.Files.TotalBytes()
}

func (r *Result) WarningCount() int {
	if r == nil {
		return 0
	}
	return len(r.Warnings)
}

func (r *Result) ErrorCount() int {
	if r == nil {
		return 0
	}
	return len(r.Errors)
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
