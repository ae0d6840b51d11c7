package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func (s *Store) ensureLoadedFile() {
	s.loadOnce.Do(func() {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return
		}
		var rows []Record
		if err := json.Unmarshal(b, &rows); err != nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, row := range rows {
			id := strings.TrimSpace(row.ID)
			if id == "" {
				continue
			}
			s.byID[id] = normalizeRecord(row)
		}
	})
}

func (s *Store) saveFile() {
	s.mu.RLock()
	rows := make([]Record, 0, len(s.byID))
	for _, rec := range s.byID {
		rows = append(rows, rec)
	}
	s.mu.RUnlock()
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return
	}
	_ = os.MkdirAll(filepath.Dir(s.path), 0o755)
	_ = os.WriteFile(s.path, b, 0o644)
}

func (s *Store) getFile(id string) (Record, bool) {
	s.ensureLoadedFile()
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, false
	}
	s.mu.RLock()
	rec, ok := s.byID[id]
	s.mu.RUnlock()
	return rec, ok
}

func (s *Store) putFile(rec Record) {
	s.ensureLoadedFile()
	normalized := normalizeRecord(rec)
	if normalized.ID == "" {
		return
	}
	s.mu.Lock()
	s.byID[normalized.ID] = normalized
	s.mu.Unlock()
	s.saveFile()
}

func (s *Store) listFile(limit int) []Record {
	s.ensureLoadedFile()
	s.mu.RLock()
	out := make([]Record, 0, len(s.byID))
	for _, rec := range s.byID {
		out = append(out, rec)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
