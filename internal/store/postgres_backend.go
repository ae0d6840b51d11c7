package store

import "strings"

func (s *Store) ensureSchema() error {
	if s == nil || s.db == nil {
		return nil
	}
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.Exec(`
CREATE TABLE IF NOT EXISTS conversions (
  id TEXT PRIMARY KEY,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
  screen_count INTEGER NOT NULL DEFAULT 0,
  file_count INTEGER NOT NULL DEFAULT 0,
  total_bytes INTEGER NOT NULL DEFAULT 0,
  warning_count INTEGER NOT NULL DEFAULT 0,
  error_count INTEGER NOT NULL DEFAULT 0,
  archive_url TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_conversions_created_at ON conversions (created_at);
`)
	})
	return s.schemaErr
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, bool) {
	var rec Record
	err := row.Scan(
		&rec.ID,
		&rec.CreatedAt,
		&rec.ScreenCount,
		&rec.FileCount,
		&rec.TotalBytes,
		&rec.WarningCount,
		&rec.ErrorCount,
		&rec.ArchiveURL,
	)
	if err != nil {
		return Record{}, false
	}
	return normalizeRecord(rec), true
}

func (s *Store) getDB(id string) (Record, bool) {
	if err := s.ensureSchema(); err != nil {
		return Record{}, false
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, false
	}
	row := s.db.QueryRow(`SELECT id, created_at, screen_count, file_count, total_bytes, warning_count, error_count, archive_url
FROM conversions WHERE id = $1`, id)
	return scanRecord(row)
}

func (s *Store) putDB(rec Record) {
	if err := s.ensureSchema(); err != nil {
		return
	}
	n := normalizeRecord(rec)
	if n.ID == "" {
		return
	}
	_, _ = s.db.Exec(`
INSERT INTO conversions (
  id, created_at, screen_count, file_count, total_bytes, warning_count, error_count, archive_url
)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
ON CONFLICT (id)
DO UPDATE SET created_at=EXCLUDED.created_at,
  screen_count=EXCLUDED.screen_count,
  file_count=EXCLUDED.file_count,
  total_bytes=EXCLUDED.total_bytes,
  warning_count=EXCLUDED.warning_count,
  error_count=EXCLUDED.error_count,
  archive_url=EXCLUDED.archive_url`,
		n.ID, n.CreatedAt, n.ScreenCount, n.FileCount, n.TotalBytes, n.WarningCount, n.ErrorCount, n.ArchiveURL)
}

func (s *Store) listDB(limit int) []Record {
	if err := s.ensureSchema(); err != nil {
		return nil
	}
	rows, err := s.db.Query(`SELECT id, created_at, screen_count, file_count, total_bytes, warning_count, error_count, archive_url
FROM conversions ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil
	}
	defer rows.Close()
	out := make([]Record, 0, limit)
	for rows.Next() {
		rec, ok := scanRecord(rows)
		if !ok {
			continue
		}
		out = append(out, rec)
	}
	return out
}
