package store

import (
	"strings"
	"time"
)

// Record summarizes one completed conversion. The ID is the hash of the
// normalized input model, so repeat submissions of the same model collapse
// onto one record.
type Record struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	ScreenCount  int       `json:"screen_count"`
	FileCount    int       `json:"file_count"`
	TotalBytes   int       `json:"total_bytes"`
	WarningCount int       `json:"warning_count"`
	ErrorCount   int       `json:"error_count"`
	ArchiveURL   string    `json:"archive_url,omitempty"`
}

func normalizeRecord(rec Record) Record {
	rec.ID = strings.TrimSpace(rec.ID)
	rec.ArchiveURL = strings.TrimSpace(rec.ArchiveURL)
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	return rec
}
