package store

import (
	"path/filepath"
	"testing"
	"time"
)

func TestFileStorePutGet(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "records.json"))

	rec := Record{
		ID:          "abc123",
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		ScreenCount: 2,
		FileCount:   12,
		TotalBytes:  4096,
	}
	s.Put(rec)

	got, ok := s.Get("abc123")
	if !ok {
		t.Fatalf("record not found")
	}
	if got.FileCount != 12 || got.ScreenCount != 2 {
		t.Fatalf("record mismatch: %+v", got)
	}

	if _, ok := s.Get("missing"); ok {
		t.Fatalf("expected miss")
	}
	if _, ok := s.Get(""); ok {
		t.Fatalf("empty id should miss")
	}
}

func TestFileStorePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")

	s := New(path)
	s.Put(Record{ID: "persisted", FileCount: 3})

	reopened := New(path)
	got, ok := reopened.Get("persisted")
	if !ok {
		t.Fatalf("record lost across reopen")
	}
	if got.FileCount != 3 {
		t.Fatalf("record mismatch: %+v", got)
	}
}

func TestFileStoreListNewestFirst(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "records.json"))

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s.Put(Record{ID: "old", CreatedAt: base})
	s.Put(Record{ID: "new", CreatedAt: base.Add(time.Hour)})
	s.Put(Record{ID: "mid", CreatedAt: base.Add(time.Minute)})

	got := s.List(10)
	if len(got) != 3 {
		t.Fatalf("got %d records", len(got))
	}
	if got[0].ID != "new" || got[1].ID != "mid" || got[2].ID != "old" {
		t.Fatalf("wrong order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}

	limited := s.List(2)
	if len(limited) != 2 {
		t.Fatalf("limit ignored: %d", len(limited))
	}
}

func TestNilStoreIsSafe(t *testing.T) {
	var s *Store
	s.Put(Record{ID: "x"})
	if _, ok := s.Get("x"); ok {
		t.Fatalf("nil store returned a record")
	}
	if got := s.List(5); got != nil {
		t.Fatalf("nil store returned records")
	}
}

func TestIgnoresEmptyID(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "records.json"))
	s.Put(Record{ID: "  "})
	if got := s.List(10); len(got) != 0 {
		t.Fatalf("blank id stored: %+v", got)
	}
}
