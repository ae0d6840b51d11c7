// Package store persists conversion records behind a dual backend: a local
// JSON file for development and postgres when a DSN is configured. All
// methods are nil-receiver safe so callers never have to guard wiring.
package store

import (
	"database/sql"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type Store struct {
	path string
	db   *sql.DB

	loadOnce sync.Once
	mu       sync.RWMutex
	byID     map[string]Record

	schemaOnce sync.Once
	schemaErr  error
}

func New(path string) *Store {
	return &Store{
		path: path,
		byID: make(map[string]Record),
	}
}

func NewPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// NewFromConfig falls back to the file store when the DSN is empty or the
// database is unreachable.
func NewFromConfig(dsn, path string) *Store {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return New(path)
	}
	s, err := NewPostgres(dsn)
	if err != nil {
		return New(path)
	}
	return s
}

func (s *Store) Get(id string) (Record, bool) {
	if s == nil {
		return Record{}, false
	}
	if s.db != nil {
		return s.getDB(id)
	}
	return s.getFile(id)
}

func (s *Store) Put(rec Record) {
	if s == nil {
		return
	}
	if s.db != nil {
		s.putDB(rec)
		return
	}
	s.putFile(rec)
}

// List returns records newest first.
func (s *Store) List(limit int) []Record {
	if s == nil {
		return nil
	}
	if limit <= 0 {
		limit = 50
	}
	if s.db != nil {
		return s.listDB(limit)
	}
	return s.listFile(limit)
}
