package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	"github.com/elC0mpa/aws-reservations/model"
)

const createCacheTable = `
CREATE TABLE IF NOT EXISTS cache_entries (
	namespace  TEXT NOT NULL,
	id         TEXT NOT NULL,
	attributes BLOB NOT NULL,
	PRIMARY KEY (namespace, id)
)`

type sqliteService struct {
	db *sql.DB
}

// NewSQLiteService opens (or creates) the cache database at path. Reports
// survive agent restarts, so consumers can read the last published snapshot
// while a fresh run is still in flight.
func NewSQLiteService(path string) (*sqliteService, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	if _, err := db.Exec(createCacheTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache table: %w", err)
	}

	return &sqliteService{db: db}, nil
}

func (s *sqliteService) Close() error {
	return s.db.Close()
}

// ReplaceAll deletes and rewrites the namespace in one transaction.
func (s *sqliteService) ReplaceAll(ctx context.Context, namespace string, entries []model.CacheEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cache_entries WHERE namespace = ?`, namespace); err != nil {
		return fmt.Errorf("clearing namespace %s: %w", namespace, err)
	}

	for _, entry := range entries {
		attributes, err := json.Marshal(entry.Attributes)
		if err != nil {
			return fmt.Errorf("serializing entry %s: %w", entry.ID, err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO cache_entries (namespace, id, attributes) VALUES (?, ?, ?)`,
			namespace, entry.ID, attributes,
		); err != nil {
			return fmt.Errorf("writing entry %s: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing namespace %s: %w", namespace, err)
	}
	return nil
}

func (s *sqliteService) Get(ctx context.Context, namespace, id string) (*model.CacheEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT attributes FROM cache_entries WHERE namespace = ? AND id = ?`,
		namespace, id,
	)

	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading entry %s/%s: %w", namespace, id, err)
	}

	entry := model.CacheEntry{ID: id}
	if err := json.Unmarshal(raw, &entry.Attributes); err != nil {
		return nil, fmt.Errorf("deserializing entry %s/%s: %w", namespace, id, err)
	}
	return &entry, nil
}

func (s *sqliteService) List(ctx context.Context, namespace string) ([]model.CacheEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, attributes FROM cache_entries WHERE namespace = ? ORDER BY id`,
		namespace,
	)
	if err != nil {
		return nil, fmt.Errorf("listing namespace %s: %w", namespace, err)
	}
	defer rows.Close()

	var entries []model.CacheEntry
	for rows.Next() {
		var entry model.CacheEntry
		var raw []byte
		if err := rows.Scan(&entry.ID, &raw); err != nil {
			return nil, fmt.Errorf("scanning namespace %s: %w", namespace, err)
		}
		if err := json.Unmarshal(raw, &entry.Attributes); err != nil {
			return nil, fmt.Errorf("deserializing entry %s/%s: %w", namespace, entry.ID, err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
