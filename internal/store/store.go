// Package store holds the saved-item record and the Item Store it is loaded from.
//
// The dashboard reads the collection once at startup, either from the
// built-in demo data or from a SQLite file written by `saver seed` or
// `saver import`. Nothing in the dashboard writes back.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed Item Store. NOT an interface - concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open creates a new Store with the given database path.
// Creates tables if they don't exist.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

// OpenReadOnly opens an existing store for reading. It never creates the
// file, the schema, or changes the journal mode. A missing file is an error
// wrapping os.ErrNotExist.
func OpenReadOnly(dbPath string) (*Store, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// createTables creates the items table. position keeps the loader's order,
// which is the order the dashboard and the picker see.
func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS items (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		category TEXT NOT NULL,
		platform TEXT NOT NULL,
		summary TEXT NOT NULL DEFAULT '',
		caption TEXT NOT NULL DEFAULT '',
		author TEXT NOT NULL DEFAULT '',
		hashtags TEXT NOT NULL DEFAULT '[]',
		likes INTEGER,
		views INTEGER,
		saved_at TEXT NOT NULL,
		url TEXT NOT NULL DEFAULT '',
		thumbnail TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_items_position ON items(position);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveItems upserts items in one transaction and returns how many were new.
// New items are appended after the existing ones; an existing id keeps its
// position and has its fields replaced.
func (s *Store) SaveItems(items []SavedItem) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(items) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var next int
	if err := tx.QueryRow("SELECT COALESCE(MAX(position), -1) + 1 FROM items").Scan(&next); err != nil {
		return 0, fmt.Errorf("read next position: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO items (
			id, position, category, platform, summary, caption, author,
			hashtags, likes, views, saved_at, url, thumbnail
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			category = excluded.category,
			platform = excluded.platform,
			summary = excluded.summary,
			caption = excluded.caption,
			author = excluded.author,
			hashtags = excluded.hashtags,
			likes = excluded.likes,
			views = excluded.views,
			saved_at = excluded.saved_at,
			url = excluded.url,
			thumbnail = excluded.thumbnail
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	newCount := 0
	for _, item := range items {
		var exists int
		if err := tx.QueryRow("SELECT COUNT(*) FROM items WHERE id = ?", item.ID).Scan(&exists); err != nil {
			return 0, fmt.Errorf("check item %s: %w", item.ID, err)
		}

		tags := item.Hashtags
		if tags == nil {
			tags = []string{}
		}
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return 0, fmt.Errorf("encode hashtags for %s: %w", item.ID, err)
		}

		if _, err := stmt.Exec(
			item.ID,
			next,
			string(item.Category),
			string(item.Platform),
			item.Summary,
			item.Caption,
			item.Author,
			string(tagsJSON),
			nullCount(item.Likes),
			nullCount(item.Views),
			item.SavedAt,
			item.URL,
			item.Thumbnail,
		); err != nil {
			return 0, fmt.Errorf("save item %s: %w", item.ID, err)
		}

		if exists == 0 {
			newCount++
			next++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return newCount, nil
}

// Items returns the whole collection in loader order.
func (s *Store) Items() ([]SavedItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, category, platform, summary, caption, author,
			hashtags, likes, views, saved_at, url, thumbnail
		FROM items
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := []SavedItem{}
	for rows.Next() {
		var item SavedItem
		var category, platform, tagsJSON string
		var likes, views sql.NullInt64
		if err := rows.Scan(
			&item.ID,
			&category,
			&platform,
			&item.Summary,
			&item.Caption,
			&item.Author,
			&tagsJSON,
			&likes,
			&views,
			&item.SavedAt,
			&item.URL,
			&item.Thumbnail,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		item.Category = Category(category)
		item.Platform = Platform(platform)
		if err := json.Unmarshal([]byte(tagsJSON), &item.Hashtags); err != nil {
			return nil, fmt.Errorf("decode hashtags for %s: %w", item.ID, err)
		}
		item.Likes = countFromNull(likes)
		item.Views = countFromNull(views)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the number of stored items.
func (s *Store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM items").Scan(&n); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func nullCount(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}

func countFromNull(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	return Count(int(n.Int64))
}
