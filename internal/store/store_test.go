package store

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()

	var name string
	err = st.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='items'").Scan(&name)
	if err != nil {
		t.Fatalf("items table not created: %v", err)
	}
	if name != "items" {
		t.Errorf("expected table name 'items', got %q", name)
	}
}

func TestSaveItemsAndItems(t *testing.T) {
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()

	items := []SavedItem{
		{
			ID:       "b",
			Category: Coding,
			Platform: Twitter,
			Summary:  "Second in id order, first in position",
			Hashtags: []string{"golang", "testing"},
			Likes:    Count(12),
			Views:    Count(340),
			SavedAt:  "2024-06-01T00:00:00Z",
			URL:      "https://example.com/b",
		},
		{
			ID:       "a",
			Category: Food,
			Platform: Blog,
			Summary:  "No counters",
			SavedAt:  "2024-01-01",
		},
	}

	n, err := st.SaveItems(items)
	if err != nil {
		t.Fatalf("SaveItems failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 new items, got %d", n)
	}

	got, err := st.Items()
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("expected insertion order [b a], got [%s %s]", got[0].ID, got[1].ID)
	}

	b := got[0]
	if b.Likes == nil || *b.Likes != 12 {
		t.Errorf("expected likes 12, got %v", b.Likes)
	}
	if b.Views == nil || *b.Views != 340 {
		t.Errorf("expected views 340, got %v", b.Views)
	}
	if len(b.Hashtags) != 2 || b.Hashtags[0] != "golang" || b.Hashtags[1] != "testing" {
		t.Errorf("hashtags not round-tripped: %v", b.Hashtags)
	}

	a := got[1]
	if a.Likes != nil || a.Views != nil {
		t.Errorf("expected nil counters, got likes=%v views=%v", a.Likes, a.Views)
	}
	if len(a.Hashtags) != 0 {
		t.Errorf("expected no hashtags, got %v", a.Hashtags)
	}
}

func TestSaveItemsUpsertKeepsPosition(t *testing.T) {
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()

	if _, err := st.SaveItems([]SavedItem{
		{ID: "1", Category: Fitness, Platform: Instagram, Caption: "old", SavedAt: "2024-01-01"},
		{ID: "2", Category: Music, Platform: Blog, SavedAt: "2024-01-02"},
	}); err != nil {
		t.Fatalf("SaveItems failed: %v", err)
	}

	n, err := st.SaveItems([]SavedItem{
		{ID: "3", Category: Travel, Platform: Blog, SavedAt: "2024-01-03"},
		{ID: "1", Category: Fitness, Platform: Instagram, Caption: "new", SavedAt: "2024-01-01"},
	})
	if err != nil {
		t.Fatalf("SaveItems failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 new item, got %d", n)
	}

	got, err := st.Items()
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	ids := []string{}
	for _, item := range got {
		ids = append(ids, item.ID)
	}
	if len(ids) != 3 || ids[0] != "1" || ids[1] != "2" || ids[2] != "3" {
		t.Errorf("expected order [1 2 3], got %v", ids)
	}
	if got[0].Caption != "new" {
		t.Errorf("expected caption to be updated, got %q", got[0].Caption)
	}

	count, err := st.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}
}

func TestSaveItemsEmpty(t *testing.T) {
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()

	n, err := st.SaveItems(nil)
	if err != nil {
		t.Fatalf("SaveItems(nil) failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0, got %d", n)
	}

	items, err := st.Items()
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	if items == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestLoadBuiltin(t *testing.T) {
	items, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(items) != len(builtin) {
		t.Errorf("expected %d builtin items, got %d", len(builtin), len(items))
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves.db")

	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := st.SaveItems(Builtin()); err != nil {
		t.Fatalf("SaveItems failed: %v", err)
	}
	st.Close()

	items, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(items) != len(builtin) {
		t.Fatalf("expected %d items, got %d", len(builtin), len(items))
	}
	for i := range items {
		if items[i].ID != builtin[i].ID {
			t.Errorf("position %d: expected id %s, got %s", i, builtin[i].ID, items[i].ID)
		}
	}
}

func TestLoadMissingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.db")

	items, err := Load(path)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got items=%d err=%v", len(items), err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Load should not create the database file")
	}
}

func TestLoadLeavesJournalMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves.db")

	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := st.SaveItems(Builtin()[:2]); err != nil {
		t.Fatalf("SaveItems failed: %v", err)
	}
	st.Close()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=DELETE"); err != nil {
		t.Fatalf("set journal mode: %v", err)
	}
	db.Close()

	items, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}

	db, err = sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	var mode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatal(err)
	}
	if mode != "delete" {
		t.Errorf("Load changed journal mode to %q", mode)
	}
}

func TestOpenReadOnlyRejectsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves.db")

	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	st.Close()

	ro, err := OpenReadOnly(path)
	if err != nil {
		t.Fatalf("OpenReadOnly failed: %v", err)
	}
	defer ro.Close()
	if _, err := ro.SaveItems(Builtin()[:1]); err == nil {
		t.Error("expected a read-only store to refuse writes")
	}
}
