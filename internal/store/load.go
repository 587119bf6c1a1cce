package store

import "fmt"

// Load returns the Item Store for a session. An empty dbPath selects the
// built-in demo collection. A path that does not exist is an error.
func Load(dbPath string) ([]SavedItem, error) {
	if dbPath == "" {
		return Builtin(), nil
	}

	st, err := OpenReadOnly(dbPath)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	items, err := st.Items()
	if err != nil {
		return nil, fmt.Errorf("load items from %s: %w", dbPath, err)
	}
	return items, nil
}

// Validate checks the fields the dashboard relies on. Loaders call it before
// writing records; the query engine assumes it has passed.
func Validate(item SavedItem) error {
	if item.ID == "" {
		return fmt.Errorf("item has no id")
	}
	if _, err := ParseCategory(string(item.Category)); err != nil {
		return fmt.Errorf("item %s: %w", item.ID, err)
	}
	if _, err := ParsePlatform(string(item.Platform)); err != nil {
		return fmt.Errorf("item %s: %w", item.ID, err)
	}
	if _, ok := item.SavedTime(); !ok {
		return fmt.Errorf("item %s: unparseable savedAt %q", item.ID, item.SavedAt)
	}
	if item.Likes != nil && *item.Likes < 0 {
		return fmt.Errorf("item %s: negative likes", item.ID)
	}
	if item.Views != nil && *item.Views < 0 {
		return fmt.Errorf("item %s: negative views", item.ID)
	}
	return nil
}
