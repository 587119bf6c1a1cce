package store

import (
	"errors"
	"fmt"
	"time"
)

// Category is the closed set of buckets a saved item is tagged with.
type Category string

const (
	Fitness    Category = "Fitness"
	Coding     Category = "Coding"
	Food       Category = "Food"
	Travel     Category = "Travel"
	Design     Category = "Design"
	Finance    Category = "Finance"
	Motivation Category = "Motivation"
	Music      Category = "Music"
)

// Categories lists every category in chip display order.
var Categories = []Category{Fitness, Coding, Food, Travel, Design, Finance, Motivation, Music}

// Platform is where an item was originally saved from.
type Platform string

const (
	Instagram Platform = "instagram"
	Twitter   Platform = "twitter"
	Blog      Platform = "blog"
)

// Platforms lists every platform in chip display order.
var Platforms = []Platform{Instagram, Twitter, Blog}

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownPlatform = errors.New("unknown platform")
)

// ParseCategory matches s exactly against the known categories.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// ParsePlatform matches s exactly against the known platforms.
func ParsePlatform(s string) (Platform, error) {
	for _, p := range Platforms {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
}

// Label is the human name shown on platform chips and cards.
func (p Platform) Label() string {
	switch p {
	case Instagram:
		return "Instagram"
	case Twitter:
		return "Twitter / X"
	case Blog:
		return "Blog"
	}
	return string(p)
}

// SavedItem is one saved post. Items are supplied once by the loader and
// treated as read-only for the rest of the session.
type SavedItem struct {
	ID        string   `json:"id"`
	Category  Category `json:"category"`
	Platform  Platform `json:"platform"`
	Summary   string   `json:"summary"`
	Caption   string   `json:"caption"`
	Author    string   `json:"author"`
	Hashtags  []string `json:"hashtags"`
	Likes     *int     `json:"likes,omitempty"`
	Views     *int     `json:"views,omitempty"`
	SavedAt   string   `json:"savedAt"`
	URL       string   `json:"url"`
	Thumbnail string   `json:"thumbnail"`
}

// LikeCount returns the like count, with a missing value counted as zero.
func (i SavedItem) LikeCount() int {
	if i.Likes == nil {
		return 0
	}
	return *i.Likes
}

// savedAtLayouts are tried in order by SavedTime.
var savedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// SavedTime parses SavedAt. ok is false when no accepted layout matches.
func (i SavedItem) SavedTime() (t time.Time, ok bool) {
	for _, layout := range savedAtLayouts {
		if t, err := time.Parse(layout, i.SavedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Count returns a pointer to n, for building items with optional counters.
func Count(n int) *int {
	return &n
}
