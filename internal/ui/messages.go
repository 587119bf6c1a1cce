// Package ui provides the Bubble Tea dashboard for Social Saver.
package ui

import "github.com/violadsouza12/Social/internal/store"

// ItemsLoaded is sent when the Item Store has been read.
type ItemsLoaded struct {
	Items []store.SavedItem
	Err   error
}

// LinkCopied is sent after a copy-link attempt. Err is informational only;
// the dashboard reports the copy either way.
type LinkCopied struct {
	URL string
	Err error
}

// statusExpired clears the transient status line.
type statusExpired struct {
	seq int
}
