package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every dashboard binding. It satisfies help.KeyMap.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	Search       key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	Platform     key.Binding
	Sort         key.Binding
	Expand       key.Binding
	Copy         key.Binding
	Random       key.Binding
	Clear        key.Binding
	Help         key.Binding
	Quit         key.Binding

	// Search box
	Accept key.Binding
	Cancel key.Binding

	// Random Inspiration modal
	NextPick key.Binding
	Close    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Top:          key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:       key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		NextCategory: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next category")),
		PrevCategory: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev category")),
		Platform:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "platform")),
		Sort:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "newest/popular")),
		Expand:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand")),
		Copy:         key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy link")),
		Random:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "inspire me")),
		Clear:        key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),

		NextPick: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next inspiration")),
		Close:    key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp is shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextCategory, k.Platform, k.Sort, k.Random, k.Help, k.Quit}
}

// FullHelp is shown when help is toggled on.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Search, k.NextCategory, k.PrevCategory, k.Platform, k.Sort, k.Clear},
		{k.Expand, k.Copy, k.Random, k.NextPick, k.Close},
		{k.Help, k.Quit},
	}
}
