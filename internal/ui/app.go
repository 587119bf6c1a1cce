package ui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"

	"github.com/violadsouza12/Social/internal/logging"
	"github.com/violadsouza12/Social/internal/picker"
	"github.com/violadsouza12/Social/internal/query"
	"github.com/violadsouza12/Social/internal/store"
)

// statusTTL is how long "Link copied" stays on screen.
const statusTTL = 2 * time.Second

// AppConfig wires the App to its collaborators.
type AppConfig struct {
	// LoadItems returns a Cmd that reads the Item Store and yields ItemsLoaded.
	LoadItems func() tea.Cmd
	// CopyLink returns a Cmd that copies url and yields LinkCopied.
	// Nil uses the system clipboard.
	CopyLink func(url string) tea.Cmd
	// Query is the state the dashboard opens with.
	Query query.Query
	// Random feeds the Random Inspiration picker. Nil seeds from the clock.
	Random picker.Source
}

// App is the root Bubble Tea model.
// App does NOT hold the store. It receives items via ItemsLoaded.
type App struct {
	loadItems func() tea.Cmd
	copyLink  func(url string) tea.Cmd

	memo    *query.Memo
	query   query.Query
	visible []store.SavedItem
	picker  *picker.Picker

	search    textinput.Model
	searching bool
	keys      KeyMap
	help      help.Model
	showHelp  bool

	cursor    int
	expanded  map[string]bool
	status    string
	statusSeq int
	err       error
	width     int
	height    int
	ready     bool

	recomputeLog *rate.Sometimes
}

// NewApp creates an App. Call Init to load items.
func NewApp(cfg AppConfig) App {
	ti := textinput.New()
	ti.Prompt = "🔍 "
	ti.Placeholder = "Search saves, captions, hashtags, authors..."
	ti.CharLimit = 120
	ti.SetValue(cfg.Query.Search)

	copyLink := cfg.CopyLink
	if copyLink == nil {
		copyLink = ClipboardCopy
	}

	q := cfg.Query
	if q.Category == "" {
		q.Category = query.AllCategories
	}
	if q.Platform == "" {
		q.Platform = query.AllPlatforms
	}

	a := App{
		loadItems:    cfg.LoadItems,
		copyLink:     copyLink,
		memo:         query.NewMemo(nil),
		query:        q,
		picker:       picker.New(cfg.Random),
		search:       ti,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		expanded:     make(map[string]bool),
		recomputeLog: &rate.Sometimes{Interval: time.Second},
	}
	a.refresh()
	return a
}

// ClipboardCopy writes url to the system clipboard.
func ClipboardCopy(url string) tea.Cmd {
	return func() tea.Msg {
		return LinkCopied{URL: url, Err: clipboard.WriteAll(url)}
	}
}

// Init loads the Item Store.
func (a App) Init() tea.Cmd {
	if a.loadItems != nil {
		return a.loadItems()
	}
	return nil
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.search.Width = max(10, msg.Width/2)
		a.ready = true
		return a, nil

	case ItemsLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			logging.Error("Failed to load items", "error", msg.Err)
			return a, nil
		}
		a.err = nil
		a.memo.SetItems(msg.Items)
		a.picker.Dismiss()
		a.refresh()
		logging.Info("Items loaded", "count", len(msg.Items))
		return a, nil

	case LinkCopied:
		if msg.Err != nil {
			logging.Debug("Clipboard write failed", "url", msg.URL, "error", msg.Err)
		}
		return a.setStatus("✓ Link copied")

	case statusExpired:
		if msg.seq == a.statusSeq {
			a.status = ""
		}
		return a, nil
	}

	if a.searching {
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// Clear any existing error on key press
	a.err = nil

	if a.searching {
		return a.handleSearchKey(msg)
	}
	if a.picker.State() == picker.Showing {
		return a.handleModalKey(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.visible)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Top):
		a.cursor = 0

	case key.Matches(msg, a.keys.Bottom):
		if len(a.visible) > 0 {
			a.cursor = len(a.visible) - 1
		}

	case key.Matches(msg, a.keys.Search):
		a.searching = true
		cmd := a.search.Focus()
		return a, cmd

	case key.Matches(msg, a.keys.NextCategory):
		a.query.Category = cycleCategory(a.query.Category, 1)
		a.refresh()

	case key.Matches(msg, a.keys.PrevCategory):
		a.query.Category = cycleCategory(a.query.Category, -1)
		a.refresh()

	case key.Matches(msg, a.keys.Platform):
		a.query.Platform = cyclePlatform(a.query.Platform)
		a.refresh()

	case key.Matches(msg, a.keys.Sort):
		if a.query.Sort == query.Newest {
			a.query.Sort = query.Popular
		} else {
			a.query.Sort = query.Newest
		}
		a.refresh()

	case key.Matches(msg, a.keys.Clear):
		a.clearFilters()

	case key.Matches(msg, a.keys.Expand):
		if item, ok := a.selected(); ok {
			a.expanded[item.ID] = !a.expanded[item.ID]
		}

	case key.Matches(msg, a.keys.Copy):
		if item, ok := a.selected(); ok {
			return a, a.copyLink(item.URL)
		}

	case key.Matches(msg, a.keys.Random):
		if pick, ok := a.picker.PickRandom(a.memo.Items()); ok {
			logging.Debug("Random inspiration", "index", pick.Index, "id", pick.Item.ID)
		}

	case key.Matches(msg, a.keys.Help):
		a.showHelp = !a.showHelp
	}

	return a, nil
}

// handleSearchKey routes keys to the search box while it has focus.
func (a App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Accept) || key.Matches(msg, a.keys.Cancel) {
		a.searching = false
		a.search.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	if v := a.search.Value(); v != a.query.Search {
		a.query.Search = v
		a.refresh()
	}
	return a, cmd
}

// handleModalKey handles keys while Random Inspiration is on screen.
func (a App) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.NextPick):
		a.picker.PickNext(a.memo.Items())

	case key.Matches(msg, a.keys.Close):
		a.picker.Dismiss()

	case key.Matches(msg, a.keys.Copy), msg.String() == "o":
		if pick, ok := a.currentPick(); ok {
			return a, a.copyLink(pick.Item.URL)
		}
	}
	return a, nil
}

// refresh recomputes the visible list from the current query.
func (a *App) refresh() {
	a.visible = a.memo.Evaluate(a.query)
	if a.cursor >= len(a.visible) {
		a.cursor = max(0, len(a.visible)-1)
	}
	a.recomputeLog.Do(func() {
		logging.Debug("Query evaluated",
			"search", a.query.Search,
			"category", a.query.Category,
			"platform", a.query.Platform,
			"sort", a.query.Sort.String(),
			"visible", len(a.visible),
			"recomputes", a.memo.Recomputes(),
		)
	})
}

func (a *App) clearFilters() {
	a.query.Search = ""
	a.query.Category = query.AllCategories
	a.query.Platform = query.AllPlatforms
	a.search.SetValue("")
	a.refresh()
}

func (a App) setStatus(s string) (tea.Model, tea.Cmd) {
	a.status = s
	a.statusSeq++
	seq := a.statusSeq
	return a, tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpired{seq: seq}
	})
}

func (a App) selected() (store.SavedItem, bool) {
	if a.cursor < 0 || a.cursor >= len(a.visible) {
		return store.SavedItem{}, false
	}
	return a.visible[a.cursor], true
}

func (a App) currentPick() (picker.Pick, bool) {
	idx, ok := a.picker.Current()
	items := a.memo.Items()
	if !ok || idx >= len(items) {
		return picker.Pick{}, false
	}
	return picker.Pick{Index: idx, Item: items[idx]}, true
}

// categoryChips is the chip order: All first, then every category.
func categoryChips() []store.Category {
	return append([]store.Category{query.AllCategories}, store.Categories...)
}

// platformChips is the chip order: All first, then every platform.
func platformChips() []store.Platform {
	return append([]store.Platform{query.AllPlatforms}, store.Platforms...)
}

func cycleCategory(c store.Category, step int) store.Category {
	chips := categoryChips()
	i := 0
	for j, chip := range chips {
		if chip == c {
			i = j
			break
		}
	}
	return chips[((i+step)%len(chips)+len(chips))%len(chips)]
}

func cyclePlatform(p store.Platform) store.Platform {
	chips := platformChips()
	i := 0
	for j, chip := range chips {
		if chip == p {
			i = j
			break
		}
	}
	return chips[(i+1)%len(chips)]
}

// Query returns the current query (for testing).
func (a App) Query() query.Query {
	return a.query
}

// Visible returns the current result list (for testing).
func (a App) Visible() []store.SavedItem {
	return a.visible
}

// Cursor returns the current cursor position (for testing).
func (a App) Cursor() int {
	return a.cursor
}

// Picker returns the Random Inspiration picker (for testing).
func (a App) Picker() *picker.Picker {
	return a.picker
}

// Searching reports whether the search box has focus.
func (a App) Searching() bool {
	return a.searching
}

// Status returns the transient status text.
func (a App) Status() string {
	return a.status
}
