package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/violadsouza12/Social/internal/picker"
	"github.com/violadsouza12/Social/internal/query"
	"github.com/violadsouza12/Social/internal/store"
)

func testItems() []store.SavedItem {
	return []store.SavedItem{
		{ID: "a", Category: store.Fitness, Platform: store.Instagram, Caption: "Morning Routine", Author: "@maya", Likes: store.Count(10), SavedAt: "2024-06-01T00:00:00Z", URL: "https://example.com/a"},
		{ID: "b", Category: store.Coding, Platform: store.Twitter, Caption: "Goroutines thread", Author: "@josh", Likes: store.Count(500), SavedAt: "2024-06-03T00:00:00Z", URL: "https://example.com/b"},
		{ID: "c", Category: store.Food, Platform: store.Blog, Caption: "Pasta night", Author: "Plates", SavedAt: "2024-06-02T00:00:00Z", URL: "https://example.com/c"},
	}
}

// mockCmd tracks calls into the App's collaborators.
type mockCmd struct {
	loaded  bool
	copied  string
	copyErr error
}

func (m *mockCmd) loadItems() tea.Cmd {
	m.loaded = true
	return func() tea.Msg {
		return ItemsLoaded{Items: testItems()}
	}
}

func (m *mockCmd) copyLink(url string) tea.Cmd {
	m.copied = url
	return func() tea.Msg {
		return LinkCopied{URL: url, Err: m.copyErr}
	}
}

// fixedSource always returns the same index.
type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func newTestApp(t *testing.T, src picker.Source) (App, *mockCmd) {
	t.Helper()
	mock := &mockCmd{}
	app := NewApp(AppConfig{LoadItems: mock.loadItems, CopyLink: mock.copyLink, Random: src})
	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	model, _ = model.Update(app.Init()())
	return model.(App), mock
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, app App, msgs ...tea.Msg) App {
	t.Helper()
	var model tea.Model = app
	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}
	return model.(App)
}

func ids(items []store.SavedItem) string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return strings.Join(out, ",")
}

func TestAppInit(t *testing.T) {
	mock := &mockCmd{}
	app := NewApp(AppConfig{LoadItems: mock.loadItems})

	if app.Init() == nil {
		t.Fatal("Init should return a command")
	}
	if !mock.loaded {
		t.Error("Init should call LoadItems")
	}
}

func TestAppInitNilLoadItems(t *testing.T) {
	app := NewApp(AppConfig{})
	if app.Init() != nil {
		t.Error("Init should return nil when LoadItems is nil")
	}
	if app.Visible() == nil {
		t.Error("visible list should never be nil")
	}
}

func TestAppLoadsNewestFirst(t *testing.T) {
	app, _ := newTestApp(t, nil)
	if got := ids(app.Visible()); got != "b,c,a" {
		t.Errorf("expected newest order b,c,a, got %s", got)
	}
}

func TestAppLoadError(t *testing.T) {
	app := NewApp(AppConfig{})
	app = press(t, app, tea.WindowSizeMsg{Width: 80, Height: 20}, ItemsLoaded{Err: errors.New("disk gone")})
	if !strings.Contains(app.View(), "disk gone") {
		t.Error("load error should be shown")
	}
	app = press(t, app, runes("j"))
	if strings.Contains(app.View(), "disk gone") {
		t.Error("error should clear on key press")
	}
}

func TestAppNavigation(t *testing.T) {
	app, _ := newTestApp(t, nil)

	app = press(t, app, runes("j"), runes("j"), runes("j"))
	if app.Cursor() != 2 {
		t.Errorf("cursor should stop at last item, got %d", app.Cursor())
	}
	app = press(t, app, runes("g"))
	if app.Cursor() != 0 {
		t.Errorf("g should go to top, got %d", app.Cursor())
	}
	app = press(t, app, runes("G"))
	if app.Cursor() != 2 {
		t.Errorf("G should go to bottom, got %d", app.Cursor())
	}
	app = press(t, app, runes("k"))
	if app.Cursor() != 1 {
		t.Errorf("k should move up, got %d", app.Cursor())
	}
}

func TestAppSearchNarrowsResults(t *testing.T) {
	app, _ := newTestApp(t, nil)

	app = press(t, app, runes("/"))
	if !app.Searching() {
		t.Fatal("/ should focus search")
	}
	app = press(t, app, runes("P"), runes("A"), runes("S"))
	if app.Query().Search != "PAS" {
		t.Errorf("expected search PAS, got %q", app.Query().Search)
	}
	if got := ids(app.Visible()); got != "c" {
		t.Errorf("expected only pasta, got %s", got)
	}

	// Keys typed into the search box are not shortcuts.
	app = press(t, app, runes("q"))
	if app.Query().Search != "PASq" {
		t.Errorf("q should be typed, got %q", app.Query().Search)
	}

	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.Searching() {
		t.Error("esc should leave search")
	}
	if app.Query().Search != "PASq" {
		t.Error("leaving search should keep the text")
	}
}

func TestAppCategoryCycle(t *testing.T) {
	app, _ := newTestApp(t, nil)

	app = press(t, app, tea.KeyMsg{Type: tea.KeyTab})
	if app.Query().Category != store.Fitness {
		t.Errorf("tab should select first category, got %s", app.Query().Category)
	}
	if got := ids(app.Visible()); got != "a" {
		t.Errorf("expected fitness only, got %s", got)
	}

	app = press(t, app, tea.KeyMsg{Type: tea.KeyShiftTab})
	if app.Query().Category != query.AllCategories {
		t.Errorf("shift+tab should go back to All, got %s", app.Query().Category)
	}
	app = press(t, app, tea.KeyMsg{Type: tea.KeyShiftTab})
	if app.Query().Category != store.Categories[len(store.Categories)-1] {
		t.Errorf("shift+tab should wrap to last category, got %s", app.Query().Category)
	}
}

func TestAppPlatformCycle(t *testing.T) {
	app, _ := newTestApp(t, nil)

	want := append(append([]store.Platform{}, store.Platforms...), query.AllPlatforms)
	for _, p := range want {
		app = press(t, app, runes("p"))
		if app.Query().Platform != p {
			t.Errorf("expected platform %s, got %s", p, app.Query().Platform)
		}
	}
}

func TestAppSortToggle(t *testing.T) {
	app, _ := newTestApp(t, nil)

	app = press(t, app, runes("s"))
	if app.Query().Sort != query.Popular {
		t.Fatal("s should switch to popular")
	}
	if got := ids(app.Visible()); got != "b,a,c" {
		t.Errorf("expected popular order b,a,c, got %s", got)
	}
	app = press(t, app, runes("s"))
	if app.Query().Sort != query.Newest {
		t.Error("s should switch back to newest")
	}
}

func TestAppClearFilters(t *testing.T) {
	app, _ := newTestApp(t, nil)

	app = press(t, app, runes("/"), runes("z"), runes("z"), tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyTab}, runes("p"), runes("s"))
	if len(app.Visible()) != 0 {
		t.Fatalf("expected no results, got %s", ids(app.Visible()))
	}
	if !strings.Contains(app.View(), "No results found") {
		t.Error("empty state should be shown")
	}

	app = press(t, app, runes("x"))
	q := app.Query()
	if q.Search != "" || q.Category != query.AllCategories || q.Platform != query.AllPlatforms {
		t.Errorf("x should clear filters, got %+v", q)
	}
	if q.Sort != query.Popular {
		t.Error("x should keep the sort mode")
	}
	if len(app.Visible()) != 3 {
		t.Errorf("expected all items back, got %d", len(app.Visible()))
	}
}

func TestAppCursorClampedOnFilter(t *testing.T) {
	app, _ := newTestApp(t, nil)

	app = press(t, app, runes("G"), tea.KeyMsg{Type: tea.KeyTab})
	if app.Cursor() != 0 {
		t.Errorf("cursor should clamp to the shorter list, got %d", app.Cursor())
	}
}

func TestAppCopyLink(t *testing.T) {
	app, mock := newTestApp(t, nil)

	model, cmd := app.Update(runes("c"))
	if cmd == nil {
		t.Fatal("c should return a copy command")
	}
	if mock.copied != "https://example.com/b" {
		t.Errorf("copied wrong url %q", mock.copied)
	}

	model, tick := model.Update(cmd())
	app = model.(App)
	if app.Status() != "✓ Link copied" {
		t.Errorf("expected copied status, got %q", app.Status())
	}
	if tick == nil {
		t.Error("status should expire")
	}

	app = press(t, app, statusExpired{seq: 1})
	if app.Status() != "" {
		t.Errorf("status should clear, got %q", app.Status())
	}
}

func TestAppCopyFailureStillConfirms(t *testing.T) {
	app, mock := newTestApp(t, nil)
	mock.copyErr = errors.New("no clipboard")

	_, cmd := app.Update(runes("c"))
	app = press(t, app, cmd())
	if app.Status() != "✓ Link copied" {
		t.Errorf("expected copied status, got %q", app.Status())
	}
}

func TestAppStaleStatusExpiryIgnored(t *testing.T) {
	app, _ := newTestApp(t, nil)

	app = press(t, app, LinkCopied{}, LinkCopied{})
	app = press(t, app, statusExpired{seq: 1})
	if app.Status() == "" {
		t.Error("an older expiry should not clear a newer status")
	}
}

func TestAppRandomUsesFullStore(t *testing.T) {
	app, _ := newTestApp(t, fixedSource(0))

	// Filter down to Food only; the picker must still see every item.
	app = press(t, app, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	if got := ids(app.Visible()); got != "c" {
		t.Fatalf("expected food only, got %s", got)
	}

	app = press(t, app, runes("r"))
	if app.Picker().State() != picker.Showing {
		t.Fatal("r should show a pick")
	}
	pick, ok := app.currentPick()
	if !ok || pick.Item.ID != "a" {
		t.Errorf("expected store index 0 (a), got %+v", pick)
	}

	app = press(t, app, runes("n"), runes("n"), runes("n"))
	pick, _ = app.currentPick()
	if pick.Index != 0 || pick.Item.ID != "a" {
		t.Errorf("next should wrap through the full store, got %+v", pick)
	}
}

func TestAppModalKeys(t *testing.T) {
	app, mock := newTestApp(t, fixedSource(2))

	app = press(t, app, runes("r"))
	if !strings.Contains(app.View(), "Random Inspiration") {
		t.Error("modal should be rendered")
	}

	// Dashboard keys do nothing while the modal is up.
	app = press(t, app, runes("s"), runes("j"))
	if app.Query().Sort != query.Newest || app.Cursor() != 0 {
		t.Error("modal should swallow dashboard keys")
	}

	_, cmd := app.Update(runes("o"))
	if cmd == nil || mock.copied != "https://example.com/c" {
		t.Errorf("o should copy the pick's link, got %q", mock.copied)
	}

	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.Picker().State() != picker.Idle {
		t.Error("esc should dismiss")
	}
	if strings.Contains(app.View(), "Random Inspiration") {
		t.Error("modal should be gone")
	}

	// q closes the modal rather than quitting.
	app = press(t, app, runes("r"))
	model, cmd := app.Update(runes("q"))
	if cmd != nil {
		t.Error("q in the modal should not quit")
	}
	if model.(App).Picker().State() != picker.Idle {
		t.Error("q should dismiss")
	}
}

func TestAppRandomOnEmptyStore(t *testing.T) {
	app := NewApp(AppConfig{Random: fixedSource(0)})
	app = press(t, app, tea.WindowSizeMsg{Width: 80, Height: 20}, ItemsLoaded{Items: nil})

	app = press(t, app, runes("r"), runes("n"))
	if app.Picker().State() != picker.Idle {
		t.Error("picker should stay idle with an empty store")
	}
	if !strings.Contains(app.View(), "No results found") {
		t.Error("empty store should show the empty state")
	}
}

func TestAppReloadDismissesPick(t *testing.T) {
	app, _ := newTestApp(t, fixedSource(2))

	app = press(t, app, runes("r"), ItemsLoaded{Items: testItems()[:1]})
	if app.Picker().State() != picker.Idle {
		t.Error("reload should dismiss a pick that may no longer exist")
	}
}

func TestAppExpand(t *testing.T) {
	app, _ := newTestApp(t, nil)

	before := app.View()
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if !app.expanded["b"] {
		t.Fatal("enter should expand the selected card")
	}
	if !strings.Contains(app.View(), "https://example.com/b") || strings.Contains(before, "https://example.com/b") {
		t.Error("expanded card should show its url")
	}
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.expanded["b"] {
		t.Error("enter should collapse again")
	}
}

func TestAppQuit(t *testing.T) {
	app, _ := newTestApp(t, nil)

	_, cmd := app.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
}

func TestAppInitialQuery(t *testing.T) {
	mock := &mockCmd{}
	app := NewApp(AppConfig{
		LoadItems: mock.loadItems,
		Query:     query.Query{Search: "thread", Sort: query.Popular},
	})
	app = press(t, app, app.Init()())

	q := app.Query()
	if q.Category != query.AllCategories || q.Platform != query.AllPlatforms {
		t.Errorf("empty chips should default to All, got %+v", q)
	}
	if got := ids(app.Visible()); got != "b" {
		t.Errorf("expected initial search applied, got %s", got)
	}
	if app.search.Value() != "thread" {
		t.Errorf("search box should show the initial search, got %q", app.search.Value())
	}
}
