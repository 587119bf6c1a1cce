package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/violadsouza12/Social/internal/format"
	"github.com/violadsouza12/Social/internal/highlight"
	"github.com/violadsouza12/Social/internal/picker"
	"github.com/violadsouza12/Social/internal/query"
	"github.com/violadsouza12/Social/internal/stats"
	"github.com/violadsouza12/Social/internal/store"
)

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	all := a.memo.Items()
	header := lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(len(all)),
		RenderHeroStats(stats.Summarize(all), a.width),
		RenderCategoryChips(all, a.query.Category),
		RenderPlatformRow(a.query.Platform, a.query.Sort),
		ResultLine.Render(stats.ResultLine(a.query, len(a.visible))),
	)

	footer := a.renderFooter()
	bodyHeight := a.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	if pick, ok := a.currentPick(); ok {
		modal := RenderInspiration(pick, len(all), a.width)
		body = lipgloss.Place(a.width, bodyHeight, lipgloss.Center, lipgloss.Center, modal)
	} else {
		body = RenderCards(a.visible, a.cursor, a.expanded, a.query.Search, a.width, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (a App) renderHeader(total int) string {
	title := Title.Render("💾 Social Saver")
	count := CardMeta.Render(fmt.Sprintf("%d saved", total))
	return title + " " + a.search.View() + "  " + count
}

func (a App) renderFooter() string {
	var lines []string
	if a.err != nil {
		lines = append(lines, ErrorStyle.Width(a.width).Render("Error: "+a.err.Error()+" (press any key to dismiss)"))
	}
	if a.showHelp {
		a.help.ShowAll = true
		lines = append(lines, a.help.View(a.keys))
	}

	left := ""
	if a.status != "" {
		left = StatusOK.Render(a.status) + "  "
	}
	a.help.ShowAll = false
	bar := left + a.help.View(a.keys)
	lines = append(lines, StatusBar.Width(a.width).Render(bar))

	return strings.Join(lines, "\n")
}

// RenderHeroStats renders the collection totals line.
func RenderHeroStats(s stats.Summary, width int) string {
	parts := []string{
		fmt.Sprintf("%d items saved", s.Total),
		fmt.Sprintf("%s %d Reels", platformIcons[store.Instagram], s.Platforms[store.Instagram]),
		fmt.Sprintf("%s %d Tweets", platformIcons[store.Twitter], s.Platforms[store.Twitter]),
		fmt.Sprintf("%s %d Blogs", platformIcons[store.Blog], s.Platforms[store.Blog]),
	}
	if top, ok := s.TopCategory(); ok {
		parts = append(parts, fmt.Sprintf("%s Top: %s (%d)", iconFor(top.Category), top.Category, top.Count))
	}
	return HeroStats.MaxWidth(max(width, 1)).Render(strings.Join(parts, " · "))
}

// RenderCategoryChips renders the category filter row with counts over the
// full collection.
func RenderCategoryChips(items []store.SavedItem, active store.Category) string {
	chips := make([]string, 0, len(store.Categories)+1)
	for _, c := range categoryChips() {
		label := string(c)
		if c != query.AllCategories {
			label = iconFor(c) + " " + label
		}
		label = fmt.Sprintf("%s %d", label, stats.CountByCategory(items, c))

		style := Chip
		if c == active {
			style = ActiveChip
			if color, ok := categoryColors[c]; ok {
				style = style.Background(color).Foreground(lipgloss.Color("232"))
			}
		}
		chips = append(chips, style.Render(label))
	}
	return strings.Join(chips, " ")
}

// RenderPlatformRow renders the platform chips and the sort toggle.
func RenderPlatformRow(active store.Platform, sort query.SortMode) string {
	chips := make([]string, 0, len(store.Platforms)+1)
	for _, p := range platformChips() {
		label := "🌐 All Platforms"
		if p != query.AllPlatforms {
			label = platformIcons[p] + " " + p.Label()
		}
		style := Chip
		if p == active {
			style = ActiveChip
		}
		chips = append(chips, style.Render(label))
	}

	newest, popular := ActiveChip, Chip
	if sort == query.Popular {
		newest, popular = Chip, ActiveChip
	}
	toggle := newest.Render("Newest") + popular.Render("Popular")

	return strings.Join(chips, " ") + "   " + toggle
}

// RenderCards renders the result list, scrolled so the cursor card is visible.
func RenderCards(items []store.SavedItem, cursor int, expanded map[string]bool, search string, width, height int) string {
	if len(items) == 0 {
		return HelpStyle.Render("🔍 No results found\nTry searching for something different, or press x to clear your filters.")
	}

	cards := make([]string, len(items))
	for i, item := range items {
		cards[i] = RenderCard(item, i == cursor, expanded[item.ID], search, width)
	}

	start := scrollStart(cards, cursor, height)
	var b strings.Builder
	used := 0
	for i := start; i < len(cards); i++ {
		h := lipgloss.Height(cards[i])
		if used > 0 && used+h > height {
			break
		}
		if used > 0 {
			b.WriteString("\n")
		}
		b.WriteString(cards[i])
		used += h
	}
	return b.String()
}

// scrollStart finds the first card to draw so that cards[start..cursor] fit
// in height lines.
func scrollStart(cards []string, cursor, height int) int {
	if cursor <= 0 || cursor >= len(cards) {
		return 0
	}
	used := 0
	for i := cursor; i >= 0; i-- {
		used += lipgloss.Height(cards[i])
		if used > height {
			return min(i+1, cursor)
		}
	}
	return 0
}

// RenderCard renders one saved item. Search matches in the caption,
// summary, author and hashtags are marked.
func RenderCard(item store.SavedItem, selected, expanded bool, search string, width int) string {
	textWidth := max(width-4, 20)
	mark := func(s string) string { return Mark.Render(s) }
	hl := func(s string) string { return highlight.Join(highlight.Split(s, search), mark) }

	meta := []string{
		categoryBadge(item.Category).Render(iconFor(item.Category) + " " + string(item.Category)),
		CardMeta.Render(platformIcons[item.Platform] + " " + item.Platform.Label()),
		CardMeta.Render(hl(item.Author)),
	}
	if t, ok := item.SavedTime(); ok {
		meta = append(meta, CardMeta.Render(format.Date(t)))
	}
	if item.Likes != nil {
		meta = append(meta, CardMeta.Render("♥ "+format.Compact(*item.Likes)))
	}
	if item.Views != nil {
		meta = append(meta, CardMeta.Render("▶ "+format.Compact(*item.Views)))
	}

	lines := []string{
		strings.Join(meta, CardMeta.Render(" · ")),
		CardText.Render(hl(truncate(item.Caption, textWidth))),
	}

	if expanded {
		lines = append(lines, CardText.Render("🧠 "+hl(item.Summary)))
		if len(item.Hashtags) > 0 {
			tags := make([]string, len(item.Hashtags))
			for i, tag := range item.Hashtags {
				tags[i] = Hashtag.Render("#" + hl(tag))
			}
			lines = append(lines, strings.Join(tags, " "))
		}
		lines = append(lines, CardMeta.Render(item.URL))
	} else {
		lines = append(lines, CardMeta.Render(hl(truncate(item.Summary, textWidth))))
	}

	style := Card
	if selected {
		style = SelectedCard
	}
	return style.Width(textWidth).Render(strings.Join(lines, "\n"))
}

// RenderInspiration renders the Random Inspiration modal.
func RenderInspiration(pick picker.Pick, total, width int) string {
	item := pick.Item
	modalWidth := min(max(width-8, 30), 64)

	lines := []string{
		ModalHeader.Render("🎲 Random Inspiration · Today's Pick!"),
		"",
		categoryBadge(item.Category).Render(iconFor(item.Category) + " " + string(item.Category)),
		"",
		CardText.Render("🧠 AI Summary"),
		CardText.Render(item.Summary),
		"",
	}

	byline := "by " + item.Author
	if t, ok := item.SavedTime(); ok {
		byline += " · " + format.ShortDate(t)
	}
	lines = append(lines, CardMeta.Render(byline))
	if item.Likes != nil {
		lines = append(lines, CardMeta.Render(format.Exact(*item.Likes)+" likes"))
	}
	if item.Platform == store.Instagram {
		lines = append(lines, CardMeta.Render("▶ Watch Reel: "+item.URL))
	} else {
		lines = append(lines, CardMeta.Render("Open Original ↗ "+item.URL))
	}
	lines = append(lines, "", CardMeta.Render(fmt.Sprintf("%d of %d · n next · c copy link · esc close", pick.Index+1, total)))

	return Modal.Width(modalWidth).Render(strings.Join(lines, "\n"))
}

func iconFor(c store.Category) string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return "🏆"
}

// truncate shortens s to fit width terminal cells.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
