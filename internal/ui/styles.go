package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/violadsouza12/Social/internal/store"
)

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("99")  // Purple
	colorSecondary = lipgloss.Color("245") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorMark      = lipgloss.Color("229") // Pale yellow
	colorSuccess   = lipgloss.Color("78")  // Green
)

// categoryColors tint category chips and badges.
var categoryColors = map[store.Category]lipgloss.Color{
	store.Fitness:    lipgloss.Color("203"),
	store.Coding:     lipgloss.Color("39"),
	store.Food:       lipgloss.Color("214"),
	store.Travel:     lipgloss.Color("43"),
	store.Design:     lipgloss.Color("213"),
	store.Finance:    lipgloss.Color("78"),
	store.Motivation: lipgloss.Color("208"),
	store.Music:      lipgloss.Color("141"),
}

var categoryIcons = map[store.Category]string{
	store.Fitness:    "💪",
	store.Coding:     "💻",
	store.Food:       "🍳",
	store.Travel:     "✈️",
	store.Design:     "🎨",
	store.Finance:    "💰",
	store.Motivation: "🔥",
	store.Music:      "🎵",
}

var platformIcons = map[store.Platform]string{
	store.Instagram: "📸",
	store.Twitter:   "🐦",
	store.Blog:      "📰",
}

// Title is the app name in the header.
var Title = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	Padding(0, 1)

// HeroStats is the line of collection totals under the header.
var HeroStats = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// Chip is an unselected filter chip.
var Chip = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// ActiveChip is the selected filter chip.
var ActiveChip = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// ResultLine style for the result count above the cards.
var ResultLine = lipgloss.NewStyle().
	Foreground(colorSecondary).
	MarginTop(1).
	Padding(0, 1)

// Card is an unselected saved item.
var Card = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderLeft(true).
	BorderForeground(colorMuted).
	PaddingLeft(1)

// SelectedCard is the card under the cursor.
var SelectedCard = Card.
	BorderStyle(lipgloss.ThickBorder()).
	BorderForeground(colorHighlight)

// CardMeta style for platform, author and date.
var CardMeta = lipgloss.NewStyle().
	Foreground(colorSecondary)

// CardText style for captions and summaries.
var CardText = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252"))

// Hashtag style.
var Hashtag = lipgloss.NewStyle().
	Foreground(colorPrimary)

// Mark style for search matches.
var Mark = lipgloss.NewStyle().
	Foreground(lipgloss.Color("232")).
	Background(colorMark)

// Modal frames the Random Inspiration pick.
var Modal = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorHighlight).
	Padding(1, 2)

// ModalHeader style for the modal title.
var ModalHeader = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("208"))

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusOK style for transient confirmations such as "Link copied".
var StatusOK = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Bold(true)

// ErrorStyle for displaying errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// HelpStyle for help text and the empty state.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)

func categoryBadge(c store.Category) lipgloss.Style {
	color, ok := categoryColors[c]
	if !ok {
		color = colorSecondary
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color)
}
