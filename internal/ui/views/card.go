package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinefind/internal/domain"
)

// CardHeight is the number of terminal lines one card occupies
const CardHeight = 4

// CardRenderer draws one movie card
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

// Render draws movie in a box width columns wide
func (cr *CardRenderer) Render(movie domain.Movie, width int, selected bool) string {
	style := cr.styles.Card
	if selected {
		style = cr.styles.CardSelected
	}
	// border and padding take four columns
	inner := width - 4
	if inner < 4 {
		inner = 4
	}

	title := movie.Title
	if title == "" {
		title = fmt.Sprintf("#%d", movie.ID)
	}

	content := cr.styles.CardTitle.Render(Truncate(title, inner)) + "\n" + cr.metaLine(movie, inner)
	return style.Width(width - 2).Render(content)
}

// metaLine renders "★ 8.2 • en • 1999"
func (cr *CardRenderer) metaLine(movie domain.Movie, width int) string {
	rating := FormatRating(movie.VoteAverage)
	lang := movie.OriginalLanguage
	if lang == "" {
		lang = "N/A"
	}
	year := movie.Year()
	if year == "" {
		year = "N/A"
	}

	plain := fmt.Sprintf("★ %s • %s • %s", rating, lang, year)
	if lipgloss.Width(plain) > width {
		return cr.styles.Meta.Render(Truncate(plain, width))
	}
	return cr.styles.Rating.Render("★ "+rating) + cr.styles.Meta.Render(fmt.Sprintf(" • %s • %s", lang, year))
}

// FormatRating renders a vote average with one decimal, or N/A when unrated
func FormatRating(v float64) string {
	if v <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", v)
}

// Truncate shortens s to width cells, ending in an ellipsis when cut
func Truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	var b strings.Builder
	for _, r := range s {
		if lipgloss.Width(b.String()+string(r)) > width-1 {
			break
		}
		b.WriteRune(r)
	}
	return b.String() + "…"
}
