package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinefind/internal/domain"
)

// DetailsState is what the details popup shows
type DetailsState struct {
	Loading bool
	Err     string
	Details *domain.MovieDetails
}

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers the styled popup in a width x height area
func (pr *PopupRenderer) RenderPopupOverlay(popupContent string, height, width int, popupStyle lipgloss.Style) string {
	maxW := width - 6 // keep a small margin
	if maxW < 20 {
		maxW = 20
	}
	styled := popupStyle.MaxWidth(maxW).MaxHeight(height).Render(popupContent)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styled,
		lipgloss.WithWhitespaceChars(" "))
}

// RenderDetails lays out the details of one movie
func (pr *PopupRenderer) RenderDetails(state DetailsState, width int) string {
	inner := width - 10
	if inner > 72 {
		inner = 72
	}
	if inner < 20 {
		inner = 20
	}

	switch {
	case state.Loading:
		return pr.styles.Dim.Render("Loading details...")
	case state.Err != "":
		return pr.styles.Error.Render(state.Err) + "\n\n" + pr.styles.Help.Render("esc close")
	case state.Details == nil:
		return ""
	}

	d := state.Details
	var b strings.Builder

	title := d.Title
	if year := d.Year(); year != "" {
		title = fmt.Sprintf("%s (%s)", title, year)
	}
	b.WriteString(pr.styles.DetailsTitle.Render(Truncate(title, inner)))
	b.WriteString("\n")
	if d.Tagline != "" {
		b.WriteString(pr.styles.Tagline.Render(Truncate(d.Tagline, inner)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	rating := FormatRating(d.VoteAverage)
	if d.VoteCount > 0 {
		rating = fmt.Sprintf("%s (%d votes)", rating, d.VoteCount)
	}
	pr.field(&b, "Rating", rating)
	if d.Runtime > 0 {
		pr.field(&b, "Runtime", fmt.Sprintf("%d min", d.Runtime))
	}
	if genres := d.GenreNames(); len(genres) > 0 {
		pr.field(&b, "Genres", strings.Join(genres, ", "))
	}
	if d.ReleaseDate != "" {
		pr.field(&b, "Released", d.ReleaseDate)
	}
	if d.OriginalLanguage != "" {
		pr.field(&b, "Language", d.OriginalLanguage)
	}
	if d.Status != "" {
		pr.field(&b, "Status", d.Status)
	}

	if d.Overview != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(inner).Render(d.Overview))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(pr.styles.Help.Render("esc close"))
	return b.String()
}

func (pr *PopupRenderer) field(b *strings.Builder, label, value string) {
	b.WriteString(pr.styles.Label.Render(fmt.Sprintf("%-9s", label)))
	b.WriteString(value)
	b.WriteString("\n")
}
