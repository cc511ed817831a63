package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinefind/internal/domain"
)

// Title is the header line
const Title = "Find Movies You'll Enjoy"

// ChromeHeight is the number of lines around the card grid: container
// padding, header, search box, heading, status line, gap and footer.
const ChromeHeight = 11

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	SearchInput   string // rendered text input
	SearchFocused bool

	// Mode and Query describe the request the listing belongs to
	Mode    domain.Mode
	Query   string
	Loading bool
	Spinner string
	Error   string

	Movies      []domain.Movie
	SortLabel   string
	Selected    int
	RowOffset   int
	Columns     int
	VisibleRows int
	CardWidth   int

	HelpLine    string
	SearchCount int64

	ShowDetails bool
	Details     DetailsState
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	cardRender  *CardRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		cardRender:  NewCardRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// GridSize returns how many card columns and rows fit the terminal
func GridSize(width, height, cardWidth int) (columns, rows int) {
	if cardWidth <= 0 {
		cardWidth = 30
	}
	columns = (width - 4) / cardWidth
	if columns < 1 {
		columns = 1
	}
	rows = (height - ChromeHeight) / CardHeight
	if rows < 1 {
		rows = 1
	}
	return columns, rows
}

// Heading returns the section title for a listing
func Heading(mode domain.Mode, query string) string {
	if mode == domain.ModeSearch {
		return fmt.Sprintf("Results for %q", query)
	}
	return "Popular Movies"
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Width <= 0 {
		state.Width = 80
	}
	if state.Height <= 0 {
		state.Height = 24
	}

	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("Find Movies You'll ") + r.styles.TitleAccent.Render("Enjoy"))
	content.WriteString("\n")

	box := r.styles.SearchBoxIdle
	if state.SearchFocused {
		box = r.styles.SearchBox
	}
	boxWidth := state.Width - 6
	if boxWidth > 60 {
		boxWidth = 60
	}
	content.WriteString(box.Width(boxWidth).Render(state.SearchInput))
	content.WriteString("\n\n")

	heading := r.styles.Section.Render(Heading(state.Mode, state.Query))
	if state.SortLabel != "" {
		heading += r.styles.Dim.Render(" · " + state.SortLabel)
	}
	if state.Loading {
		heading += " " + r.styles.Spinner.Render(state.Spinner)
	}
	content.WriteString(heading)
	content.WriteString("\n")

	// status line
	switch {
	case state.Error != "":
		content.WriteString(r.styles.Error.Render(state.Error))
	case !state.Loading && len(state.Movies) == 0:
		content.WriteString(r.styles.Dim.Render("No movies found."))
	case len(state.Movies) > 0 && state.Columns > 0:
		rows := (len(state.Movies) + state.Columns - 1) / state.Columns
		if rows > state.VisibleRows {
			content.WriteString(r.styles.Scroll.Render(fmt.Sprintf("%d movies, row %d-%d of %d",
				len(state.Movies), state.RowOffset+1, min(state.RowOffset+state.VisibleRows, rows), rows)))
		}
	}
	content.WriteString("\n")

	if !state.Loading && len(state.Movies) > 0 {
		content.WriteString(r.renderGrid(state))
	}

	// push the footer to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(r.renderFooter(state))

	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	if state.ShowDetails {
		popup := r.popupRender.RenderDetails(state.Details, state.Width)
		return r.popupRender.RenderPopupOverlay(popup, state.Height, state.Width, r.styles.DetailsBox)
	}
	return finalContent
}

// renderGrid renders the visible rows of cards
func (r *Renderer) renderGrid(state ViewState) string {
	columns := state.Columns
	if columns < 1 {
		columns = 1
	}
	visible := state.VisibleRows
	if visible < 1 {
		visible = 1
	}
	cardWidth := state.CardWidth
	if cardWidth <= 0 {
		cardWidth = 30
	}

	var rows []string
	for row := state.RowOffset; row < state.RowOffset+visible; row++ {
		start := row * columns
		if start >= len(state.Movies) {
			break
		}
		end := min(start+columns, len(state.Movies))

		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, r.cardRender.Render(state.Movies[i], cardWidth, i == state.Selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) renderFooter(state ViewState) string {
	footer := r.styles.Help.Render(state.HelpLine)
	if state.SearchCount <= 0 {
		return footer
	}

	status := r.styles.Status.Render(fmt.Sprintf("searches: %d", state.SearchCount))
	padding := state.Width - 4 - lipgloss.Width(footer) - lipgloss.Width(status)
	if padding < 2 {
		padding = 2
	}
	return footer + strings.Repeat(" ", padding) + status
}
