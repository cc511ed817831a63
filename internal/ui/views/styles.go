package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	TitleAccent   lipgloss.Style
	SearchBox     lipgloss.Style
	SearchBoxIdle lipgloss.Style
	Section       lipgloss.Style
	Dim           lipgloss.Style
	Error         lipgloss.Style
	Spinner       lipgloss.Style
	Help          lipgloss.Style
	Status        lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	Rating       lipgloss.Style
	Meta         lipgloss.Style

	DetailsBox   lipgloss.Style
	DetailsTitle lipgloss.Style
	Tagline      lipgloss.Style
	Label        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")),
		TitleAccent: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("141")),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		SearchBoxIdle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Help:    lipgloss.NewStyle().Faint(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("141")).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Rating:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // yellow
		Meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		DetailsBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
		DetailsTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141")),
		Tagline:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250")),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}
