package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding; modes match against it and the footer
// renders its help text.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	Browse key.Binding
	Search key.Binding
	Open   key.Binding
	Close  key.Binding
	Clear  key.Binding
	Sort   key.Binding
	Help   key.Binding
	Quit   key.Binding
	Force  key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),

		Browse: key.NewBinding(key.WithKeys("tab", "down", "enter"), key.WithHelp("tab", "browse")),
		Search: key.NewBinding(key.WithKeys("/", "tab", "esc"), key.WithHelp("/", "search")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Close:  key.NewBinding(key.WithKeys("esc", "enter", "q", "backspace"), key.WithHelp("esc", "close")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Force:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// SearchHelp is the help.KeyMap shown while typing
type SearchHelp struct{ Keys KeyMap }

func (h SearchHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Keys.Browse, h.Keys.Clear, h.Keys.Force}
}

func (h SearchHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// BrowseHelp is the help.KeyMap shown while moving between cards
type BrowseHelp struct{ Keys KeyMap }

func (h BrowseHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Keys.Up, h.Keys.Down, h.Keys.Left, h.Keys.Right, h.Keys.Open, h.Keys.Sort, h.Keys.Search, h.Keys.Help, h.Keys.Quit}
}

func (h BrowseHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.Keys.Up, h.Keys.Down, h.Keys.Left, h.Keys.Right},
		{h.Keys.PageUp, h.Keys.PageDown, h.Keys.Home, h.Keys.End},
		{h.Keys.Open, h.Keys.Sort, h.Keys.Search},
		{h.Keys.Help, h.Keys.Quit},
	}
}

// DetailsHelp is the help.KeyMap shown with the details popup open
type DetailsHelp struct{ Keys KeyMap }

func (h DetailsHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Keys.Close, h.Keys.Force}
}

func (h DetailsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
