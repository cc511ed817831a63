package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cinefind/internal/ui/input/types"
)

// SearchMode sends keystrokes to the search box
type SearchMode struct {
	keys      types.KeyMap
	textInput *textinput.Model
}

func NewSearchMode(keys types.KeyMap, ti *textinput.Model) *SearchMode {
	return &SearchMode{keys: keys, textInput: ti}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	m.textInput.Focus()
	m.textInput.CursorEnd()
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	m.textInput.Blur()
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Force):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Clear):
		if m.textInput.Value() == "" {
			return nil, true
		}
		m.textInput.SetValue("")
		return []types.Action{types.UpdateQueryAction{Query: ""}}, true

	case key.Matches(msg, m.keys.Browse):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true
	}

	// everything else edits the text
	return nil, false
}
