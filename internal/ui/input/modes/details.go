package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cinefind/internal/ui/input/types"
)

// DetailsMode is active while the details popup is open
type DetailsMode struct {
	keys types.KeyMap
}

func NewDetailsMode(keys types.KeyMap) *DetailsMode {
	return &DetailsMode{keys: keys}
}

func (m *DetailsMode) Name() string {
	return "details"
}

func (m *DetailsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailsMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.CloseDetailsAction{}}
}

func (m *DetailsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Force):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Close):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true
	}
	// the popup swallows everything else
	return nil, true
}
