package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinefind/internal/ui/input/types"
)

type stubContext struct {
	count    int
	selected int64
}

func (c stubContext) MovieCount() int        { return c.count }
func (c stubContext) SelectedMovieID() int64 { return c.selected }
func (c stubContext) Query() string          { return "" }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(h *Handler, ctx types.Context, text string) []types.Action {
	var all []types.Action
	for _, r := range text {
		actions, _ := h.HandleKey(runes(string(r)), ctx)
		all = append(all, actions...)
	}
	return all
}

func TestTypingEmitsQueryUpdates(t *testing.T) {
	h := New("Search")
	ctx := stubContext{}

	actions := typeText(h, ctx, "Up")
	assert.Equal(t, []types.Action{
		types.UpdateQueryAction{Query: "U"},
		types.UpdateQueryAction{Query: "Up"},
	}, actions)
	assert.Equal(t, "Up", h.TextInput().Value())
}

func TestLettersThatAreBrowseKeysAreTypedInSearchMode(t *testing.T) {
	h := New("Search")
	actions := typeText(h, stubContext{}, "jkq?")
	require.Len(t, actions, 4)
	assert.Equal(t, types.UpdateQueryAction{Query: "jkq?"}, actions[3])
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
}

func TestBackspaceEmitsUpdate(t *testing.T) {
	h := New("Search")
	h.SetQuery("Heat")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace}, stubContext{})
	assert.Equal(t, []types.Action{types.UpdateQueryAction{Query: "Hea"}}, actions)
}

func TestEscClearsQuery(t *testing.T) {
	h := New("Search")
	h.SetQuery("Alien")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, stubContext{})
	assert.Equal(t, []types.Action{types.UpdateQueryAction{Query: ""}}, actions)
	assert.Empty(t, h.TextInput().Value())

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, stubContext{})
	assert.Empty(t, actions, "clearing an empty box is a no-op")
}

func TestModeTransitions(t *testing.T) {
	h := New("Search")
	ctx := stubContext{count: 3, selected: 603}

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Equal(t, types.ModeBrowse, h.CurrentMode())
	assert.Contains(t, actions, types.ChangeModeAction{Mode: types.ModeBrowse})
	assert.False(t, h.TextInput().Focused())

	actions, _ = h.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "down"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, types.ModeDetails, h.CurrentMode())
	assert.Contains(t, actions, types.OpenDetailsAction{MovieID: 603})

	// keys are swallowed while the popup is open
	actions, _ = h.HandleKey(runes("j"), ctx)
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, types.ModeBrowse, h.CurrentMode())
	assert.Contains(t, actions, types.CloseDetailsAction{})

	actions, _ = h.HandleKey(runes("/"), ctx)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.True(t, h.TextInput().Focused())
	for _, a := range actions {
		_, isUpdate := a.(types.UpdateQueryAction)
		assert.False(t, isUpdate, "switching modes must not type the key")
	}
}

func TestEnterWithoutSelectionDoesNothing(t *testing.T) {
	h := New("Search")
	h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, stubContext{})

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, stubContext{})
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeBrowse, h.CurrentMode())
}

func TestQuitKeys(t *testing.T) {
	h := New("Search")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, stubContext{})
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)

	h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, stubContext{})
	actions, _ = h.HandleKey(runes("q"), stubContext{})
	assert.Equal(t, []types.Action{types.QuitAction{}}, actions)
}

func TestSortKeyOnlyInBrowseMode(t *testing.T) {
	h := New("Search")

	actions := typeText(h, stubContext{}, "s")
	assert.Equal(t, []types.Action{types.UpdateQueryAction{Query: "s"}}, actions)

	h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, stubContext{})
	actions, _ = h.HandleKey(runes("s"), stubContext{})
	assert.Equal(t, []types.Action{types.CycleSortAction{}}, actions)
}
