package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cinefind/internal/ui/input/modes"
	"cinefind/internal/ui/input/types"
)

// Handler routes keys to the active mode and owns the search box
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
	keys        types.KeyMap
}

// New creates a handler starting in search mode with a focused search box
func New(placeholder string) *Handler {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 120
	ti.Focus()

	keys := types.DefaultKeyMap()
	h := &Handler{
		currentMode: types.ModeSearch,
		textInput:   &ti,
		keys:        keys,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeSearch] = modes.NewSearchMode(keys, h.textInput)
	h.modes[types.ModeBrowse] = modes.NewBrowseMode(keys)
	h.modes[types.ModeDetails] = modes.NewDetailsMode(keys)

	return h
}

// HandleKey runs msg through the current mode. In search mode, keys the
// mode does not consume edit the text and yield an UpdateQueryAction when
// the text changed.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmds []tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		if changeMode.Mode == h.currentMode {
			continue
		}

		allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
		h.currentMode = changeMode.Mode
		allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
		allActions = append(allActions, action)

		if h.currentMode == types.ModeSearch {
			cmds = append(cmds, textinput.Blink)
		}
	}

	if !consumed && h.currentMode == types.ModeSearch {
		before := h.textInput.Value()
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		cmds = append(cmds, cmd)
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateQueryAction{Query: after})
		}
	}

	return allActions, tea.Batch(cmds...)
}

// Update forwards non-key messages (cursor blink) to the search box
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeSearch {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// SetQuery replaces the search text without emitting actions
func (h *Handler) SetQuery(query string) {
	h.textInput.SetValue(query)
	h.textInput.CursorEnd()
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

func (h *Handler) Keys() types.KeyMap {
	return h.keys
}
