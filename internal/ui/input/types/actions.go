package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// UpdateQueryAction is emitted whenever the search text changes
type UpdateQueryAction struct {
	Query string
}

func (a UpdateQueryAction) Type() string { return "update_query" }

// Details popup
type OpenDetailsAction struct {
	MovieID int64
}

func (a OpenDetailsAction) Type() string { return "open_details" }

type CloseDetailsAction struct{}

func (a CloseDetailsAction) Type() string { return "close_details" }

// CycleSortAction switches the results to the next sort order
type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
