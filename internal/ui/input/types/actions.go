package types

import "promodeck/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode     Mode
	Original string // value the text had when the mode was entered
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Filter actions
type SetStatusFilterAction struct {
	Status domain.Status
}

func (a SetStatusFilterAction) Type() string { return "set_status_filter" }

type PageAction struct {
	Direction string // "prev", "next", "first", "last"
}

func (a PageAction) Type() string { return "page" }

type CyclePageSizeAction struct{}

func (a CyclePageSizeAction) Type() string { return "cycle_page_size" }

type ResetFiltersAction struct{}

func (a ResetFiltersAction) Type() string { return "reset_filters" }

// Activity actions
type OpenDetailAction struct {
	ID string
}

func (a OpenDetailAction) Type() string { return "open_detail" }

type DeleteActivityAction struct {
	ID string
}

func (a DeleteActivityAction) Type() string { return "delete_activity" }

type ReloadCatalogAction struct{}

func (a ReloadCatalogAction) Type() string { return "reload_catalog" }

// View actions
type SwitchLayoutAction struct{}

func (a SwitchLayoutAction) Type() string { return "switch_layout" }

type CopyQueryAction struct{}

func (a CopyQueryAction) Type() string { return "copy_query" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
