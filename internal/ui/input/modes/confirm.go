package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"promodeck/internal/ui/input/types"
)

type ConfirmMode struct {
	activityID string
	title      string
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "delete-confirm"
}

// Target returns the activity awaiting confirmation
func (m *ConfirmMode) Target() (id, title string) {
	return m.activityID, m.title
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	// Remember the target so a refresh underneath cannot change it
	m.activityID = ctx.CurrentActivityID()
	m.title = ctx.CurrentActivityTitle()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.activityID = ""
	m.title = ""
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "n", "N":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "y", "Y":
		if m.activityID == "" {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
		}
		return []types.Action{
			types.DeleteActivityAction{ID: m.activityID},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// Swallow everything else while the prompt is open
	return nil, true
}
