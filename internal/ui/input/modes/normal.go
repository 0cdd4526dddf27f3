package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"promodeck/internal/domain"
	"promodeck/internal/ui/input/types"
)

// doubleTapWindow is how long a first g waits for the second
const doubleTapWindow = 500 * time.Millisecond

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
	now         func() time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{now: time.Now}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	m.lastKeyWasG = false
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Any key other than g breaks a pending gg
	if msg.String() != "g" {
		m.lastKeyWasG = false
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		return nil, false

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.PageAction{Direction: "prev"}}, true

	case tea.KeyRight:
		return []types.Action{types.PageAction{Direction: "next"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if id := ctx.CurrentActivityID(); id != "" {
			return []types.Action{types.OpenDetailAction{ID: id}}, true
		}
		return nil, false
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		now := m.now()
		if m.lastKeyWasG && now.Sub(m.lastGTime) < doubleTapWindow {
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = now
		return nil, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeKeyword}}, true

	case "t":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeDateRange}}, true

	case "1":
		return []types.Action{types.SetStatusFilterAction{Status: domain.StatusAll}}, true

	case "2":
		return []types.Action{types.SetStatusFilterAction{Status: domain.StatusActive}}, true

	case "3":
		return []types.Action{types.SetStatusFilterAction{Status: domain.StatusUpcoming}}, true

	case "4":
		return []types.Action{types.SetStatusFilterAction{Status: domain.StatusEnded}}, true

	case "[":
		return []types.Action{types.PageAction{Direction: "prev"}}, true

	case "]":
		return []types.Action{types.PageAction{Direction: "next"}}, true

	case "H":
		return []types.Action{types.PageAction{Direction: "first"}}, true

	case "L":
		return []types.Action{types.PageAction{Direction: "last"}}, true

	case "z":
		return []types.Action{types.CyclePageSizeAction{}}, true

	case "R":
		return []types.Action{types.ResetFiltersAction{}}, true

	case "r":
		return []types.Action{types.ReloadCatalogAction{}}, true

	case "v":
		return []types.Action{types.SwitchLayoutAction{}}, true

	case "d":
		id := ctx.CurrentActivityID()
		if id == "" {
			return nil, true
		}
		if ctx.ConfirmDelete() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeDeleteConfirm}}, true
		}
		return []types.Action{types.DeleteActivityAction{ID: id}}, true

	case "y":
		return []types.Action{types.CopyQueryAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
