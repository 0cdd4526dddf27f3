package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"promodeck/internal/ui/input/types"
)

// TextInputMode is a base for modes that accept text input
type TextInputMode struct {
	mode      types.Mode
	name      string
	prompt    string
	textInput *textinput.Model
	original  string
}

func NewTextInputMode(mode types.Mode, name, prompt string, ti *textinput.Model) *TextInputMode {
	return &TextInputMode{
		mode:      mode,
		name:      name,
		prompt:    prompt,
		textInput: ti,
	}
}

func (m *TextInputMode) Name() string {
	return m.name
}

// Prompt is shown in front of the text input by the view
func (m *TextInputMode) Prompt() string {
	return m.prompt
}

func (m *TextInputMode) Enter(ctx types.Context) []types.Action {
	m.begin("")
	return nil
}

func (m *TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
		m.textInput.Reset()
	}
	return nil
}

// begin focuses the shared input prefilled with value
func (m *TextInputMode) begin(value string) {
	m.original = value
	if m.textInput == nil {
		return
	}
	m.textInput.Prompt = "" // Prompt is handled in the UI layer
	m.textInput.SetValue(value)
	m.textInput.CursorEnd()
	m.textInput.Focus()
}

func (m *TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		// Cancel and return to normal mode
		return []types.Action{
			types.CancelTextAction{Mode: m.mode, Original: m.original},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "enter":
		text := ""
		if m.textInput != nil {
			text = m.textInput.Value()
		}
		return []types.Action{
			types.SubmitTextAction{Text: text, Mode: m.mode},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	default:
		// Returning false lets the input handler feed the key to the text input
		return nil, false
	}
}
