package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"promodeck/internal/ui/input/modes"
	"promodeck/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
}

func New() *Handler {
	ti := textinput.New()

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeKeyword] = modes.NewKeywordMode(h.textInput)
	h.modes[types.ModeDateRange] = modes.NewDateRangeMode(h.textInput)
	h.modes[types.ModeDeleteConfirm] = modes.NewConfirmMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// Unconsumed keys only matter to text modes
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
		if h.isTextMode(h.currentMode) {
			cmd = textinput.Blink
		}
	}

	// Text modes get the raw key when the mode did not handle it
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		allActions = append(allActions, types.UpdateTextAction{
			Text: h.textInput.Value(),
			Mode: h.currentMode,
		})
	}

	return allActions, cmd
}

// switchMode exits the current mode and enters next, collecting their actions
func (h *Handler) switchMode(next types.Mode, ctx types.Context) []types.Action {
	var out []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		out = append(out, current.Exit(ctx)...)
	}

	oldMode := h.currentMode
	h.currentMode = next

	if h.isTextMode(next) {
		h.textInput.Reset()
	} else if h.isTextMode(oldMode) {
		h.textInput.Blur()
	}

	if handler := h.modes[next]; handler != nil {
		out = append(out, handler.Enter(ctx)...)
	}
	return out
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// ModeHandler returns the handler registered for mode
func (h *Handler) ModeHandler(mode types.Mode) types.ModeHandler {
	return h.modes[mode]
}

// Prompt returns the prompt of the current text mode
func (h *Handler) Prompt() string {
	if p, ok := h.modes[h.currentMode].(interface{ Prompt() string }); ok && h.isTextMode(h.currentMode) {
		return p.Prompt()
	}
	return ""
}

// ConfirmTarget returns the activity the delete prompt refers to
func (h *Handler) ConfirmTarget() (id, title string) {
	if c, ok := h.modes[types.ModeDeleteConfirm].(*modes.ConfirmMode); ok {
		return c.Target()
	}
	return "", ""
}

func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	switch mode {
	case types.ModeKeyword, types.ModeDateRange:
		return true
	default:
		return false
	}
}

// ChangeMode switches mode outside of key handling
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	return h.switchMode(mode, ctx)
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
