package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"promodeck/internal/eventbus"
	"promodeck/internal/ui/state"
)

// StatusTimeout is how long a status message stays up
const StatusTimeout = 3 * time.Second

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// ClearStatusAfter returns a command that clears the status message after d
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return ClearStatusMsg{} })
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state   *state.AppState
	logger  *zap.Logger
	refresh func()
	now     func() time.Time
}

// NewEventHandler creates a new event handler. refresh re-runs the current query.
func NewEventHandler(appState *state.AppState, logger *zap.Logger, refresh func()) *EventHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventHandler{
		state:   appState,
		logger:  logger,
		refresh: refresh,
		now:     time.Now,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CatalogLoadedEvent:
		h.state.CatalogSource = e.Source
		h.state.LastReload = h.now()
		h.refresh()
		return nil

	case eventbus.CatalogReloadedEvent:
		h.state.CatalogSource = e.Source
		h.state.LastReload = h.now()
		h.refresh()
		if e.Err != nil {
			// Partial reload: valid records were applied, the rest were skipped
			h.state.SetError(fmt.Sprintf("Catalog reloaded with errors (%d activities): %v", e.Count, e.Err))
		} else {
			h.state.SetStatus(fmt.Sprintf("Catalog reloaded (%d activities)", e.Count))
		}
		return ClearStatusAfter(StatusTimeout)

	case eventbus.ActivityDeletedEvent:
		h.refresh()
		return nil

	case eventbus.ErrorEvent:
		h.state.SetError(fmt.Sprintf("Error: %s", e.Message))
		return ClearStatusAfter(2 * StatusTimeout)

	default:
		h.logger.Debug("Ignoring event", zap.String("type", string(event.Type())))
	}
	return nil
}
