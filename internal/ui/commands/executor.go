package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"promodeck/internal/catalog"
	"promodeck/internal/eventbus"
	"promodeck/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, store catalog.Store, bus eventbus.EventBus, logger *zap.Logger, reload Reloader) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		ctx: &CommandContext{
			State:  state,
			Store:  store,
			Bus:    bus,
			Logger: logger,
			Reload: reload,
		},
	}
}

// ExecuteDelete creates and executes a delete command
func (e *Executor) ExecuteDelete(id string) tea.Cmd {
	return NewDeleteActivityCommand(e.ctx, id).Execute()
}

// ExecuteReload creates and executes a reload command
func (e *Executor) ExecuteReload() tea.Cmd {
	return NewReloadCatalogCommand(e.ctx).Execute()
}
