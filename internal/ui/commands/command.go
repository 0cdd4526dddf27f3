package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"promodeck/internal/catalog"
	"promodeck/internal/eventbus"
	"promodeck/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// Reloader reloads the catalog into the store
type Reloader func() error

// CommandContext provides context for command execution
type CommandContext struct {
	State  *state.AppState
	Store  catalog.Store
	Bus    eventbus.EventBus
	Logger *zap.Logger
	Reload Reloader
}

// ReloadFinishedMsg is sent when a catalog reload started by ReloadCatalogCommand ends
type ReloadFinishedMsg struct {
	Err error
}

// DeleteActivityCommand removes an activity from the catalog
type DeleteActivityCommand struct {
	ctx *CommandContext
	id  string
}

// NewDeleteActivityCommand creates a new delete command
func NewDeleteActivityCommand(ctx *CommandContext, id string) *DeleteActivityCommand {
	return &DeleteActivityCommand{ctx: ctx, id: id}
}

// Execute deletes the activity and announces it on the bus
func (c *DeleteActivityCommand) Execute() tea.Cmd {
	removed, err := c.ctx.Store.Delete(c.id)
	if err != nil {
		c.ctx.Logger.Warn("Delete failed", zap.String("id", c.id), zap.Error(err))
		c.ctx.State.SetError(fmt.Sprintf("Delete failed: %v", err))
		return nil
	}

	c.ctx.Logger.Info("Activity deleted", zap.String("id", removed.ID), zap.String("title", removed.Title))
	c.ctx.State.SetStatus(fmt.Sprintf("Deleted %q", removed.Title))
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.ActivityDeletedEvent{ID: removed.ID, Title: removed.Title})
	}
	return nil
}

// ReloadCatalogCommand reloads the catalog off the UI loop
type ReloadCatalogCommand struct {
	ctx *CommandContext
}

// NewReloadCatalogCommand creates a new reload command
func NewReloadCatalogCommand(ctx *CommandContext) *ReloadCatalogCommand {
	return &ReloadCatalogCommand{ctx: ctx}
}

// Execute starts the reload; the result arrives as ReloadFinishedMsg
func (c *ReloadCatalogCommand) Execute() tea.Cmd {
	if c.ctx.Reload == nil {
		c.ctx.State.SetError("Catalog reload is not available")
		return nil
	}
	c.ctx.State.SetStatus("Reloading catalog...")
	reload := c.ctx.Reload
	return func() tea.Msg {
		return ReloadFinishedMsg{Err: reload()}
	}
}
