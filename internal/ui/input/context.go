package input

import (
	"promodeck/internal/filters"
	"promodeck/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State          *state.AppState
	Criteria       filters.Criteria
	ConfirmDeletes bool
}

// CurrentIndex returns the cursor position within the current page
func (c *ModelContext) CurrentIndex() int {
	return c.State.Cursor
}

// TotalItems returns the number of items on the current page
func (c *ModelContext) TotalItems() int {
	return len(c.State.Items)
}

// CurrentActivityID returns the ID of the activity under the cursor
func (c *ModelContext) CurrentActivityID() string {
	if a, ok := c.State.CurrentActivity(); ok {
		return a.ID
	}
	return ""
}

// CurrentActivityTitle returns the title of the activity under the cursor
func (c *ModelContext) CurrentActivityTitle() string {
	if a, ok := c.State.CurrentActivity(); ok {
		return a.Title
	}
	return ""
}

func (c *ModelContext) Keyword() string {
	return c.Criteria.Keyword
}

func (c *ModelContext) DateRange() (start, end string) {
	return c.Criteria.StartDate, c.Criteria.EndDate
}

func (c *ModelContext) ConfirmDelete() bool {
	return c.ConfirmDeletes
}
