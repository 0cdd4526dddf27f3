package state

import (
	"time"

	"promodeck/internal/domain"
	"promodeck/internal/filters"
)

// AppState contains all the application state
type AppState struct {
	// Query result for the current criteria
	Items      []domain.Activity // activities on the current page
	Pagination filters.PaginationResult
	Stats      domain.StatusCounts // per-status counts of the whole catalog
	Query      string              // encoded criteria, mirrored from the controller

	// Selection state
	Cursor int // index into Items

	// Catalog state
	CatalogSource string
	LastReload    time.Time

	// UI state
	Layout        string
	Virtualized   bool
	ShowHelp      bool
	StatusMessage string
	StatusIsError bool
	Width         int
	Height        int
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Items:      make([]domain.Activity, 0),
		Pagination: filters.Paginate(0, filters.DefaultPage, filters.DefaultPageSize),
	}
}

// SetItems replaces the page items and keeps the cursor inside them
func (s *AppState) SetItems(items []domain.Activity) {
	s.Items = items
	s.ClampCursor()
}

// ClampCursor keeps the cursor inside the current page
func (s *AppState) ClampCursor() {
	if s.Cursor >= len(s.Items) {
		s.Cursor = len(s.Items) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// CurrentActivity returns the activity under the cursor
func (s *AppState) CurrentActivity() (domain.Activity, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Items) {
		return domain.Activity{}, false
	}
	return s.Items[s.Cursor], true
}

// SetStatus shows an informational message in the status bar
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError shows an error message in the status bar
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}

// ClearStatus clears the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
