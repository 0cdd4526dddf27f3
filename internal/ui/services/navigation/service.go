package navigation

import (
	"promodeck/internal/window"
)

// Service moves the cursor over a list and keeps it inside the scroll window
type Service struct {
	state *State
	win   *window.Window
}

// NewService creates a navigation service driving win
func NewService(win *window.Window) *Service {
	s := &Service{
		state: &State{MaxIndex: -1},
	}
	s.SetWindow(win)
	return s
}

// SetWindow swaps the scroll window, e.g. after a layout change remounts the list.
// The cursor is kept and scrolled into view.
func (s *Service) SetWindow(win *window.Window) {
	s.win = win
	if win != nil {
		win.SetItemCount(s.state.MaxIndex + 1)
	}
	s.ensureVisible()
}

// Window returns the window being driven
func (s *Service) Window() *window.Window {
	return s.win
}

// Cursor returns current cursor position
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// SetItemCount updates the list length, clamping the cursor
func (s *Service) SetItemCount(n int) {
	s.state.MaxIndex = n - 1
	if s.win != nil {
		s.win.SetItemCount(n)
	}
	s.state.Cursor = s.clampIndex(s.state.Cursor)
	s.ensureVisible()
}

// SetViewportHeight updates the number of rows available to the list
func (s *Service) SetViewportHeight(rows int) {
	if rows < 1 {
		rows = 1
	}
	if s.win != nil {
		s.win.SetViewportHeight(rows)
	}
	s.ensureVisible()
}

// Navigate moves the cursor and reports whether it moved
func (s *Service) Navigate(direction Direction) bool {
	old := s.state.Cursor

	switch direction {
	case DirectionUp:
		s.state.Cursor = s.clampIndex(s.state.Cursor - 1)
	case DirectionDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + 1)
	case DirectionPageUp:
		s.state.Cursor = s.clampIndex(s.state.Cursor - s.itemsPerPage())
		if s.win != nil {
			s.win.ScrollBy(-s.itemsPerPage() * s.win.ItemHeight())
		}
	case DirectionPageDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + s.itemsPerPage())
	case DirectionHome:
		s.state.Cursor = 0
		if s.win != nil {
			s.win.ScrollTo(0)
		}
	case DirectionEnd:
		s.state.Cursor = s.clampIndex(s.state.MaxIndex)
	}

	s.ensureVisible()
	return old != s.state.Cursor
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

// Scroll scrolls the window by rows, dragging the cursor along so it stays on screen
func (s *Service) Scroll(rows int) {
	if s.win == nil || s.state.MaxIndex < 0 {
		return
	}
	s.win.ScrollBy(rows)

	ih := s.win.ItemHeight()
	if ih <= 0 {
		return
	}
	offset := s.win.ScrollOffset()
	first := (offset + ih - 1) / ih
	last := (offset+s.win.ViewportHeight())/ih - 1
	if last < first {
		last = first
	}
	if s.state.Cursor < first {
		s.state.Cursor = s.clampIndex(first)
	} else if s.state.Cursor > last {
		s.state.Cursor = s.clampIndex(last)
	}
}

func (s *Service) itemsPerPage() int {
	if s.win == nil || s.win.ItemHeight() <= 0 {
		return 1
	}
	n := s.win.ViewportHeight()/s.win.ItemHeight() - 1
	if n < 1 {
		n = 1
	}
	return n
}

func (s *Service) clampIndex(index int) int {
	if index > s.state.MaxIndex {
		index = s.state.MaxIndex
	}
	if index < 0 {
		index = 0
	}
	return index
}

func (s *Service) ensureVisible() {
	if s.win != nil && s.state.MaxIndex >= 0 {
		s.win.EnsureVisible(s.state.Cursor)
	}
}
