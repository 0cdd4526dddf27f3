package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"promodeck/internal/window"
)

func newService(items int) *Service {
	// 3-row items, 12-row viewport: four items fit
	s := NewService(window.New(3, 1, 12, 0))
	s.SetItemCount(items)
	return s
}

func TestNavigateUpDownClamps(t *testing.T) {
	s := newService(3)

	assert.False(t, s.Navigate(DirectionUp))
	assert.Equal(t, 0, s.Cursor())

	assert.True(t, s.Navigate(DirectionDown))
	assert.True(t, s.Navigate(DirectionDown))
	assert.False(t, s.Navigate(DirectionDown))
	assert.Equal(t, 2, s.Cursor())
}

func TestNavigateKeepsCursorVisible(t *testing.T) {
	s := newService(20)

	for i := 0; i < 5; i++ {
		s.Navigate(DirectionDown)
	}
	assert.Equal(t, 5, s.Cursor())
	// Item 5 spans rows 15-17, so the viewport must end at row 18
	assert.Equal(t, 6, s.Window().ScrollOffset())
	assert.True(t, s.Window().Visible().Contains(5))
}

func TestHomeEnd(t *testing.T) {
	s := newService(20)

	s.Navigate(DirectionEnd)
	assert.Equal(t, 19, s.Cursor())
	assert.Equal(t, s.Window().MaxScrollOffset(), s.Window().ScrollOffset())

	s.Navigate(DirectionHome)
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, 0, s.Window().ScrollOffset())
}

func TestPageDownMovesByViewport(t *testing.T) {
	s := newService(20)

	s.Navigate(DirectionPageDown)
	assert.Equal(t, 3, s.Cursor())
	s.Navigate(DirectionPageUp)
	assert.Equal(t, 0, s.Cursor())
}

func TestSetItemCountClampsCursor(t *testing.T) {
	s := newService(20)
	s.MoveToIndex(15)

	s.SetItemCount(4)
	assert.Equal(t, 3, s.Cursor())
	assert.Equal(t, 0, s.Window().ScrollOffset())

	s.SetItemCount(0)
	assert.Equal(t, 0, s.Cursor())
	assert.True(t, s.Window().Visible().IsEmpty())
}

func TestScrollDragsCursor(t *testing.T) {
	s := newService(20)

	s.Scroll(9)
	assert.Equal(t, 9, s.Window().ScrollOffset())
	assert.Equal(t, 3, s.Cursor())

	s.Scroll(-9)
	assert.Equal(t, 0, s.Window().ScrollOffset())
	assert.Equal(t, 3, s.Cursor())
}

func TestSetWindowRemountsWithCursor(t *testing.T) {
	s := newService(20)
	s.MoveToIndex(10)

	// Compact layout: one row per item
	s.SetWindow(window.New(1, 2, 12, 0))
	assert.Equal(t, 10, s.Cursor())
	assert.Equal(t, 20, s.Window().ItemCount())
	assert.True(t, s.Window().Visible().Contains(10))
}
