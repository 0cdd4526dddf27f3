package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"promodeck/internal/domain"
)

func TestSetItemsClampsCursor(t *testing.T) {
	s := NewAppState()
	s.SetItems([]domain.Activity{{ID: "1"}, {ID: "2"}, {ID: "3"}})
	s.Cursor = 2

	s.SetItems([]domain.Activity{{ID: "4"}})
	assert.Equal(t, 0, s.Cursor)

	a, ok := s.CurrentActivity()
	assert.True(t, ok)
	assert.Equal(t, "4", a.ID)
}

func TestCurrentActivityEmpty(t *testing.T) {
	s := NewAppState()
	s.SetItems(nil)
	_, ok := s.CurrentActivity()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Cursor)
}

func TestStatusMessages(t *testing.T) {
	s := NewAppState()
	s.SetError("boom")
	assert.True(t, s.StatusIsError)
	s.SetStatus("ok")
	assert.False(t, s.StatusIsError)
	assert.Equal(t, "ok", s.StatusMessage)
	s.ClearStatus()
	assert.Empty(t, s.StatusMessage)
}
