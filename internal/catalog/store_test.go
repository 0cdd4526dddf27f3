package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promodeck/internal/domain"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore(
		domain.Activity{ID: "a", Title: "First"},
		domain.Activity{ID: "b", Title: "Second"},
		domain.Activity{ID: "c", Title: "Third"},
	)
	assert.Equal(t, 3, s.Len())

	got, err := s.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Title)

	_, err = s.Get("zzz")
	assert.ErrorIs(t, err, ErrNotFound)

	deleted, err := s.Delete("b")
	require.NoError(t, err)
	assert.Equal(t, "Second", deleted.Title)
	assert.Equal(t, 2, s.Len())

	_, err = s.Delete("b")
	assert.ErrorIs(t, err, ErrNotFound)

	ids := []string{}
	for _, a := range s.All() {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)
}

func TestMemoryStoreCopyOnRead(t *testing.T) {
	s := NewMemoryStore(domain.Activity{ID: "a", Title: "Original"})

	all := s.All()
	all[0].Title = "Changed"

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Title)
}

func TestMemoryStoreReplace(t *testing.T) {
	s := NewMemoryStore(domain.Activity{ID: "old"})
	s.Replace([]domain.Activity{{ID: "x", Title: "one"}, {ID: "x", Title: "two"}, {ID: "y"}})

	assert.Equal(t, 2, s.Len())
	got, err := s.Get("x")
	require.NoError(t, err)
	assert.Equal(t, "two", got.Title)
	_, err = s.Get("old")
	assert.ErrorIs(t, err, ErrNotFound)
}
