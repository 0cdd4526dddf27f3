package catalog

import (
	"errors"
	"sync"

	"promodeck/internal/domain"
)

// ErrNotFound is returned when an activity ID is not in the store
var ErrNotFound = errors.New("activity not found")

// Store holds the activity catalog
type Store interface {
	All() []domain.Activity
	Get(id string) (domain.Activity, error)
	Replace(activities []domain.Activity)
	Delete(id string) (domain.Activity, error)
	Len() int
}

// MemoryStore is an in-memory implementation of Store. Reads return copies so
// callers can never modify stored activities.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]domain.Activity
	order []string // insertion order, keeps All deterministic
}

// NewMemoryStore creates a store seeded with activities
func NewMemoryStore(activities ...domain.Activity) *MemoryStore {
	s := &MemoryStore{}
	s.Replace(activities)
	return s
}

func (s *MemoryStore) All() []domain.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Activity, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.items[id])
	}
	return result
}

func (s *MemoryStore) Get(id string) (domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.items[id]
	if !ok {
		return domain.Activity{}, ErrNotFound
	}
	return a, nil
}

// Replace swaps the whole catalog. Later duplicates of an ID overwrite earlier ones.
func (s *MemoryStore) Replace(activities []domain.Activity) {
	items := make(map[string]domain.Activity, len(activities))
	order := make([]string, 0, len(activities))
	for _, a := range activities {
		if _, seen := items[a.ID]; !seen {
			order = append(order, a.ID)
		}
		items[a.ID] = a
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.order = order
}

func (s *MemoryStore) Delete(id string) (domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.items[id]
	if !ok {
		return domain.Activity{}, ErrNotFound
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
	return a, nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
