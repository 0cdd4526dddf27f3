package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"promodeck/internal/catalog"
	"promodeck/internal/domain"
	"promodeck/internal/eventbus"
	"promodeck/internal/ui/state"
)

type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(event eventbus.DomainEvent) { b.events = append(b.events, event) }

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }

func (b *recordingBus) Close() {}

func TestExecuteDelete(t *testing.T) {
	st := state.NewAppState()
	store := catalog.NewMemoryStore(
		domain.Activity{ID: "a1", Title: "Coupon Week"},
		domain.Activity{ID: "a2", Title: "Gift Day"},
	)
	bus := &recordingBus{}
	e := NewExecutor(st, store, bus, zaptest.NewLogger(t), nil)

	assert.Nil(t, e.ExecuteDelete("a1"))
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, `Deleted "Coupon Week"`, st.StatusMessage)
	require.Len(t, bus.events, 1)
	assert.Equal(t, eventbus.ActivityDeletedEvent{ID: "a1", Title: "Coupon Week"}, bus.events[0])

	e.ExecuteDelete("a1")
	assert.True(t, st.StatusIsError)
	assert.Contains(t, st.StatusMessage, "Delete failed")
	assert.Len(t, bus.events, 1)
}

func TestExecuteReload(t *testing.T) {
	st := state.NewAppState()
	e := NewExecutor(st, catalog.NewMemoryStore(), nil, nil, func() error { return errors.New("bad toml") })

	cmd := e.ExecuteReload()
	require.NotNil(t, cmd)
	assert.Equal(t, "Reloading catalog...", st.StatusMessage)

	msg, ok := cmd().(ReloadFinishedMsg)
	require.True(t, ok)
	assert.EqualError(t, msg.Err, "bad toml")
}

func TestExecuteReloadWithoutReloader(t *testing.T) {
	st := state.NewAppState()
	e := NewExecutor(st, catalog.NewMemoryStore(), nil, nil, nil)

	assert.Nil(t, e.ExecuteReload())
	assert.True(t, st.StatusIsError)
}
