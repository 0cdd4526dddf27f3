package cli

import "promodeck/internal/eventbus"

type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(event eventbus.DomainEvent) { b.events = append(b.events, event) }

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }

func (b *recordingBus) Close() {}
