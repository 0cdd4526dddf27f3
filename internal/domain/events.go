package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded   EventType = "CatalogLoaded"
	EventCatalogReloaded EventType = "CatalogReloaded"
	EventActivityDeleted EventType = "ActivityDeleted"
	EventQueryChanged    EventType = "QueryChanged"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted once the initial catalog is in the store
type CatalogLoadedEvent struct {
	Source string
	Count  int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogReloadedEvent is emitted when the catalog file changed on disk and was re-read
type CatalogReloadedEvent struct {
	Source string
	Count  int
	Err    error // partial load errors; the valid records were still applied
}

func (e CatalogReloadedEvent) Type() EventType { return EventCatalogReloaded }

// ActivityDeletedEvent is emitted after an activity is removed from the store
type ActivityDeletedEvent struct {
	ID    string
	Title string
}

func (e ActivityDeletedEvent) Type() EventType { return EventActivityDeleted }

// QueryChangedEvent is emitted whenever the filter query string changes
type QueryChangedEvent struct {
	Query string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
