package ui

import (
	"promodeck/internal/eventbus"
	"promodeck/internal/filters"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// keywordCommitMsg carries a debounced keyword into the update loop
type keywordCommitMsg struct {
	commit filters.KeywordCommit
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
