// Package events re-exports the platform event bus for convenience.
// This allows internal modules to import events from internal/events
// while the implementation lives in platform/events.
package events

import (
	platformevents "lexportal_backend/platform/events"
	"lexportal_backend/platform/logger"
)

// Event is a type alias to the platform Event interface.
type Event = platformevents.Event

// Bus is a type alias to the platform Bus interface.
type Bus = platformevents.Bus

// Handler is a type alias to the platform Handler interface.
type Handler = platformevents.Handler

// InMemoryBus is a type alias to the platform InMemoryBus.
type InMemoryBus = platformevents.InMemoryBus

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return platformevents.NewInMemoryBus(log)
}
