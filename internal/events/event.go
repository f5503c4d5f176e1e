package events

import (
	platformevents "lexportal_backend/platform/events"

	"github.com/google/uuid"
)

// TaskCreated is published when a new task is persisted.
type TaskCreated struct {
	platformevents.BaseEvent
	TaskID      uuid.UUID
	Title       string
	CreatedByID uuid.UUID
}

// EventName returns the unique event identifier.
func (TaskCreated) EventName() string { return "task.created" }

// TaskAssigned is published when a task gains or changes its assignee.
type TaskAssigned struct {
	platformevents.BaseEvent
	TaskID       uuid.UUID
	Title        string
	AssignedToID uuid.UUID
	AssignedByID uuid.UUID
}

// EventName returns the unique event identifier.
func (TaskAssigned) EventName() string { return "task.assigned" }

// TaskCompleted is published when a task transitions to Completed.
type TaskCompleted struct {
	platformevents.BaseEvent
	TaskID uuid.UUID
	Title  string
}

// EventName returns the unique event identifier.
func (TaskCompleted) EventName() string { return "task.completed" }
