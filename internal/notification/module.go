// Package notification sends emails in response to domain events. Domain
// modules publish events and stay unaware of email providers or templates.
package notification

import (
	"context"
	"fmt"

	agentsrepo "lexportal_backend/internal/agents/repository"
	"lexportal_backend/internal/email"
	"lexportal_backend/internal/events"
	platformevents "lexportal_backend/platform/events"
	"lexportal_backend/platform/logger"
)

type Module struct {
	agents  agentsrepo.AgentReader
	sender  email.Sender
	baseURL string
	log     *logger.Logger
}

func NewModule(agents agentsrepo.AgentReader, sender email.Sender, baseURL string, log *logger.Logger) *Module {
	return &Module{agents: agents, sender: sender, baseURL: baseURL, log: log}
}

// RegisterHandlers subscribes to the task events that trigger emails.
func (m *Module) RegisterHandlers(bus platformevents.Bus) {
	bus.Subscribe(events.TaskAssigned{}.EventName(), m)
	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event platformevents.Event) error {
	switch e := event.(type) {
	case events.TaskAssigned:
		return m.handleTaskAssigned(ctx, e)
	default:
		return nil
	}
}

func (m *Module) handleTaskAssigned(ctx context.Context, e events.TaskAssigned) error {
	// self-assignment needs no notification
	if e.AssignedToID == e.AssignedByID {
		return nil
	}

	agent, err := m.agents.GetByID(ctx, e.AssignedToID)
	if err != nil {
		return fmt.Errorf("resolve assignee: %w", err)
	}

	taskURL := fmt.Sprintf("%s/tasks/%s", m.baseURL, e.TaskID)
	if err := m.sender.SendTaskAssignedEmail(ctx, agent.Email, agent.FirstName, e.Title, taskURL); err != nil {
		return fmt.Errorf("send task assigned email: %w", err)
	}

	m.log.InfoContext(ctx, "task assignment email sent", "task_id", e.TaskID, "agent_id", agent.ID)
	return nil
}
