package notification

import (
	"context"
	"testing"

	"github.com/google/uuid"

	agentsrepo "lexportal_backend/internal/agents/repository"
	"lexportal_backend/internal/events"
	platformevents "lexportal_backend/platform/events"
	"lexportal_backend/platform/logger"
)

type fakeAgents struct {
	agent agentsrepo.Agent
}

func (f *fakeAgents) GetByID(ctx context.Context, id uuid.UUID) (agentsrepo.Agent, error) {
	return f.agent, nil
}

func (f *fakeAgents) GetByEmail(ctx context.Context, email string) (agentsrepo.Agent, error) {
	return f.agent, nil
}

func (f *fakeAgents) List(ctx context.Context, params agentsrepo.ListParams) ([]agentsrepo.Agent, int, error) {
	return nil, 0, nil
}

func (f *fakeAgents) ListSubordinates(ctx context.Context, superiorID uuid.UUID) ([]agentsrepo.Agent, error) {
	return nil, nil
}

func (f *fakeAgents) Count(ctx context.Context) (int, error) {
	return 1, nil
}

type recordingSender struct {
	assignedTo []string
}

func (r *recordingSender) SendTaskAssignedEmail(ctx context.Context, toEmail, assigneeName, taskTitle, taskURL string) error {
	r.assignedTo = append(r.assignedTo, toEmail)
	return nil
}

func (r *recordingSender) SendTaskDueReminderEmail(ctx context.Context, toEmail, assigneeName, taskTitle, dueDate, taskURL string) error {
	return nil
}

func TestHandleTaskAssigned(t *testing.T) {
	assignee := uuid.New()
	assigner := uuid.New()

	agents := &fakeAgents{agent: agentsrepo.Agent{
		ID:        assignee,
		FirstName: "Ada",
		Email:     "ada@example.com",
	}}
	sender := &recordingSender{}
	m := NewModule(agents, sender, "https://portal.example.com", logger.New("development"))

	err := m.Handle(context.Background(), events.TaskAssigned{
		BaseEvent:    platformevents.NewBaseEvent(),
		TaskID:       uuid.New(),
		Title:        "Draft contract",
		AssignedToID: assignee,
		AssignedByID: assigner,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.assignedTo) != 1 || sender.assignedTo[0] != "ada@example.com" {
		t.Fatalf("expected one email to the assignee, got %v", sender.assignedTo)
	}
}

func TestHandleTaskAssigned_SelfAssignment(t *testing.T) {
	actor := uuid.New()

	sender := &recordingSender{}
	m := NewModule(&fakeAgents{}, sender, "https://portal.example.com", logger.New("development"))

	err := m.Handle(context.Background(), events.TaskAssigned{
		BaseEvent:    platformevents.NewBaseEvent(),
		TaskID:       uuid.New(),
		Title:        "Draft contract",
		AssignedToID: actor,
		AssignedByID: actor,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.assignedTo) != 0 {
		t.Fatal("self-assignment should not send email")
	}
}
