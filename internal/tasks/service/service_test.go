package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"lexportal_backend/internal/tasks/repository"
	"lexportal_backend/internal/tasks/transport"
	"lexportal_backend/platform/apperr"
	"lexportal_backend/platform/events"
	"lexportal_backend/platform/logger"
)

type stubClientDirectory struct {
	exists bool
}

func (s stubClientDirectory) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.exists, nil
}

// createRecorder embeds the repository interface so only the methods a test
// exercises need implementing.
type createRecorder struct {
	repository.Repository
	created bool
}

func (r *createRecorder) Create(ctx context.Context, params repository.CreateParams) (repository.Task, error) {
	r.created = true
	return repository.Task{
		ID:        uuid.New(),
		Title:     params.Title,
		Status:    params.Status,
		Priority:  params.Priority,
		ClientID:  params.ClientID,
		CreatedBy: params.CreatedBy,
	}, nil
}

func TestCreateRejectsUnknownClient(t *testing.T) {
	repo := &createRecorder{}
	log := logger.New("development")
	svc := NewService(repo, stubClientDirectory{exists: false}, events.NewInMemoryBus(log), nil, log)

	clientID := uuid.New().String()
	_, err := svc.Create(context.Background(), uuid.New(), transport.CreateTaskRequest{
		Title:    "File the appeal",
		ClientID: &clientID,
	})
	if err == nil {
		t.Fatal("expected an error for an unknown client")
	}
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected KindValidation, got %v", apperr.GetKind(err))
	}
	if repo.created {
		t.Fatal("no task should be inserted for an unknown client")
	}
}

func TestCreateAcceptsKnownClient(t *testing.T) {
	repo := &createRecorder{}
	log := logger.New("development")
	svc := NewService(repo, stubClientDirectory{exists: true}, events.NewInMemoryBus(log), nil, log)

	clientID := uuid.New().String()
	resp, err := svc.Create(context.Background(), uuid.New(), transport.CreateTaskRequest{
		Title:    "File the appeal",
		ClientID: &clientID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.created {
		t.Fatal("expected the task to be inserted")
	}
	if resp.Title != "File the appeal" {
		t.Fatalf("unexpected response title %q", resp.Title)
	}
}

func TestAssigneeChanged(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	if !assigneeChanged(nil, &a) {
		t.Error("assigning a previously unassigned task is a change")
	}
	if !assigneeChanged(&a, &b) {
		t.Error("swapping the assignee is a change")
	}
	if assigneeChanged(&a, &a) {
		t.Error("keeping the same assignee is not a change")
	}
	if assigneeChanged(&a, nil) {
		t.Error("unassigning should not count as an assignment")
	}
}

func TestParseTimePtr(t *testing.T) {
	got, err := parseTimePtr(ptr("2025-06-15T09:00:00Z"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Hour() != 9 {
		t.Fatalf("parseTimePtr returned %v", got)
	}

	if _, err := parseTimePtr(ptr("2025-06-15")); err == nil {
		t.Fatal("expected error for date-only input")
	}

	got, err = parseTimePtr(nil)
	if err != nil || got != nil {
		t.Fatalf("parseTimePtr(nil) = %v, %v", got, err)
	}
}

func TestParseUUIDFilter(t *testing.T) {
	id := uuid.New()
	got, err := parseUUIDFilter(id.String())
	if err != nil || got == nil || *got != id {
		t.Fatalf("parseUUIDFilter(%q) = %v, %v", id, got, err)
	}

	got, err = parseUUIDFilter("")
	if err != nil || got != nil {
		t.Fatalf("empty filter should mean no filter, got %v, %v", got, err)
	}

	if _, err := parseUUIDFilter("not-a-uuid"); err == nil {
		t.Fatal("expected error for malformed UUID")
	}
}

func ptr(s string) *string { return &s }
