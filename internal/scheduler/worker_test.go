package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	tasksrepo "lexportal_backend/internal/tasks/repository"
	"lexportal_backend/platform/logger"
)

type stubTaskReader struct {
	due       []tasksrepo.Task
	gotParams tasksrepo.DueSoonParams
}

func (s *stubTaskReader) GetByID(ctx context.Context, id uuid.UUID) (tasksrepo.Task, error) {
	return tasksrepo.Task{}, nil
}

func (s *stubTaskReader) List(ctx context.Context, params tasksrepo.ListParams) ([]tasksrepo.Task, int, error) {
	return nil, 0, nil
}

func (s *stubTaskReader) ListDueSoon(ctx context.Context, params tasksrepo.DueSoonParams) ([]tasksrepo.Task, error) {
	s.gotParams = params
	return s.due, nil
}

type recordingEnqueuer struct {
	taskIDs []uuid.UUID
}

func (r *recordingEnqueuer) EnqueueDueReminderNow(ctx context.Context, taskID uuid.UUID, dueDate time.Time) error {
	r.taskIDs = append(r.taskIDs, taskID)
	return nil
}

func TestSweepDueReminders(t *testing.T) {
	soon := time.Now().Add(2 * time.Hour)
	withDue := tasksrepo.Task{ID: uuid.New(), DueDate: &soon}
	noDue := tasksrepo.Task{ID: uuid.New()}

	reader := &stubTaskReader{due: []tasksrepo.Task{withDue, noDue}}
	rec := &recordingEnqueuer{}
	w := &Worker{tasks: reader, enqueuer: rec, log: logger.New("development")}

	if err := w.sweepDueReminders(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.taskIDs) != 1 || rec.taskIDs[0] != withDue.ID {
		t.Fatalf("expected one reminder for the dated task, got %v", rec.taskIDs)
	}
	if got := reader.gotParams.To.Sub(reader.gotParams.From); got != reminderLeadTime {
		t.Fatalf("sweep window should span the lead time, got %v", got)
	}
}

func TestDueReminderTaskID(t *testing.T) {
	taskID := uuid.New()
	due := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	first := dueReminderTaskID(taskID, due)
	if first != dueReminderTaskID(taskID, due) {
		t.Fatal("the same task and due date must map to the same queue ID")
	}
	if first == dueReminderTaskID(taskID, due.Add(time.Hour)) {
		t.Fatal("a rescheduled due date must map to a fresh queue ID")
	}
}
