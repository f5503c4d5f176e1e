package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"

	agentsrepo "lexportal_backend/internal/agents/repository"
	"lexportal_backend/internal/email"
	"lexportal_backend/internal/tasks/domain"
	tasksrepo "lexportal_backend/internal/tasks/repository"
	"lexportal_backend/platform/apperr"
	"lexportal_backend/platform/config"
	"lexportal_backend/platform/logger"
)

// sweepInterval is how often the worker scans for tasks inside the lead
// window whose reminder was never scheduled.
const sweepInterval = time.Hour

// reminderEnqueuer enqueues an immediate due reminder. Satisfied by Client.
type reminderEnqueuer interface {
	EnqueueDueReminderNow(ctx context.Context, taskID uuid.UUID, dueDate time.Time) error
}

type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	tasks    tasksrepo.TaskReader
	agents   agentsrepo.AgentReader
	enqueuer reminderEnqueuer
	closer   func() error
	sender   email.Sender
	baseURL  string
	log      *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, pool *pgxpool.Pool, sender email.Sender, baseURL string, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	enqueuer, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	mux := asynq.NewServeMux()
	w := &Worker{
		server:   server,
		mux:      mux,
		tasks:    tasksrepo.New(pool),
		agents:   agentsrepo.New(pool),
		enqueuer: enqueuer,
		closer:   enqueuer.Close,
		sender:   sender,
		baseURL:  baseURL,
		log:      log,
	}

	mux.HandleFunc(TaskDueReminder, w.handleDueReminder)

	return w, nil
}

// handleDueReminder re-checks the task at delivery time. A task that has
// been completed, unassigned, or rescheduled since enqueueing sends nothing.
func (w *Worker) handleDueReminder(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseDueReminderPayload(task)
	if err != nil {
		return err
	}

	taskID, err := uuid.Parse(payload.TaskID)
	if err != nil {
		return err
	}

	t, err := w.tasks.GetByID(ctx, taskID)
	if err != nil {
		if apperr.GetKind(err) == apperr.KindNotFound {
			return nil
		}
		return err
	}

	if domain.IsCompleted(t.Status) || t.AssignedTo == nil || t.DueDate == nil {
		return nil
	}
	if !t.DueDate.Equal(payload.DueDate) {
		// due date moved; the newer reminder covers it
		return nil
	}

	agent, err := w.agents.GetByID(ctx, *t.AssignedTo)
	if err != nil {
		return err
	}

	taskURL := fmt.Sprintf("%s/tasks/%s", w.baseURL, t.ID)
	dueDate := t.DueDate.Format(time.RFC1123)
	if err := w.sender.SendTaskDueReminderEmail(ctx, agent.Email, agent.FirstName, t.Title, dueDate, taskURL); err != nil {
		return err
	}

	w.log.InfoContext(ctx, "due reminder sent", "task_id", t.ID, "agent_id", agent.ID)
	return nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
		if w.closer != nil {
			_ = w.closer()
		}
	}()
	go w.runSweep(ctx)

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

// runSweep periodically enqueues reminders for tasks already inside the
// lead window, catching tasks created with a near due date or while the
// queue was unreachable. Duplicates are rejected by the stable task ID.
func (w *Worker) runSweep(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		if err := w.sweepDueReminders(ctx); err != nil {
			w.log.ErrorContext(ctx, "due reminder sweep failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (w *Worker) sweepDueReminders(ctx context.Context) error {
	now := time.Now()
	tasks, err := w.tasks.ListDueSoon(ctx, tasksrepo.DueSoonParams{
		From: now,
		To:   now.Add(reminderLeadTime),
	})
	if err != nil {
		return err
	}

	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		if err := w.enqueuer.EnqueueDueReminderNow(ctx, t.ID, *t.DueDate); err != nil {
			w.log.ErrorContext(ctx, "could not enqueue due reminder", "task_id", t.ID, "error", err)
		}
	}
	return nil
}
