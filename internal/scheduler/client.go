package scheduler

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"lexportal_backend/platform/config"
)

// reminderLeadTime is how long before the due date the reminder fires.
const reminderLeadTime = 24 * time.Hour

type Client struct {
	client *asynq.Client
	queue  string
}

func NewClient(cfg config.SchedulerConfig) (*Client, error) {
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

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queue,
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// ScheduleDueReminder enqueues a reminder to fire one day before the due
// date. Tasks already inside the window are left to the worker's sweep; the
// worker re-checks task state at delivery time.
func (c *Client) ScheduleDueReminder(ctx context.Context, taskID uuid.UUID, dueDate time.Time) error {
	runAt := dueDate.Add(-reminderLeadTime)
	if runAt.Before(time.Now()) {
		return nil
	}
	return c.enqueueDueReminder(ctx, taskID, dueDate, runAt)
}

// EnqueueDueReminderNow enqueues an immediate reminder. Used by the sweep
// for tasks inside the lead window that never got a scheduled reminder.
func (c *Client) EnqueueDueReminderNow(ctx context.Context, taskID uuid.UUID, dueDate time.Time) error {
	return c.enqueueDueReminder(ctx, taskID, dueDate, time.Now())
}

// enqueueDueReminder enqueues with a stable task ID and keeps the finished
// task around long enough that a later enqueue for the same task and due
// date is rejected as a duplicate instead of sending a second email.
func (c *Client) enqueueDueReminder(ctx context.Context, taskID uuid.UUID, dueDate, runAt time.Time) error {
	if c == nil || c.client == nil {
		return nil
	}

	task, err := NewDueReminderTask(DueReminderPayload{
		TaskID:  taskID.String(),
		DueDate: dueDate,
	})
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task,
		asynq.ProcessAt(runAt),
		asynq.Queue(c.queue),
		asynq.TaskID(dueReminderTaskID(taskID, dueDate)),
		asynq.Retention(2*reminderLeadTime),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

func redisClientOpt(redisURL string, tlsInsecure bool) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	var tlsConfig *tls.Config
	if opt.TLSConfig != nil {
		clone := opt.TLSConfig.Clone()
		if tlsInsecure {
			clone.InsecureSkipVerify = true
		}
		tlsConfig = clone
	} else if tlsInsecure {
		tlsConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: tlsConfig,
	}, nil
}
