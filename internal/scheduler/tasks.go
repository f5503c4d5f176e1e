package scheduler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TaskDueReminder = "tasks.due_reminder"

// dueReminderTaskID derives a stable queue task ID so the creation-time
// enqueue and the periodic sweep cannot double-book the same reminder.
func dueReminderTaskID(taskID uuid.UUID, dueDate time.Time) string {
	return fmt.Sprintf("%s:%s:%d", TaskDueReminder, taskID, dueDate.Unix())
}

type DueReminderPayload struct {
	TaskID  string    `json:"taskId"`
	DueDate time.Time `json:"dueDate"`
}

func NewDueReminderTask(payload DueReminderPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDueReminder, data), nil
}

func ParseDueReminderPayload(task *asynq.Task) (DueReminderPayload, error) {
	var payload DueReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return DueReminderPayload{}, err
	}
	return payload, nil
}
