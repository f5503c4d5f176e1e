package domain

import "time"

// Canonical task statuses. These are the only values persisted; the aliases
// below exist so older client payloads keep working.
const (
	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

var statusAliases = map[string]string{
	"Done":    StatusCompleted,
	"Pending": StatusToDo,
}

var canonical = []string{StatusToDo, StatusInProgress, StatusCompleted}

// AllStatuses returns the canonical statuses in workflow order.
func AllStatuses() []string {
	out := make([]string, len(canonical))
	copy(out, canonical)
	return out
}

// NormalizeStatus maps an incoming status to its canonical form. The second
// return value reports whether the input was recognized at all.
func NormalizeStatus(status string) (string, bool) {
	if alias, ok := statusAliases[status]; ok {
		return alias, true
	}
	for _, s := range canonical {
		if s == status {
			return s, true
		}
	}
	return "", false
}

// ProgressPercent maps a canonical status to the completion percentage shown
// on task cards.
func ProgressPercent(status string) int {
	switch status {
	case StatusCompleted:
		return 100
	case StatusInProgress:
		return 50
	default:
		return 0
	}
}

func IsCompleted(status string) bool {
	return status == StatusCompleted
}

// IsPending reports whether a task has not been started yet. Only To Do
// counts; an in-progress task is neither pending nor completed. The Pending
// alias normalizes to To Do before this is called.
func IsPending(status string) bool {
	return status == StatusToDo
}

// IsOverdue reports whether a task is past its due date and not completed.
// Overdue is derived, never stored.
func IsOverdue(status string, dueDate *time.Time, now time.Time) bool {
	if dueDate == nil || IsCompleted(status) {
		return false
	}
	return dueDate.Before(now)
}
