package email

import (
	"strings"
	"testing"
)

func TestRenderTaskAssignedTemplate(t *testing.T) {
	content, err := renderEmailTemplate("task_assigned.html", taskAssignedEmailData{
		baseEmailData: baseEmailData{
			Title:    "New task assigned",
			Heading:  "New task assigned",
			CTALabel: "View task",
			CTAURL:   "https://portal.example.com/tasks/abc",
		},
		AssigneeName: "Ada",
		TaskTitle:    "Draft contract",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Ada", "Draft contract", "https://portal.example.com/tasks/abc"} {
		if !strings.Contains(content, want) {
			t.Errorf("rendered email missing %q", want)
		}
	}
}

func TestRenderTaskDueReminderTemplate(t *testing.T) {
	content, err := renderEmailTemplate("task_due_reminder.html", taskDueReminderEmailData{
		baseEmailData: baseEmailData{
			Title:   "Task due soon",
			Heading: "Task due soon",
		},
		AssigneeName: "Ada",
		TaskTitle:    "File motion",
		DueDate:      "2025-06-20",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(content, "2025-06-20") {
		t.Error("rendered email missing due date")
	}
}
