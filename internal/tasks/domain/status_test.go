package domain

import (
	"testing"
	"time"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"To Do", StatusToDo, true},
		{"In Progress", StatusInProgress, true},
		{"Completed", StatusCompleted, true},
		{"Done", StatusCompleted, true},
		{"Pending", StatusToDo, true},
		{"Overdue", "", false},
		{"done", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeStatus(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NormalizeStatus(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		status string
		want   int
	}{
		{StatusToDo, 0},
		{StatusInProgress, 50},
		{StatusCompleted, 100},
	}
	for _, tt := range tests {
		if got := ProgressPercent(tt.status); got != tt.want {
			t.Errorf("ProgressPercent(%q) = %d, want %d", tt.status, got, tt.want)
		}
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	if !IsOverdue(StatusToDo, &past, now) {
		t.Error("past due incomplete task should be overdue")
	}
	if IsOverdue(StatusCompleted, &past, now) {
		t.Error("completed task is never overdue")
	}
	if IsOverdue(StatusInProgress, &future, now) {
		t.Error("future due task should not be overdue")
	}
	if IsOverdue(StatusToDo, nil, now) {
		t.Error("task without a due date should not be overdue")
	}
}

func TestIsPending(t *testing.T) {
	if !IsPending(StatusToDo) {
		t.Error("a To Do task is pending")
	}
	if IsPending(StatusInProgress) {
		t.Error("an in-progress task is not pending")
	}
	if IsPending(StatusCompleted) {
		t.Error("a completed task is not pending")
	}

	// the alias reaches IsPending only after normalization
	normalized, ok := NormalizeStatus("Pending")
	if !ok || !IsPending(normalized) {
		t.Error("the Pending alias should normalize to a pending status")
	}
}
