package model

import (
	"errors"
	"testing"
	"time"
)

func TestDueAtParsesLocalInstant(t *testing.T) {
	task := Task{ID: "task-1", Title: "Pay bill", Date: "2026-09-02", Time: "09:00"}
	due, err := task.DueAt()
	if err != nil {
		t.Fatalf("due at: %v", err)
	}
	want := time.Date(2026, 9, 2, 9, 0, 0, 0, time.Local)
	if !due.Equal(want) {
		t.Fatalf("unexpected due instant: got=%s want=%s", due, want)
	}
}

func TestDueAtRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		task Task
	}{
		{name: "bad date", task: Task{Date: "not-a-date", Time: "09:00"}},
		{name: "bad time", task: Task{Date: "2026-09-02", Time: "9 o'clock"}},
		{name: "missing time", task: Task{Date: "2026-09-02"}},
		{name: "missing date", task: Task{Time: "09:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.task.DueAt(); err == nil {
				t.Fatalf("expected error for %+v", tc.task)
			}
		})
	}
}

func TestAdvanceDayKeepsTimeOfDay(t *testing.T) {
	task := Task{ID: "task-1", Title: "Standup", Date: "2026-01-31", Time: "09:30", Daily: true}
	if err := task.AdvanceDay(); err != nil {
		t.Fatalf("advance day: %v", err)
	}
	if task.Date != "2026-02-01" {
		t.Fatalf("expected month rollover to 2026-02-01, got %s", task.Date)
	}
	if task.Time != "09:30" {
		t.Fatalf("expected time unchanged, got %s", task.Time)
	}
}

func TestValidateEnforcesAddTimeInvariants(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	cases := []struct {
		name    string
		task    Task
		wantErr error
	}{
		{
			name: "valid future task",
			task: Task{ID: "task-1", Title: "Pay bill", Date: "2026-09-02", Time: "09:00"},
		},
		{
			name:    "empty title",
			task:    Task{ID: "task-1", Title: "  ", Date: "2026-09-02", Time: "09:00"},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "missing date and time",
			task:    Task{ID: "task-1", Title: "Pay bill"},
			wantErr: ErrMissingWhen,
		},
		{
			name:    "due in the past",
			task:    Task{ID: "task-1", Title: "Pay bill", Date: "2026-08-31", Time: "09:00"},
			wantErr: ErrNotInFuture,
		},
		{
			name:    "due exactly now",
			task:    Task{ID: "task-1", Title: "Pay bill", Date: "2026-09-01", Time: "12:00"},
			wantErr: ErrNotInFuture,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.task.Validate(now)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDueLabel(t *testing.T) {
	task := Task{Title: "Pay bill", Date: "2026-09-02", Time: "09:00"}
	if got := task.DueLabel(); got != "2026-09-02 09:00" {
		t.Fatalf("unexpected due label: %q", got)
	}
	if got := (Task{Title: "No schedule"}).DueLabel(); got != "" {
		t.Fatalf("expected empty label, got %q", got)
	}
}
