package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrEmptyTitle  = errors.New("model: task title is required")
	ErrMissingWhen = errors.New("model: task date and time are required")
	ErrNotInFuture = errors.New("model: task due time must be in the future")
)

// Task is a single scheduled reminder entry. Date and Time are stored in the
// persisted wire format (YYYY-MM-DD and HH:MM, 24h); the ID is assigned
// in-memory by the update loop and is not persisted.
type Task struct {
	ID        string
	Title     string
	Date      string
	Time      string
	Completed bool
	Daily     bool
}

// Schedulable reports whether the task carries both a due date and a due
// time. Tasks without either stay in the store but are never armed.
func (t Task) Schedulable() bool {
	return strings.TrimSpace(t.Date) != "" && strings.TrimSpace(t.Time) != ""
}

// DueAt resolves the task's due instant in local time.
func (t Task) DueAt() (time.Time, error) {
	if !t.Schedulable() {
		return time.Time{}, ErrMissingWhen
	}
	due, err := time.ParseInLocation(DateLayout+" "+TimeLayout, t.Date+" "+t.Time, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("model: parse due instant: %w", err)
	}
	return due, nil
}

// AdvanceDay moves the due date one calendar day forward. The time-of-day is
// preserved, which keeps a daily task anchored to its originally chosen time.
func (t *Task) AdvanceDay() error {
	due, err := t.DueAt()
	if err != nil {
		return err
	}
	t.Date = due.AddDate(0, 0, 1).Format(DateLayout)
	return nil
}

// Validate checks the invariants enforced at add time: a non-empty title and
// a well-formed due instant strictly in the future.
func (t Task) Validate(now time.Time) error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	due, err := t.DueAt()
	if err != nil {
		return err
	}
	if !due.After(now) {
		return ErrNotInFuture
	}
	return nil
}

// DueLabel renders the due instant the way the task list displays it.
func (t Task) DueLabel() string {
	if !t.Schedulable() {
		return ""
	}
	return t.Date + " " + t.Time
}
