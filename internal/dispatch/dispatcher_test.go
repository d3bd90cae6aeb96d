package dispatch

import (
	"errors"
	"testing"
	"time"
)

type recordingNotifier struct {
	calls []string
	err   error
}

func (r *recordingNotifier) Notify(title, body string, _ time.Duration) error {
	r.calls = append(r.calls, title)
	return r.err
}

func TestAcceptSuppressesSecondAlertInSameCategory(t *testing.T) {
	notifier := &recordingNotifier{}
	d := New(notifier, time.Minute)
	now := time.Now()

	first, ok := d.Accept(CategoryTask, "Task reminder", "Task due: Pay bill", now)
	if !ok {
		t.Fatal("expected first alert accepted")
	}
	if _, ok := d.Accept(CategoryTask, "Task reminder", "Task due: Other", now); ok {
		t.Fatal("expected second task alert suppressed while first is visible")
	}
	if len(notifier.calls) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.calls))
	}

	visible, ok := d.Visible(CategoryTask)
	if !ok || visible.Seq != first.Seq {
		t.Fatalf("expected first alert still visible, got %+v", visible)
	}
}

func TestCategoriesAreIndependent(t *testing.T) {
	d := New(nil, time.Minute)
	now := time.Now()

	if _, ok := d.Accept(CategoryPeriodic, "Health reminder", "Hydrate", now); !ok {
		t.Fatal("expected periodic alert accepted")
	}
	if _, ok := d.Accept(CategoryTask, "Task reminder", "Task due: Pay bill", now); !ok {
		t.Fatal("expected task alert accepted alongside periodic")
	}
	if got := len(d.VisibleAlerts()); got != 2 {
		t.Fatalf("expected 2 visible alerts, got %d", got)
	}
}

func TestReleaseRequiresMatchingSequence(t *testing.T) {
	d := New(nil, time.Minute)
	now := time.Now()

	first, _ := d.Accept(CategoryTask, "Task reminder", "one", now)
	if !d.Acknowledge(CategoryTask) {
		t.Fatal("expected acknowledge to release the guard")
	}
	second, ok := d.Accept(CategoryTask, "Task reminder", "two", now)
	if !ok {
		t.Fatal("expected guard free after acknowledge")
	}

	// The first alert's auto-dismiss arrives late; it must not release the
	// newer alert.
	if d.Release(CategoryTask, first.Seq) {
		t.Fatal("stale release must be a no-op")
	}
	if _, ok := d.Visible(CategoryTask); !ok {
		t.Fatal("expected second alert still visible")
	}
	if !d.Release(CategoryTask, second.Seq) {
		t.Fatal("expected matching release to clear the guard")
	}
	if _, ok := d.Visible(CategoryTask); ok {
		t.Fatal("expected guard released")
	}
}

func TestNotifierFailureIsSwallowed(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("no notification daemon")}
	d := New(notifier, time.Minute)

	if _, ok := d.Accept(CategoryPeriodic, "Health reminder", "Hydrate", time.Now()); !ok {
		t.Fatal("expected alert accepted despite notifier failure")
	}
	if _, ok := d.Visible(CategoryPeriodic); !ok {
		t.Fatal("expected alert visible despite notifier failure")
	}
}

func TestAcknowledgeWithoutVisibleAlert(t *testing.T) {
	d := New(nil, time.Minute)
	if d.Acknowledge(CategoryTask) {
		t.Fatal("expected acknowledge to report no visible alert")
	}
}

func TestNewDefaultsTimeout(t *testing.T) {
	d := New(nil, 0)
	if d.Timeout() != DefaultAutoDismiss {
		t.Fatalf("expected default timeout, got %s", d.Timeout())
	}
}
