package scheduler

import (
	"testing"
	"time"
)

func TestEngineEmitsInDueOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Arm(FireEvent{TaskID: "later", DueAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("arm later: %v", err)
	}
	if err := engine.Arm(FireEvent{TaskID: "sooner", DueAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("arm sooner: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.TaskID != "sooner" || second.TaskID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.TaskID, second.TaskID)
	}
}

func TestCancelPreventsFire(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Arm(FireEvent{TaskID: "doomed", DueAt: now.Add(40 * time.Millisecond)}); err != nil {
		t.Fatalf("arm: %v", err)
	}
	if err := engine.Arm(FireEvent{TaskID: "kept", DueAt: now.Add(60 * time.Millisecond)}); err != nil {
		t.Fatalf("arm: %v", err)
	}
	engine.Cancel("doomed")

	got := waitEvent(t, engine.C(), time.Second)
	if got.TaskID != "kept" {
		t.Fatalf("expected only kept to fire, got %s", got.TaskID)
	}
	select {
	case ev := <-engine.C():
		t.Fatalf("unexpected extra event: %s", ev.TaskID)
	case <-time.After(150 * time.Millisecond):
	}
	if engine.Armed("doomed") {
		t.Fatal("expected doomed to be disarmed")
	}
}

func TestRearmSupersedesPreviousTimer(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Arm(FireEvent{TaskID: "task-1", Title: "old", DueAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("arm: %v", err)
	}
	if err := engine.Arm(FireEvent{TaskID: "task-1", Title: "new", DueAt: now.Add(60 * time.Millisecond)}); err != nil {
		t.Fatalf("rearm: %v", err)
	}

	got := waitEvent(t, engine.C(), time.Second)
	if got.Title != "new" {
		t.Fatalf("expected superseding arm to fire, got %q", got.Title)
	}
	select {
	case ev := <-engine.C():
		t.Fatalf("unexpected second fire: %q", ev.Title)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestTasksSharingDueInstantFireIndependently(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	due := time.Now().Add(30 * time.Millisecond)
	for _, id := range []string{"a", "b", "c"} {
		if err := engine.Arm(FireEvent{TaskID: id, DueAt: due}); err != nil {
			t.Fatalf("arm %s: %v", id, err)
		}
	}

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		ev := waitEvent(t, engine.C(), time.Second)
		seen[ev.TaskID] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 distinct fires, got %v", seen)
	}
}

func TestArmValidatesInput(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Arm(FireEvent{TaskID: "bad"}); err != ErrInvalidDueTime {
		t.Fatalf("expected ErrInvalidDueTime for zero due, got %v", err)
	}
	if err := engine.Arm(FireEvent{DueAt: time.Now().Add(time.Second)}); err != ErrInvalidDueTime {
		t.Fatalf("expected ErrInvalidDueTime for empty id, got %v", err)
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	due := time.Now().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Arm(FireEvent{
			TaskID: "evt-" + string(rune('a'+i)),
			DueAt:  due,
		}); err != nil {
			t.Fatalf("arm event: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0, got %d", engine.Dropped())
	}
}

func waitEvent(t *testing.T, ch <-chan FireEvent, timeout time.Duration) FireEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return FireEvent{}
	}
}
