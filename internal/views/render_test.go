package views

import (
	"strings"
	"testing"
)

func TestRenderTaskPanelListsTasks(t *testing.T) {
	out := RenderTaskPanel(TaskPanelData{
		Items: []TaskItemData{
			{Index: 1, Title: "Pay bill", DueLabel: "2026-09-02 09:00", Selected: true},
			{Index: 2, Title: "Standup", DueLabel: "2026-09-02 09:30", Daily: true},
			{Index: 3, Title: "Old thing", DueLabel: "2026-08-30 10:00", Completed: true},
		},
	})
	for _, want := range []string{
		"> [ ] 1. Pay bill (due 2026-09-02 09:00)",
		"[ ] 2. Standup (due 2026-09-02 09:30) [daily]",
		"[x] 3. Old thing",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in panel:\n%s", want, out)
		}
	}
}

func TestRenderTaskPanelEmptyState(t *testing.T) {
	out := RenderTaskPanel(TaskPanelData{})
	if !strings.Contains(out, "no tasks") {
		t.Fatalf("expected empty-state hint, got:\n%s", out)
	}
}

func TestRenderAlertPanelWrapsBody(t *testing.T) {
	body := strings.Repeat("drink water ", 12)
	out := RenderAlertPanel(AlertData{Title: "Health reminder", Body: body, AutoDismiss: "60s"})
	if !strings.Contains(out, "Health reminder") {
		t.Fatalf("expected title in alert:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if len(line) > alertBodyWidth+8 {
			t.Fatalf("alert line not wrapped: %q", line)
		}
	}
	if !strings.Contains(out, "[enter] acknowledge") {
		t.Fatalf("expected acknowledge footer:\n%s", out)
	}
}

func TestRenderAppShowsAlertAboveContent(t *testing.T) {
	out := RenderApp(AppData{
		Header:    "remindd",
		Countdown: "next health reminder in 19:59",
		TaskPanel: "tasks:",
		Status:    "ready",
		Alerts:    []AlertData{{Title: "Task reminder", Body: "Task due: Pay bill"}},
	})
	alertPos := strings.Index(out, "Task reminder")
	taskPos := strings.Index(out, "tasks:")
	if alertPos < 0 || taskPos < 0 {
		t.Fatalf("missing content:\n%s", out)
	}
	if alertPos > taskPos {
		t.Fatalf("expected alert rendered above content:\n%s", out)
	}
}

func TestRenderAppHiddenBanner(t *testing.T) {
	out := RenderApp(AppData{Header: "remindd", Hidden: true})
	if !strings.Contains(out, "running in the background") {
		t.Fatalf("expected hidden banner:\n%s", out)
	}
	if strings.Contains(out, "tasks:") {
		t.Fatalf("expected task panel hidden:\n%s", out)
	}
}
