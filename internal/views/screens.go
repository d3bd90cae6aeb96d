package views

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const alertBodyWidth = 52

type TaskItemData struct {
	Index     int
	Title     string
	DueLabel  string
	Completed bool
	Daily     bool
	Selected  bool
}

type TaskPanelData struct {
	Items       []TaskItemData
	CaptureView string
	Capturing   bool
	PaletteView string
	PaletteOpen bool
}

type AlertData struct {
	Title       string
	Body        string
	AutoDismiss string
}

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	if data.Capturing {
		b.WriteString(data.CaptureView + "\n")
		b.WriteString("format: <title> @YYYY-MM-DD HH:MM [daily]\n")
	}
	if data.PaletteOpen {
		b.WriteString(data.PaletteView + "\n")
	}
	if len(data.Items) == 0 {
		b.WriteString("  (no tasks; press a to add one)\n")
	}
	for _, item := range data.Items {
		cursor := "  "
		if item.Selected {
			cursor = "> "
		}
		check := "[ ]"
		if item.Completed {
			check = "[x]"
		}
		line := fmt.Sprintf("%s%s %d. %s", cursor, check, item.Index, item.Title)
		if item.DueLabel != "" {
			line += fmt.Sprintf(" (due %s)", item.DueLabel)
		}
		if item.Daily {
			line += " [daily]"
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func RenderAlertPanel(data AlertData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n")
	b.WriteString(wordwrap.String(data.Body, alertBodyWidth) + "\n")
	b.WriteString("[enter] acknowledge")
	if data.AutoDismiss != "" {
		b.WriteString(" · auto-dismiss " + data.AutoDismiss)
	}
	return b.String()
}

func RenderHiddenBanner() string {
	return strings.Join([]string{
		"remindd is running in the background.",
		"Reminders keep firing while the dashboard is hidden.",
		"",
		"[s] show dashboard   [q] quit",
	}, "\n")
}

func RenderCountdownLine(display string, bar string) string {
	if bar == "" {
		return "next health reminder in " + display
	}
	return fmt.Sprintf("next health reminder in %s %s", display, bar)
}

const helpMarkdown = `# remindd keys

| key | action |
|-----|--------|
| a / enter | add a task (` + "`<title> @YYYY-MM-DD HH:MM [daily]`" + `) |
| c | complete the selected task |
| d | delete the selected task |
| r | toggle daily repeat on the selected task |
| j / k | move the selection |
| / | open the command palette (add, done, del, daily, hide, show) |
| h | hide the dashboard (reminders keep running) |
| s | show the dashboard |
| ? | toggle this help |
| q | quit and stop all reminders |
`

func RenderHelpPanel() string {
	return RenderMarkdown(helpMarkdown)
}
