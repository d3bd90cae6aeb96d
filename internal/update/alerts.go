package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/remindd/internal/dispatch"
)

// acceptAlert runs the fire event through the dispatcher's per-category guard
// and, when it is admitted, starts its auto-dismiss clock. A nil command
// means the category was busy and the event was dropped.
func (m *Model) acceptAlert(category dispatch.Category, title, body string) tea.Cmd {
	alert, ok := m.Dispatcher.Accept(category, title, body, time.Now())
	if !ok {
		return nil
	}
	return alertTimeoutCmd(alert, m.Dispatcher.Timeout())
}

func alertTimeoutCmd(alert dispatch.Alert, timeout time.Duration) tea.Cmd {
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return AlertTimeoutMsg{Category: alert.Category, Seq: alert.Seq}
	})
}

// acknowledgeTopAlert dismisses the task alert first so back-to-back enter
// presses clear both panels in display order.
func (m *Model) acknowledgeTopAlert() bool {
	for _, category := range []dispatch.Category{dispatch.CategoryTask, dispatch.CategoryPeriodic} {
		if m.Dispatcher.Acknowledge(category) {
			m.Status = StatusBar{Text: "reminder acknowledged"}
			return true
		}
	}
	return false
}

func (m *Model) hasVisibleAlert() bool {
	return len(m.Dispatcher.VisibleAlerts()) > 0
}
