package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// hideDashboard collapses the UI to a background banner. Timers, the
// countdown and desktop notifications all keep running; the informational
// notice is sent only the first time per session.
func (m *Model) hideDashboard() {
	if m.Hidden {
		return
	}
	m.Hidden = true
	m.Status = StatusBar{Text: "dashboard hidden; reminders keep running"}
	if !m.HideNoticeSent {
		m.HideNoticeSent = true
		m.Dispatcher.Announce("remindd", "Still running in the background. Reminders stay active.", 10*time.Second)
	}
}

func (m *Model) showDashboard() {
	if !m.Hidden {
		return
	}
	m.Hidden = false
	m.Status = StatusBar{Text: "dashboard restored"}
}

// quit persists settings and tasks, stops the timer engine and terminates
// the program. This is the only path that stops reminders.
func (m *Model) quit() tea.Cmd {
	m.Quitting = true
	m.persistSettings()
	m.persistTasks()
	if m.Scheduler != nil {
		m.Scheduler.Stop()
	}
	return tea.Quit
}
