package update

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/remindd/internal/dispatch"
)

func countdownTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return CountdownTickMsg{}
	})
}

// onCountdownTick advances the health countdown by one second. The countdown
// keeps ticking while the dashboard is hidden; only quitting stops it.
func (m *Model) onCountdownTick() tea.Cmd {
	if m.Quitting {
		return nil
	}

	cmds := []tea.Cmd{countdownTickCmd()}
	if m.Countdown.Tick() {
		if body := m.healthReminderBody(); body != "" {
			if cmd := m.acceptAlert(dispatch.CategoryPeriodic, "Health reminder", body); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

// healthReminderBody assembles the periodic message from the enabled
// reminder kinds. Both disabled means the interval elapses silently.
func (m *Model) healthReminderBody() string {
	lines := make([]string, 0, 2)
	if m.Settings.HydrationActive {
		lines = append(lines, "Time to hydrate!")
	}
	if m.Settings.EyeActive {
		lines = append(lines, "Time to rest your eyes!")
	}
	return strings.Join(lines, "\n")
}
