package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/remindd/internal/scheduler"
	"github.com/sandeepkv93/remindd/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{countdownTickCmd()}
	if m.Scheduler != nil {
		cmds = append(cmds, waitForFireCmd(m.Scheduler.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)

	case CountdownTickMsg:
		cmd := m.onCountdownTick()
		return m, cmd

	case TaskFiredMsg:
		cmds := []tea.Cmd{m.handleTaskFired(typed.Event)}
		if m.Scheduler != nil {
			cmds = append(cmds, waitForFireCmd(m.Scheduler.C()))
		}
		return m, tea.Batch(cmds...)

	case AlertTimeoutMsg:
		m.Dispatcher.Release(typed.Category, typed.Seq)
		return m, nil

	case TasksFileChangedMsg:
		if err := m.reloadTasks(); err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		} else {
			m.Status = StatusBar{Text: "task list reloaded from disk"}
		}
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Hidden mode keeps reminders alive but accepts only show and quit.
	if m.Hidden {
		switch key {
		case m.Keys.Show:
			m.showDashboard()
		case "ctrl+c", m.Keys.Quit:
			return m, m.quit()
		}
		return m, nil
	}

	if m.Palette.Active {
		return m.handlePaletteKey(msg), nil
	}
	if m.Capture.Active {
		return m.handleCaptureKey(msg), nil
	}

	if (key == "enter" || key == "esc") && m.hasVisibleAlert() {
		m.acknowledgeTopAlert()
		return m, nil
	}

	switch key {
	case m.Keys.Add, "enter":
		m.Capture.Active = true
		m.captureInput.Focus()
		m.captureInput.SetValue("")
		m.Status = StatusBar{Text: "add a task: <title> @YYYY-MM-DD HH:MM [daily]"}
		return m, nil
	case m.Keys.Complete:
		if err := m.completeTask(m.Cursor); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		}
		return m, nil
	case m.Keys.Delete:
		if err := m.deleteTask(m.Cursor); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		}
		return m, nil
	case m.Keys.Daily:
		if err := m.toggleDaily(m.Cursor); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
		}
		return m, nil
	case m.Keys.Down:
		if m.Cursor < len(m.Tasks)-1 {
			m.Cursor++
		}
		return m, nil
	case m.Keys.Up:
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case m.Keys.Palette:
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.Focus()
		m.commandInput.SetValue("")
		m.Status = StatusBar{Text: "command palette active"}
		return m, nil
	case m.Keys.Hide:
		m.hideDashboard()
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case "ctrl+c", m.Keys.Quit:
		return m, m.quit()
	}

	return m, nil
}

func (m Model) View() string {
	status := m.Status.Text
	if m.Status.IsError && status != "" {
		status = "error: " + status
	}

	alerts := make([]views.AlertData, 0, 2)
	for _, alert := range m.Dispatcher.VisibleAlerts() {
		alerts = append(alerts, views.AlertData{
			Title:       alert.Title,
			Body:        alert.Body,
			AutoDismiss: m.Dispatcher.Timeout().String(),
		})
	}

	side := ""
	if m.HelpVisible {
		side = views.RenderHelpPanel()
	}

	return views.RenderApp(views.AppData{
		Header:    fmt.Sprintf("remindd | %d task(s)", len(m.Tasks)),
		Countdown: views.RenderCountdownLine(m.Countdown.Display(), m.countdownBar.ViewAs(m.Countdown.Fraction())),
		TaskPanel: views.RenderTaskPanel(m.taskPanelData()),
		SidePanel: side,
		Status:    status,
		Footer: fmt.Sprintf("keys: %s add | %s done | %s del | %s daily | %s cmd | %s hide | %s help | %s quit",
			m.Keys.Add, m.Keys.Complete, m.Keys.Delete, m.Keys.Daily, m.Keys.Palette, m.Keys.Hide, m.Keys.Help, m.Keys.Quit),
		Alerts: alerts,
		Hidden: m.Hidden,
	})
}

func (m Model) taskPanelData() views.TaskPanelData {
	items := make([]views.TaskItemData, 0, len(m.Tasks))
	for i, task := range m.Tasks {
		items = append(items, views.TaskItemData{
			Index:     i + 1,
			Title:     task.Title,
			DueLabel:  task.DueLabel(),
			Completed: task.Completed,
			Daily:     task.Daily,
			Selected:  i == m.Cursor,
		})
	}
	return views.TaskPanelData{
		Items:       items,
		Capturing:   m.Capture.Active,
		CaptureView: m.captureInput.View(),
		PaletteOpen: m.Palette.Active,
		PaletteView: m.commandInput.View(),
	}
}

func waitForFireCmd(ch <-chan scheduler.FireEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return TaskFiredMsg{Event: ev}
	}
}
