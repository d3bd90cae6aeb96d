package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/remindd/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			if err := m.addTask(a); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Done: func(a commands.IndexArgs) (commands.Result, error) {
			if err := m.completeTask(a.Index - 1); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Delete: func(a commands.IndexArgs) (commands.Result, error) {
			if err := m.deleteTask(a.Index - 1); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Daily: func(a commands.IndexArgs) (commands.Result, error) {
			if err := m.toggleDaily(a.Index - 1); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Hide: func() (commands.Result, error) {
			m.hideDashboard()
			return commands.Result{Message: m.Status.Text}, nil
		},
		Show: func() (commands.Result, error) {
			m.showDashboard()
			return commands.Result{Message: "dashboard visible"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

func (m Model) handleCaptureKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Capture.Active = false
		m.captureInput.SetValue("")
		m.captureInput.Blur()
		m.Status = StatusBar{Text: "add cancelled"}
	case "enter":
		raw := strings.TrimSpace(m.captureInput.Value())
		if raw == "" {
			m.Status = StatusBar{Text: "nothing to add"}
			return m
		}
		cmd, err := commands.Parse("add " + raw)
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m
		}
		if err := m.addTask(*cmd.Add); err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("cannot add task: %v", err), IsError: true}
			return m
		}
		m.Capture.Active = false
		m.captureInput.SetValue("")
		m.captureInput.Blur()
	default:
		var cmd tea.Cmd
		m.captureInput, cmd = m.captureInput.Update(msg)
		_ = cmd
	}
	return m
}
