package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header    string
	Countdown string
	TaskPanel string
	SidePanel string
	Status    string
	Footer    string
	Alerts    []AlertData
	Hidden    bool
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	countdownStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	alertStyle     = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1).Foreground(lipgloss.Color("11")).Bold(true)
	bannerStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2).Foreground(lipgloss.Color("8"))
)

// RenderApp lays out the dashboard. Alert overlays render above everything
// else so they stay on top of whatever panel is active; the hidden banner
// replaces the dashboard while the process keeps running.
func RenderApp(data AppData) string {
	lines := []string{headerStyle.Render(data.Header)}

	for _, alert := range data.Alerts {
		lines = append(lines, alertStyle.Render(RenderAlertPanel(alert)))
	}

	if data.Hidden {
		lines = append(lines, bannerStyle.Render(RenderHiddenBanner()))
	} else {
		lines = append(lines, countdownStyle.Render(data.Countdown))
		left := panelStyle.Width(58).Render(data.TaskPanel)
		if data.SidePanel != "" {
			right := panelStyle.Width(58).Render(data.SidePanel)
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, left, right))
		} else {
			lines = append(lines, left)
		}
	}

	if data.Status != "" {
		status := statusStyle.Render(data.Status)
		if strings.Contains(strings.ToLower(data.Status), "error") {
			status = errorStyle.Render(data.Status)
		}
		lines = append(lines, status)
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
