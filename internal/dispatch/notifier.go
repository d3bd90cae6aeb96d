package dispatch

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// Notifier delivers a platform notification. Delivery is best-effort: the
// dispatcher swallows errors and falls back to the in-app alert surface.
type Notifier interface {
	Notify(title, body string, timeout time.Duration) error
}

type NoopNotifier struct{}

func (NoopNotifier) Notify(string, string, time.Duration) error { return nil }

// ExecNotifier shells out to the platform notification tool.
type ExecNotifier struct{}

func (ExecNotifier) Notify(title, body string, timeout time.Duration) error {
	switch runtime.GOOS {
	case "linux":
		ms := int(timeout / time.Millisecond)
		return exec.Command("notify-send", "-t", fmt.Sprintf("%d", ms), title, body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`,
			escapeAppleScript(body), escapeAppleScript(title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
