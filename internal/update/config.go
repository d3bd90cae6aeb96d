package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	CountdownMinutes     int
	AlertTimeoutSeconds  int
	SchedulerBuffer      int
	DesktopNotifications bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		CountdownMinutes:     20,
		AlertTimeoutSeconds:  60,
		SchedulerBuffer:      64,
		DesktopNotifications: true,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvInt("REMINDD_COUNTDOWN_MINUTES"); ok && v > 0 {
		cfg.CountdownMinutes = v
	}
	if v, ok := getEnvInt("REMINDD_ALERT_TIMEOUT_SECONDS"); ok && v > 0 {
		cfg.AlertTimeoutSeconds = v
	}
	if v, ok := getEnvInt("REMINDD_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	if v, ok := getEnvBool("REMINDD_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
