package model

// Settings are the process-wide reminder flags. Both default to true and are
// persisted across runs; they are informational once the process is running.
type Settings struct {
	HydrationActive bool
	EyeActive       bool
}

func DefaultSettings() Settings {
	return Settings{HydrationActive: true, EyeActive: true}
}
