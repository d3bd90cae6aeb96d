package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/remindd/internal/dispatch"
	"github.com/sandeepkv93/remindd/internal/model"
	"github.com/sandeepkv93/remindd/internal/scheduler"
	"github.com/sandeepkv93/remindd/internal/storage"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Add      string
	Complete string
	Delete   string
	Daily    string
	Hide     string
	Show     string
	Up       string
	Down     string
	Palette  string
	Help     string
	Quit     string
}

type CaptureState struct {
	Active bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Model is the single source of truth for the dashboard. All task, countdown
// and alert state changes flow through Update; the scheduler and watcher only
// inject messages.
type Model struct {
	Tasks          []model.Task
	Settings       model.Settings
	Countdown      model.Countdown
	Cursor         int
	NextID         int
	Capture        CaptureState
	Palette        CommandPaletteState
	Hidden         bool
	HideNoticeSent bool
	HelpVisible    bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error
	Scheduler      *scheduler.Engine
	Dispatcher     *dispatch.Dispatcher

	store        storage.Store
	cfg          RuntimeConfig
	captureInput textinput.Model
	commandInput textinput.Model
	countdownBar progress.Model
}

type TaskFiredMsg struct {
	Event scheduler.FireEvent
}

type CountdownTickMsg struct{}

// AlertTimeoutMsg is the auto-dismiss for one specific alert instance; a
// stale Seq means the alert was acknowledged first and the timeout is void.
type AlertTimeoutMsg struct {
	Category dispatch.Category
	Seq      uint64
}

type TasksFileChangedMsg struct{}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModelWithConfig(engine *scheduler.Engine, dispatcher *dispatch.Dispatcher, store storage.Store, cfg RuntimeConfig) Model {
	if dispatcher == nil {
		dispatcher = dispatch.New(dispatch.NoopNotifier{}, 0)
	}
	m := Model{
		Settings:   model.DefaultSettings(),
		Countdown:  model.NewCountdown(cfg.CountdownMinutes * 60),
		NextID:     1,
		Scheduler:  engine,
		Dispatcher: dispatcher,
		store:      store,
		cfg:        cfg,
		Keys: GlobalKeyMap{
			Add:      "a",
			Complete: "c",
			Delete:   "d",
			Daily:    "r",
			Hide:     "h",
			Show:     "s",
			Up:       "k",
			Down:     "j",
			Palette:  "/",
			Help:     "?",
			Quit:     "q",
		},
	}
	m.captureInput = textinput.New()
	m.captureInput.Placeholder = "Pay electricity bill @2026-09-02 09:00 daily"
	m.captureInput.CharLimit = 160
	m.captureInput.Width = 56
	m.commandInput = textinput.New()
	m.commandInput.Placeholder = "done 2"
	m.commandInput.CharLimit = 120
	m.commandInput.Width = 40
	m.countdownBar = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	m.countdownBar.Width = 30
	return m
}

// LoadFromStore pulls settings and the persisted task list, assigns fresh
// in-memory IDs and arms every pending task timer.
func (m *Model) LoadFromStore() error {
	if m.store == nil {
		return nil
	}
	settings, err := m.store.LoadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	tasks, err := m.store.LoadTasks()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	m.Settings = settings
	m.Tasks = tasks
	for i := range m.Tasks {
		m.Tasks[i].ID = m.nextTaskID()
	}
	m.armAll()
	return nil
}

func (m *Model) nextTaskID() string {
	id := fmt.Sprintf("task-%d", m.NextID)
	m.NextID++
	return id
}
