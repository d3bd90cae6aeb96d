package main

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mitchellh/go-homedir"
	"github.com/sandeepkv93/remindd/internal/dispatch"
	"github.com/sandeepkv93/remindd/internal/scheduler"
	"github.com/sandeepkv93/remindd/internal/storage"
	"github.com/sandeepkv93/remindd/internal/update"
	"github.com/sandeepkv93/remindd/internal/watch"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	storeName  string
	watchFiles bool
)

var rootCmd = &cobra.Command{
	Use:   "remindd",
	Short: "A terminal reminder engine for health breaks and scheduled tasks",
	Long: `Remindd runs a recurring health-break countdown alongside per-task
date and time reminders, with popup alerts and desktop notifications.`,
	RunE: runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory for settings and tasks (default ~/.remindd)")
	rootCmd.PersistentFlags().StringVar(&storeName, "store", "json", "Storage backend: json or sqlite")
	rootCmd.PersistentFlags().BoolVar(&watchFiles, "watch", true, "Reload when the tasks file is edited externally (json backend)")
	rootCmd.AddCommand(versionCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	dir := dataDir
	if dir == "" {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".remindd")
	}

	store, err := storage.Open(storeName, dir)
	if err != nil {
		return err
	}
	defer store.Close()

	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	var notifier dispatch.Notifier = dispatch.NoopNotifier{}
	if cfg.DesktopNotifications {
		notifier = dispatch.ExecNotifier{}
	}
	dispatcher := dispatch.New(notifier, secondsDuration(cfg.AlertTimeoutSeconds))

	engine := scheduler.NewEngine(cfg.SchedulerBuffer)
	engine.Start()

	model := update.NewModelWithConfig(engine, dispatcher, store, cfg)
	if err := model.LoadFromStore(); err != nil {
		engine.Stop()
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())

	if jsonStore, ok := store.(*storage.JSONStore); ok && watchFiles {
		watcher, err := watch.NewFileWatcher(func(string) {
			program.Send(update.TasksFileChangedMsg{})
		})
		if err == nil {
			defer watcher.Close()
			_ = watcher.AddFile(jsonStore.TasksPath())
		}
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func secondsDuration(s int) time.Duration {
	return time.Duration(s) * time.Second
}
