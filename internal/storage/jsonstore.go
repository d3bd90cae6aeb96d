package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sandeepkv93/remindd/internal/model"
)

const (
	settingsFileName = "settings.json"
	tasksFileName    = "tasks.json"
)

// JSONStore persists settings and the ordered task list as two JSON files in
// the data directory. Writes go through a temp file and rename so a crash
// mid-save never truncates the previous state.
type JSONStore struct {
	dir string
}

func NewJSONStore(dir string) *JSONStore {
	return &JSONStore{dir: dir}
}

// TasksPath is the file the change watcher observes.
func (s *JSONStore) TasksPath() string {
	return filepath.Join(s.dir, tasksFileName)
}

type settingsRecord struct {
	HydrationActive bool `json:"hydrationActive"`
	EyeActive       bool `json:"eyeActive"`
}

type taskRecord struct {
	Task      string `json:"task"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Completed bool   `json:"completed"`
	Daily     bool   `json:"daily"`
}

func (s *JSONStore) LoadSettings() (model.Settings, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, settingsFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultSettings(), nil
		}
		return model.Settings{}, err
	}
	var rec settingsRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return model.Settings{}, err
	}
	return model.Settings{HydrationActive: rec.HydrationActive, EyeActive: rec.EyeActive}, nil
}

func (s *JSONStore) SaveSettings(settings model.Settings) error {
	rec := settingsRecord{HydrationActive: settings.HydrationActive, EyeActive: settings.EyeActive}
	return s.writeFile(settingsFileName, rec)
}

func (s *JSONStore) LoadTasks() ([]model.Task, error) {
	raw, err := os.ReadFile(s.TasksPath())
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Task{}, nil
		}
		return nil, err
	}
	var records []taskRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	out := make([]model.Task, 0, len(records))
	for _, rec := range records {
		out = append(out, model.Task{
			Title:     rec.Task,
			Date:      rec.Date,
			Time:      rec.Time,
			Completed: rec.Completed,
			Daily:     rec.Daily,
		})
	}
	return out, nil
}

func (s *JSONStore) SaveTasks(tasks []model.Task) error {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, taskRecord{
			Task:      t.Title,
			Date:      t.Date,
			Time:      t.Time,
			Completed: t.Completed,
			Daily:     t.Daily,
		})
	}
	return s.writeFile(tasksFileName, records)
}

func (s *JSONStore) Close() error { return nil }

func (s *JSONStore) writeFile(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
