package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/remindd/internal/commands"
	"github.com/sandeepkv93/remindd/internal/dispatch"
	"github.com/sandeepkv93/remindd/internal/model"
	"github.com/sandeepkv93/remindd/internal/scheduler"
)

func (m *Model) addTask(a commands.AddArgs) error {
	task := model.Task{
		ID:    m.nextTaskID(),
		Title: a.Title,
		Date:  a.Date,
		Time:  a.Time,
		Daily: a.Daily,
	}
	if err := task.Validate(time.Now()); err != nil {
		m.NextID--
		return err
	}

	m.Tasks = append(m.Tasks, task)
	m.Cursor = len(m.Tasks) - 1
	m.armTask(len(m.Tasks) - 1)
	m.persistTasks()
	m.Status = StatusBar{Text: fmt.Sprintf("added: %s (due %s)", task.Title, task.DueLabel())}
	return nil
}

// completeTask marks the task done but leaves any armed timer in place, so a
// reminder scheduled before completion still fires.
func (m *Model) completeTask(index int) error {
	if index < 0 || index >= len(m.Tasks) {
		return fmt.Errorf("no task at position %d", index+1)
	}
	m.Tasks[index].Completed = true
	m.persistTasks()
	m.Status = StatusBar{Text: fmt.Sprintf("completed: %s", m.Tasks[index].Title)}
	return nil
}

func (m *Model) deleteTask(index int) error {
	if index < 0 || index >= len(m.Tasks) {
		return fmt.Errorf("no task at position %d", index+1)
	}
	task := m.Tasks[index]
	if m.Scheduler != nil {
		m.Scheduler.Cancel(task.ID)
	}
	m.Tasks = append(m.Tasks[:index], m.Tasks[index+1:]...)
	if m.Cursor >= len(m.Tasks) && m.Cursor > 0 {
		m.Cursor--
	}
	m.persistTasks()
	m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", task.Title)}
	return nil
}

func (m *Model) toggleDaily(index int) error {
	if index < 0 || index >= len(m.Tasks) {
		return fmt.Errorf("no task at position %d", index+1)
	}
	m.Tasks[index].Daily = !m.Tasks[index].Daily
	m.armTask(index)
	m.persistTasks()
	state := "off"
	if m.Tasks[index].Daily {
		state = "on"
	}
	m.Status = StatusBar{Text: fmt.Sprintf("daily repeat %s: %s", state, m.Tasks[index].Title)}
	return nil
}

// armTask schedules the timer for the task at index. Eligibility depends only
// on the due date and time; a completed task with a future due instant still
// gets a timer. A task with a malformed due instant is skipped without
// surfacing an error. A past-due daily task is rolled forward day by day until
// its due instant is in the future; a past-due one-shot task is left unarmed.
func (m *Model) armTask(index int) {
	if m.Scheduler == nil || index < 0 || index >= len(m.Tasks) {
		return
	}
	task := &m.Tasks[index]
	if !task.Schedulable() {
		return
	}

	due, err := task.DueAt()
	if err != nil {
		return
	}

	now := time.Now()
	advanced := false
	for !due.After(now) {
		if !task.Daily {
			return
		}
		if err := task.AdvanceDay(); err != nil {
			return
		}
		due, _ = task.DueAt()
		advanced = true
	}
	if advanced {
		m.persistTasks()
	}

	if err := m.Scheduler.Arm(scheduler.FireEvent{TaskID: task.ID, Title: task.Title, DueAt: due}); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("cannot schedule %q: %v", task.Title, err), IsError: true}
	}
}

func (m *Model) armAll() {
	for i := range m.Tasks {
		m.armTask(i)
	}
}

// reloadTasks re-reads the task list after an external edit to the tasks
// file. Timers for vanished tasks are cancelled; survivors get fresh IDs and
// fresh timers.
func (m *Model) reloadTasks() error {
	if m.store == nil {
		return nil
	}
	if m.Scheduler != nil {
		for _, task := range m.Tasks {
			m.Scheduler.Cancel(task.ID)
		}
	}
	tasks, err := m.store.LoadTasks()
	if err != nil {
		return fmt.Errorf("reload tasks: %w", err)
	}
	m.Tasks = tasks
	for i := range m.Tasks {
		m.Tasks[i].ID = m.nextTaskID()
	}
	if m.Cursor >= len(m.Tasks) {
		m.Cursor = 0
	}
	m.armAll()
	return nil
}

func (m *Model) taskIndexByID(id string) int {
	for i := range m.Tasks {
		if m.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *Model) handleTaskFired(ev scheduler.FireEvent) tea.Cmd {
	title := ev.Title
	index := m.taskIndexByID(ev.TaskID)
	if index >= 0 {
		title = m.Tasks[index].Title
	}
	cmd := m.acceptAlert(dispatch.CategoryTask, "Task reminder", fmt.Sprintf("Task due: %s", title))

	if index >= 0 && m.Tasks[index].Daily {
		if err := m.Tasks[index].AdvanceDay(); err == nil {
			m.armTask(index)
			m.persistTasks()
		}
	}
	return cmd
}

func (m *Model) persistTasks() {
	if m.store == nil {
		return
	}
	if err := m.store.SaveTasks(m.Tasks); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("save tasks failed: %v", err), IsError: true}
	}
}

func (m *Model) persistSettings() {
	if m.store == nil {
		return
	}
	if err := m.store.SaveSettings(m.Settings); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("save settings failed: %v", err), IsError: true}
	}
}
