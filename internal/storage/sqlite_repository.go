package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/remindd/internal/model"
)

// SQLiteStore keeps the ordered task list and the single settings row in a
// SQLite database. SaveTasks replaces the whole list in one transaction; the
// list is small and order is the identity, matching the JSON backend.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) LoadSettings() (model.Settings, error) {
	row := s.db.QueryRow(`SELECT hydration_active, eye_active FROM settings WHERE id = 1`)
	var hydration, eye int
	if err := row.Scan(&hydration, &eye); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DefaultSettings(), nil
		}
		return model.Settings{}, err
	}
	return model.Settings{HydrationActive: hydration == 1, EyeActive: eye == 1}, nil
}

func (s *SQLiteStore) SaveSettings(settings model.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, hydration_active, eye_active) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET hydration_active = excluded.hydration_active, eye_active = excluded.eye_active`,
		boolInt(settings.HydrationActive), boolInt(settings.EyeActive),
	)
	return err
}

func (s *SQLiteStore) LoadTasks() ([]model.Task, error) {
	rows, err := s.db.Query(`
		SELECT title, due_date, due_time, completed, daily
		FROM tasks ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		var t model.Task
		var completed, daily int
		if err := rows.Scan(&t.Title, &t.Date, &t.Time, &completed, &daily); err != nil {
			return nil, err
		}
		t.Completed = completed == 1
		t.Daily = daily == 1
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) SaveTasks(tasks []model.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return err
	}
	for i, t := range tasks {
		if _, err := tx.Exec(`
			INSERT INTO tasks (position, title, due_date, due_time, completed, daily)
			VALUES (?, ?, ?, ?, ?, ?)`,
			i, t.Title, t.Date, t.Time, boolInt(t.Completed), boolInt(t.Daily),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
