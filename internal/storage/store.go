package storage

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sandeepkv93/remindd/internal/model"
)

var ErrUnknownBackend = errors.New("storage: unknown backend")

// Store is the durable home of the task list and reminder settings. Calls are
// synchronous and expected only from the update loop and startup; there are
// no concurrent writers.
type Store interface {
	LoadSettings() (model.Settings, error)
	SaveSettings(model.Settings) error
	LoadTasks() ([]model.Task, error)
	SaveTasks([]model.Task) error
	Close() error
}

// Open selects a backend by name. The default is the JSON file store.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case "", "json":
		return NewJSONStore(dir), nil
	case "sqlite":
		return OpenSQLite(filepath.Join(dir, "remindd.db"))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
