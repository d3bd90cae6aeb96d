package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher reports external edits to watched files, debouncing the rapid
// write bursts editors and atomic-rename saves produce. The onChange callback
// runs on the watcher goroutine; callers must hand the result off to their
// own control flow.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]time.Time
	onChange func(string)
	mu       sync.RWMutex
	done     chan struct{}
}

func NewFileWatcher(onChange func(string)) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher:  watcher,
		files:    make(map[string]time.Time),
		onChange: onChange,
		done:     make(chan struct{}),
	}

	go fw.watch()
	return fw, nil
}

// AddFile watches the file's directory so renames into place are seen even
// when the file itself is replaced.
func (fw *FileWatcher) AddFile(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, exists := fw.files[absPath]; exists {
		return nil
	}

	if err := fw.watcher.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	fw.files[absPath] = time.Now()
	return nil
}

func (fw *FileWatcher) watch() {
	debounce := make(map[string]*time.Timer)

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				name := event.Name
				if timer, exists := debounce[name]; exists {
					timer.Stop()
				}

				debounce[name] = time.AfterFunc(100*time.Millisecond, func() {
					fw.mu.RLock()
					_, watching := fw.files[name]
					fw.mu.RUnlock()
					if watching && fw.onChange != nil {
						fw.onChange(name)
					}
				})
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// Keep watching; a transient error must not stop reloads.
			_ = err

		case <-fw.done:
			return
		}
	}
}

func (fw *FileWatcher) Close() error {
	close(fw.done)
	return fw.watcher.Close()
}
