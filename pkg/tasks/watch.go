package tasks

import (
	"os"
	"time"
)

// fileState is what we compare between two polls
type fileState struct {
	modTime time.Time
	size    int64
	missing bool
}

// equal compares modification times as instants, so the same time read back
// with a different location or monotonic reading is no change
func (s fileState) equal(other fileState) bool {
	return s.missing == other.missing && s.size == other.size && s.modTime.Equal(other.modTime)
}

func statFile(path string) fileState {
	info, err := os.Stat(path)
	if err != nil {
		return fileState{missing: true}
	}
	return fileState{modTime: info.ModTime(), size: info.Size()}
}

// FileWatcher polls a set of files and reports the ones that changed since
// the previous poll
type FileWatcher struct {
	paths  []string
	states map[string]fileState
	stat   func(string) fileState
}

// NewFileWatcher records the current state of every path
func NewFileWatcher(paths []string) *FileWatcher {
	w := &FileWatcher{
		paths:  paths,
		states: map[string]fileState{},
		stat:   statFile,
	}
	for _, path := range paths {
		w.states[path] = w.stat(path)
	}
	return w
}

// Poll returns the paths whose size, modification time or existence changed,
// in the order they were given
func (w *FileWatcher) Poll() []string {
	changed := []string{}
	for _, path := range w.paths {
		state := w.stat(path)
		if !state.equal(w.states[path]) {
			changed = append(changed, path)
			w.states[path] = state
		}
	}
	return changed
}

// Watch polls the files every interval on a ticker task and calls onChange
// with the changed paths
func (t *TaskManager) Watch(w *FileWatcher, interval time.Duration, onChange func(paths []string)) *Task {
	return t.NewTickerTask(interval, func(stop chan struct{}) bool {
		if changed := w.Poll(); len(changed) > 0 {
			t.Log.WithField("files", changed).Info("files changed")
			onChange(changed)
		}
		return true
	})
}
