package tasks

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/christophe-duc/lazyts/pkg/i18n"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDummyLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return log.WithField("test", "test")
}

func newTestManager() *TaskManager {
	log := newDummyLog()
	return NewTaskManager(log, i18n.NewTranslationSet(log, i18n.EN), &bytes.Buffer{})
}

func TestNewTaskStopsPreviousTask(t *testing.T) {
	manager := newTestManager()

	first := manager.NewTask(func(stop chan struct{}) {
		<-stop
	})
	second := manager.NewTask(func(stop chan struct{}) {
		<-stop
	})

	select {
	case <-first.Done():
	case <-time.After(time.Second):
		t.Fatal("first task was not stopped")
	}

	require.NoError(t, manager.Close())
	select {
	case <-second.Done():
	case <-time.After(time.Second):
		t.Fatal("second task was not stopped")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	manager := newTestManager()
	task := manager.NewTask(func(stop chan struct{}) {
		<-stop
	})
	task.Stop()
	task.Stop()
	assert.NoError(t, manager.Close())
}

func TestCloseWithoutTask(t *testing.T) {
	assert.NoError(t, newTestManager().Close())
}

func TestNewTickerTaskRunsUntilDone(t *testing.T) {
	manager := newTestManager()

	calls := 0
	task := manager.NewTickerTask(time.Millisecond, func(stop chan struct{}) bool {
		calls++
		return calls < 3
	})

	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatal("ticker task did not finish")
	}
	assert.Equal(t, 3, calls)
}

func TestFileWatcherPoll(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.ts")
	b := filepath.Join(dir, "b.ts")
	require.NoError(t, os.WriteFile(a, []byte("a"), 0o644))

	w := NewFileWatcher([]string{a, b})
	assert.Empty(t, w.Poll())

	require.NoError(t, os.WriteFile(a, []byte("aa"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("b"), 0o644))
	assert.Equal(t, []string{a, b}, w.Poll())
	assert.Empty(t, w.Poll())

	require.NoError(t, os.Remove(a))
	assert.Equal(t, []string{a}, w.Poll())
}

func TestFileWatcherComparesInstants(t *testing.T) {
	modTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	states := []fileState{
		{modTime: modTime, size: 10},
		// same instant, other location
		{modTime: modTime.In(time.FixedZone("CET", 3600)), size: 10},
		{modTime: modTime.Add(time.Second), size: 10},
		{modTime: modTime.Add(time.Second), size: 11},
	}

	polls := 0
	w := &FileWatcher{
		paths:  []string{"App_pl.ts"},
		states: map[string]fileState{"App_pl.ts": states[0]},
		stat: func(string) fileState {
			polls++
			return states[polls]
		},
	}

	assert.Empty(t, w.Poll())
	assert.Equal(t, []string{"App_pl.ts"}, w.Poll())
	assert.Equal(t, []string{"App_pl.ts"}, w.Poll())
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.ts")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	manager := newTestManager()
	changes := make(chan []string, 1)
	manager.Watch(NewFileWatcher([]string{path}), time.Millisecond, func(paths []string) {
		changes <- paths
	})

	require.NoError(t, os.WriteFile(path, []byte("changed"), 0o644))

	select {
	case paths := <-changes:
		assert.Equal(t, []string{path}, paths)
	case <-time.After(2 * time.Second):
		t.Fatal("change was not noticed")
	}
	assert.NoError(t, manager.Close())
}
