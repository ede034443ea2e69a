// Package tasks runs background work that must be replaced, not stacked,
// when something new comes along.
package tasks

import (
	"fmt"
	"io"
	"time"

	"github.com/christophe-duc/lazyts/pkg/i18n"
	"github.com/sasha-s/go-deadlock"
	"github.com/sirupsen/logrus"
)

// TaskManager runs at most one task at a time. Starting a task stops the
// previous one first.
type TaskManager struct {
	currentTask  *Task
	waitingMutex deadlock.Mutex
	Log          *logrus.Entry
	Tr           *i18n.TranslationSet
	Out          io.Writer
}

type Task struct {
	stop          chan struct{}
	stopped       bool
	stopMutex     deadlock.Mutex
	notifyStopped chan struct{}
	Log           *logrus.Entry
}

func NewTaskManager(log *logrus.Entry, translationSet *i18n.TranslationSet, out io.Writer) *TaskManager {
	return &TaskManager{Log: log, Tr: translationSet, Out: out}
}

// Close closes the task manager, killing whatever task may currently be running
func (t *TaskManager) Close() error {
	t.waitingMutex.Lock()
	task := t.currentTask
	t.waitingMutex.Unlock()

	if task == nil {
		return nil
	}

	c := make(chan struct{}, 1)

	go func() {
		task.Stop()
		c <- struct{}{}
	}()

	select {
	case <-c:
	case <-time.After(3 * time.Second):
		fmt.Fprintln(t.Out, t.Tr.CannotKillChildError)
	}
	return nil
}

// NewTask starts f in the background. f must return once stop is closed.
// The returned task is done when f has returned.
func (t *TaskManager) NewTask(f func(stop chan struct{})) *Task {
	t.waitingMutex.Lock()
	defer t.waitingMutex.Unlock()

	if t.currentTask != nil {
		t.Log.Info("asking task to stop")
		t.currentTask.Stop()
		t.Log.Info("task stopped")
	}

	// we don't want to block on this in case the task already returned
	stop := make(chan struct{}, 1)
	notifyStopped := make(chan struct{})

	task := &Task{
		stop:          stop,
		notifyStopped: notifyStopped,
		Log:           t.Log,
	}
	t.currentTask = task

	go func() {
		f(stop)
		t.Log.Info("returned from function, closing notifyStopped")
		close(notifyStopped)
	}()

	return task
}

// Stop asks the task to stop and waits until it has
func (t *Task) Stop() {
	t.stopMutex.Lock()
	defer t.stopMutex.Unlock()
	if t.stopped {
		return
	}
	close(t.stop)
	t.Log.Info("closed stop channel, waiting for notifyStopped message")
	<-t.notifyStopped
	t.Log.Info("received notifyStopped message")
	t.stopped = true
}

// Done is closed once the task function has returned
func (t *Task) Done() <-chan struct{} {
	return t.notifyStopped
}

// NewTickerTask is a convenience function for making a new task that repeats some action once per e.g. second.
// f is called straight away and then on every tick, until stop is closed or f returns false.
func (t *TaskManager) NewTickerTask(duration time.Duration, f func(stop chan struct{}) bool) *Task {
	return t.NewTask(func(stop chan struct{}) {
		ticker := time.NewTicker(duration)
		defer ticker.Stop()

		if !f(stop) {
			return
		}
		for {
			select {
			case <-stop:
				t.Log.Info("exiting ticker task due to stop channel")
				return
			case <-ticker.C:
				if !f(stop) {
					t.Log.Info("exiting ticker task, function is done")
					return
				}
			}
		}
	})
}
