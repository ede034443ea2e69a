package app

import (
	"fmt"

	"github.com/boz/go-throttle"
	"github.com/christophe-duc/lazyts/pkg/commands"
	"github.com/christophe-duc/lazyts/pkg/tasks"
	"github.com/samber/lo"
	"github.com/sasha-s/go-deadlock"
)

// Watch validates the files once, then again whenever they change, until
// stop is closed. Bursts of changes within the throttle period are validated
// together.
func (app *App) Watch(paths []string, stop <-chan struct{}) error {
	if err := app.Validate(paths); err != nil && !commands.HasErrorCode(err, commands.ErrCodeValidationFailed) {
		return err
	}

	watchConfig := app.Config.UserConfig.Watch
	opts, err := app.Config.UserConfig.Validation.Options()
	if err != nil {
		return err
	}

	var mutex deadlock.Mutex
	pending := map[string]bool{}
	stopped := false

	// Stop does not wait for a call that is already running
	driver := throttle.ThrottleFunc(watchConfig.Throttle, true, func() {
		mutex.Lock()
		defer mutex.Unlock()

		if stopped {
			return
		}
		changed := lo.Filter(paths, func(path string, _ int) bool {
			return pending[path]
		})
		pending = map[string]bool{}

		for _, path := range changed {
			fmt.Fprintf(app.Out, app.Tr.FileChanged+"\n", path)
			if _, err := app.validateFile(path, opts); err != nil {
				app.Log.Info(err)
				if message, known := app.KnownError(err); known {
					fmt.Fprintln(app.Out, message)
				} else {
					fmt.Fprintln(app.Out, err.Error())
				}
			}
		}
	})

	watcher := tasks.NewFileWatcher(paths)
	fmt.Fprintf(app.Out, app.Tr.Watching+"\n", len(paths))

	task := app.TaskManager.Watch(watcher, watchConfig.Interval, func(changed []string) {
		mutex.Lock()
		for _, path := range changed {
			pending[path] = true
		}
		mutex.Unlock()

		driver.Trigger()
	})

	<-stop
	task.Stop()
	driver.Stop()

	mutex.Lock()
	stopped = true
	mutex.Unlock()

	return nil
}
