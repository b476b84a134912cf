package update

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/duckup/duckup/internal/models"
)

var ErrUpdateInProgress = errors.New("an update attempt is already in progress")

type triggerRequest struct {
	result chan models.Result
}

// Runner owns the settings document and the history at runtime and
// runs update attempts one at a time, either periodically or on
// demand. History mutations and their persistence happen under one
// lock so the file on disk always matches the document in memory.
type Runner struct {
	store   SettingsStore
	updater UpdaterInterface
	logger  Logger

	force  chan triggerRequest
	reload chan struct{}

	observers []func(result models.Result)

	mutex    sync.RWMutex
	settings models.Settings
	history  models.History
}

func NewRunner(store SettingsStore, updater UpdaterInterface,
	logger Logger) *Runner {
	return &Runner{
		store:   store,
		updater: updater,
		logger:  logger,
		force:   make(chan triggerRequest),
		reload:  make(chan struct{}, 1),
		// loaded here so collaborators reading through the runner see
		// the persisted documents before Run starts
		settings: store.LoadSettings(),
		history:  store.LoadHistory(),
	}
}

// AddObserver registers f to be called once per completed attempt,
// after the result is appended to the history and persisted.
// All observers must be registered before Run starts.
func (r *Runner) AddObserver(f func(result models.Result)) {
	r.observers = append(r.observers, f)
}

func (r *Runner) Run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	r.mutex.RLock()
	settings := r.settings
	r.mutex.RUnlock()

	var ticker *time.Ticker
	var tick <-chan time.Time
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tick = nil
		}
	}
	defer stopTicker()

	reschedule := func(settings models.Settings) {
		stopTicker()
		if !settings.AutoUpdate {
			r.logger.Info("periodic updates disabled")
			return
		}
		ticker = time.NewTicker(settings.Interval())
		tick = ticker.C
		r.logger.Info("periodic updates every " + settings.Interval().String())
	}
	reschedule(settings)

	if settings.AutoUpdate {
		// first attempt right away instead of waiting a full interval
		r.update(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			r.update(ctx)
		case request := <-r.force:
			request.result <- r.update(ctx)
		case <-r.reload:
			r.mutex.RLock()
			settings = r.settings
			r.mutex.RUnlock()
			reschedule(settings)
		}
	}
}

func (r *Runner) update(ctx context.Context) (result models.Result) {
	r.mutex.RLock()
	settings := r.settings
	r.mutex.RUnlock()

	result = r.updater.Update(ctx, settings)

	// the append and its persistence happen under the same lock so a
	// concurrent ClearHistory cannot leave the file out of sync
	r.mutex.Lock()
	r.history = append(r.history, result).Capped()
	err := r.store.SaveHistory(r.history)
	r.mutex.Unlock()
	if err != nil {
		r.logger.Error("saving history: " + err.Error())
	}

	for _, observer := range r.observers {
		observer(result)
	}
	return result
}

// TriggerNow runs one update attempt and returns its result. If an
// attempt is already in flight the call is rejected with
// ErrUpdateInProgress instead of being queued.
func (r *Runner) TriggerNow(ctx context.Context) (
	result models.Result, err error) {
	request := triggerRequest{result: make(chan models.Result, 1)}
	select {
	case r.force <- request:
	default:
		return result, ErrUpdateInProgress
	}

	select {
	case result = <-request.result:
		return result, nil
	case <-ctx.Done():
		return result, ctx.Err()
	}
}

// ApplySettings persists the settings document, swaps the in-memory
// settings and reschedules periodic updates accordingly. On
// persistence failure the previous in-memory settings are kept and
// the error is returned for the caller to report.
func (r *Runner) ApplySettings(settings models.Settings) (err error) {
	err = r.store.SaveSettings(settings)
	if err != nil {
		return err
	}

	r.mutex.Lock()
	r.settings = settings
	r.mutex.Unlock()

	select {
	case r.reload <- struct{}{}:
	default: // a reschedule is already pending
	}
	return nil
}

func (r *Runner) Settings() models.Settings {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.settings
}

func (r *Runner) History() models.History {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	history := make(models.History, len(r.history))
	copy(history, r.history)
	return history
}

func (r *Runner) LastResult() (result models.Result, ok bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.history.Last()
}

// ClearHistory empties the history and persists the empty document.
func (r *Runner) ClearHistory() (err error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.history = nil
	return r.store.SaveHistory(nil)
}
