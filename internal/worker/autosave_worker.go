package worker

import (
	"context"
	"time"

	"github.com/osse101/PlotFarm_Go/internal/logger"
)

// Persister writes the current farm to durable storage. farm.Service
// satisfies it.
type Persister interface {
	Persist(ctx context.Context) error
}

// AutosaveWorker persists the farm on a fixed interval and once more on
// shutdown.
type AutosaveWorker struct {
	BaseWorker
	farm        Persister
	interval    time.Duration
	saveTimeout time.Duration
}

// NewAutosaveWorker creates a worker. A non-positive interval disables the
// periodic save; the final save on shutdown still happens.
func NewAutosaveWorker(farm Persister, interval time.Duration) *AutosaveWorker {
	w := &AutosaveWorker{
		farm:        farm,
		interval:    interval,
		saveTimeout: DefaultSaveTimeout,
	}
	w.init()
	return w
}

// Start launches the ticker loop
func (w *AutosaveWorker) Start() {
	log := logger.FromContext(context.Background())
	if w.interval <= 0 {
		log.Info(LogMsgAutosaveDisabled)
		return
	}
	log.Info(LogMsgAutosaveStarted, "interval", w.interval)

	w.wg.Add(1)
	go w.run()
}

func (w *AutosaveWorker) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.save()
		case <-w.shutdown:
			return
		}
	}
}

func (w *AutosaveWorker) save() {
	ctx, cancel := context.WithTimeout(context.Background(), w.saveTimeout)
	defer cancel()

	if err := w.farm.Persist(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgAutosaveFailed, "error", err)
		return
	}
	logger.FromContext(ctx).Debug(LogMsgAutosaveCompleted)
}

// Shutdown stops the loop, then saves one last time.
func (w *AutosaveWorker) Shutdown(ctx context.Context) error {
	if err := w.shutdownInternal(ctx, WorkerNameAutosave); err != nil {
		return err
	}
	if err := w.farm.Persist(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgFinalSaveFailed, "error", err)
		return err
	}
	return nil
}
