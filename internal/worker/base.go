package worker

import (
	"context"
	"sync"

	"github.com/osse101/PlotFarm_Go/internal/logger"
)

// BaseWorker provides the shutdown signal and in-flight tracking shared by
// background workers.
type BaseWorker struct {
	shutdown chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// shutdownInternal signals every loop to stop and waits for in-flight work
// or ctx, whichever comes first.
func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown, "worker", workerName)

	w.once.Do(func() { close(w.shutdown) })

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownComplete, "worker", workerName)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownTimeout, "worker", workerName)
		return ctx.Err()
	}
}
