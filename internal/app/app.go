package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/oracular-labs/oracular/internal/api/server"
	"github.com/oracular-labs/oracular/internal/logging"
	"github.com/oracular-labs/oracular/internal/metrics"
	"github.com/oracular-labs/oracular/internal/processor"
	"github.com/oracular-labs/oracular/internal/scheduler"
)

// Application ... Oracular app struct
type Application struct {
	ctx context.Context
	wg  sync.WaitGroup

	scheduler *scheduler.Scheduler
	processor *processor.Processor
	server    *server.Server
	stats     *metrics.Metrics

	metricsCfg *metrics.Config
}

// New ... Initializer
func New(ctx context.Context, s *scheduler.Scheduler, p *processor.Processor,
	srv *server.Server, stats *metrics.Metrics, metricsCfg *metrics.Config) *Application {
	return &Application{
		ctx:        ctx,
		scheduler:  s,
		processor:  p,
		server:     srv,
		stats:      stats,
		metricsCfg: metricsCfg,
	}
}

// Start ... Re-arms persisted oracle timers and spawns the transaction
// processor event loop; the API server is already listening
func (a *Application) Start() error {
	if err := a.scheduler.Start(a.ctx); err != nil {
		return err
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		if err := a.processor.EventLoop(a.ctx); err != nil {
			logging.WithContext(a.ctx).Error("Processor event loop error", zap.Error(err))
		}
	}()

	a.stats.Start(a.metricsCfg)

	return nil
}

// ListenForShutdown ... Handles and listens for shutdown
func (a *Application) ListenForShutdown(stop func()) {
	done := <-a.End() // Blocks until an OS signal is received

	logging.WithContext(a.ctx).
		Info("Received shutdown OS signal", zap.String("signal", done.String()))
	stop()

	a.scheduler.Stop()
	a.wg.Wait()
}

// End ... Returns a channel that will receive an OS signal
func (a *Application) End() <-chan os.Signal {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	return sigs
}

// ProcessInterval ... Converts a configured interval in seconds to a duration
func ProcessInterval(seconds uint64) time.Duration {
	return time.Duration(seconds) * time.Second
}
