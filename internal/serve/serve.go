// Package serve runs the docsite daemon: an initial index build, an HTTP
// server exposing the generated document and operational endpoints, and a
// filesystem watcher that rebuilds on content changes.
package serve

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/uga-caes/docsite/internal/build"
	"github.com/uga-caes/docsite/internal/config"
	"github.com/uga-caes/docsite/internal/history"
	"github.com/uga-caes/docsite/internal/logfields"
	"github.com/uga-caes/docsite/internal/metrics"
	"github.com/uga-caes/docsite/internal/notify"
)

const shutdownTimeout = 5 * time.Second

// Run starts serve mode and blocks until ctx is canceled.
func Run(ctx context.Context, cfg *config.Config) error {
	contentDir, err := resolveContentDir(cfg)
	if err != nil {
		return err
	}

	var store *history.Store
	if cfg.History.Path != "" {
		store, err = history.Open(cfg.History.Path)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer func() { _ = store.Close() }()
	}

	var registry *prom.Registry
	recorder := metrics.Recorder(metrics.NoopRecorder{})
	if cfg.Serve.MetricsEnabled() {
		registry = prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(registry)
	}

	var publisher *notify.Publisher
	if cfg.Notifications.Enabled {
		publisher, err = notify.NewPublisher(cfg.Notifications)
		if err != nil {
			// Serve mode stays usable without the broker; builds just go
			// unannounced.
			slog.Warn("Notifications unavailable", logfields.Error(err))
			publisher = nil
		} else {
			defer func() { _ = publisher.Close() }()
		}
	}

	builder := build.NewBuilder(cfg).WithRecorder(recorder)
	if store != nil {
		builder = builder.WithHistory(store)
	}

	state := newRunState()
	rebuild := func() {
		report, buildErr := builder.Run(ctx)
		state.setResult(report, buildErr)
		if buildErr != nil {
			slog.Warn("Rebuild failed", logfields.Error(buildErr))
		}
		if publisher != nil && report != nil {
			if data, jsonErr := report.JSON(); jsonErr == nil {
				if pubErr := publisher.PublishReport(data); pubErr != nil {
					slog.Warn("Notification publish failed", logfields.Error(pubErr))
				}
			}
		}
	}

	// Initial build. Failure is recorded but not fatal so the operator can
	// inspect /status and fix the content while the server runs.
	rebuild()

	srv := NewServer(cfg, state, store, registry, contentDir)
	if err := srv.Start(ctx); err != nil {
		return err
	}

	watcher, err := newWatcher(contentDir)
	if err != nil {
		stopServer(srv)
		return err
	}
	defer func() { _ = watcher.Close() }()

	rebuildReq, trigger := newDebouncer(cfg.DebounceWindow())
	startRebuildWorker(ctx, rebuildReq, rebuild)

	var sched *Scheduler
	if every := cfg.RebuildEvery(); every > 0 {
		sched, err = NewScheduler()
		if err != nil {
			stopServer(srv)
			return err
		}
		if _, err := sched.ScheduleRebuild(every, trigger); err != nil {
			stopServer(srv)
			return err
		}
		sched.Start()
		slog.Info("Scheduled rebuilds enabled", slog.Duration("interval", every))
	}

	slog.Info("Watching content for changes",
		logfields.Path(contentDir),
		slog.Duration("debounce", cfg.DebounceWindow()))

	for {
		select {
		case <-ctx.Done():
			return shutdown(srv, sched)
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleFileEvent(watcher, ev, trigger)
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(watchErr))
		}
	}
}

func resolveContentDir(cfg *config.Config) (string, error) {
	abs, err := filepath.Abs(cfg.ContentDir)
	if err != nil {
		return "", fmt.Errorf("resolve content dir: %w", err)
	}
	if st, statErr := os.Stat(abs); statErr != nil || !st.IsDir() {
		return "", fmt.Errorf("content dir not found or not a directory: %s", abs)
	}
	return abs, nil
}

func shutdown(srv *Server, sched *Scheduler) error {
	slog.Info("Shutting down")
	if sched != nil {
		if err := sched.Stop(); err != nil {
			slog.Warn("Scheduler shutdown error", logfields.Error(err))
		}
	}
	stopServer(srv)
	return nil
}

func stopServer(srv *Server) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", logfields.Error(err))
	}
}
