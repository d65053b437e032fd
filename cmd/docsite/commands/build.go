package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/uga-caes/docsite/internal/build"
	"github.com/uga-caes/docsite/internal/config"
	"github.com/uga-caes/docsite/internal/history"
	"github.com/uga-caes/docsite/internal/logfields"
	"github.com/uga-caes/docsite/internal/notify"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Output path for the generated index document (overrides config)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := LoadConfig(root)
	if err != nil {
		return err
	}
	if b.Output != "" {
		cfg.Output.Path = b.Output
	}

	// Setup signal-based context so an interrupted build still records its
	// outcome before exiting.
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	builder := build.NewBuilder(cfg)
	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer func() { _ = store.Close() }()
		builder = builder.WithHistory(store)
	}

	// Provide friendly user-facing messages on stdout for CLI integration tests.
	fmt.Println("Starting docsite build")

	report, runErr := builder.Run(sigctx)
	if report != nil {
		notifyReport(cfg, report)
		fmt.Println(report.Summary())
	}
	if runErr != nil {
		fmt.Println("Build failed")
		return runErr
	}
	fmt.Println("Build completed successfully")
	return nil
}

// notifyReport publishes the report when notifications are configured.
// Broker problems are logged and never fail the build itself.
func notifyReport(cfg *config.Config, report *build.Report) {
	if !cfg.Notifications.Enabled {
		return
	}
	publisher, err := notify.NewPublisher(cfg.Notifications)
	if err != nil {
		slog.Warn("Notifications unavailable", logfields.Error(err))
		return
	}
	defer func() { _ = publisher.Close() }()

	data, err := report.JSON()
	if err != nil {
		slog.Warn("Encode report for notification failed", logfields.Error(err))
		return
	}
	if err := publisher.PublishReport(data); err != nil {
		slog.Warn("Notification publish failed", logfields.Error(err))
	}
}
