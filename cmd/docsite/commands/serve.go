package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/uga-caes/docsite/internal/serve"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Addr         string `short:"a" help:"Listen address (overrides config)"`
	RebuildEvery string `name:"rebuild-every" help:"Scheduled rebuild interval, e.g. 30m (overrides config; empty disables override)"`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	// Setup signal-based context for graceful shutdown
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := LoadConfig(root)
	if err != nil {
		return err
	}
	if s.Addr != "" {
		cfg.Serve.Addr = s.Addr
	}
	if s.RebuildEvery != "" {
		if _, err := time.ParseDuration(s.RebuildEvery); err != nil {
			return fmt.Errorf("invalid --rebuild-every value %q: %w", s.RebuildEvery, err)
		}
		cfg.Serve.RebuildInterval = s.RebuildEvery
	}

	return serve.Run(sigctx, cfg)
}
