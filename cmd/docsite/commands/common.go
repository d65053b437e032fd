package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/uga-caes/docsite/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docsite.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build   BuildCmd   `cmd:"" help:"Build the documentation index from the content directory"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
	Scan    ScanCmd    `cmd:"" help:"Scan the content directory and report the inventory without building"`
	Serve   ServeCmd   `cmd:"" help:"Serve the index over HTTP and rebuild on content changes"`
	Publish PublishCmd `cmd:"" help:"Commit the generated index to the enclosing git repository"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadConfig loads the configuration named by the root flags and applies its
// logging settings to the default logger.
func LoadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	ConfigureLogging(cfg, root.Verbose)
	return cfg, nil
}

// ConfigureLogging replaces the bootstrap logger with one built from the
// configuration. The verbose flag wins over the configured level.
func ConfigureLogging(cfg *config.Config, verbose bool) {
	level := config.NormalizeLogLevel(cfg.Logging.Level).SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if config.NormalizeLogFormat(cfg.Logging.Format) == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
