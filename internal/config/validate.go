package config

import (
	"fmt"
	"time"
)

// validate checks field formats after defaults have been applied.
func validate(config *Config) error {
	if d, err := time.ParseDuration(config.Serve.Debounce); err != nil {
		return fmt.Errorf("invalid serve.debounce: %s: %w", config.Serve.Debounce, err)
	} else if d <= 0 {
		return fmt.Errorf("serve.debounce must be positive: %s", config.Serve.Debounce)
	}

	if config.Serve.RebuildInterval != "" {
		if d, err := time.ParseDuration(config.Serve.RebuildInterval); err != nil {
			return fmt.Errorf("invalid serve.rebuild_interval: %s: %w", config.Serve.RebuildInterval, err)
		} else if d <= 0 {
			return fmt.Errorf("serve.rebuild_interval must be positive: %s", config.Serve.RebuildInterval)
		}
	}

	for _, g := range config.Site.Groups {
		if g.Name == "" {
			return fmt.Errorf("site.groups entries require a name")
		}
		if len(g.Children) == 0 {
			return fmt.Errorf("site group %s has no children", g.Name)
		}
	}

	if config.Notifications.Enabled && config.Notifications.Subject == "" {
		return fmt.Errorf("notifications.subject required when notifications are enabled")
	}

	return nil
}

// DebounceWindow returns the parsed serve debounce duration.
// Call after Load; the value is validated there.
func (c *Config) DebounceWindow() time.Duration {
	d, err := time.ParseDuration(c.Serve.Debounce)
	if err != nil {
		return 300 * time.Millisecond
	}
	return d
}

// RebuildEvery returns the scheduled rebuild interval, or zero when periodic
// rebuilds are disabled.
func (c *Config) RebuildEvery() time.Duration {
	if c.Serve.RebuildInterval == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Serve.RebuildInterval)
	if err != nil {
		return 0
	}
	return d
}
