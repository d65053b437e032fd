package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration for all docsite commands.
type Config struct {
	// ContentDir is the root directory holding one subdirectory per crawled
	// site.
	ContentDir    string              `yaml:"content_dir"`
	Output        OutputConfig        `yaml:"output"`
	Site          SiteConfig          `yaml:"site"`
	Scan          ScanConfig          `yaml:"scan"`
	Serve         ServeConfig         `yaml:"serve"`
	History       HistoryConfig       `yaml:"history"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Publish       PublishConfig       `yaml:"publish"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// OutputConfig controls where the generated document is written.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// SiteConfig carries the presentation data for the generated index page.
type SiteConfig struct {
	PageTitle    string            `yaml:"page_title"`
	HeaderTitle  string            `yaml:"header_title"`
	Subtitle     string            `yaml:"subtitle"`
	FooterLines  []string          `yaml:"footer_lines,omitempty"`
	DisplayNames map[string]string `yaml:"display_names,omitempty"`
	Groups       []SiteGroup       `yaml:"groups,omitempty"`
}

// SiteGroup declares a synthetic parent section whose children are existing
// sites. Membership is a set; children render in sorted site order.
type SiteGroup struct {
	Name     string   `yaml:"name"`
	Children []string `yaml:"children"`
}

// ScanConfig carries the lookup tables steering content discovery.
type ScanConfig struct {
	NestedDirs          []string `yaml:"nested_dirs,omitempty"`
	APISummaryParent    string   `yaml:"api_summary_parent"`
	APISummaryDir       string   `yaml:"api_summary_dir"`
	CategoriesParent    string   `yaml:"categories_parent"`
	ExcludedTitleMarker string   `yaml:"excluded_title_marker"`
}

// ServeConfig configures the preview server. Durations are strings in
// time.ParseDuration syntax.
type ServeConfig struct {
	Addr            string `yaml:"addr"`
	Debounce        string `yaml:"debounce"`
	RebuildInterval string `yaml:"rebuild_interval"`
	Metrics         *bool  `yaml:"metrics"`
}

// MetricsEnabled reports whether the /metrics endpoint is exposed.
func (s ServeConfig) MetricsEnabled() bool {
	return s.Metrics == nil || *s.Metrics
}

// HistoryConfig configures the build run history store. An empty path
// disables recording.
type HistoryConfig struct {
	Path string `yaml:"path"`
}

// NotificationsConfig configures build completion notifications.
type NotificationsConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

// PublishConfig configures the commit created by the publish command.
type PublishConfig struct {
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
	Message     string `yaml:"message"`
}

// LoggingConfig selects log verbosity and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the configuration file, expands environment variables in its
// content, and applies defaults. A missing file yields the pure defaults.
func Load(configPath string) (*Config, error) {
	// .env files supplement the process environment without overriding it.
	for _, envPath := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envPath); err == nil {
			fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", envPath)
			break
		}
	}

	var config Config
	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// Defaults-only run; the tool works on a conventional layout.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	applyDefaults(&config)
	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Init creates a new configuration file prefilled with the defaults.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	var example Config
	applyDefaults(&example)

	data, err := yaml.Marshal(&example)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
