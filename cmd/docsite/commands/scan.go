package commands

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/uga-caes/docsite/internal/content"
	"github.com/uga-caes/docsite/internal/logfields"
)

// ScanCmd implements the 'scan' command.
type ScanCmd struct {
	Site string `short:"s" help:"Specific site to report (optional)"`
}

func (s *ScanCmd) Run(_ *Global, root *CLI) error {
	cfg, err := LoadConfig(root)
	if err != nil {
		return err
	}

	scanner := content.NewScanner(content.Options{
		NestedDirs:          cfg.Scan.NestedDirs,
		APISummaryParent:    cfg.Scan.APISummaryParent,
		APISummaryDir:       cfg.Scan.APISummaryDir,
		CategoriesParent:    cfg.Scan.CategoriesParent,
		ExcludedTitleMarker: cfg.Scan.ExcludedTitleMarker,
	})
	sites, err := scanner.Scan(cfg.ContentDir)
	if err != nil {
		return err
	}

	// Filter sites if a specific one was requested.
	if s.Site != "" {
		site, ok := sites[s.Site]
		if !ok {
			return fmt.Errorf("site '%s' not found under %s", s.Site, cfg.ContentDir)
		}
		sites = map[string]*content.Site{s.Site: site}
	}

	names := make([]string, 0, len(sites))
	pages := 0
	for name, site := range sites {
		names = append(names, name)
		pages += len(site.Pages)
	}
	sort.Strings(names)

	slog.Info("Content scan completed", logfields.Sites(len(sites)), logfields.Pages(pages))

	for _, name := range names {
		site := sites[name]
		slog.Info("Site inventory",
			logfields.Site(name),
			logfields.Pages(len(site.Pages)),
			slog.String("crawl_date", site.CrawlDate))
		for i := range site.Pages {
			page := &site.Pages[i]
			slog.Info("  Page discovered",
				slog.String("title", page.Title),
				logfields.URL(page.URL),
				logfields.Source(string(page.Source)))
		}
	}
	return nil
}
