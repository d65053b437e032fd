package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	cerrors "github.com/uga-caes/docsite/internal/content/errors"
)

// categorySummary mirrors the subset of a parent crawl_summary.json used to
// populate category subdirectories.
type categorySummary struct {
	CrawlDate  string                     `json:"crawl_date"`
	Categories map[string]categoryListing `json:"categories"`
}

type categoryListing struct {
	Articles []categoryArticle `json:"articles"`
}

type categoryArticle struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// applyCategories populates a knowledge-base subdirectory from the category
// of the same name in the parent directory's crawl summary.
func (s *Scanner) applyCategories(dc *dirContext, site *Site) error {
	if len(site.Pages) > 0 || dc.parent != s.opts.CategoriesParent {
		return nil
	}
	name := filepath.Join(dc.parentDir, summaryFileName)
	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", cerrors.ErrSourceUnreadable, name, err)
	}
	var parent categorySummary
	if err := json.Unmarshal(data, &parent); err != nil {
		return fmt.Errorf("%w: %s: %w", cerrors.ErrSummaryMalformed, name, err)
	}
	listing, ok := parent.Categories[dc.name]
	if !ok {
		return nil
	}

	site.CrawlDate = parent.CrawlDate
	localFile := dc.parent + "/" + dc.name
	for _, a := range listing.Articles {
		site.Pages = append(site.Pages, Page{
			URL:       a.URL,
			Title:     titleOrDefault(a.Title),
			LocalFile: localFile,
			Source:    SourceTeamDynamix,
			Depth:     "0",
		})
	}
	return nil
}
