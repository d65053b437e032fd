package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	cerrors "github.com/uga-caes/docsite/internal/content/errors"
)

// apiSummaryFile mirrors api_processing_summary.json.
type apiSummaryFile struct {
	ProcessedAt    string     `json:"processed_at"`
	ProcessedFiles []apiEntry `json:"processed_files"`
}

type apiEntry struct {
	Title      string `json:"title"`
	ShareURL   string `json:"share_url"`
	OutputPath string `json:"output_path"`
	Folder     string `json:"folder"`
}

// applyAPISummary reads api_processing_summary.json for the single
// configured parent/child pair. Entries whose title contains the excluded
// marker are dropped before a page is synthesized.
func (s *Scanner) applyAPISummary(dc *dirContext, site *Site) error {
	if len(site.Pages) > 0 || dc.parent != s.opts.APISummaryParent || dc.name != s.opts.APISummaryDir {
		return nil
	}
	name := filepath.Join(dc.dir, apiSummaryFileName)
	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", cerrors.ErrSourceUnreadable, name, err)
	}
	var parsed apiSummaryFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("%w: %s: %w", cerrors.ErrAPISummaryMalformed, name, err)
	}
	var verbatim map[string]any
	if err := json.Unmarshal(data, &verbatim); err != nil {
		return fmt.Errorf("%w: %s: %w", cerrors.ErrAPISummaryMalformed, name, err)
	}

	site.CrawlDate = parsed.ProcessedAt
	site.Summary = verbatim // keeps folder grouping data for rendering
	for _, f := range parsed.ProcessedFiles {
		if s.opts.ExcludedTitleMarker != "" && strings.Contains(f.Title, s.opts.ExcludedTitleMarker) {
			continue
		}
		folder := f.Folder
		if folder == "" {
			folder = "uncategorized"
		}
		site.Pages = append(site.Pages, Page{
			URL:       f.ShareURL,
			Title:     titleOrDefault(f.Title),
			LocalFile: f.OutputPath,
			Source:    SourceAPI,
			Folder:    folder,
			Depth:     "0",
		})
	}
	return nil
}
