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

// applySummary reads crawl_summary.json when no earlier source produced
// pages. The document is kept verbatim as the site summary; a "files" list
// synthesizes one page per entry with the URL inferred from the base URL and
// the filename stem.
func (s *Scanner) applySummary(dc *dirContext, site *Site) error {
	if len(site.Pages) > 0 {
		return nil
	}
	name := filepath.Join(dc.dir, summaryFileName)
	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", cerrors.ErrSourceUnreadable, name, err)
	}
	var summary map[string]any
	if err := json.Unmarshal(data, &summary); err != nil {
		return fmt.Errorf("%w: %s: %w", cerrors.ErrSummaryMalformed, name, err)
	}

	site.Summary = summary // verbatim, replacing anything set so far
	site.CrawlDate = stringValue(summary["crawl_date"])

	raw, ok := summary["files"]
	if !ok {
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		return fmt.Errorf("%w: %s: files is not a list", cerrors.ErrSummaryMalformed, name)
	}
	base := stringValue(summary["base_url"])
	for _, item := range list {
		fp, ok := item.(string)
		if !ok {
			return fmt.Errorf("%w: %s: files entry is not a string", cerrors.ErrSummaryMalformed, name)
		}
		stem := strings.TrimSuffix(filepath.Base(fp), ".md")
		site.Pages = append(site.Pages, Page{
			URL:       base + "/" + stem,
			Title:     titleOrDefault(TitleWords(strings.ReplaceAll(stem, "-", " "))),
			LocalFile: fp,
			Source:    SourceSummaryFile,
			Depth:     "0",
		})
	}
	return nil
}
