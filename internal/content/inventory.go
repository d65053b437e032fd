package content

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	cerrors "github.com/uga-caes/docsite/internal/content/errors"
)

// Column headers recognized in crawl_inventory.csv.
const (
	colURL       = "URL"
	colTitle     = "Title"
	colLocalFile = "Local File"
	colDepth     = "Depth"
	colCrawlDate = "Crawl Date"
)

// applyInventory reads crawl_inventory.csv. Every data row becomes one Page
// tagged csv; the first row seeds the summary base URL and the crawl date.
func (s *Scanner) applyInventory(dc *dirContext, site *Site) error {
	name := filepath.Join(dc.dir, inventoryFileName)
	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", cerrors.ErrSourceUnreadable, name, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil // empty inventory contributes nothing
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", cerrors.ErrInventoryMalformed, name, err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[h] = i
	}
	cell := func(rec []string, h string) string {
		i, ok := col[h]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	first := true
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %s: %w", cerrors.ErrInventoryMalformed, name, err)
		}
		depth := cell(rec, colDepth)
		if depth == "" {
			depth = "0"
		}
		site.Pages = append(site.Pages, Page{
			URL:       cell(rec, colURL),
			Title:     titleOrDefault(cell(rec, colTitle)),
			LocalFile: cell(rec, colLocalFile),
			Source:    SourceCSV,
			Depth:     depth,
		})
		if first {
			first = false
			if base := SchemeHost(cell(rec, colURL)); base != "" {
				site.Summary["base_url"] = base
			}
			site.CrawlDate = cell(rec, colCrawlDate)
		}
	}
	return nil
}
