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

// metadataFile mirrors the subset of _metadata.json the normalizer consumes.
// A JSON null baseUrl decodes to the empty string and triggers derivation.
type metadataFile struct {
	BaseURL   string          `json:"baseUrl"`
	CrawledAt string          `json:"crawledAt"`
	Files     []metadataEntry `json:"files"`
}

type metadataEntry struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Title    string `json:"title"`
}

// applyMetadata reads _metadata.json. Summary base URL and crawl date are
// refreshed whenever the file exists, regardless of earlier sources; pages
// are synthesized only when no earlier source produced any.
func (s *Scanner) applyMetadata(dc *dirContext, site *Site) error {
	name := filepath.Join(dc.dir, metadataFileName)
	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", cerrors.ErrSourceUnreadable, name, err)
	}
	var meta metadataFile
	if err := json.Unmarshal(data, &meta); err != nil {
		return fmt.Errorf("%w: %s: %w", cerrors.ErrMetadataMalformed, name, err)
	}

	base := meta.BaseURL
	if base == "" && len(meta.Files) > 0 {
		base = SchemeHost(meta.Files[0].URL)
	}
	// The key is stored even when the value is empty so a metadata-only
	// directory still counts as having summary data.
	site.Summary["base_url"] = base
	site.CrawlDate = meta.CrawledAt

	if len(site.Pages) > 0 {
		return nil
	}
	for _, f := range meta.Files {
		site.Pages = append(site.Pages, Page{
			URL:       f.URL,
			Title:     titleOrDefault(f.Title),
			LocalFile: site.Name + "/" + f.Filename,
			Source:    SourceMetadata,
			Depth:     "0",
		})
	}
	return nil
}
