package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	cerrors "github.com/uga-caes/docsite/internal/content/errors"
	"github.com/uga-caes/docsite/internal/logfields"
)

// Recognized artifact file names within a content directory.
const (
	inventoryFileName  = "crawl_inventory.csv"
	metadataFileName   = "_metadata.json"
	summaryFileName    = "crawl_summary.json"
	apiSummaryFileName = "api_processing_summary.json"
)

// Options carries the lookup tables steering a scan. These are domain data,
// not logic: defaults mirror the production content layout.
type Options struct {
	// NestedDirs lists root-level directory names scanned one additional
	// level deep.
	NestedDirs []string
	// APISummaryParent and APISummaryDir name the single parent/child pair
	// whose pages come from an API processing summary.
	APISummaryParent string
	APISummaryDir    string
	// CategoriesParent names the parent directory whose subdirectories are
	// populated from the parent's crawl summary categories.
	CategoriesParent string
	// ExcludedTitleMarker drops API summary entries whose title contains this
	// exact, case-sensitive substring. Empty disables the filter.
	ExcludedTitleMarker string
}

// DefaultOptions returns the lookup tables observed in production content.
func DefaultOptions() Options {
	return Options{
		NestedDirs:          []string{"teamdynamix", "dropbox", "wordpress-uploads-processed"},
		APISummaryParent:    "dropbox",
		APISummaryDir:       "intranet-files",
		CategoriesParent:    "teamdynamix",
		ExcludedTitleMarker: "Destiny One Payout",
	}
}

// Scanner normalizes heterogeneous crawl artifacts into Site records.
// A Scanner carries no per-run state; Scan may be called repeatedly.
type Scanner struct {
	opts   Options
	nested map[string]struct{}
}

// NewScanner creates a Scanner. Zero-valued Options fields fall back to
// DefaultOptions.
func NewScanner(opts Options) *Scanner {
	def := DefaultOptions()
	if opts.NestedDirs == nil {
		opts.NestedDirs = def.NestedDirs
	}
	if opts.APISummaryParent == "" {
		opts.APISummaryParent = def.APISummaryParent
	}
	if opts.APISummaryDir == "" {
		opts.APISummaryDir = def.APISummaryDir
	}
	if opts.CategoriesParent == "" {
		opts.CategoriesParent = def.CategoriesParent
	}
	nested := make(map[string]struct{}, len(opts.NestedDirs))
	for _, name := range opts.NestedDirs {
		nested[name] = struct{}{}
	}
	return &Scanner{opts: opts, nested: nested}
}

// dirContext describes the directory a source step operates on.
type dirContext struct {
	dir       string // path of the directory being scanned
	name      string // directory base name
	parent    string // parent directory name; empty at root level
	parentDir string // path of the parent directory; empty at root level
}

func (dc *dirContext) siteName() string {
	if dc.parent == "" {
		return dc.name
	}
	return dc.parent + "/" + dc.name
}

// sourceStep is one extraction heuristic in the resolution chain. Steps run
// in declaration order; each gates itself on the page list and directory
// names, so the chain as a whole implements "first source to yield pages
// wins" while still allowing metadata to refresh summary fields.
type sourceStep struct {
	name string
	fn   func(dc *dirContext, site *Site) error
}

func (s *Scanner) steps() []sourceStep {
	return []sourceStep{
		{"inventory", s.applyInventory},
		{"metadata", s.applyMetadata},
		{"summary", s.applySummary},
		{"api_summary", s.applyAPISummary},
		{"categories", s.applyCategories},
		{"markdown", s.applyMarkdown},
	}
}

// Scan walks root's immediate subdirectories, plus one extra level inside
// the NestedDirs allow-list, and returns one Site per directory that yielded
// pages or summary metadata. Malformed CSV/JSON aborts the scan; only the
// markdown fallback degrades per file.
func (s *Scanner) Scan(root string) (map[string]*Site, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", cerrors.ErrRootNotFound, root, err)
	}

	sites := make(map[string]*Site)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dc := &dirContext{dir: filepath.Join(root, entry.Name()), name: entry.Name()}
		if err := s.scanInto(sites, dc); err != nil {
			return nil, err
		}
		if _, ok := s.nested[entry.Name()]; !ok {
			continue
		}
		subEntries, err := os.ReadDir(dc.dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", cerrors.ErrDirListFailed, dc.dir, err)
		}
		for _, sub := range subEntries {
			if !sub.IsDir() {
				continue
			}
			sdc := &dirContext{
				dir:       filepath.Join(dc.dir, sub.Name()),
				name:      sub.Name(),
				parent:    entry.Name(),
				parentDir: dc.dir,
			}
			if err := s.scanInto(sites, sdc); err != nil {
				return nil, err
			}
		}
	}
	return sites, nil
}

func (s *Scanner) scanInto(sites map[string]*Site, dc *dirContext) error {
	site, err := s.scanSite(dc)
	if err != nil {
		return err
	}
	if !site.retained() {
		slog.Debug("Skipping empty content directory", logfields.Path(dc.dir))
		return nil
	}
	slog.Debug("Scanned content directory",
		logfields.Site(site.Name),
		logfields.Pages(len(site.Pages)))
	sites[site.Name] = site
	return nil
}

func (s *Scanner) scanSite(dc *dirContext) (*Site, error) {
	site := &Site{
		Name:    dc.siteName(),
		Summary: make(map[string]any),
		Nested:  dc.parent != "",
	}
	for _, step := range s.steps() {
		if err := step.fn(dc, site); err != nil {
			return nil, fmt.Errorf("site %s: %w", site.Name, err)
		}
	}
	return site, nil
}
