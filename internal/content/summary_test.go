package content

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	cerrors "github.com/uga-caes/docsite/internal/content/errors"
)

func TestScan_Summary_SynthesizesURLAndTitleFromStem(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, filepath.Join(root, "sum-site", "crawl_summary.json"),
		`{"base_url": "https://uga.edu", "crawl_date": "2025-04-05", "files": ["notes/my-page.md"]}`)

	sites, err := NewScanner(Options{}).Scan(root)
	require.NoError(t, err)
	site := sites["sum-site"]
	require.NotNil(t, site)
	require.Len(t, site.Pages, 1)

	page := site.Pages[0]
	require.Equal(t, "https://uga.edu/my-page", page.URL)
	require.Equal(t, "My Page", page.Title)
	require.Equal(t, "notes/my-page.md", page.LocalFile)
	require.Equal(t, SourceSummaryFile, page.Source)
	require.Equal(t, "2025-04-05", site.CrawlDate)
}

func TestScan_Summary_DocumentKeptVerbatim(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, filepath.Join(root, "sum-site", "crawl_summary.json"),
		`{"base_url": "https://uga.edu", "crawl_date": "2025-04-05", "total_pages": 12, "files": ["a.md"]}`)

	sites, err := NewScanner(Options{}).Scan(root)
	require.NoError(t, err)
	summary := sites["sum-site"].Summary
	require.Equal(t, "https://uga.edu", summary["base_url"])
	require.Equal(t, float64(12), summary["total_pages"])
	require.Contains(t, summary, "files")
}

func TestScan_Summary_SkippedWhenInventoryProducedPages(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "sum-site")
	writeContentFile(t, filepath.Join(dir, "crawl_inventory.csv"),
		"URL,Title,Local File,Depth,Crawl Date\n"+
			"https://example.org/a,Alpha,a.md,0,2024-12-31\n")
	writeContentFile(t, filepath.Join(dir, "crawl_summary.json"),
		`{"base_url": "https://uga.edu", "marker_key": true, "files": ["b.md"]}`)

	sites, err := NewScanner(Options{}).Scan(root)
	require.NoError(t, err)
	site := sites["sum-site"]
	require.Len(t, site.Pages, 1)
	require.Equal(t, SourceCSV, site.Pages[0].Source)
	require.NotContains(t, site.Summary, "marker_key")
	require.Equal(t, "2024-12-31", site.CrawlDate)
}

func TestScan_Summary_NoFilesKeyRetainsSummaryOnly(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, filepath.Join(root, "sum-site", "crawl_summary.json"),
		`{"base_url": "https://uga.edu", "crawl_date": "2025-04-05"}`)

	sites, err := NewScanner(Options{}).Scan(root)
	require.NoError(t, err)
	site := sites["sum-site"]
	require.NotNil(t, site)
	require.Empty(t, site.Pages)
	require.Equal(t, "https://uga.edu", site.Summary["base_url"])
}

func TestScan_Summary_FilesNotAListAborts(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, filepath.Join(root, "sum-site", "crawl_summary.json"),
		`{"base_url": "https://uga.edu", "files": 42}`)

	_, err := NewScanner(Options{}).Scan(root)
	require.Error(t, err)
	require.True(t, errors.Is(err, cerrors.ErrSummaryMalformed))
}

func TestScan_Summary_NonStringFileEntryAborts(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, filepath.Join(root, "sum-site", "crawl_summary.json"),
		`{"base_url": "https://uga.edu", "files": ["a.md", 7]}`)

	_, err := NewScanner(Options{}).Scan(root)
	require.Error(t, err)
	require.True(t, errors.Is(err, cerrors.ErrSummaryMalformed))
}

func TestScan_Summary_MissingBaseURLYieldsRelativeURLs(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, filepath.Join(root, "sum-site", "crawl_summary.json"),
		`{"crawl_date": "2025-04-05", "files": ["my-page.md"]}`)

	sites, err := NewScanner(Options{}).Scan(root)
	require.NoError(t, err)
	require.Equal(t, "/my-page", sites["sum-site"].Pages[0].URL)
}
