package content

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScan_Inventory_OnePagePerDataRowWithVerbatimURLs(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, filepath.Join(root, "crawled-site", "crawl_inventory.csv"),
		"URL,Title,Local File,Depth,Crawl Date\n"+
			"https://example.org/a,Alpha,crawled-site/a.md,0,2025-02-03T10:00:00\n"+
			"https://example.org/b?id=2&lang=en,Beta,crawled-site/b.md,1,2025-02-03T10:00:00\n"+
			"https://example.org/c#section,Gamma,crawled-site/c.md,2,2025-02-03T10:00:00\n")

	sites, err := NewScanner(Options{}).Scan(root)
	require.NoError(t, err)
	site := sites["crawled-site"]
	require.NotNil(t, site)
	require.Len(t, site.Pages, 3)
	require.Equal(t, "https://example.org/a", site.Pages[0].URL)
	require.Equal(t, "https://example.org/b?id=2&lang=en", site.Pages[1].URL)
	require.Equal(t, "https://example.org/c#section", site.Pages[2].URL)
	for _, p := range site.Pages {
		require.Equal(t, SourceCSV, p.Source)
	}
}

func TestScan_Inventory_HeaderOrderIrrelevant(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, filepath.Join(root, "crawled-site", "crawl_inventory.csv"),
		"Title,Depth,URL,Crawl Date,Local File\n"+
			"Alpha,3,https://example.org/a,2025-02-03,crawled-site/a.md\n")

	sites, err := NewScanner(Options{}).Scan(root)
	require.NoError(t, err)
	page := sites["crawled-site"].Pages[0]
	require.Equal(t, "https://example.org/a", page.URL)
	require.Equal(t, "Alpha", page.Title)
	require.Equal(t, "crawled-site/a.md", page.LocalFile)
	require.Equal(t, "3", page.Depth)
}

func TestScan_Inventory_FirstRowSeedsBaseURLAndCrawlDate(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, filepath.Join(root, "crawled-site", "crawl_inventory.csv"),
		"URL,Title,Local File,Depth,Crawl Date\n"+
			"https://example.org/start,Start,s.md,0,2025-02-03T10:00:00\n"+
			"https://other.example.com/later,Later,l.md,1,2025-09-09\n")

	sites, err := NewScanner(Options{}).Scan(root)
	require.NoError(t, err)
	site := sites["crawled-site"]
	require.Equal(t, "https://example.org", site.Summary["base_url"])
	require.Equal(t, "2025-02-03T10:00:00", site.CrawlDate)
}

func TestScan_Inventory_MissingValuesGetDefaults(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, filepath.Join(root, "crawled-site", "crawl_inventory.csv"),
		"URL,Title,Local File\n"+
			"https://example.org/a,,a.md\n")

	sites, err := NewScanner(Options{}).Scan(root)
	require.NoError(t, err)
	page := sites["crawled-site"].Pages[0]
	require.Equal(t, DefaultTitle, page.Title)
	require.Equal(t, "0", page.Depth)
	require.Equal(t, "", sites["crawled-site"].CrawlDate)
}

func TestScan_Inventory_HeaderOnlyContributesNothing(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, filepath.Join(root, "crawled-site", "crawl_inventory.csv"),
		"URL,Title,Local File,Depth,Crawl Date\n")

	sites, err := NewScanner(Options{}).Scan(root)
	require.NoError(t, err)
	require.Empty(t, sites)
}

func TestScan_Inventory_EmptyFileContributesNothing(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, filepath.Join(root, "crawled-site", "crawl_inventory.csv"), "")

	sites, err := NewScanner(Options{}).Scan(root)
	require.NoError(t, err)
	require.Empty(t, sites)
}

func TestScan_Inventory_UnparseableURLLeavesSummaryWithoutBase(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, filepath.Join(root, "crawled-site", "crawl_inventory.csv"),
		"URL,Title,Local File,Depth,Crawl Date\n"+
			"not-a-url,Alpha,a.md,0,2025-02-03\n")

	sites, err := NewScanner(Options{}).Scan(root)
	require.NoError(t, err)
	site := sites["crawled-site"]
	require.Len(t, site.Pages, 1)
	require.Equal(t, "not-a-url", site.Pages[0].URL)
	require.NotContains(t, site.Summary, "base_url")
}
