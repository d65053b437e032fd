package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uga-caes/docsite/internal/content"
)

func testOptions() Options {
	return Options{
		PageTitle:   "Crawled Content Documentation",
		HeaderTitle: "CAES Chatbot Documentation",
		Subtitle:    "Comprehensive index of all crawled content sources",
		FooterLines: []string{"Generated by docsite", "Built from local crawl data"},
		DisplayNames: map[string]string{
			"extension-site":         "UGA Extension",
			"gacounts":               "GaCounts Help Content",
			"gacounts-site":          "GaCounts Help Pages",
			"dropbox":                "GaCounts Dropbox Documents",
			"teamdynamix":            "TeamDynamix Knowledge Base",
			"teamdynamix/benefits":   "Benefits",
			"dropbox/intranet-files": "Intranet Files (Dropbox)",
		},
		Groups:           []Group{{Name: "gacounts", Children: []string{"gacounts-site", "dropbox"}}},
		CategoriesParent: "teamdynamix",
	}
}

func testSites() map[string]*content.Site {
	return map[string]*content.Site{
		"extension-site": {
			Name: "extension-site",
			Pages: []content.Page{
				{URL: "https://extension.uga.edu/topics/weather.html", Title: "Weather", LocalFile: "extension-site/weather.md", Source: content.SourceCSV, Depth: "1"},
				{URL: "https://extension.uga.edu/publications/detail.html", Title: "Publication Detail", LocalFile: "extension-site/detail.md", Source: content.SourceCSV, Depth: "2"},
				{URL: "https://extension.uga.edu/index.html", Title: "Home", LocalFile: "extension-site/index.md", Source: content.SourceCSV, Depth: "0"},
			},
			Summary:   map[string]any{"base_url": "https://extension.uga.edu"},
			CrawlDate: "2025-06-01T08:30:00Z",
		},
		"gacounts-site": {
			Name: "gacounts-site",
			Pages: []content.Page{
				{URL: "https://gacounts.caes.uga.edu/help/reporting", Title: "Reporting Basics", LocalFile: "gacounts-site/reporting.md", Source: content.SourceSummaryFile, Depth: "0"},
				{URL: "https://gacounts.caes.uga.edu/help/accounts", Title: "Account Setup", LocalFile: "gacounts-site/accounts.md", Source: content.SourceSummaryFile, Depth: "0"},
			},
			Summary:   map[string]any{"base_url": "https://gacounts.caes.uga.edu"},
			CrawlDate: "2025-05-20T00:00:00Z",
		},
		"dropbox": {
			Name: "dropbox",
			Pages: []content.Page{
				{URL: "https://www.dropbox.com/s/xyz", Title: "Usage Guide", LocalFile: "dropbox/usage.md", Source: content.SourceMetadata, Depth: "0"},
			},
			Summary:   map[string]any{"base_url": "https://www.dropbox.com"},
			CrawlDate: "2025-05-21T00:00:00Z",
		},
		"teamdynamix": {
			Name: "teamdynamix",
			Summary: map[string]any{
				"categories": map[string]any{
					"benefits": map[string]any{
						"articles": []any{
							map[string]any{"url": "https://uga.teamdynamix.com/TDClient/2060/Portal/KB/ArticleDet?ID=101"},
						},
					},
				},
			},
			CrawlDate: "2025-04-15T12:00:00Z",
		},
		"teamdynamix/benefits": {
			Name: "teamdynamix/benefits",
			Pages: []content.Page{
				{URL: "https://uga.teamdynamix.com/TDClient/2060/Portal/KB/ArticleDet?ID=101", Title: "Open Enrollment", LocalFile: "teamdynamix/benefits", Source: content.SourceTeamDynamix, Depth: "0"},
				{URL: "https://uga.teamdynamix.com/TDClient/2060/Portal/KB/ArticleDet?ID=102", Title: "Dental Coverage", LocalFile: "teamdynamix/benefits", Source: content.SourceTeamDynamix, Depth: "0"},
			},
			CrawlDate: "2025-04-15T12:00:00Z",
			Nested:    true,
		},
		"dropbox/intranet-files": {
			Name: "dropbox/intranet-files",
			Pages: []content.Page{
				{URL: "https://www.dropbox.com/s/abc", Title: "Travel Handbook", LocalFile: "output/travel.md", Source: content.SourceAPI, Folder: "hr_policies", Depth: "0"},
				{URL: "https://www.dropbox.com/s/def", Title: "Holiday Calendar", LocalFile: "output/holiday.md", Source: content.SourceAPI, Folder: "hr_policies", Depth: "0"},
				{URL: "https://www.dropbox.com/s/ghi", Title: "Budget Template", LocalFile: "output/budget.md", Source: content.SourceAPI, Depth: "0"},
			},
			CrawlDate: "2025-03-01 09:00:00",
		},
	}
}

func TestRender_FullMapping_CountsAndStructure(t *testing.T) {
	r := NewRenderer(testOptions())

	res, err := r.Render(testSites())
	require.NoError(t, err)

	require.Equal(t, 6, res.Sites)
	require.Equal(t, 11, res.Pages)
	// gacounts group, teamdynamix parent, dropbox/intranet-files, extension-site
	require.Equal(t, 4, res.SiteSections)
	require.Equal(t, 11, res.PageItems)

	stats, err := Verify(bytes.NewReader(res.HTML))
	require.NoError(t, err)
	require.Equal(t, res.SiteSections, stats.SiteSections)
	require.Equal(t, res.PageItems, stats.PageItems)
	// group 2 + knowledge base 1 + folders 2 + url hierarchy 2
	require.Equal(t, 7, stats.Subsections)
	require.Equal(t, 11, stats.Links)
}

func TestRender_FullMapping_DocumentContent(t *testing.T) {
	r := NewRenderer(testOptions())

	res, err := r.Render(testSites())
	require.NoError(t, err)
	html := string(res.HTML)

	require.Contains(t, html, "<title>Crawled Content Documentation</title>")
	require.Contains(t, html, "CAES Chatbot Documentation")
	require.Contains(t, html, "Comprehensive index of all crawled content sources")
	require.Contains(t, html, "Total Sites Crawled")
	require.Contains(t, html, "Total Pages Indexed")
	require.Contains(t, html, `placeholder="Search pages by title or URL..."`)
	require.Contains(t, html, "Expand All Sites")
	require.Contains(t, html, "Generated by docsite")

	// Group header borrows metadata from the first configured child.
	require.Contains(t, html, "GaCounts Help Content")
	require.Contains(t, html, "Base URL: https://gacounts.caes.uga.edu | Crawled: 2025-05-20")

	// Knowledge-base parent derives its base URL from the first category article.
	require.Contains(t, html, "TeamDynamix Knowledge Base")
	require.Contains(t, html, "Base URL: https://uga.teamdynamix.com | Crawled: 2025-04-15")
	require.Contains(t, html, "Source: TeamDynamix KB")

	// Folder site renders one subsection per folder with file badges.
	require.Contains(t, html, `id="content-dropbox-hr_policies"`)
	require.Contains(t, html, `id="content-dropbox-uncategorized"`)
	require.Contains(t, html, "Hr Policies")
	require.Contains(t, html, "2 files")
	require.Contains(t, html, "Source: Dropbox Intranet Files")

	// Hierarchy site nests subsections along URL paths.
	require.Contains(t, html, `id="subsection-extension-site-topics"`)
	require.Contains(t, html, `id="subsection-extension-site-publications"`)
	require.Contains(t, html, "Depth: 1 | Local: weather.md")

	// Group children carry local file meta lines.
	require.Contains(t, html, "Local: reporting.md")
}

func TestRender_PagesSortedByTitleWithinLists(t *testing.T) {
	r := NewRenderer(testOptions())

	res, err := r.Render(testSites())
	require.NoError(t, err)
	html := string(res.HTML)

	dental := strings.Index(html, "Dental Coverage")
	enrollment := strings.Index(html, "Open Enrollment")
	require.NotEqual(t, -1, dental)
	require.NotEqual(t, -1, enrollment)
	require.Less(t, dental, enrollment)

	holiday := strings.Index(html, "Holiday Calendar")
	travel := strings.Index(html, "Travel Handbook")
	require.Less(t, holiday, travel)
}

func TestRender_OrphanNestedChildrenCountButDoNotRender(t *testing.T) {
	r := NewRenderer(testOptions())
	sites := map[string]*content.Site{
		"teamdynamix/orphan": {
			Name: "teamdynamix/orphan",
			Pages: []content.Page{
				{URL: "https://uga.teamdynamix.com/TDClient/2060/Portal/KB/ArticleDet?ID=900", Title: "Orphan Article", Source: content.SourceTeamDynamix, Depth: "0"},
			},
			Nested: true,
		},
	}

	res, err := r.Render(sites)
	require.NoError(t, err)

	require.Equal(t, 1, res.Sites)
	require.Equal(t, 1, res.Pages)
	require.Equal(t, 0, res.SiteSections)
	require.Equal(t, 0, res.PageItems)
	require.NotContains(t, string(res.HTML), "Orphan Article")
}

func TestRender_GroupSkippedWhenNoChildrenPresent(t *testing.T) {
	r := NewRenderer(testOptions())
	sites := map[string]*content.Site{
		"extension-site": {
			Name: "extension-site",
			Pages: []content.Page{
				{URL: "https://extension.uga.edu/index.html", Title: "Home", Depth: "0"},
			},
		},
	}

	res, err := r.Render(sites)
	require.NoError(t, err)

	require.Equal(t, 1, res.SiteSections)
	require.NotContains(t, string(res.HTML), "GaCounts Help Content")
}

func TestRender_GroupBorrowsFromFirstPresentConfiguredChild(t *testing.T) {
	r := NewRenderer(testOptions())
	sites := map[string]*content.Site{
		"dropbox": {
			Name: "dropbox",
			Pages: []content.Page{
				{URL: "https://www.dropbox.com/s/xyz", Title: "Usage Guide", Depth: "0"},
			},
			Summary:   map[string]any{"base_url": "https://www.dropbox.com"},
			CrawlDate: "2025-05-21T00:00:00Z",
		},
	}

	res, err := r.Render(sites)
	require.NoError(t, err)
	require.Contains(t, string(res.HTML), "Base URL: https://www.dropbox.com | Crawled: 2025-05-21")
}

func TestRender_MissingMetadataPlaceholders(t *testing.T) {
	r := NewRenderer(testOptions())
	sites := map[string]*content.Site{
		"plain-site": {
			Name: "plain-site",
			Pages: []content.Page{
				{URL: "https://plain.example.org/doc.html", Title: "Doc", Depth: "0"},
			},
		},
	}

	res, err := r.Render(sites)
	require.NoError(t, err)
	require.Contains(t, string(res.HTML), "Base URL: N/A | Crawled: Unknown")
	require.Contains(t, string(res.HTML), "Depth: 0 | Local: N/A")
}

func TestRender_UnparseableCrawlDatePassesThrough(t *testing.T) {
	r := NewRenderer(testOptions())
	sites := map[string]*content.Site{
		"plain-site": {
			Name:      "plain-site",
			Pages:     []content.Page{{URL: "https://plain.example.org/doc.html", Title: "Doc", Depth: "0"}},
			CrawlDate: "last week",
		},
	}

	res, err := r.Render(sites)
	require.NoError(t, err)
	require.Contains(t, string(res.HTML), "Crawled: last week")
}

func TestRender_StatsCommaFormattedBadgesPlain(t *testing.T) {
	pages := make([]content.Page, 0, 1500)
	for i := 0; i < 1500; i++ {
		pages = append(pages, content.Page{Title: fmt.Sprintf("Page %04d", i), Depth: "0"})
	}
	sites := map[string]*content.Site{
		"big-site": {Name: "big-site", Pages: pages},
	}

	r := NewRenderer(testOptions())
	res, err := r.Render(sites)
	require.NoError(t, err)

	require.Equal(t, 1500, res.Pages)
	// Pages without URLs count toward totals but never render as items.
	require.Equal(t, 0, res.PageItems)

	html := string(res.HTML)
	require.Contains(t, html, ">1,500<")
	require.Contains(t, html, `<span class="badge">1500 pages</span>`)
}

func TestRender_EmptyMappingStillRendersShell(t *testing.T) {
	r := NewRenderer(testOptions())

	res, err := r.Render(map[string]*content.Site{})
	require.NoError(t, err)

	require.Equal(t, 0, res.Sites)
	require.Equal(t, 0, res.Pages)
	require.Equal(t, 0, res.SiteSections)

	stats, err := Verify(bytes.NewReader(res.HTML))
	require.NoError(t, err)
	require.Equal(t, 0, stats.SiteSections)
	require.Equal(t, 0, stats.PageItems)
	require.Contains(t, string(res.HTML), "Total Sites Crawled")
}
