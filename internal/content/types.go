package content

// Source identifies which extraction heuristic produced a Page.
// Retained for display only.
type Source string

// Canonical provenance tags.
const (
	SourceCSV         Source = "csv"
	SourceMetadata    Source = "metadata"
	SourceSummaryFile Source = "summary-file"
	SourceAPI         Source = "api"
	SourceTeamDynamix Source = "teamdynamix"
	SourceDirect      Source = "direct"
)

// DefaultTitle is used when a source provides no title for a page.
const DefaultTitle = "Untitled"

// Page is one indexed document recovered from a content directory.
type Page struct {
	URL       string // source URL; may be empty
	Title     string
	LocalFile string // path to the local copy as recorded by the source
	Source    Source
	Folder    string // optional grouping label (api source only)
	Depth     string // crawl depth as recorded; "0" when unknown
}

// Site is one logical content source contributing zero or more pages.
type Site struct {
	Name      string         // hierarchical, '/'-joined (e.g. "teamdynamix/benefits")
	Pages     []Page         // ordered as produced by the winning source
	Summary   map[string]any // summary metadata, typically carrying "base_url"
	CrawlDate string         // crawl timestamp verbatim from the source; empty when unknown
	Nested    bool           // true when the site lives one level below the root
}

// retained reports whether the site carries enough data to appear in the result.
// Empty directories are dropped silently.
func (s *Site) retained() bool {
	return len(s.Pages) > 0 || len(s.Summary) > 0
}

// titleOrDefault substitutes DefaultTitle for empty titles.
func titleOrDefault(title string) string {
	if title == "" {
		return DefaultTitle
	}
	return title
}
