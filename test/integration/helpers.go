// Package integration exercises the build pipeline end to end: a content
// tree goes in, a finished document comes out, and the assertions read that
// document the way a browser would.
package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/uga-caes/docsite/internal/config"
)

// writeFile creates path (and parent directories) with content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// seedContentTree lays out one site per production source shape: CSV
// inventory, knowledge-base categories, API processing summary, crawler
// metadata, and plain markdown fallback.
func seedContentTree(t *testing.T, root string) {
	t.Helper()

	writeFile(t, filepath.Join(root, "extension-site", "crawl_inventory.csv"),
		"URL,Title,Local File,Depth,Crawl Date\n"+
			"https://extension.uga.edu/,Home,extension-site/home.md,0,2025-05-20T14:27:02\n"+
			"https://extension.uga.edu/about,About,extension-site/about.md,1,2025-05-20T14:27:02\n")

	writeFile(t, filepath.Join(root, "teamdynamix", "crawl_summary.json"),
		`{"crawl_date": "2025-05-21", "base_url": "https://uga.teamdynamix.com",`+
			` "categories": {"benefits": {"articles": [`+
			`{"url": "https://uga.teamdynamix.com/kb/140", "title": "Enrolling in Benefits"},`+
			`{"url": "https://uga.teamdynamix.com/kb/141", "title": "Changing Coverage"}]}}}`)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "teamdynamix", "benefits"), 0o755))

	writeFile(t, filepath.Join(root, "dropbox", "intranet-files", "api_processing_summary.json"),
		`{"processed_at": "2025-05-22", "processed_files": [`+
			`{"title": "Travel Handbook", "share_url": "https://dropbox.example.org/s/travel", "output_path": "dropbox/intranet-files/travel.md", "folder": "Policies"},`+
			`{"title": "Org Chart", "share_url": "https://dropbox.example.org/s/org", "output_path": "dropbox/intranet-files/org.md", "folder": "Reference"}]}`)

	writeFile(t, filepath.Join(root, "turfgrass", "_metadata.json"),
		`{"baseUrl": "https://turf.caes.uga.edu", "crawledAt": "2025-05-23", "files": [`+
			`{"filename": "lawn-care.md", "url": "https://turf.caes.uga.edu/lawn-care", "title": "Lawn Care Calendar"}]}`)

	writeFile(t, filepath.Join(root, "field-notes", "intro-guide.md"),
		"url: https://fieldnotes.example.org/intro\nIntroductory notes for new agents.\n")
}

// Page totals produced by seedContentTree.
const (
	seededSites = 6
	seededPages = 8
)

// loadConfig writes body as docsite.yaml inside dir and loads it back, so
// tests pass through the same configuration path the CLI uses.
func loadConfig(t *testing.T, dir, body string) *config.Config {
	t.Helper()
	cfgPath := filepath.Join(dir, "docsite.yaml")
	writeFile(t, cfgPath, body)
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	return cfg
}

// parseDocument parses the built index page.
func parseDocument(t *testing.T, path string) *html.Node {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() {
		_ = file.Close()
	}()
	doc, err := html.Parse(file)
	require.NoError(t, err)
	return doc
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" {
			for _, c := range strings.Fields(attr.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}

// countByClass counts elements with the given tag carrying class.
func countByClass(doc *html.Node, tag, class string) int {
	count := 0
	walk(doc, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag && hasClass(n, class) {
			count++
		}
	})
	return count
}

// collectText returns the concatenated text content below n.
func collectText(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}

// headings returns the text of every h2 in document order.
func headings(doc *html.Node) []string {
	var out []string
	walk(doc, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "h2" {
			out = append(out, collectText(n))
		}
	})
	return out
}

// elementText returns the text of the first element with the given tag.
func elementText(doc *html.Node, tag string) string {
	var out string
	walk(doc, func(n *html.Node) {
		if out == "" && n.Type == html.ElementNode && n.Data == tag {
			out = collectText(n)
		}
	})
	return out
}

// hasLink reports whether any anchor carries exactly href.
func hasLink(doc *html.Node, href string) bool {
	found := false
	walk(doc, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" && attr.Val == href {
					found = true
				}
			}
		}
	})
	return found
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// containing reports whether any entry contains the substring.
func containing(entries []string, substr string) bool {
	for _, e := range entries {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}
