package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// DocumentStats tallies the structural elements of a rendered index page.
type DocumentStats struct {
	SiteSections int // collapsible top-level site sections
	Subsections  int // nested folder/category/path subsections
	PageItems    int // individual page entries
	Links        int // anchor tags carrying an href
}

// VerifyFile parses a written index page and returns its structural counts.
func VerifyFile(path string) (*DocumentStats, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open rendered output: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Verify(file)
}

// Verify parses rendered HTML and counts the elements the index page is
// assembled from. Callers compare the counts against the renderer's own
// Result to confirm the written document matches what was generated.
func Verify(r io.Reader) (*DocumentStats, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered HTML: %w", err)
	}

	stats := &DocumentStats{}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "div":
				if hasClass(n, "site-section") {
					stats.SiteSections++
				}
				if hasClass(n, "subsection") {
					stats.Subsections++
				}
			case "li":
				if hasClass(n, "page-item") {
					stats.PageItems++
				}
			case "a":
				if getAttr(n, "href") != "" {
					stats.Links++
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return stats, nil
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// hasClass reports whether a node's class attribute contains the given class.
func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
