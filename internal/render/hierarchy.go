package render

import (
	"net/url"
	"strings"

	"github.com/uga-caes/docsite/internal/content"
)

// hierNode is one level of the URL-path tree built for a site's pages.
type hierNode struct {
	pages    []content.Page
	children map[string]*hierNode
}

func newHierNode() *hierNode {
	return &hierNode{children: make(map[string]*hierNode)}
}

func (n *hierNode) child(name string) *hierNode {
	c, ok := n.children[name]
	if !ok {
		c = newHierNode()
		n.children[name] = c
	}
	return c
}

// buildHierarchy groups pages by URL host, then nests them along the URL
// path (the final segment is the page itself). Hosts keep first-appearance
// order; pages without a URL are omitted. Hostless URLs such as file:///
// share the "" bucket and nest along their path like any other.
func buildHierarchy(pages []content.Page) (hosts []string, nodes map[string]*hierNode) {
	nodes = make(map[string]*hierNode)
	for _, page := range pages {
		if page.URL == "" {
			continue
		}
		host := ""
		var parts []string
		if u, err := url.Parse(page.URL); err == nil {
			host = u.Host
			parts = splitPath(u.Path)
		}
		node, ok := nodes[host]
		if !ok {
			node = newHierNode()
			nodes[host] = node
			hosts = append(hosts, host)
		}
		if len(parts) > 1 {
			for _, part := range parts[:len(parts)-1] {
				node = node.child(part)
			}
		}
		node.pages = append(node.pages, page)
	}
	return hosts, nodes
}

func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
