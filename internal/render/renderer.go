package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/uga-caes/docsite/internal/content"
)

// Options carries the presentation configuration for the index document.
type Options struct {
	PageTitle   string
	HeaderTitle string
	Subtitle    string
	FooterLines []string
	// DisplayNames maps site keys to headings; unmapped keys fall back to
	// title-cased directory names.
	DisplayNames map[string]string
	// Groups declares synthetic parent sections over existing sites.
	Groups []Group
	// CategoriesParent names the site whose "/"-prefixed children render as
	// nested knowledge-base subsections.
	CategoriesParent string
}

// Group is a synthetic parent section; children are site keys.
type Group struct {
	Name     string
	Children []string
}

// Result carries the rendered document plus the counts the verification
// stage checks against the markup.
type Result struct {
	HTML         []byte
	Sites        int // sites in the input mapping
	Pages        int // pages in the input mapping
	SiteSections int // top-level sections rendered (groups fold children)
	PageItems    int // page list items rendered
}

// Renderer produces the self-contained HTML index document.
type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render builds the index document for the given site mapping.
func (r *Renderer) Render(sites map[string]*content.Site) (*Result, error) {
	views := r.buildSiteViews(sites)

	totalPages := 0
	for _, site := range sites {
		totalPages += len(site.Pages)
	}

	data := indexView{
		PageTitle:   r.opts.PageTitle,
		HeaderTitle: r.opts.HeaderTitle,
		Subtitle:    r.opts.Subtitle,
		TotalSites:  len(sites),
		TotalPages:  formatCount(totalPages),
		Generated:   time.Now().Format("2006-01-02"),
		Sites:       views,
		FooterLines: r.opts.FooterLines,
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render index template: %w", err)
	}

	return &Result{
		HTML:         buf.Bytes(),
		Sites:        len(sites),
		Pages:        totalPages,
		SiteSections: len(views),
		PageItems:    countPageViews(views),
	}, nil
}

func countPageViews(sites []siteView) int {
	total := 0
	for _, site := range sites {
		for _, block := range site.Blocks {
			total += len(block.Pages)
			for _, section := range block.Sections {
				total += countSectionPages(section)
			}
		}
	}
	return total
}

func countSectionPages(section sectionView) int {
	total := len(section.Pages)
	for _, child := range section.Children {
		total += countSectionPages(child)
	}
	return total
}
