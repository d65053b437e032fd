package render

import (
	"sort"
	"strconv"
	"strings"

	"github.com/uga-caes/docsite/internal/content"
)

// Literal meta lines for the two special-cased collections.
const (
	metaTeamDynamix  = "Source: TeamDynamix KB"
	metaDropboxFiles = "Source: Dropbox Intranet Files"
)

// indexView is the root template payload.
type indexView struct {
	PageTitle   string
	HeaderTitle string
	Subtitle    string
	TotalSites  int
	TotalPages  string
	Generated   string
	Sites       []siteView
	FooterLines []string
}

// siteView is one collapsible top-level section.
type siteView struct {
	Key         string
	DisplayName string
	PageCount   int
	BaseURL     string
	CrawlDate   string
	Blocks      []blockView
}

// blockView is one page list followed by its subsections. Hierarchy sites
// emit one block per URL host; flat sites emit a single block.
type blockView struct {
	Pages    []pageView
	Sections []sectionView
}

// sectionView is a collapsible subsection; hierarchy subsections nest.
type sectionView struct {
	ID       string
	Label    string
	Badge    string
	Pages    []pageView
	Children []sectionView
}

type pageView struct {
	Title string
	URL   string
	Meta  string
}

// buildSiteViews partitions the site mapping into render order: synthetic
// group parents first, then the nested-collection parent, then the
// remaining sites sorted by key.
func (r *Renderer) buildSiteViews(sites map[string]*content.Site) []siteView {
	keys := make([]string, 0, len(sites))
	for key := range sites {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	grouped := make(map[string]string) // site key -> group name
	for _, g := range r.opts.Groups {
		for _, child := range g.Children {
			grouped[child] = g.Name
		}
	}

	var (
		parentSite   *content.Site
		parentKids   []string
		groupKids    = make(map[string][]string)
		otherKeys    []string
		nestedParent = r.opts.CategoriesParent
		nestedPrefix = nestedParent + "/"
	)
	for _, key := range keys {
		switch {
		case nestedParent != "" && key == nestedParent:
			parentSite = sites[key]
		case nestedParent != "" && strings.HasPrefix(key, nestedPrefix):
			parentKids = append(parentKids, key)
		default:
			if group, ok := grouped[key]; ok {
				groupKids[group] = append(groupKids[group], key)
			} else {
				otherKeys = append(otherKeys, key)
			}
		}
	}

	var views []siteView
	for _, g := range r.opts.Groups {
		kids := groupKids[g.Name]
		if len(kids) == 0 {
			continue
		}
		views = append(views, r.groupView(g, kids, sites))
	}
	if parentSite != nil {
		views = append(views, r.nestedParentView(nestedParent, parentSite, parentKids, sites))
	}
	for _, key := range otherKeys {
		views = append(views, r.plainSiteView(key, sites[key]))
	}
	return views
}

// groupView renders a synthetic parent section for configured group
// children. Header metadata is borrowed from the first configured child
// present in the mapping.
func (r *Renderer) groupView(g Group, kids []string, sites map[string]*content.Site) siteView {
	total := 0
	for _, key := range kids {
		total += len(sites[key].Pages)
	}

	baseURL, crawlDate := "", ""
	for _, child := range g.Children {
		site, ok := sites[child]
		if !ok {
			continue
		}
		baseURL = summaryBaseURL(site)
		crawlDate = site.CrawlDate
		break
	}

	view := siteView{
		Key:         g.Name,
		DisplayName: displayName(r.opts.DisplayNames, g.Name),
		PageCount:   total,
		BaseURL:     formatBaseURL(baseURL),
		CrawlDate:   formatCrawlDate(crawlDate),
	}
	block := blockView{}
	for _, key := range kids {
		site := sites[key]
		block.Sections = append(block.Sections, sectionView{
			ID:    "content-" + key,
			Label: displayName(r.opts.DisplayNames, key),
			Badge: strconv.Itoa(len(site.Pages)) + " pages",
			Pages: flatPages(site.Pages, func(p content.Page) string {
				return "Local: " + localFileName(p.LocalFile)
			}),
		})
	}
	view.Blocks = []blockView{block}
	return view
}

// nestedParentView renders the knowledge-base parent with one subsection
// per nested child site.
func (r *Renderer) nestedParentView(key string, parent *content.Site, kids []string, sites map[string]*content.Site) siteView {
	total := 0
	for _, kid := range kids {
		total += len(sites[kid].Pages)
	}

	view := siteView{
		Key:         key,
		DisplayName: displayName(r.opts.DisplayNames, key),
		PageCount:   total,
		BaseURL:     formatBaseURL(categoriesBaseURL(parent)),
		CrawlDate:   formatCrawlDate(parent.CrawlDate),
	}
	block := blockView{}
	for _, kid := range kids {
		site := sites[kid]
		block.Sections = append(block.Sections, sectionView{
			ID:    "content-" + kid,
			Label: displayName(r.opts.DisplayNames, kid),
			Badge: strconv.Itoa(len(site.Pages)) + " pages",
			Pages: flatPages(site.Pages, func(content.Page) string {
				return metaTeamDynamix
			}),
		})
	}
	view.Blocks = []blockView{block}
	return view
}

// plainSiteView renders a regular site: folder grouping when its pages
// carry folder labels, URL hierarchy otherwise.
func (r *Renderer) plainSiteView(key string, site *content.Site) siteView {
	view := siteView{
		Key:         key,
		DisplayName: displayName(r.opts.DisplayNames, key),
		PageCount:   len(site.Pages),
		BaseURL:     formatBaseURL(summaryBaseURL(site)),
		CrawlDate:   formatCrawlDate(site.CrawlDate),
	}
	if hasFolders(site.Pages) {
		view.Blocks = []blockView{{Sections: r.folderSections(key, site.Pages)}}
		return view
	}
	view.Blocks = r.hierarchyBlocks(key, site.Pages)
	return view
}

// folderSections groups pages by folder label, one subsection per folder in
// sorted order.
func (r *Renderer) folderSections(siteKey string, pages []content.Page) []sectionView {
	folders := make(map[string][]content.Page)
	var names []string
	for _, page := range pages {
		folder := page.Folder
		if folder == "" {
			folder = "uncategorized"
		}
		if _, ok := folders[folder]; !ok {
			names = append(names, folder)
		}
		folders[folder] = append(folders[folder], page)
	}
	sort.Strings(names)

	prefix, _, _ := strings.Cut(siteKey, "/")
	sections := make([]sectionView, 0, len(names))
	for _, folder := range names {
		files := folders[folder]
		sections = append(sections, sectionView{
			ID:    "content-" + prefix + "-" + folder,
			Label: folderLabel(folder),
			Badge: strconv.Itoa(len(files)) + " files",
			Pages: flatPages(files, func(content.Page) string {
				return metaDropboxFiles
			}),
		})
	}
	return sections
}

// hierarchyBlocks renders a site's pages nested along their URL paths, one
// block per host in first-appearance order.
func (r *Renderer) hierarchyBlocks(siteKey string, pages []content.Page) []blockView {
	hosts, nodes := buildHierarchy(pages)
	blocks := make([]blockView, 0, len(hosts))
	for _, host := range hosts {
		node := nodes[host]
		blocks = append(blocks, blockView{
			Pages:    hierarchyPages(node.pages),
			Sections: r.hierarchySections(siteKey, nil, node),
		})
	}
	return blocks
}

func (r *Renderer) hierarchySections(siteKey string, path []string, node *hierNode) []sectionView {
	if len(node.children) == 0 {
		return nil
	}
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	sort.Strings(names)

	sections := make([]sectionView, 0, len(names))
	for _, name := range names {
		child := node.children[name]
		childPath := append(append([]string{}, path...), name)
		sections = append(sections, sectionView{
			ID:       "subsection-" + siteKey + "-" + strings.Join(childPath, "-"),
			Label:    segmentLabel(name),
			Pages:    hierarchyPages(child.pages),
			Children: r.hierarchySections(siteKey, childPath, child),
		})
	}
	return sections
}

// flatPages converts pages to views sorted by title, with a per-page meta
// line.
func flatPages(pages []content.Page, meta func(content.Page) string) []pageView {
	ordered := make([]content.Page, len(pages))
	copy(ordered, pages)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Title < ordered[j].Title })

	views := make([]pageView, 0, len(ordered))
	for _, page := range ordered {
		views = append(views, pageView{Title: page.Title, URL: page.URL, Meta: meta(page)})
	}
	return views
}

func hierarchyPages(pages []content.Page) []pageView {
	return flatPages(pages, func(p content.Page) string {
		return "Depth: " + p.Depth + " | Local: " + localFileName(p.LocalFile)
	})
}

func summaryBaseURL(site *content.Site) string {
	s, _ := site.Summary["base_url"].(string)
	return s
}

// categoriesBaseURL derives the knowledge-base parent's base URL from the
// first article of its first category, scanning categories in sorted order.
func categoriesBaseURL(site *content.Site) string {
	raw, ok := site.Summary["categories"].(map[string]any)
	if !ok {
		return ""
	}
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		category, ok := raw[name].(map[string]any)
		if !ok {
			continue
		}
		articles, ok := category["articles"].([]any)
		if !ok || len(articles) == 0 {
			continue
		}
		article, ok := articles[0].(map[string]any)
		if !ok {
			continue
		}
		articleURL, _ := article["url"].(string)
		if base := content.SchemeHost(articleURL); base != "" {
			return base
		}
	}
	return ""
}

func hasFolders(pages []content.Page) bool {
	for _, page := range pages {
		if page.Folder != "" {
			return true
		}
	}
	return false
}
