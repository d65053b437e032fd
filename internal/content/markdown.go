package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	cerrors "github.com/uga-caes/docsite/internal/content/errors"
	"github.com/uga-caes/docsite/internal/logfields"
)

// Ordered override patterns for loose markdown files. The first matching URL
// pattern wins; the title pattern applies only alongside the first two.
var (
	frontMatterURLPattern   = regexp.MustCompile(`(?m)^url:\s+(https?://\S+)`)
	frontMatterTitlePattern = regexp.MustCompile(`(?m)^title:\s+(.+)$`)
	dropboxURLPattern       = regexp.MustCompile(`(?m)^dropbox_url:\s+(https?://\S+)`)
	inlineSourcePattern     = regexp.MustCompile(`\*\*Source:\*\*\s+(https?://\S+)`)
)

var separatorReplacer = strings.NewReplacer("-", " ", "_", " ")

// applyMarkdown is the fallback source: every markdown file directly in the
// directory becomes one Page with filename-derived defaults, overridden by
// embedded patterns where present. Unreadable files keep their defaults.
func (s *Scanner) applyMarkdown(dc *dirContext, site *Site) error {
	if len(site.Pages) > 0 {
		return nil
	}
	entries, err := os.ReadDir(dc.dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", cerrors.ErrDirListFailed, dc.dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		full := filepath.Join(dc.dir, entry.Name())
		stem := strings.TrimSuffix(entry.Name(), ".md")
		title := TitleWords(separatorReplacer.Replace(stem))
		pageURL := "file:///" + full

		if data, err := os.ReadFile(full); err == nil {
			pageURL, title = extractEmbedded(data, pageURL, title)
		} else {
			slog.Debug("Markdown read failed; keeping filename defaults",
				logfields.File(full), logfields.Error(err))
		}

		site.Pages = append(site.Pages, Page{
			URL:       pageURL,
			Title:     titleOrDefault(title),
			LocalFile: full,
			Source:    SourceDirect,
			Depth:     "0",
		})
	}
	return nil
}

// extractEmbedded applies the ordered URL/title overrides to markdown
// content, returning the (possibly unchanged) URL and title.
func extractEmbedded(data []byte, pageURL, title string) (string, string) {
	if m := frontMatterURLPattern.FindSubmatch(data); m != nil {
		pageURL = string(m[1])
		if t := frontMatterTitlePattern.FindSubmatch(data); t != nil {
			title = strings.TrimSpace(string(t[1]))
		}
		return pageURL, title
	}
	if m := dropboxURLPattern.FindSubmatch(data); m != nil {
		pageURL = string(m[1])
		if t := frontMatterTitlePattern.FindSubmatch(data); t != nil {
			title = strings.TrimSpace(string(t[1]))
		}
		return pageURL, title
	}
	if m := inlineSourcePattern.FindSubmatch(data); m != nil {
		pageURL = string(m[1])
	}
	return pageURL, title
}
