package render

import (
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/uga-caes/docsite/internal/content"
)

// Placeholder strings for missing site metadata.
const (
	unknownDate = "Unknown"
	noBaseURL   = "N/A"
)

var crawlDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// formatCrawlDate reduces a source timestamp to YYYY-MM-DD. Unparseable
// values pass through verbatim; empty becomes "Unknown".
func formatCrawlDate(raw string) string {
	if raw == "" {
		return unknownDate
	}
	for _, layout := range crawlDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return raw
}

func formatBaseURL(raw string) string {
	if raw == "" {
		return noBaseURL
	}
	return raw
}

// displayName resolves a site key through the display-name table, falling
// back to separator-to-space title casing.
func displayName(names map[string]string, key string) string {
	if name, ok := names[key]; ok {
		return name
	}
	replaced := strings.NewReplacer("-", " ", "_", " ").Replace(key)
	return content.TitleWords(replaced)
}

// segmentLabel renders one URL path segment as a subsection heading.
// Only hyphens become spaces; underscores in URL segments stay.
func segmentLabel(part string) string {
	return content.TitleWords(strings.ReplaceAll(part, "-", " "))
}

// folderLabel renders a folder grouping label. Only underscores become
// spaces; folder names never carry hyphens as separators.
func folderLabel(folder string) string {
	return content.TitleWords(strings.ReplaceAll(folder, "_", " "))
}

// localFileName reduces a local path to its file name for page meta lines.
func localFileName(localFile string) string {
	if localFile == "" {
		return noBaseURL
	}
	return filepath.Base(localFile)
}

var countPrinter = message.NewPrinter(language.English)

// formatCount renders n with thousands separators for the stats cards.
func formatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}
