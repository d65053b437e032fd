package config

import (
	"github.com/uga-caes/docsite/internal/content"
)

// Default values applied to every loaded configuration.
const (
	DefaultContentDir     = "docs"
	DefaultOutputPath     = "index.html"
	DefaultPageTitle      = "CAES Chatbot - Crawled Content Documentation"
	DefaultHeaderTitle    = "CAES Chatbot Documentation"
	DefaultSubtitle       = "Comprehensive index of all crawled content sources"
	DefaultServeAddr      = ":8080"
	DefaultServeDebounce  = "300ms"
	DefaultNotifySubject  = "docsite.builds"
	DefaultPublishMessage = "Update documentation index"
	DefaultPublishAuthor  = "docsite"
	DefaultPublishEmail   = "docsite@localhost"
)

func defaultFooterLines() []string {
	return []string{
		"Generated by CAES Chatbot Documentation Generator",
		"University of Georgia - College of Agricultural & Environmental Sciences",
	}
}

// defaultDisplayNames maps directory names to human-readable headings.
// Names absent here fall back to separator-to-space title casing.
func defaultDisplayNames() map[string]string {
	return map[string]string{
		"abo-site":                              "Administrative Business Office (ABO)",
		"intranet":                              "CAES Intranet",
		"caes-main-site":                        "CAES Main Website",
		"extension-site":                        "UGA Extension",
		"oit-site":                              "Office of Information Technology (OIT)",
		"olod-site":                             "Office of Learning & Organizational Development (OLOD)",
		"omc-site":                              "Office of Marketing & Communications (OMC)",
		"brand-site":                            "CAES Brand Guidelines",
		"teamdynamix":                           "TeamDynamix Knowledge Base",
		"teamdynamix/absences_timecards":        "TeamDynamix - Absences & Timecards",
		"teamdynamix/benefits":                  "TeamDynamix - Benefits",
		"teamdynamix/payroll_compensation":      "TeamDynamix - Payroll & Compensation",
		"teamdynamix/travel_reimbursements":     "TeamDynamix - Travel & Reimbursements",
		"gacounts":                              "Georgia Counts",
		"gacounts-site":                         "Help System & Application Pages",
		"dropbox":                               "Training Documents & Resources",
		"dropbox/intranet-files":                "Dropbox - Intranet Files",
		"web":                                   "Web Resources",
		"ets":                                   "ETS Resources",
		"wordpress-uploads-processed":           "WordPress Uploads",
		"wordpress-uploads-processed/downloads": "WordPress - Downloads",
	}
}

func defaultGroups() []SiteGroup {
	return []SiteGroup{
		{Name: "gacounts", Children: []string{"gacounts-site", "dropbox"}},
	}
}

func applyDefaults(config *Config) {
	if config.ContentDir == "" {
		config.ContentDir = DefaultContentDir
	}
	if config.Output.Path == "" {
		config.Output.Path = DefaultOutputPath
	}

	if config.Site.PageTitle == "" {
		config.Site.PageTitle = DefaultPageTitle
	}
	if config.Site.HeaderTitle == "" {
		config.Site.HeaderTitle = DefaultHeaderTitle
	}
	if config.Site.Subtitle == "" {
		config.Site.Subtitle = DefaultSubtitle
	}
	if config.Site.FooterLines == nil {
		config.Site.FooterLines = defaultFooterLines()
	}
	if config.Site.DisplayNames == nil {
		config.Site.DisplayNames = defaultDisplayNames()
	}
	if config.Site.Groups == nil {
		config.Site.Groups = defaultGroups()
	}

	scanDefaults := content.DefaultOptions()
	if config.Scan.NestedDirs == nil {
		config.Scan.NestedDirs = scanDefaults.NestedDirs
	}
	if config.Scan.APISummaryParent == "" {
		config.Scan.APISummaryParent = scanDefaults.APISummaryParent
	}
	if config.Scan.APISummaryDir == "" {
		config.Scan.APISummaryDir = scanDefaults.APISummaryDir
	}
	if config.Scan.CategoriesParent == "" {
		config.Scan.CategoriesParent = scanDefaults.CategoriesParent
	}
	if config.Scan.ExcludedTitleMarker == "" {
		config.Scan.ExcludedTitleMarker = scanDefaults.ExcludedTitleMarker
	}

	if config.Serve.Addr == "" {
		config.Serve.Addr = DefaultServeAddr
	}
	if config.Serve.Debounce == "" {
		config.Serve.Debounce = DefaultServeDebounce
	}

	if config.Notifications.Subject == "" {
		config.Notifications.Subject = DefaultNotifySubject
	}

	if config.Publish.Message == "" {
		config.Publish.Message = DefaultPublishMessage
	}
	if config.Publish.AuthorName == "" {
		config.Publish.AuthorName = DefaultPublishAuthor
	}
	if config.Publish.AuthorEmail == "" {
		config.Publish.AuthorEmail = DefaultPublishEmail
	}

	if config.Logging.Level == "" {
		config.Logging.Level = string(LogLevelInfo)
	}
	if config.Logging.Format == "" {
		config.Logging.Format = string(LogFormatText)
	}
}
