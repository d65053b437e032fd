package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatCrawlDate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "Unknown"},
		{"rfc3339 utc", "2025-05-20T00:00:00Z", "2025-05-20"},
		{"rfc3339 offset", "2025-05-20T14:30:00+00:00", "2025-05-20"},
		{"fractional seconds", "2025-05-20T14:30:00.123456+00:00", "2025-05-20"},
		{"no zone", "2025-05-20T14:30:00", "2025-05-20"},
		{"space separated", "2025-05-20 14:30:00", "2025-05-20"},
		{"date only", "2025-05-20", "2025-05-20"},
		{"unparseable passes through", "last week", "last week"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, formatCrawlDate(tc.in))
		})
	}
}

func TestFormatBaseURL(t *testing.T) {
	require.Equal(t, "N/A", formatBaseURL(""))
	require.Equal(t, "https://extension.uga.edu", formatBaseURL("https://extension.uga.edu"))
}

func TestDisplayName_MappedKeyUsesTable(t *testing.T) {
	names := map[string]string{"extension-site": "UGA Extension"}
	require.Equal(t, "UGA Extension", displayName(names, "extension-site"))
}

func TestDisplayName_UnmappedKeyTitleCasesSeparators(t *testing.T) {
	require.Equal(t, "Wordpress Uploads Processed", displayName(nil, "wordpress-uploads_processed"))
	require.Equal(t, "Downloads", displayName(map[string]string{}, "downloads"))
}

func TestSegmentLabel_HyphensBecomeSpaces(t *testing.T) {
	require.Equal(t, "Extension Publications", segmentLabel("extension-publications"))
	require.Equal(t, "Topics", segmentLabel("topics"))
}

func TestFolderLabel_UnderscoresBecomeSpaces(t *testing.T) {
	require.Equal(t, "Hr Policies", folderLabel("hr_policies"))
	require.Equal(t, "Uncategorized", folderLabel("uncategorized"))
}

func TestLocalFileName(t *testing.T) {
	require.Equal(t, "N/A", localFileName(""))
	require.Equal(t, "weather.md", localFileName("extension-site/topics/weather.md"))
}

func TestFormatCount_ThousandsSeparators(t *testing.T) {
	require.Equal(t, "0", formatCount(0))
	require.Equal(t, "999", formatCount(999))
	require.Equal(t, "24,708", formatCount(24708))
	require.Equal(t, "1,234,567", formatCount(1234567))
}
