package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uga-caes/docsite/internal/content"
)

func TestBuildHierarchy_HostsKeepFirstAppearanceOrder(t *testing.T) {
	pages := []content.Page{
		{URL: "https://b.example.org/one", Title: "One"},
		{URL: "https://a.example.org/two", Title: "Two"},
		{URL: "https://b.example.org/three", Title: "Three"},
	}

	hosts, nodes := buildHierarchy(pages)

	require.Equal(t, []string{"b.example.org", "a.example.org"}, hosts)
	require.Len(t, nodes["b.example.org"].pages, 2)
	require.Len(t, nodes["a.example.org"].pages, 1)
}

func TestBuildHierarchy_NestsAlongURLPath(t *testing.T) {
	pages := []content.Page{
		{URL: "https://x.org/topics/weather/frost.html", Title: "Frost"},
		{URL: "https://x.org/topics/soil.html", Title: "Soil"},
		{URL: "https://x.org/index.html", Title: "Home"},
	}

	hosts, nodes := buildHierarchy(pages)
	require.Equal(t, []string{"x.org"}, hosts)

	root := nodes["x.org"]
	require.Len(t, root.pages, 1)
	require.Equal(t, "Home", root.pages[0].Title)

	topics := root.children["topics"]
	require.NotNil(t, topics)
	require.Len(t, topics.pages, 1)
	require.Equal(t, "Soil", topics.pages[0].Title)

	weather := topics.children["weather"]
	require.NotNil(t, weather)
	require.Len(t, weather.pages, 1)
	require.Equal(t, "Frost", weather.pages[0].Title)
}

func TestBuildHierarchy_SkipsPagesWithoutURL(t *testing.T) {
	pages := []content.Page{
		{URL: "", Title: "Hidden"},
		{URL: "https://x.org/kept.html", Title: "Kept"},
	}

	hosts, nodes := buildHierarchy(pages)

	require.Equal(t, []string{"x.org"}, hosts)
	require.Len(t, nodes["x.org"].pages, 1)
	require.Equal(t, "Kept", nodes["x.org"].pages[0].Title)
}

func TestBuildHierarchy_FileURLsShareHostlessBucket(t *testing.T) {
	pages := []content.Page{
		{URL: "file:///srv/docs/site/notes.md", Title: "Notes"},
		{URL: "file:///srv/docs/readme.md", Title: "Readme"},
	}

	hosts, nodes := buildHierarchy(pages)

	require.Equal(t, []string{""}, hosts)
	root := nodes[""]
	srv := root.children["srv"]
	require.NotNil(t, srv)
	docs := srv.children["docs"]
	require.NotNil(t, docs)
	require.Len(t, docs.pages, 1)
	require.Equal(t, "Readme", docs.pages[0].Title)
	require.Len(t, docs.children["site"].pages, 1)
}
