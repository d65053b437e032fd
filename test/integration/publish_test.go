package integration

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"github.com/uga-caes/docsite/internal/build"
	"github.com/uga-caes/docsite/internal/publish"
)

// initRepo turns dir into a git repository with one commit, so publish has
// a parent to commit against.
func initRepo(t *testing.T, dir string) *git.Repository {
	t.Helper()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	writeFile(t, filepath.Join(dir, "README.md"), "# docs\n")
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return repo
}

func TestBuildThenPublish_CommitsDocument(t *testing.T) {
	dir := t.TempDir()
	repo := initRepo(t, dir)
	seedContentTree(t, filepath.Join(dir, "content"))

	cfg := loadConfig(t, dir, documentConfig(dir)+
		"publish:\n"+
		"  author_name: Docs Bot\n"+
		"  author_email: docs@uga.edu\n")

	_, err := build.NewBuilder(cfg).Run(context.Background())
	require.NoError(t, err)

	hash, err := publish.NewPublisher(cfg).Publish("")
	require.NoError(t, err)

	commit, err := repo.CommitObject(plumbing.NewHash(hash))
	require.NoError(t, err)
	require.Equal(t, "Update documentation index", commit.Message)
	require.Equal(t, "Docs Bot", commit.Author.Name)
	require.Equal(t, "docs@uga.edu", commit.Author.Email)

	_, err = commit.File("public/index.html")
	require.NoError(t, err)
	_, err = commit.File("public/build-report.json")
	require.NoError(t, err)

	// A second publish with no new build has nothing to commit.
	_, err = publish.NewPublisher(cfg).Publish("")
	require.True(t, errors.Is(err, publish.ErrNoChanges))
}

func TestBuildThenPublish_RebuildProducesNewCommit(t *testing.T) {
	dir := t.TempDir()
	repo := initRepo(t, dir)
	seedContentTree(t, filepath.Join(dir, "content"))
	cfg := loadConfig(t, dir, documentConfig(dir))

	_, err := build.NewBuilder(cfg).Run(context.Background())
	require.NoError(t, err)
	first, err := publish.NewPublisher(cfg).Publish("docs: initial index")
	require.NoError(t, err)

	// New content changes the document, so the next publish commits again.
	writeFile(t, filepath.Join(dir, "content", "extension-site", "crawl_inventory.csv"),
		"URL,Title,Local File,Depth,Crawl Date\n"+
			"https://extension.uga.edu/,Home,extension-site/home.md,0,2025-06-01T08:00:00\n"+
			"https://extension.uga.edu/about,About,extension-site/about.md,1,2025-06-01T08:00:00\n"+
			"https://extension.uga.edu/events,Events,extension-site/events.md,1,2025-06-01T08:00:00\n")

	_, err = build.NewBuilder(cfg).Run(context.Background())
	require.NoError(t, err)
	second, err := publish.NewPublisher(cfg).Publish("docs: refresh index")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	commit, err := repo.CommitObject(plumbing.NewHash(second))
	require.NoError(t, err)
	require.Equal(t, "docs: refresh index", commit.Message)
}
