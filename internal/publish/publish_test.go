package publish

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"github.com/uga-caes/docsite/internal/config"
)

func writePublishFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// setupPublishRepo seeds a git repository containing generated output under
// public/ and returns its path with a matching config.
func setupPublishRepo(t *testing.T) (string, *config.Config) {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	writePublishFile(t, filepath.Join(dir, "README.md"), "# Site\n")
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	writePublishFile(t, filepath.Join(dir, "public", "index.html"), "<!DOCTYPE html><html></html>")
	writePublishFile(t, filepath.Join(dir, "public", "build-report.json"), `{"outcome":"success"}`)

	cfg := &config.Config{
		Output: config.OutputConfig{Path: filepath.Join(dir, "public", "index.html")},
		Publish: config.PublishConfig{
			AuthorName:  "Docs Bot",
			AuthorEmail: "docs@uga.edu",
			Message:     "Update documentation index",
		},
	}
	return dir, cfg
}

func commitByHash(t *testing.T, dir, hash string) *object.Commit {
	t.Helper()
	repo, err := git.PlainOpen(dir)
	require.NoError(t, err)
	commit, err := repo.CommitObject(plumbing.NewHash(hash))
	require.NoError(t, err)
	return commit
}

func TestPublish_CommitsOutputAndReports(t *testing.T) {
	dir, cfg := setupPublishRepo(t)

	hash, err := NewPublisher(cfg).Publish("")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	commit := commitByHash(t, dir, hash)
	require.Equal(t, "Update documentation index", commit.Message)
	require.Equal(t, "Docs Bot", commit.Author.Name)
	require.Equal(t, "docs@uga.edu", commit.Author.Email)

	_, err = commit.File("public/index.html")
	require.NoError(t, err, "output document missing from commit")
	_, err = commit.File("public/build-report.json")
	require.NoError(t, err, "report missing from commit")
}

func TestPublish_CustomMessage(t *testing.T) {
	dir, cfg := setupPublishRepo(t)

	hash, err := NewPublisher(cfg).Publish("docs: refresh index")
	require.NoError(t, err)

	commit := commitByHash(t, dir, hash)
	require.Equal(t, "docs: refresh index", commit.Message)
}

func TestPublish_NoChangesOnSecondRun(t *testing.T) {
	_, cfg := setupPublishRepo(t)

	_, err := NewPublisher(cfg).Publish("")
	require.NoError(t, err)

	_, err = NewPublisher(cfg).Publish("")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNoChanges), "expected ErrNoChanges, got %v", err)
}

func TestPublish_MissingReportsStillCommits(t *testing.T) {
	dir, cfg := setupPublishRepo(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "public", "build-report.json")))

	hash, err := NewPublisher(cfg).Publish("")
	require.NoError(t, err)

	commit := commitByHash(t, dir, hash)
	_, err = commit.File("public/index.html")
	require.NoError(t, err)
}

func TestPublish_MissingOutputFails(t *testing.T) {
	_, cfg := setupPublishRepo(t)
	cfg.Output.Path = filepath.Join(filepath.Dir(cfg.Output.Path), "missing.html")

	_, err := NewPublisher(cfg).Publish("")
	require.Error(t, err)
}

func TestPublish_OutsideRepositoryFails(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "public", "index.html")
	writePublishFile(t, out, "<html></html>")
	cfg := &config.Config{Output: config.OutputConfig{Path: out}}

	_, err := NewPublisher(cfg).Publish("")
	require.Error(t, err)
}
