// Package publish commits the generated output into the enclosing git
// repository. Pushing is left to the operator.
package publish

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/uga-caes/docsite/internal/config"
	"github.com/uga-caes/docsite/internal/logfields"
)

// ErrNoChanges is returned when the output files are already committed.
var ErrNoChanges = errors.New("docsite: no changes to publish")

// Publisher stages and commits generated output files.
type Publisher struct {
	cfg *config.Config
}

func NewPublisher(cfg *config.Config) *Publisher {
	return &Publisher{cfg: cfg}
}

// Publish stages the output document plus its report files and creates a
// commit in the repository enclosing the output directory. An empty message
// falls back to the configured default. Returns the commit hash.
func (p *Publisher) Publish(message string) (string, error) {
	out := p.cfg.Output.Path
	if _, err := os.Stat(out); err != nil {
		return "", fmt.Errorf("output document not found (run build first): %w", err)
	}

	outDir := filepath.Dir(out)
	repo, err := git.PlainOpenWithOptions(outDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open enclosing repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("get worktree: %w", err)
	}
	root := wt.Filesystem.Root()

	// The report files are best effort output; stage them when present.
	candidates := []string{
		out,
		filepath.Join(outDir, "build-report.json"),
		filepath.Join(outDir, "build-report.txt"),
	}
	for _, name := range candidates {
		if _, statErr := os.Stat(name); statErr != nil {
			continue
		}
		rel, relErr := filepath.Rel(root, name)
		if relErr != nil || strings.HasPrefix(rel, "..") {
			return "", fmt.Errorf("output %s lies outside repository %s", name, root)
		}
		if _, addErr := wt.Add(filepath.ToSlash(rel)); addErr != nil {
			return "", fmt.Errorf("stage %s: %w", rel, addErr)
		}
	}

	if message == "" {
		message = p.cfg.Publish.Message
	}
	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  p.cfg.Publish.AuthorName,
			Email: p.cfg.Publish.AuthorEmail,
			When:  time.Now(),
		},
	})
	if errors.Is(err, git.ErrEmptyCommit) {
		return "", ErrNoChanges
	}
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	slog.Info("Published documentation index",
		slog.String("commit", hash.String()),
		logfields.Output(out))
	return hash.String(), nil
}
