package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/uga-caes/docsite/internal/content"
	"github.com/uga-caes/docsite/internal/logfields"
	"github.com/uga-caes/docsite/internal/render"
)

// BuildState carries mutable state across stages.
type BuildState struct {
	Sites  map[string]*content.Site
	Result *render.Result
	Report *Report

	builder *Builder
}

func stagePrepareOutput(_ context.Context, bs *BuildState) error {
	dir := filepath.Dir(bs.builder.cfg.Output.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newFatalStageError(StagePrepareOutput, fmt.Errorf("%w: ensure output directory: %v", ErrWrite, err))
	}
	return nil
}

func stageScanContent(_ context.Context, bs *BuildState) error {
	scanner := content.NewScanner(bs.builder.scanOptions())
	sites, err := scanner.Scan(bs.builder.cfg.ContentDir)
	if err != nil {
		return newFatalStageError(StageScanContent, fmt.Errorf("%w: %v", ErrScan, err))
	}
	bs.Sites = sites

	pages := 0
	for _, site := range sites {
		pages += len(site.Pages)
	}
	bs.Report.Sites = len(sites)
	bs.Report.Pages = pages
	slog.Info("Content scan completed", logfields.Sites(len(sites)), logfields.Pages(pages))
	return nil
}

func stageRenderHTML(_ context.Context, bs *BuildState) error {
	renderer := render.NewRenderer(bs.builder.renderOptions())
	result, err := renderer.Render(bs.Sites)
	if err != nil {
		return newFatalStageError(StageRenderHTML, fmt.Errorf("%w: %v", ErrRender, err))
	}
	bs.Result = result
	bs.Report.SiteSections = result.SiteSections
	bs.Report.PageItems = result.PageItems
	return nil
}

// stageWriteOutput replaces the output document atomically: readers of the
// old file never observe a partial write.
func stageWriteOutput(_ context.Context, bs *BuildState) error {
	out := bs.builder.cfg.Output.Path
	tmp := out + ".tmp"
	if err := os.WriteFile(tmp, bs.Result.HTML, 0o644); err != nil {
		return newFatalStageError(StageWriteOutput, fmt.Errorf("%w: write temp output: %v", ErrWrite, err))
	}
	if err := os.Rename(tmp, out); err != nil {
		return newFatalStageError(StageWriteOutput, fmt.Errorf("%w: atomic rename output: %v", ErrWrite, err))
	}
	bs.Report.BytesWritten = len(bs.Result.HTML)
	slog.Info("Index document written", logfields.Output(out), slog.Int("bytes", len(bs.Result.HTML)))
	return nil
}

// stageVerifyOutput re-parses the written document and compares its
// structural counts against the renderer's. The document is already in place,
// so failures degrade to warnings.
func stageVerifyOutput(_ context.Context, bs *BuildState) error {
	stats, err := render.VerifyFile(bs.builder.cfg.Output.Path)
	if err != nil {
		return newWarnStageError(StageVerifyOutput, fmt.Errorf("%w: %v", ErrVerify, err))
	}
	if stats.SiteSections != bs.Result.SiteSections || stats.PageItems != bs.Result.PageItems {
		return newWarnStageError(StageVerifyOutput, fmt.Errorf(
			"%w: document structure mismatch: %d/%d sections, %d/%d page items",
			ErrVerify, stats.SiteSections, bs.Result.SiteSections, stats.PageItems, bs.Result.PageItems))
	}
	return nil
}

func stageRecordHistory(ctx context.Context, bs *BuildState) error {
	if err := bs.builder.history.RecordRun(ctx, bs.Report.historyRun()); err != nil {
		return newWarnStageError(StageRecordHistory, fmt.Errorf("record run history: %w", err))
	}
	return nil
}
