package build

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/uga-caes/docsite/internal/config"
	"github.com/uga-caes/docsite/internal/content"
	"github.com/uga-caes/docsite/internal/history"
	"github.com/uga-caes/docsite/internal/logfields"
	"github.com/uga-caes/docsite/internal/metrics"
	"github.com/uga-caes/docsite/internal/render"
)

// Builder runs the index build pipeline against a configuration.
type Builder struct {
	cfg      *config.Config
	recorder metrics.Recorder
	history  *history.Store
}

func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{
		cfg:      cfg,
		recorder: metrics.NoopRecorder{},
	}
}

// WithRecorder sets the metrics recorder. Passing nil restores the no-op
// recorder.
func (b *Builder) WithRecorder(rec metrics.Recorder) *Builder {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	b.recorder = rec
	return b
}

// WithHistory enables run history recording. The store remains owned by the
// caller.
func (b *Builder) WithHistory(store *history.Store) *Builder {
	b.history = store
	return b
}

func (b *Builder) scanOptions() content.Options {
	return content.Options{
		NestedDirs:          b.cfg.Scan.NestedDirs,
		APISummaryParent:    b.cfg.Scan.APISummaryParent,
		APISummaryDir:       b.cfg.Scan.APISummaryDir,
		CategoriesParent:    b.cfg.Scan.CategoriesParent,
		ExcludedTitleMarker: b.cfg.Scan.ExcludedTitleMarker,
	}
}

func (b *Builder) renderOptions() render.Options {
	groups := make([]render.Group, 0, len(b.cfg.Site.Groups))
	for _, g := range b.cfg.Site.Groups {
		groups = append(groups, render.Group{Name: g.Name, Children: g.Children})
	}
	return render.Options{
		PageTitle:        b.cfg.Site.PageTitle,
		HeaderTitle:      b.cfg.Site.HeaderTitle,
		Subtitle:         b.cfg.Site.Subtitle,
		FooterLines:      b.cfg.Site.FooterLines,
		DisplayNames:     b.cfg.Site.DisplayNames,
		Groups:           groups,
		CategoriesParent: b.cfg.Scan.CategoriesParent,
	}
}

// Run executes the full pipeline and returns the build report. The report is
// returned even when the build fails so callers can still log, persist, and
// publish it.
func (b *Builder) Run(ctx context.Context) (*Report, error) {
	report := newReport(b.cfg.ContentDir, b.cfg.Output.Path)
	slog.Info("Starting index build",
		logfields.RunID(report.RunID),
		logfields.Path(b.cfg.ContentDir),
		logfields.Output(b.cfg.Output.Path))

	bs := &BuildState{
		Report:  report,
		builder: b,
	}

	stages := NewPipeline().
		Add(StagePrepareOutput, stagePrepareOutput).
		Add(StageScanContent, stageScanContent).
		Add(StageRenderHTML, stageRenderHTML).
		Add(StageWriteOutput, stageWriteOutput).
		Add(StageVerifyOutput, stageVerifyOutput).
		AddIf(b.history != nil, StageRecordHistory, stageRecordHistory).
		Build()

	runErr := runStages(ctx, bs, stages)

	report.deriveOutcome()
	report.finish()

	if err := report.Persist(filepath.Dir(b.cfg.Output.Path)); err != nil {
		slog.Warn("Failed to persist build report", logfields.Error(err))
	}

	b.recorder.ObserveBuildDuration(report.End.Sub(report.Start))
	b.recorder.IncBuildOutcome(report.Outcome)

	if runErr != nil {
		if b.history != nil {
			// The pipeline aborted before the history stage; record the
			// failed run directly so the history stays complete.
			recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := b.history.RecordRun(recordCtx, report.historyRun()); err != nil {
				slog.Warn("Failed to record run history", logfields.Error(err))
			}
		}
		slog.Error("Index build failed",
			logfields.RunID(report.RunID),
			logfields.Outcome(report.Outcome),
			logfields.Error(runErr))
		return report, runErr
	}

	b.recorder.SetSitesIndexed(report.Sites)
	b.recorder.SetPagesIndexed(report.Pages)
	slog.Info("Index build completed",
		logfields.RunID(report.RunID),
		logfields.Outcome(report.Outcome),
		slog.String("summary", report.Summary()))
	return report, nil
}
