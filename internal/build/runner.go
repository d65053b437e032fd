package build

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/uga-caes/docsite/internal/logfields"
	"github.com/uga-caes/docsite/internal/metrics"
)

// StageResult enumerates per-stage classification outcomes. Values mirror
// metrics.ResultLabel to simplify emission.
type StageResult string

const (
	StageResultSuccess  StageResult = "success"
	StageResultWarning  StageResult = "warning"
	StageResultFatal    StageResult = "fatal"
	StageResultCanceled StageResult = "canceled"
)

// StageOutcome captures the classification of one executed stage.
type StageOutcome struct {
	Stage    StageName
	Result   StageResult
	Error    *StageError
	Code     ReportIssueCode
	Severity IssueSeverity
	Abort    bool
}

// classifyStageResult maps a stage error (or nil) onto a result, issue code,
// and abort decision. Unknown errors classify as fatal.
func classifyStageResult(stage StageName, err error) StageOutcome {
	if err == nil {
		return StageOutcome{Stage: stage, Result: StageResultSuccess}
	}
	var se *StageError
	if !errors.As(err, &se) {
		se = newFatalStageError(stage, err)
	}
	out := StageOutcome{Stage: stage, Error: se}
	switch se.Kind {
	case StageErrorWarning:
		out.Result = StageResultWarning
		out.Severity = SeverityWarning
		out.Code = issueCode(stage)
	case StageErrorCanceled:
		out.Result = StageResultCanceled
		out.Severity = SeverityError
		out.Code = IssueCanceled
		out.Abort = true
	default:
		out.Result = StageResultFatal
		out.Severity = SeverityError
		out.Code = issueCode(stage)
		out.Abort = true
	}
	return out
}

func issueCode(stage StageName) ReportIssueCode {
	switch stage {
	case StageScanContent:
		return IssueScanFailure
	case StageRenderHTML:
		return IssueRenderFailure
	case StagePrepareOutput, StageWriteOutput:
		return IssueWriteFailure
	case StageVerifyOutput:
		return IssueVerifyMismatch
	case StageRecordHistory:
		return IssueHistoryFailure
	}
	return IssueGenericStageError
}

// recordStageResult updates Report counters and emits metrics.
func (r *Report) recordStageResult(stage StageName, res StageResult, recorder metrics.Recorder) {
	sc := r.StageCounts[stage]
	switch res {
	case StageResultSuccess:
		sc.Success++
		recorder.IncStageResult(string(stage), metrics.ResultSuccess)
	case StageResultWarning:
		sc.Warning++
		recorder.IncStageResult(string(stage), metrics.ResultWarning)
	case StageResultFatal:
		sc.Fatal++
		recorder.IncStageResult(string(stage), metrics.ResultFatal)
	case StageResultCanceled:
		sc.Canceled++
		recorder.IncStageResult(string(stage), metrics.ResultCanceled)
	}
	r.StageCounts[stage] = sc
}

// runStages executes stages in order, recording timing and stopping on the
// first fatal error. Warnings are recorded and execution continues. Context
// cancellation is checked between stages.
func runStages(ctx context.Context, bs *BuildState, stages []StageDef) error {
	for _, st := range stages {
		select {
		case <-ctx.Done():
			se := newCanceledStageError(st.Name, ctx.Err())
			bs.Report.StageErrorKinds[st.Name] = se.Kind
			bs.Report.AddIssue(IssueCanceled, st.Name, SeverityError, se.Error(), se)
			bs.Report.recordStageResult(st.Name, StageResultCanceled, bs.builder.recorder)
			return se
		default:
		}

		t0 := time.Now()
		err := st.Fn(ctx, bs)
		dur := time.Since(t0)
		bs.Report.StageDurations[string(st.Name)] = dur
		bs.builder.recorder.ObserveStageDuration(string(st.Name), dur)
		slog.Debug("Stage finished",
			logfields.Stage(string(st.Name)),
			logfields.DurationMS(float64(dur.Milliseconds())))

		out := classifyStageResult(st.Name, err)
		if out.Error != nil {
			bs.Report.StageErrorKinds[st.Name] = out.Error.Kind
			bs.Report.AddIssue(out.Code, st.Name, out.Severity, out.Error.Error(), out.Error)
		}
		bs.Report.recordStageResult(st.Name, out.Result, bs.builder.recorder)
		if out.Abort {
			return out.Error
		}
	}
	return nil
}
