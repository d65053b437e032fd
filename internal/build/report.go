package build

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/uga-caes/docsite/internal/history"
)

// BuildOutcome is the typed enumeration of final build result states.
type BuildOutcome string

const (
	OutcomeSuccess  BuildOutcome = "success"
	OutcomeWarning  BuildOutcome = "warning"
	OutcomeFailed   BuildOutcome = "failed"
	OutcomeCanceled BuildOutcome = "canceled"
)

// Report captures metrics about one index generation run.
type Report struct {
	SchemaVersion   int
	RunID           string
	Root            string // content root scanned
	Output          string // output document path
	Start           time.Time
	End             time.Time
	Sites           int
	Pages           int
	SiteSections    int // top-level sections in the rendered document
	PageItems       int // page list items in the rendered document
	BytesWritten    int
	Errors          []error // fatal errors causing build abortion (at most one today)
	Warnings        []error // non-fatal issues (verify mismatch, history write failure)
	StageDurations  map[string]time.Duration
	StageErrorKinds map[StageName]StageErrorKind
	StageCounts     map[StageName]StageCount
	Outcome         string       // derived overall outcome (string form for JSON)
	OutcomeT        BuildOutcome // typed outcome mirror (source of truth)
	Issues          []ReportIssue
}

// ReportIssueCode enumerates machine-parseable issue identifiers. These codes
// are a stable contract and should only be appended.
type ReportIssueCode string

const (
	IssueScanFailure       ReportIssueCode = "SCAN_FAILURE"
	IssueRenderFailure     ReportIssueCode = "RENDER_FAILURE"
	IssueWriteFailure      ReportIssueCode = "WRITE_FAILURE"
	IssueVerifyMismatch    ReportIssueCode = "VERIFY_MISMATCH"
	IssueHistoryFailure    ReportIssueCode = "HISTORY_FAILURE"
	IssueCanceled          ReportIssueCode = "BUILD_CANCELED"
	IssueGenericStageError ReportIssueCode = "GENERIC_STAGE_ERROR"
)

// IssueSeverity represents normalized severity levels.
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// ReportIssue is a structured taxonomy entry describing a discrete problem
// encountered during the run.
type ReportIssue struct {
	Code     ReportIssueCode `json:"code"`
	Stage    StageName       `json:"stage"`
	Severity IssueSeverity   `json:"severity"`
	Message  string          `json:"message"`
}

// StageCount aggregates outcome counts for a stage.
type StageCount struct {
	Success  int
	Warning  int
	Fatal    int
	Canceled int
}

func newReport(root, output string) *Report {
	return &Report{
		SchemaVersion:   1,
		RunID:           uuid.NewString(),
		Root:            root,
		Output:          output,
		Start:           time.Now(),
		StageDurations:  make(map[string]time.Duration),
		StageErrorKinds: make(map[StageName]StageErrorKind),
		StageCounts:     make(map[StageName]StageCount),
	}
}

// AddIssue appends a structured issue and mirrors it into the Errors/Warnings
// slices based on severity. Provide err=nil for purely informational issues.
func (r *Report) AddIssue(code ReportIssueCode, stage StageName, severity IssueSeverity, msg string, err error) {
	r.Issues = append(r.Issues, ReportIssue{Code: code, Stage: stage, Severity: severity, Message: msg})
	if err != nil {
		switch severity {
		case SeverityError:
			r.Errors = append(r.Errors, err)
		case SeverityWarning:
			r.Warnings = append(r.Warnings, err)
		}
	}
}

func (r *Report) finish() { r.End = time.Now() }

// Summary returns a human-readable single-line summary.
func (r *Report) Summary() string {
	dur := r.End.Sub(r.Start)
	return fmt.Sprintf("sites=%d pages=%d duration=%s errors=%d warnings=%d stages=%d outcome=%s",
		r.Sites, r.Pages, dur.Truncate(time.Millisecond), len(r.Errors), len(r.Warnings), len(r.StageDurations), r.Outcome)
}

// deriveOutcome sets the Outcome fields based on recorded errors/warnings.
func (r *Report) deriveOutcome() {
	if len(r.Errors) > 0 {
		for _, e := range r.Errors {
			if se, ok := e.(*StageError); ok && se.Kind == StageErrorCanceled {
				r.setOutcome(OutcomeCanceled)
				return
			}
		}
		r.setOutcome(OutcomeFailed)
		return
	}
	if len(r.Warnings) > 0 {
		r.setOutcome(OutcomeWarning)
		return
	}
	r.setOutcome(OutcomeSuccess)
}

// setOutcome sets both typed and legacy string forms.
func (r *Report) setOutcome(o BuildOutcome) {
	r.OutcomeT = o
	r.Outcome = string(o)
}

// historyRun snapshots the report as a history row. The outcome is derived
// provisionally when the record stage runs before the report is finalized.
func (r *Report) historyRun() history.Run {
	outcome := r.OutcomeT
	if outcome == "" {
		switch {
		case len(r.Errors) > 0:
			outcome = OutcomeFailed
		case len(r.Warnings) > 0:
			outcome = OutcomeWarning
		default:
			outcome = OutcomeSuccess
		}
	}
	end := r.End
	if end.IsZero() {
		end = time.Now()
	}
	errText := ""
	if len(r.Errors) > 0 {
		errText = r.Errors[0].Error()
	}
	return history.Run{
		RunID:    r.RunID,
		Started:  r.Start,
		Finished: end,
		Outcome:  string(outcome),
		Sites:    r.Sites,
		Pages:    r.Pages,
		Error:    errText,
	}
}

// Persist writes the report atomically into the provided directory (beside
// the output document). It writes two files:
//
//	build-report.json  (machine readable)
//	build-report.txt   (human summary)
//
// Best effort; errors are returned for caller logging but do not change the
// build outcome.
func (r *Report) Persist(dir string) error {
	if r.End.IsZero() {
		r.finish()
		r.deriveOutcome()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure report directory: %w", err)
	}
	jb, err := json.MarshalIndent(r.sanitizedCopy(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report json: %w", err)
	}
	jsonPath := filepath.Join(dir, "build-report.json")
	tmpJSON := jsonPath + ".tmp"
	if err := os.WriteFile(tmpJSON, jb, 0o644); err != nil {
		return fmt.Errorf("write temp report json: %w", err)
	}
	if err := os.Rename(tmpJSON, jsonPath); err != nil {
		return fmt.Errorf("atomic rename json: %w", err)
	}
	summaryPath := filepath.Join(dir, "build-report.txt")
	tmpTxt := summaryPath + ".tmp"
	if err := os.WriteFile(tmpTxt, []byte(r.Summary()+"\n"), 0o644); err != nil {
		return fmt.Errorf("write temp report summary: %w", err)
	}
	if err := os.Rename(tmpTxt, summaryPath); err != nil {
		return fmt.Errorf("atomic rename summary: %w", err)
	}
	return nil
}

// JSON returns the report serialized for external consumers (notifications,
// the status endpoint).
func (r *Report) JSON() ([]byte, error) {
	b, err := json.Marshal(r.sanitizedCopy())
	if err != nil {
		return nil, fmt.Errorf("marshal report json: %w", err)
	}
	return b, nil
}

// sanitizedCopy returns a shallow copy with error fields converted to strings
// for JSON friendliness.
func (r *Report) sanitizedCopy() *ReportSerializable {
	stageCounts := make(map[string]StageCount, len(r.StageCounts))
	for k, v := range r.StageCounts {
		stageCounts[string(k)] = v
	}
	kinds := make(map[string]string, len(r.StageErrorKinds))
	for k, v := range r.StageErrorKinds {
		kinds[string(k)] = string(v)
	}
	if r.StageDurations == nil {
		r.StageDurations = map[string]time.Duration{}
	}

	s := &ReportSerializable{
		SchemaVersion:   r.SchemaVersion,
		RunID:           r.RunID,
		Root:            r.Root,
		Output:          r.Output,
		Start:           r.Start,
		End:             r.End,
		Sites:           r.Sites,
		Pages:           r.Pages,
		SiteSections:    r.SiteSections,
		PageItems:       r.PageItems,
		BytesWritten:    r.BytesWritten,
		Errors:          make([]string, len(r.Errors)),
		Warnings:        make([]string, len(r.Warnings)),
		StageDurations:  r.StageDurations,
		StageErrorKinds: kinds,
		StageCounts:     stageCounts,
		Outcome:         r.Outcome,
		Issues:          r.Issues,
	}
	for i, e := range r.Errors {
		s.Errors[i] = e.Error()
	}
	for i, w := range r.Warnings {
		s.Warnings[i] = w.Error()
	}
	return s
}

// ReportSerializable mirrors Report but with string errors for JSON output.
type ReportSerializable struct {
	SchemaVersion   int                      `json:"schema_version"`
	RunID           string                   `json:"run_id"`
	Root            string                   `json:"root"`
	Output          string                   `json:"output"`
	Start           time.Time                `json:"start"`
	End             time.Time                `json:"end"`
	Sites           int                      `json:"sites"`
	Pages           int                      `json:"pages"`
	SiteSections    int                      `json:"site_sections"`
	PageItems       int                      `json:"page_items"`
	BytesWritten    int                      `json:"bytes_written"`
	Errors          []string                 `json:"errors"`
	Warnings        []string                 `json:"warnings"`
	StageDurations  map[string]time.Duration `json:"stage_durations"`
	StageErrorKinds map[string]string        `json:"stage_error_kinds"`
	StageCounts     map[string]StageCount    `json:"stage_counts"`
	Outcome         string                   `json:"outcome"`
	Issues          []ReportIssue            `json:"issues"`
}
