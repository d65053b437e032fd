// Package metrics provides observability hooks for docsite builds.
//
// The package implements the Null Object pattern: components receive a
// Recorder through dependency injection and default to NoopRecorder, so
// call sites never nil-check. Swapping in PrometheusRecorder activates
// real collection without touching the instrumented code:
//
//	recorder := metrics.NewPrometheusRecorder(registry)
//	builder := build.NewBuilder(cfg).WithRecorder(recorder)
//
// The serve command registers a PrometheusRecorder and exposes it on
// /metrics; one-shot builds run with the noop default.
package metrics
