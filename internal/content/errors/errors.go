package errors

// Package errors provides sentinel errors for content scanning operations.
// These enable consistent classification of fatal scan failures.

import "errors"

var (
	// ErrRootNotFound indicates the configured content root does not exist or cannot be listed.
	ErrRootNotFound = errors.New("content root not found")

	// ErrDirListFailed indicates listing a content directory failed mid-scan.
	ErrDirListFailed = errors.New("content directory listing failed")

	// ErrSourceUnreadable indicates a present source file could not be read.
	ErrSourceUnreadable = errors.New("content source unreadable")

	// ErrInventoryMalformed indicates a crawl inventory CSV could not be parsed.
	ErrInventoryMalformed = errors.New("crawl inventory malformed")

	// ErrMetadataMalformed indicates a _metadata.json file could not be parsed.
	ErrMetadataMalformed = errors.New("site metadata malformed")

	// ErrSummaryMalformed indicates a crawl_summary.json file could not be parsed.
	ErrSummaryMalformed = errors.New("crawl summary malformed")

	// ErrAPISummaryMalformed indicates an api_processing_summary.json file could not be parsed.
	ErrAPISummaryMalformed = errors.New("api processing summary malformed")
)
