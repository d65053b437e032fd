package serve

import (
	"sync"
	"time"

	"github.com/uga-caes/docsite/internal/build"
)

// runState tracks the most recent build outcome for the status endpoint.
type runState struct {
	mu         sync.RWMutex
	start      time.Time
	lastReport *build.Report
	lastError  error
	goodBuild  bool // true once at least one successful build exists
}

func newRunState() *runState {
	return &runState{start: time.Now()}
}

func (s *runState) setResult(report *build.Report, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastReport = report
	s.lastError = err
	if err == nil {
		s.goodBuild = true
	}
}

func (s *runState) snapshot() (report *build.Report, lastErr error, goodBuild bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastReport, s.lastError, s.goodBuild
}

func (s *runState) startTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.start
}
