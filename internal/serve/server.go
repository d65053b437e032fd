package serve

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/yuin/goldmark"

	"github.com/uga-caes/docsite/internal/config"
	"github.com/uga-caes/docsite/internal/history"
	"github.com/uga-caes/docsite/internal/logfields"
	"github.com/uga-caes/docsite/internal/metrics"
	"github.com/uga-caes/docsite/internal/version"
)

const (
	localPrefix     = "/local/"
	recentRunsLimit = 10
)

// Server exposes the generated index plus operational endpoints.
type Server struct {
	cfg        *config.Config
	state      *runState
	store      *history.Store  // nil when history is disabled
	registry   *prom.Registry  // nil when metrics are disabled
	contentDir string          // absolute content root for /local previews
	md         goldmark.Markdown
	httpSrv    *http.Server
}

func NewServer(cfg *config.Config, state *runState, store *history.Store, registry *prom.Registry, contentDir string) *Server {
	return &Server{
		cfg:        cfg,
		state:      state,
		store:      store,
		registry:   registry,
		contentDir: contentDir,
		md:         goldmark.New(),
	}
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc(localPrefix, s.handleLocal)
	if s.registry != nil && s.cfg.Serve.MetricsEnabled() {
		mux.Handle("/metrics", metrics.HTTPHandler(s.registry))
	}
	return mux
}

// Start binds the listen address and serves in the background. Binding
// happens up front so address conflicts fail fast instead of surfacing from
// the serving goroutine.
func (s *Server) Start(_ context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Serve.Addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", s.cfg.Serve.Addr, err)
	}
	s.httpSrv = &http.Server{
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", logfields.Error(err))
		}
	}()
	slog.Info("HTTP server listening", logfields.Addr(s.cfg.Serve.Addr))
	return nil
}

// Stop shuts the HTTP server down, honoring the context deadline.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// handleRoot serves the generated index at / and the rest of the output
// directory (reports) below it.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" {
		http.ServeFile(w, r, s.cfg.Output.Path)
		return
	}
	http.FileServer(http.Dir(filepath.Dir(s.cfg.Output.Path))).ServeHTTP(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
}

// statusResponse is the /status payload.
type statusResponse struct {
	Status     string          `json:"status"`
	Version    string          `json:"version"`
	StartTime  time.Time       `json:"start_time"`
	Uptime     string          `json:"uptime"`
	LastRun    json.RawMessage `json:"last_run,omitempty"`
	LastError  string          `json:"last_error,omitempty"`
	RecentRuns []history.Run   `json:"recent_runs,omitempty"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	report, lastErr, goodBuild := s.state.snapshot()

	resp := statusResponse{
		Status:    "ok",
		Version:   version.Version,
		StartTime: s.state.startTime(),
		Uptime:    time.Since(s.state.startTime()).String(),
	}
	if lastErr != nil {
		resp.LastError = lastErr.Error()
		resp.Status = "degraded"
	}
	if !goodBuild {
		resp.Status = "failing"
	}
	if report != nil {
		if data, err := report.JSON(); err == nil {
			resp.LastRun = data
		} else {
			slog.Warn("Failed to serialize last run report", logfields.Error(err))
		}
	}
	if s.store != nil {
		runs, err := s.store.RecentRuns(r.Context(), recentRunsLimit)
		if err != nil {
			slog.Warn("Failed to load run history", logfields.Error(err))
		} else {
			resp.RecentRuns = runs
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode status response", logfields.Error(err))
	}
}

// handleLocal renders a markdown file from the content root as HTML so the
// local copies the index references can be inspected in a browser.
func (s *Server) handleLocal(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(r.URL.Path, localPrefix)
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == "." || clean == ".." || filepath.IsAbs(clean) ||
		strings.HasPrefix(clean, ".."+string(os.PathSeparator)) {
		http.NotFound(w, r)
		return
	}
	if filepath.Ext(clean) != ".md" {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(s.contentDir, clean)
	// #nosec G304 -- path is confined to the content root above
	src, err := os.ReadFile(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var body bytes.Buffer
	if err := s.md.Convert(src, &body); err != nil {
		slog.Warn("Markdown conversion failed", logfields.File(path), logfields.Error(err))
		http.Error(w, "markdown conversion failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := localPageTemplate.Execute(w, localPageData{
		Title: filepath.Base(clean),
		Body:  template.HTML(body.String()), // #nosec G203 -- goldmark output over local files
	}); err != nil {
		slog.Error("Failed to render local preview", logfields.Error(err))
	}
}

type localPageData struct {
	Title string
	Body  template.HTML
}

var localPageTemplate = template.Must(template.New("local").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 860px; margin: 40px auto; padding: 0 20px; line-height: 1.6; color: #333; }
pre { background: #f6f8fa; padding: 12px; border-radius: 6px; overflow-x: auto; }
code { background: #f6f8fa; padding: 2px 4px; border-radius: 3px; font-size: 0.95em; }
a { color: #ba0c2f; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))
