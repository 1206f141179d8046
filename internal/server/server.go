package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// Exporter turns a rendered page into a downloadable file.
type Exporter interface {
	Export(ctx context.Context, format export.Format, pageHTML string) (*export.Artifact, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	sessions    *session.Manager
	exporter    Exporter
	rateLimiter *ratelimit.Limiter
	screens     *screens
	maxUpload   int64
}

// Config holds server configuration
type Config struct {
	Port            int
	MaxUploadMemory int64 // bytes; also caps the upload body
	SecureCookies   bool
	RateLimit       *ratelimit.Config // nil uses ratelimit.DefaultConfig
}

// New creates a new server instance. The server takes ownership of sessions
// and stops it on shutdown.
func New(cfg Config, sessions *session.Manager, exporter Exporter) (*Server, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	if exporter == nil {
		return nil, fmt.Errorf("exporter is required")
	}
	if cfg.MaxUploadMemory <= 0 {
		cfg.MaxUploadMemory = 10 << 20
	}

	scr, err := loadScreens()
	if err != nil {
		return nil, err
	}

	s := &Server{
		sessions:    sessions,
		exporter:    exporter,
		rateLimiter: ratelimit.NewLimiter(cfg.RateLimit),
		screens:     scr,
		maxUpload:   cfg.MaxUploadMemory,
	}

	// Routes that touch the wizard run inside a session scope
	wiz := http.NewServeMux()
	wiz.HandleFunc("GET /{$}", s.handleIndex)

	// Navigation
	wiz.HandleFunc("POST /start", s.transition((*wizard.Store).Start))
	wiz.HandleFunc("POST /welcome", s.transition((*wizard.Store).BackToWelcome))
	wiz.HandleFunc("POST /template", s.handleSelectTemplate)
	wiz.HandleFunc("POST /details", s.transition((*wizard.Store).ContinueToDetails))
	wiz.HandleFunc("POST /templates", s.transition((*wizard.Store).BackToTemplates))
	wiz.HandleFunc("POST /preview", s.transition((*wizard.Store).ContinueToPreview))
	wiz.HandleFunc("POST /edit", s.transition((*wizard.Store).Edit))
	wiz.HandleFunc("POST /reset", s.transition((*wizard.Store).StartOver))

	// Details form
	wiz.HandleFunc("POST /personal", s.handlePersonalInfo)
	for _, list := range []wizard.List{wizard.ListExperience, wizard.ListEducation, wizard.ListSkills} {
		wiz.HandleFunc("POST /"+string(list), s.handleAddEntry(list))
		wiz.HandleFunc("POST /"+string(list)+"/{id}", s.handleUpdateEntry(list))
		wiz.HandleFunc("POST /"+string(list)+"/{id}/delete", s.handleRemoveEntry(list))
	}
	wiz.HandleFunc("POST /profile-image", s.handleUploadImage)
	wiz.HandleFunc("POST /profile-image/delete", s.handleRemoveImage)

	// Output
	wiz.HandleFunc("GET /resume", s.handleResume)
	wiz.HandleFunc("GET /export/{format}", s.handleExport)
	wiz.HandleFunc("GET /api/state", s.handleState)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/templates", s.handleTemplates)
	mux.Handle("/", middleware.Session(sessions, cfg.SecureCookies)(wiz))

	s.handler = s.withRateLimit(s.withLogging(mux))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // exports run inside the request
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logging.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-stop:
	case err := <-errCh:
		s.Close()
		return fmt.Errorf("server error: %w", err)
	}
	logging.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.Close()
	logging.Info("server stopped")
	return nil
}

// Close stops the background goroutines of the rate limiter and sessions.
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	s.sessions.Stop()
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"remote", r.RemoteAddr,
			"elapsed", time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.sessions.Len(),
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Error("failed to encode JSON response", "error", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// errorFor writes err with the status HTTPStatus maps it to.
func (s *Server) errorFor(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logging.Error("request failed", "status", status, "error", err)
	}
	s.errorResponse(w, status, err.Error())
}

// extractClientID extracts the client identifier from the request.
// Only RemoteAddr is trusted; X-Forwarded-For is ignored.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}

	if info.RetryAfter > 0 {
		secs := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = secs
		w.Header().Set("Retry-After", fmt.Sprintf("%d", secs))
	}

	logging.Warn("rate limit exceeded", "limit", info.Limit, "reset", info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
