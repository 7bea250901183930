// Package server provides the HTTP REST API for résumé extraction.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/hyadav1201/autofolio/internal/docparse"
	"github.com/hyadav1201/autofolio/internal/narrative"
	"github.com/hyadav1201/autofolio/internal/pipeline"
	"github.com/hyadav1201/autofolio/internal/server/ratelimit"
	"github.com/hyadav1201/autofolio/internal/store"
)

// Finished sessions stay addressable for a grace period so late status polls
// still see the terminal snapshot, then the sweeper drops them.
const (
	sessionSweepInterval = time.Minute
	sessionRetention     = 5 * time.Minute
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       *store.Store
	remote      docparse.Client
	narrator    narrative.Generator
	rateLimiter *ratelimit.Limiter

	mu        sync.RWMutex
	sessions  map[string]*pipeline.Session
	sweepStop chan struct{}
}

// Config holds server configuration
type Config struct {
	Port        int
	UploadsDir  string
	DatabaseURL string
	// Remote is the document parsing tier. Nil means local heuristics only.
	Remote docparse.Client
	// Narrator generates About Me text. Nil means default bio only.
	Narrator narrative.Generator
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	documents, err := store.New(context.Background(), cfg.UploadsDir, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize document store: %w", err)
	}

	s := &Server{
		store:       documents,
		remote:      cfg.Remote,
		narrator:    cfg.Narrator,
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		sessions:    make(map[string]*pipeline.Session),
		sweepStop:   make(chan struct{}),
	}
	go s.sweepSessions()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /portfolio/upload-resume", s.handleUploadResume)
	mux.HandleFunc("POST /portfolio/upload-resume/stream", s.handleUploadResumeStream)
	mux.HandleFunc("POST /portfolio/generate-about-me", s.handleGenerateAboutMe)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleAbandonSession)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // upload + remote parse + narrative
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	close(s.sweepStop)
	s.store.Close()
	log.Println("Server stopped")
	return nil
}

// registerSession makes a session addressable via the sessions endpoints.
func (s *Server) registerSession(session *pipeline.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID()] = session
}

func (s *Server) lookupSession(id string) *pipeline.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

func (s *Server) sweepSessions() {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.removeFinishedSessions(time.Now().Add(-sessionRetention))
		case <-s.sweepStop:
			return
		}
	}
}

// removeFinishedSessions drops sessions that reached a terminal state before
// the cutoff. In-flight sessions are never removed.
func (s *Server) removeFinishedSessions(cutoff time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		if session.Finished() && session.LastTransition().Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
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

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// RemoteAddr is authoritative; X-Forwarded-For is only safe behind a trusted
// proxy, which this service does not assume.
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

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}
	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
