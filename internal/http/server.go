// Package http serves the JSON API: the inflation proxy endpoint, the
// catalog and macro table views, and the regional CPI comparison.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"mulga/internal/cache"
	"mulga/internal/catalog"
	"mulga/internal/core"
	"mulga/internal/kosis"
	"mulga/internal/log"
)

// SnapshotStore is the read side of the snapshot repository, used to
// serve last-known-good series when KOSIS is unavailable.
type SnapshotStore interface {
	Load(ctx context.Context, code string) (core.Series, time.Time, error)
	Ping(ctx context.Context) error
}

// RefreshPublisher enqueues a refresh request for the worker.
type RefreshPublisher interface {
	PublishRefresh(ctx context.Context, code, reason string) error
}

// Options collects the server's dependencies. Snapshots and Publisher
// are optional; without them upstream failures surface as errors.
type Options struct {
	Addr      string
	Catalog   *catalog.Catalog
	Engine    *core.Engine
	Fetcher   kosis.Fetcher
	Snapshots SnapshotStore
	Publisher RefreshPublisher
	APIKey    string
	StartYear string
	CacheSize int
	CacheTTL  time.Duration
	Logger    *log.Logger
}

type Server struct {
	http.Server
	catalog   *catalog.Catalog
	engine    *core.Engine
	fetcher   kosis.Fetcher
	snapshots SnapshotStore
	publisher RefreshPublisher
	apiKey    string
	startYear string
	logger    *log.Logger

	rateLimiter    *rateLimiter
	inflationCache *cache.LRUCache[inflationResponse]

	stopCacheCleanup chan struct{}
	shutdownOnce     sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server.
func NewServer(opts Options) *Server {
	mux := http.NewServeMux()

	cacheSize := opts.CacheSize
	if cacheSize < 1 {
		cacheSize = 300
	}
	cacheTTL := opts.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 6 * time.Hour
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}

	s := &Server{
		Server: http.Server{
			Addr:    opts.Addr,
			Handler: mux,
		},
		catalog:          opts.Catalog,
		engine:           opts.Engine,
		fetcher:          opts.Fetcher,
		snapshots:        opts.Snapshots,
		publisher:        opts.Publisher,
		apiKey:           opts.APIKey,
		startYear:        opts.StartYear,
		logger:           logger.WithComponent(log.ComponentHTTP),
		rateLimiter:      newRateLimiter(120),
		inflationCache:   cache.NewLRUCache[inflationResponse](cacheSize, cacheTTL),
		stopCacheCleanup: make(chan struct{}),
	}

	go s.startCacheCleanup()

	mux.HandleFunc("/api/inflation", s.withSecurityHeaders(s.handleInflation))
	mux.HandleFunc("/api/affordability", s.withSecurityHeaders(s.handleAffordability))
	mux.HandleFunc("/api/items", s.withSecurityHeaders(s.handleItems))
	mux.HandleFunc("/api/categories", s.withSecurityHeaders(s.handleCategories))
	mux.HandleFunc("/api/regional", s.withSecurityHeaders(s.handleRegional))
	mux.HandleFunc("/api/macro/minimum-wage", s.withSecurityHeaders(s.handleMinimumWage))
	mux.HandleFunc("/api/macro/cpi", s.withSecurityHeaders(s.handleCPI))
	mux.HandleFunc("/api/macro/gdp", s.withSecurityHeaders(s.handleGDP))
	mux.HandleFunc("/api/macro/employment", s.withSecurityHeaders(s.handleEmployment))
	mux.HandleFunc("/api/macro/average-wage", s.withSecurityHeaders(s.handleAverageWage))
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)

	return s
}

// startCacheCleanup runs periodic cleanup for the response cache.
func (s *Server) startCacheCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if cleaned := s.inflationCache.CleanExpired(); cleaned > 0 {
				s.logger.Debug("Cache cleanup completed", "entries_removed", cleaned)
			}
		case <-s.stopCacheCleanup:
			return
		}
	}
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.stopCacheCleanup != nil {
			close(s.stopCacheCleanup)
		}
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

// withSecurityHeaders adds security headers, rate limiting, and request
// logging to responses.
func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := extractClientIP(r)
		requestID := generateRequestID()

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		s.logger.InfoContext(ctx, "Request started",
			log.FieldRequestID, requestID,
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldClientIP, clientIP)

		if !s.rateLimiter.allow(clientIP) {
			s.logger.WarnContext(ctx, "Rate limit exceeded",
				log.FieldClientIP, clientIP,
				log.FieldPath, r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "요청이 너무 많습니다. 잠시 후 다시 시도해주세요.")
			return
		}

		if r.Method != http.MethodGet {
			w.Header().Set("Allow", "GET")
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		s.logger.InfoContext(ctx, "Request completed",
			log.FieldRequestID, requestID,
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldStatusCode, rw.statusCode,
			log.FieldDuration, time.Since(start).Milliseconds(),
			log.FieldClientIP, clientIP)
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.apiKey == "" {
		writeError(w, http.StatusServiceUnavailable, errMissingAPIKey)
		return
	}
	if s.snapshots != nil {
		if err := s.snapshots.Ping(r.Context()); err != nil {
			s.logger.ErrorContext(r.Context(), "Snapshot store unreachable", log.FieldError, err.Error())
			writeError(w, http.StatusServiceUnavailable, "저장소에 연결할 수 없습니다.")
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
