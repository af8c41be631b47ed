// Package httpapi serves the assembled view tables over HTTP for the
// presentation layer to consume.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"playscope/internal/model"
	"playscope/internal/pipeline"
)

// Server exposes the three views over HTTP. Records are loaded once at
// startup and held immutable; every request recomputes its view from them,
// so gate state always reflects the request's moment in time.
type Server struct {
	addr     string
	records  []model.AppRecord
	pipeline *pipeline.Pipeline
	now      func() time.Time
	logger   *zap.Logger
	router   chi.Router
	httpSrv  *http.Server
}

// New constructs the server. now supplies the gating timestamp and defaults
// to time.Now; tests inject a fixed clock.
func New(addr string, records []model.AppRecord, p *pipeline.Pipeline, now func() time.Time, logger *zap.Logger) *Server {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	s := &Server{
		addr:     addr,
		records:  records,
		pipeline: p,
		now:      now,
		logger:   logger,
		router:   r,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Route("/views", func(r chi.Router) {
		r.Get("/", s.handleReport)
		r.Get("/scatter", s.handleScatter)
		r.Get("/choropleth", s.handleChoropleth)
		r.Get("/timeseries", s.handleTimeSeries)
	})
}

// Handler returns the router, for tests driving the server with httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	s.logger.Info("http server start", zap.String("addr", s.addr), zap.Int("records", len(s.records)))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.httpSrv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, s.pipeline.Run(s.records, s.now()))
}

func (s *Server) handleScatter(w http.ResponseWriter, r *http.Request) {
	report := s.pipeline.Run(s.records, s.now())
	s.respondJSON(w, report.Scatter)
}

// Closed gates respond 200 with the closed marker: unavailability is a state
// of the view, not a request error.
func (s *Server) handleChoropleth(w http.ResponseWriter, r *http.Request) {
	report := s.pipeline.Run(s.records, s.now())
	s.respondJSON(w, report.Choropleth)
}

func (s *Server) handleTimeSeries(w http.ResponseWriter, r *http.Request) {
	report := s.pipeline.Run(s.records, s.now())
	s.respondJSON(w, report.TimeSeries)
}

func (s *Server) respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("encode response", zap.Error(err))
	}
}
