// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/vizboard/internal/domain/ports"
	"github.com/okian/vizboard/pkg/logger"
	"github.com/okian/vizboard/pkg/metrics"
)

// BasePath prefixes every business route.
const BasePath = "/api"

// Server wires HTTP routes for the business API.
type Server struct {
	logger      logger.Logger
	corsOrigins []string

	healthHandler *HealthHandler
	dataHandler   *DataHandler
	infoHandler   *InfoHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(svc ports.VisualizationService, opts ...Option) *Server {
	if svc == nil {
		panic("api: nil visualization service")
	}
	s := &Server{
		logger:      logger.OrNop(),
		corsOrigins: []string{"*"},
		infoHandler: NewInfoHandler("", ""),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.healthHandler = NewHealthHandler()
	s.dataHandler = NewDataHandler(svc, s.logger)
	return s
}

// Router returns a root router with the middleware stack, the /api routes
// and /metrics. Callers may mount more routes (docs, static site) on it.
func (s *Server) Router(ctx context.Context) *chi.Mux {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Recoverer(s.logger))
	r.Use(CORS(s.corsOrigins))
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	s.Register(ctx, r)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	return r
}

// Register attaches the /api routes to r.
func (s *Server) Register(_ context.Context, r chi.Router) {
	if r == nil {
		panic("router is nil")
	}
	r.Route(BasePath, func(r chi.Router) {
		r.NotFound(notFound)
		r.MethodNotAllowed(methodNotAllowed)
		r.Get("/health", MetricsMiddleware(s.healthHandler.HandleHealth, "health"))
		r.Get("/data", MetricsMiddleware(s.dataHandler.HandleGetData, "data"))
		r.Get("/info", MetricsMiddleware(s.infoHandler.HandleInfo, "info"))
	})
}

// detailResponse is the error body shape shared by every route.
type detailResponse struct {
	Detail string `json:"detail"`
}

// writeJSON encodes v before touching the response so an encoding failure
// can still produce a clean 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		writeFallback(w, fmt.Errorf("%w: encode response: %w", ErrInternal, err))
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	if detail == "" {
		detail = http.StatusText(status)
	}
	writeJSON(w, status, detailResponse{Detail: detail})
}

// writeFallback is used when JSON encoding itself failed.
func writeFallback(w http.ResponseWriter, err error) {
	logger.OrNop().Error(context.Background(), "write response failed", logger.Error(err))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`{"detail":"` + msgInternal + `"}` + "\n"))
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeDetail(w, http.StatusNotFound, msgNotFound)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeDetail(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
