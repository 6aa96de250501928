// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/okian/scatterviz/internal/adapters/render"
	repository "github.com/okian/scatterviz/internal/adapters/repository"
	"github.com/okian/scatterviz/internal/domain/dataset"
	"github.com/okian/scatterviz/internal/domain/encoding"
	"github.com/okian/scatterviz/internal/domain/model"
	"github.com/okian/scatterviz/internal/domain/variant"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	AddDataset(ctx context.Context, ds model.Dataset) (model.Dataset, error)
	Datasets(ctx context.Context) []repository.Summary
	Encode(ctx context.Context, id, variantName string) ([]model.VisualPoint, error)
	Render(ctx context.Context, w io.Writer, id, variantName, format string) error
	Renderer(format string) (render.Renderer, error)
}

// Summary mirrors the read shape returned by dataset listings.
type Summary = repository.Summary

// Server wires HTTP routes for the chart API.
type Server struct {
	healthHandler   *HealthHandler
	datasetsHandler *DatasetsHandler
	pointsHandler   *PointsHandler
	chartHandler    *ChartHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		datasetsHandler: NewDatasetsHandler(deps),
		pointsHandler:   NewPointsHandler(deps),
		chartHandler:    NewChartHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /datasets", MetricsMiddleware(s.datasetsHandler.HandleList, "datasets"))
	mux.HandleFunc("POST /datasets", MetricsMiddleware(s.datasetsHandler.HandleCreate, "datasets"))
	mux.HandleFunc("GET /datasets/{id}/points", MetricsMiddleware(s.pointsHandler.HandleGetPoints, "points"))
	mux.HandleFunc("GET /datasets/{id}/chart", MetricsMiddleware(s.chartHandler.HandleGetChart, "chart"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError translates domain errors into status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, repository.ErrFull):
		writeError(w, http.StatusInsufficientStorage, "store_full", err)
	case errors.Is(err, encoding.ErrInvalidScale),
		errors.Is(err, encoding.ErrInvalidMargin),
		errors.Is(err, encoding.ErrAttributeMismatch):
		writeError(w, http.StatusUnprocessableEntity, "unprocessable", err)
	case errors.Is(err, variant.ErrUnknownVariant),
		errors.Is(err, render.ErrUnsupportedFormat),
		errors.Is(err, dataset.ErrInvalidDataset):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
