package api

import (
	"bytes"
	"net/http"

	"github.com/okian/scatterviz/internal/adapters/render"
)

// ChartHandler serves rendered charts.
type ChartHandler struct {
	deps Dependencies
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(deps Dependencies) *ChartHandler {
	return &ChartHandler{deps: deps}
}

// HandleGetChart handles GET /datasets/{id}/chart?variant=&format= requests.
// The chart is rendered into memory first so a failure never leaves a
// partial image on the wire.
func (h *ChartHandler) HandleGetChart(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingDataID)
		return
	}
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = render.FormatSVG
	}
	renderer, err := h.deps.Renderer(format)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := h.deps.Render(r.Context(), &buf, id, q.Get("variant"), renderer.Format()); err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
