package api

import (
	"net/http"

	"github.com/okian/scatterviz/internal/domain/model"
)

// PointsHandler serves encoded visual points.
type PointsHandler struct {
	deps Dependencies
}

// NewPointsHandler creates a new points handler.
func NewPointsHandler(deps Dependencies) *PointsHandler {
	return &PointsHandler{deps: deps}
}

type pointsResponse struct {
	ID      string              `json:"id"`
	Variant string              `json:"variant,omitempty"`
	Points  []model.VisualPoint `json:"points"`
}

// HandleGetPoints handles GET /datasets/{id}/points?variant= requests.
func (h *PointsHandler) HandleGetPoints(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingDataID)
		return
	}
	name := r.URL.Query().Get("variant")

	points, err := h.deps.Encode(r.Context(), id, name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pointsResponse{ID: id, Variant: name, Points: points})
}
