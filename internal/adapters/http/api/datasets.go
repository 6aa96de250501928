package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/okian/scatterviz/internal/domain/dataset"
)

// maxBodyBytes caps uploaded dataset documents.
const maxBodyBytes = 1 << 20

// DatasetsHandler lists and uploads datasets.
type DatasetsHandler struct {
	deps Dependencies
}

// NewDatasetsHandler creates a new datasets handler.
func NewDatasetsHandler(deps Dependencies) *DatasetsHandler {
	return &DatasetsHandler{deps: deps}
}

// HandleList handles GET /datasets requests.
func (h *DatasetsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Datasets(r.Context()))
}

// HandleCreate handles POST /datasets requests. The body is a JSON or YAML
// dataset document.
func (h *DatasetsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "too_large", ErrBodyTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", ErrEmptyBody)
		return
	}

	ds, err := dataset.Parse(body)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if ds.Name == "" {
		ds.Name = "upload"
	}

	stored, err := h.deps.AddDataset(r.Context(), ds)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, Summary{ID: stored.ID, Name: stored.Name, Points: len(stored.Points)})
}
