// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/vizboard/internal/domain/kind"
	"github.com/okian/vizboard/internal/domain/ports"
	"github.com/okian/vizboard/pkg/logger"
)

// DataHandler serves chart data.
type DataHandler struct {
	deps   ports.VisualizationService
	logger logger.Logger
}

// NewDataHandler creates a new data handler.
func NewDataHandler(deps ports.VisualizationService, l logger.Logger) *DataHandler {
	if l == nil {
		l = logger.OrNop()
	}
	return &DataHandler{deps: deps, logger: l}
}

// HandleGetData handles GET /api/data requests.
func (h *DataHandler) HandleGetData(w http.ResponseWriter, r *http.Request) {
	data, err := h.deps.GetVisualizationData(r.Context())
	if err != nil {
		status, detail := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error(r.Context(), "get visualization data failed", logger.Error(err))
		}
		writeDetail(w, status, detail)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// statusFor maps an error kind to a status and a client-safe detail.
// Unclassified errors never leak their text.
func statusFor(err error) (int, string) {
	switch kind.Of(err) {
	case kind.NotFound:
		return http.StatusNotFound, kind.Message(err)
	case kind.Validation:
		return http.StatusUnprocessableEntity, kind.Message(err)
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
