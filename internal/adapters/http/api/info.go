// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// InfoHandler serves the configured API title and version.
type InfoHandler struct {
	info infoResponse
}

type infoResponse struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

// NewInfoHandler creates a new info handler.
func NewInfoHandler(title, version string) *InfoHandler {
	return &InfoHandler{info: infoResponse{Title: title, Version: version}}
}

// HandleInfo handles GET /api/info requests.
func (h *InfoHandler) HandleInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.info)
}
