package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/appdotbuilder/elegant-wedding-invitation/internal/domain"
	"github.com/appdotbuilder/elegant-wedding-invitation/internal/http/response"
)

// GetWeddingInfo returns the singleton profile, or a JSON null body when it
// has not been seeded yet.
func (h *Handlers) GetWeddingInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.infoService.GetWeddingInfo(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// UpdateWeddingInfo patches the singleton profile.
func (h *Handlers) UpdateWeddingInfo(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateWeddingInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	info, err := h.infoService.UpdateWeddingInfo(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, info)
}
