package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/appdotbuilder/elegant-wedding-invitation/internal/domain"
	"github.com/appdotbuilder/elegant-wedding-invitation/internal/http/response"
)

// CreateRsvp records a guest's attendance response. Fails with 404 when the
// guest does not exist and 409 when the guest already responded.
func (h *Handlers) CreateRsvp(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRsvpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	rsvp, err := h.rsvpService.CreateRsvp(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, rsvp)
}

// UpdateRsvp applies a partial update to an existing RSVP.
func (h *Handlers) UpdateRsvp(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid rsvp id")
		return
	}

	var req domain.UpdateRsvpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	rsvp, err := h.rsvpService.UpdateRsvp(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rsvp)
}

// GetRsvpByGuest responds 200 with a JSON null body when the guest has no
// RSVP, including when the guest id itself is unknown.
func (h *Handlers) GetRsvpByGuest(w http.ResponseWriter, r *http.Request) {
	guestID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid guest id")
		return
	}

	rsvp, err := h.rsvpService.GetRsvpByGuest(r.Context(), guestID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rsvp)
}
