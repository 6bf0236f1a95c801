package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/appdotbuilder/elegant-wedding-invitation/internal/domain"
	"github.com/appdotbuilder/elegant-wedding-invitation/internal/http/response"
)

// CreateGuest registers a visitor entering the invitation flow.
func (h *Handlers) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	guest, err := h.guestService.CreateGuest(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, guest)
}

// GetGuestByName looks up a returning visitor. Responds 200 with a JSON null
// body when no guest matches; an absent guest is not an error.
func (h *Handlers) GetGuestByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		response.BadRequest(w, "name query parameter is required")
		return
	}

	guest, err := h.guestService.GetGuestByName(r.Context(), name)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, guest)
}

// ListGuests returns every guest with their RSVP attached when one exists.
func (h *Handlers) ListGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := h.guestService.ListGuestsWithRsvps(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if guests == nil {
		guests = []domain.GuestWithRSVP{}
	}

	writeJSON(w, http.StatusOK, guests)
}
