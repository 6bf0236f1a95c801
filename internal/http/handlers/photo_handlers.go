package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/appdotbuilder/elegant-wedding-invitation/internal/domain"
	"github.com/appdotbuilder/elegant-wedding-invitation/internal/http/response"
)

// ListPhotos returns every photo, main photos first.
func (h *Handlers) ListPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := h.photoService.ListPhotos(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if photos == nil {
		photos = []domain.WeddingPhoto{}
	}

	writeJSON(w, http.StatusOK, photos)
}

// GetMainPhoto returns one main photo, or a JSON null body when none is
// flagged.
func (h *Handlers) GetMainPhoto(w http.ResponseWriter, r *http.Request) {
	photo, err := h.photoService.GetMainPhoto(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, photo)
}

// ListGalleryPhotos returns the non-main photos in gallery order.
func (h *Handlers) ListGalleryPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := h.photoService.ListGalleryPhotos(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if photos == nil {
		photos = []domain.WeddingPhoto{}
	}

	writeJSON(w, http.StatusOK, photos)
}

// CreatePhoto registers an externally hosted image.
func (h *Handlers) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateWeddingPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	photo, err := h.photoService.CreatePhoto(r.Context(), &req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, photo)
}
