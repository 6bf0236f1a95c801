package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/appdotbuilder/elegant-wedding-invitation/internal/domain"
	"github.com/appdotbuilder/elegant-wedding-invitation/internal/http/response"
	"github.com/appdotbuilder/elegant-wedding-invitation/internal/service"
	"github.com/appdotbuilder/elegant-wedding-invitation/pkg/logger"
)

type Handlers struct {
	guestService service.GuestService
	rsvpService  service.RsvpService
	infoService  service.WeddingInfoService
	photoService service.PhotoService
}

func New(
	guestService service.GuestService,
	rsvpService service.RsvpService,
	infoService service.WeddingInfoService,
	photoService service.PhotoService,
) *Handlers {
	return &Handlers{
		guestService: guestService,
		rsvpService:  rsvpService,
		infoService:  infoService,
		photoService: photoService,
	}
}

// RegisterRoutes mounts the API surface. The optional limiter wraps the
// public mutation endpoints.
func (h *Handlers) RegisterRoutes(r chi.Router, limiter func(http.Handler) http.Handler) {
	if limiter == nil {
		limiter = func(next http.Handler) http.Handler { return next }
	}

	r.Route("/guests", func(r chi.Router) {
		r.With(limiter).Post("/", h.CreateGuest)
		r.Get("/", h.ListGuests)
		r.Get("/by-name", h.GetGuestByName)
		r.Get("/{id}/rsvp", h.GetRsvpByGuest)
	})

	r.Route("/rsvps", func(r chi.Router) {
		r.With(limiter).Post("/", h.CreateRsvp)
		r.Patch("/{id}", h.UpdateRsvp)
	})

	r.Route("/wedding-info", func(r chi.Router) {
		r.Get("/", h.GetWeddingInfo)
		r.Patch("/", h.UpdateWeddingInfo)
	})

	r.Route("/photos", func(r chi.Router) {
		r.Get("/", h.ListPhotos)
		r.Get("/main", h.GetMainPhoto)
		r.Get("/gallery", h.ListGalleryPhotos)
		r.Post("/", h.CreatePhoto)
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// respondError maps domain errors onto the coded JSON envelope. Anything
// outside the taxonomy is a store failure and surfaces as a 500.
func (h *Handlers) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		response.BadRequest(w, err.Error())
	case errors.Is(err, domain.ErrGuestNotFound):
		response.WriteError(w, http.StatusNotFound, err.Error(), response.CodeGuestNotFound)
	case errors.Is(err, domain.ErrRSVPExists):
		response.Conflict(w, err.Error())
	case errors.Is(err, domain.ErrRSVPNotFound), errors.Is(err, domain.ErrWeddingInfoNotFound):
		response.NotFound(w, err.Error())
	default:
		logger.ErrorContext(r.Context(), "Request failed", "error", err, "path", r.URL.Path)
		response.InternalError(w, "internal error")
	}
}
