package service

import (
	"context"
	"fmt"

	"github.com/appdotbuilder/elegant-wedding-invitation/internal/domain"
	"github.com/appdotbuilder/elegant-wedding-invitation/internal/repository"
	"github.com/appdotbuilder/elegant-wedding-invitation/pkg/events"
	"github.com/appdotbuilder/elegant-wedding-invitation/pkg/logger"
)

type GuestService interface {
	CreateGuest(ctx context.Context, req *domain.CreateGuestRequest) (*domain.Guest, error)
	GetGuestByName(ctx context.Context, name string) (*domain.Guest, error)
	ListGuestsWithRsvps(ctx context.Context) ([]domain.GuestWithRSVP, error)
}

type guestService struct {
	guestRepo repository.GuestRepository
	publisher events.Publisher
}

func NewGuestService(guestRepo repository.GuestRepository, publisher events.Publisher) GuestService {
	return &guestService{
		guestRepo: guestRepo,
		publisher: publisher,
	}
}

// CreateGuest registers a new invitee. There is deliberately no duplicate
// check: two visitors typing the same name get two guest records.
func (s *guestService) CreateGuest(ctx context.Context, req *domain.CreateGuestRequest) (*domain.Guest, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	guest, err := s.guestRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}

	event := events.GuestCreatedEvent{
		GuestID:   guest.ID,
		Name:      guest.Name,
		CreatedAt: guest.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, events.GuestCreated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish guest created event", "error", err, "guest_id", guest.ID)
	}

	return guest, nil
}

// GetGuestByName re-identifies a returning visitor by the name they typed.
// Returns nil when nothing matches; no secret is checked, this is not
// authentication.
func (s *guestService) GetGuestByName(ctx context.Context, name string) (*domain.Guest, error) {
	return s.guestRepo.FindByName(ctx, name)
}

func (s *guestService) ListGuestsWithRsvps(ctx context.Context) ([]domain.GuestWithRSVP, error) {
	return s.guestRepo.ListWithRsvps(ctx)
}
