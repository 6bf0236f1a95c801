package service

import (
	"context"
	"fmt"

	"github.com/appdotbuilder/elegant-wedding-invitation/internal/domain"
	"github.com/appdotbuilder/elegant-wedding-invitation/internal/mailer"
	"github.com/appdotbuilder/elegant-wedding-invitation/internal/repository"
	"github.com/appdotbuilder/elegant-wedding-invitation/pkg/events"
	"github.com/appdotbuilder/elegant-wedding-invitation/pkg/logger"
)

type RsvpService interface {
	CreateRsvp(ctx context.Context, req *domain.CreateRsvpRequest) (*domain.RSVP, error)
	UpdateRsvp(ctx context.Context, id int64, req *domain.UpdateRsvpRequest) (*domain.RSVP, error)
	GetRsvpByGuest(ctx context.Context, guestID int64) (*domain.RSVP, error)
}

type rsvpService struct {
	rsvpRepo  repository.RsvpRepository
	guestRepo repository.GuestRepository
	publisher events.Publisher
	mail      mailer.Service
}

func NewRsvpService(
	rsvpRepo repository.RsvpRepository,
	guestRepo repository.GuestRepository,
	publisher events.Publisher,
	mail mailer.Service,
) RsvpService {
	return &rsvpService{
		rsvpRepo:  rsvpRepo,
		guestRepo: guestRepo,
		publisher: publisher,
		mail:      mail,
	}
}

// CreateRsvp records a guest's first response. The insert is atomic: the
// repository relies on the guest foreign key and the unique constraint on
// guest_id, so a missing guest or an existing RSVP surfaces as a domain
// error without a separate read.
func (s *rsvpService) CreateRsvp(ctx context.Context, req *domain.CreateRsvpRequest) (*domain.RSVP, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	rsvp, err := s.rsvpRepo.Create(ctx, req)
	if err != nil {
		if err == domain.ErrGuestNotFound {
			return nil, fmt.Errorf("guest with id %d: %w", req.GuestID, err)
		}
		if err == domain.ErrRSVPExists {
			return nil, fmt.Errorf("guest %d: %w", req.GuestID, err)
		}
		return nil, fmt.Errorf("failed to create rsvp: %w", err)
	}

	event := events.RsvpCreatedEvent{
		RsvpID:         rsvp.ID,
		GuestID:        rsvp.GuestID,
		WillAttend:     rsvp.WillAttend,
		NumberOfGuests: rsvp.NumberOfGuests,
		CreatedAt:      rsvp.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, events.RsvpCreated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish rsvp created event", "error", err, "rsvp_id", rsvp.ID)
	}

	s.sendConfirmation(ctx, rsvp)

	return rsvp, nil
}

// sendConfirmation emails the guest when an address is on file. Best effort:
// a mail failure never fails the RSVP.
func (s *rsvpService) sendConfirmation(ctx context.Context, rsvp *domain.RSVP) {
	guest, err := s.guestRepo.GetByID(ctx, rsvp.GuestID)
	if err != nil || guest == nil || guest.Email == nil {
		return
	}
	if err := s.mail.SendRsvpConfirmation(*guest.Email, guest.Name, rsvp.WillAttend, rsvp.NumberOfGuests); err != nil {
		logger.ErrorContext(ctx, "Failed to send rsvp confirmation", "error", err, "guest_id", guest.ID)
	}
}

// UpdateRsvp applies a partial update. An empty patch is still a meaningful
// event (the guest reconfirmed) and bumps updated_at.
func (s *rsvpService) UpdateRsvp(ctx context.Context, id int64, req *domain.UpdateRsvpRequest) (*domain.RSVP, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	rsvp, err := s.rsvpRepo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update rsvp: %w", err)
	}
	if rsvp == nil {
		return nil, fmt.Errorf("rsvp with id %d: %w", id, domain.ErrRSVPNotFound)
	}

	event := events.RsvpUpdatedEvent{
		RsvpID:     rsvp.ID,
		GuestID:    rsvp.GuestID,
		WillAttend: rsvp.WillAttend,
		UpdatedAt:  rsvp.UpdatedAt,
	}
	if err := s.publisher.Publish(ctx, events.RsvpUpdated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish rsvp updated event", "error", err, "rsvp_id", rsvp.ID)
	}

	return rsvp, nil
}

// GetRsvpByGuest is deliberately permissive: an unknown guest id yields nil,
// not an error.
func (s *rsvpService) GetRsvpByGuest(ctx context.Context, guestID int64) (*domain.RSVP, error) {
	return s.rsvpRepo.GetByGuestID(ctx, guestID)
}
