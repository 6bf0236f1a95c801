package service

import (
	"context"
	"fmt"

	"github.com/appdotbuilder/elegant-wedding-invitation/internal/domain"
	"github.com/appdotbuilder/elegant-wedding-invitation/internal/repository"
	"github.com/appdotbuilder/elegant-wedding-invitation/pkg/events"
	"github.com/appdotbuilder/elegant-wedding-invitation/pkg/logger"
)

type WeddingInfoService interface {
	GetWeddingInfo(ctx context.Context) (*domain.WeddingInfo, error)
	UpdateWeddingInfo(ctx context.Context, req *domain.UpdateWeddingInfoRequest) (*domain.WeddingInfo, error)
}

type weddingInfoService struct {
	infoRepo  repository.WeddingInfoRepository
	publisher events.Publisher
}

func NewWeddingInfoService(infoRepo repository.WeddingInfoRepository, publisher events.Publisher) WeddingInfoService {
	return &weddingInfoService{
		infoRepo:  infoRepo,
		publisher: publisher,
	}
}

func (s *weddingInfoService) GetWeddingInfo(ctx context.Context) (*domain.WeddingInfo, error) {
	return s.infoRepo.Get(ctx)
}

// UpdateWeddingInfo patches the singleton profile. The record is seeded
// out-of-band; updating before it exists is an error.
func (s *weddingInfoService) UpdateWeddingInfo(ctx context.Context, req *domain.UpdateWeddingInfoRequest) (*domain.WeddingInfo, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	info, err := s.infoRepo.Update(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update wedding info: %w", err)
	}
	if info == nil {
		return nil, domain.ErrWeddingInfoNotFound
	}

	event := events.WeddingInfoUpdatedEvent{UpdatedAt: info.UpdatedAt}
	if err := s.publisher.Publish(ctx, events.WeddingInfoUpdated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish wedding info updated event", "error", err)
	}

	return info, nil
}
