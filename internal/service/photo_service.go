package service

import (
	"context"
	"fmt"

	"github.com/appdotbuilder/elegant-wedding-invitation/internal/domain"
	"github.com/appdotbuilder/elegant-wedding-invitation/internal/repository"
	"github.com/appdotbuilder/elegant-wedding-invitation/pkg/events"
	"github.com/appdotbuilder/elegant-wedding-invitation/pkg/logger"
)

type PhotoService interface {
	CreatePhoto(ctx context.Context, req *domain.CreateWeddingPhotoRequest) (*domain.WeddingPhoto, error)
	ListPhotos(ctx context.Context) ([]domain.WeddingPhoto, error)
	ListGalleryPhotos(ctx context.Context) ([]domain.WeddingPhoto, error)
	GetMainPhoto(ctx context.Context) (*domain.WeddingPhoto, error)
}

type photoService struct {
	photoRepo repository.PhotoRepository
	publisher events.Publisher
}

func NewPhotoService(photoRepo repository.PhotoRepository, publisher events.Publisher) PhotoService {
	return &photoService{
		photoRepo: photoRepo,
		publisher: publisher,
	}
}

func (s *photoService) CreatePhoto(ctx context.Context, req *domain.CreateWeddingPhotoRequest) (*domain.WeddingPhoto, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	photo, err := s.photoRepo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	event := events.PhotoCreatedEvent{
		PhotoID:   photo.ID,
		URL:       photo.URL,
		IsMain:    photo.IsMainPhoto,
		CreatedAt: photo.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, events.PhotoCreated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish photo created event", "error", err, "photo_id", photo.ID)
	}

	return photo, nil
}

func (s *photoService) ListPhotos(ctx context.Context) ([]domain.WeddingPhoto, error) {
	return s.photoRepo.ListAll(ctx)
}

func (s *photoService) ListGalleryPhotos(ctx context.Context) ([]domain.WeddingPhoto, error) {
	return s.photoRepo.ListGallery(ctx)
}

func (s *photoService) GetMainPhoto(ctx context.Context) (*domain.WeddingPhoto, error) {
	return s.photoRepo.GetMain(ctx)
}
