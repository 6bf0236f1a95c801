package service_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdotbuilder/elegant-wedding-invitation/internal/domain"
	"github.com/appdotbuilder/elegant-wedding-invitation/internal/service"
	"github.com/appdotbuilder/elegant-wedding-invitation/pkg/events"
)

type fakePhotoRepo struct {
	photos []domain.WeddingPhoto
	nextID int64
	clock  time.Time
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{nextID: 1, clock: time.Now()}
}

func (f *fakePhotoRepo) Create(_ context.Context, req *domain.CreateWeddingPhotoRequest) (*domain.WeddingPhoto, error) {
	// Monotonic timestamps so ordering assertions are deterministic.
	f.clock = f.clock.Add(time.Second)
	photo := domain.WeddingPhoto{
		ID:           f.nextID,
		URL:          req.URL,
		AltText:      req.AltText,
		IsMainPhoto:  req.IsMainPhoto,
		GalleryOrder: req.GalleryOrder,
		CreatedAt:    f.clock,
	}
	f.nextID++
	f.photos = append(f.photos, photo)
	return &photo, nil
}

// ListAll mirrors ORDER BY is_main_photo DESC, gallery_order ASC NULLS LAST,
// created_at DESC.
func (f *fakePhotoRepo) ListAll(_ context.Context) ([]domain.WeddingPhoto, error) {
	out := append([]domain.WeddingPhoto(nil), f.photos...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsMainPhoto != out[j].IsMainPhoto {
			return out[i].IsMainPhoto
		}
		if c := compareGalleryOrder(out[i].GalleryOrder, out[j].GalleryOrder); c != 0 {
			return c < 0
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ListGallery mirrors WHERE is_main_photo = false ORDER BY gallery_order ASC
// NULLS LAST, created_at ASC.
func (f *fakePhotoRepo) ListGallery(_ context.Context) ([]domain.WeddingPhoto, error) {
	var out []domain.WeddingPhoto
	for _, p := range f.photos {
		if !p.IsMainPhoto {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if c := compareGalleryOrder(out[i].GalleryOrder, out[j].GalleryOrder); c != 0 {
			return c < 0
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakePhotoRepo) GetMain(_ context.Context) (*domain.WeddingPhoto, error) {
	for i := range f.photos {
		if f.photos[i].IsMainPhoto {
			p := f.photos[i]
			return &p, nil
		}
	}
	return nil, nil
}

func compareGalleryOrder(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return *a - *b
	}
}

func TestCreatePhoto(t *testing.T) {
	ctx := context.Background()
	svc := service.NewPhotoService(newFakePhotoRepo(), events.NoopPublisher{})

	t.Run("stores url and flags", func(t *testing.T) {
		photo, err := svc.CreatePhoto(ctx, &domain.CreateWeddingPhotoRequest{
			URL:         "https://cdn.example.com/couple.jpg",
			AltText:     strPtr("The couple"),
			IsMainPhoto: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/couple.jpg", photo.URL)
		assert.True(t, photo.IsMainPhoto)
		assert.Nil(t, photo.GalleryOrder)
	})

	t.Run("rejects empty url", func(t *testing.T) {
		_, err := svc.CreatePhoto(ctx, &domain.CreateWeddingPhotoRequest{URL: ""})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects malformed url", func(t *testing.T) {
		_, err := svc.CreatePhoto(ctx, &domain.CreateWeddingPhotoRequest{URL: "couple.jpg"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestPhotoListings(t *testing.T) {
	ctx := context.Background()
	repo := newFakePhotoRepo()
	svc := service.NewPhotoService(repo, events.NoopPublisher{})

	seed := []domain.CreateWeddingPhotoRequest{
		{URL: "https://cdn.example.com/1.jpg", GalleryOrder: intPtr(2)},
		{URL: "https://cdn.example.com/2.jpg"},
		{URL: "https://cdn.example.com/3.jpg", IsMainPhoto: true},
		{URL: "https://cdn.example.com/4.jpg", GalleryOrder: intPtr(1)},
		{URL: "https://cdn.example.com/5.jpg"},
	}
	for i := range seed {
		_, err := svc.CreatePhoto(ctx, &seed[i])
		require.NoError(t, err)
	}

	urls := func(photos []domain.WeddingPhoto) []string {
		out := make([]string, len(photos))
		for i, p := range photos {
			out[i] = p.URL
		}
		return out
	}

	t.Run("full listing puts main first then ordered then newest", func(t *testing.T) {
		photos, err := svc.ListPhotos(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://cdn.example.com/3.jpg",
			"https://cdn.example.com/4.jpg",
			"https://cdn.example.com/1.jpg",
			"https://cdn.example.com/5.jpg",
			"https://cdn.example.com/2.jpg",
		}, urls(photos))
	})

	t.Run("gallery listing excludes main and ties break oldest first", func(t *testing.T) {
		photos, err := svc.ListGalleryPhotos(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://cdn.example.com/4.jpg",
			"https://cdn.example.com/1.jpg",
			"https://cdn.example.com/2.jpg",
			"https://cdn.example.com/5.jpg",
		}, urls(photos))
	})

	t.Run("main photo lookup", func(t *testing.T) {
		main, err := svc.GetMainPhoto(ctx)
		require.NoError(t, err)
		require.NotNil(t, main)
		assert.Equal(t, "https://cdn.example.com/3.jpg", main.URL)
	})

	t.Run("main photo lookup with none flagged", func(t *testing.T) {
		empty := service.NewPhotoService(newFakePhotoRepo(), events.NoopPublisher{})
		main, err := empty.GetMainPhoto(ctx)
		require.NoError(t, err)
		assert.Nil(t, main)
	})
}
