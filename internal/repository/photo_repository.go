package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/appdotbuilder/elegant-wedding-invitation/internal/domain"
)

type PhotoRepository interface {
	Create(ctx context.Context, req *domain.CreateWeddingPhotoRequest) (*domain.WeddingPhoto, error)
	ListAll(ctx context.Context) ([]domain.WeddingPhoto, error)
	ListGallery(ctx context.Context) ([]domain.WeddingPhoto, error)
	GetMain(ctx context.Context) (*domain.WeddingPhoto, error)
}

type photoRepository struct {
	pool *pgxpool.Pool
}

func NewPhotoRepository(pool *pgxpool.Pool) PhotoRepository {
	return &photoRepository{pool: pool}
}

const photoCols = `id, url, alt_text, is_main_photo, gallery_order, created_at`

func (r *photoRepository) Create(ctx context.Context, req *domain.CreateWeddingPhotoRequest) (*domain.WeddingPhoto, error) {
	const q = `INSERT INTO wedding_photos (url, alt_text, is_main_photo, gallery_order)
	VALUES ($1, $2, $3, $4)
	RETURNING ` + photoCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var p domain.WeddingPhoto
	err := r.pool.QueryRow(ctx, q, req.URL, req.AltText, req.IsMainPhoto, req.GalleryOrder).Scan(
		&p.ID, &p.URL, &p.AltText, &p.IsMainPhoto, &p.GalleryOrder, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListAll orders main photos first, then by gallery position with unordered
// photos last, newest first as the final tiebreak.
func (r *photoRepository) ListAll(ctx context.Context) ([]domain.WeddingPhoto, error) {
	const q = `SELECT ` + photoCols + ` FROM wedding_photos
	ORDER BY is_main_photo DESC, gallery_order ASC NULLS LAST, created_at DESC`
	return r.list(ctx, q)
}

// ListGallery returns only non-main photos, ordered by gallery position with
// unordered photos last, oldest first as the final tiebreak.
func (r *photoRepository) ListGallery(ctx context.Context) ([]domain.WeddingPhoto, error) {
	const q = `SELECT ` + photoCols + ` FROM wedding_photos
	WHERE is_main_photo = false
	ORDER BY gallery_order ASC NULLS LAST, created_at ASC`
	return r.list(ctx, q)
}

func (r *photoRepository) list(ctx context.Context, q string) ([]domain.WeddingPhoto, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []domain.WeddingPhoto
	for rows.Next() {
		var p domain.WeddingPhoto
		if err := rows.Scan(
			&p.ID, &p.URL, &p.AltText, &p.IsMainPhoto, &p.GalleryOrder, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

// GetMain returns one photo flagged as main, arbitrary if several are.
func (r *photoRepository) GetMain(ctx context.Context) (*domain.WeddingPhoto, error) {
	const q = `SELECT ` + photoCols + ` FROM wedding_photos WHERE is_main_photo = true LIMIT 1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var p domain.WeddingPhoto
	err := r.pool.QueryRow(ctx, q).Scan(
		&p.ID, &p.URL, &p.AltText, &p.IsMainPhoto, &p.GalleryOrder, &p.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &p, err
}
