package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/appdotbuilder/elegant-wedding-invitation/internal/domain"
)

type GuestRepository interface {
	Create(ctx context.Context, req *domain.CreateGuestRequest) (*domain.Guest, error)
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
	FindByName(ctx context.Context, name string) (*domain.Guest, error)
	ListWithRsvps(ctx context.Context) ([]domain.GuestWithRSVP, error)
}

type guestRepository struct {
	pool *pgxpool.Pool
}

func NewGuestRepository(pool *pgxpool.Pool) GuestRepository {
	return &guestRepository{pool: pool}
}

const guestCols = `id, name, email, phone, created_at`

func (r *guestRepository) Create(ctx context.Context, req *domain.CreateGuestRequest) (*domain.Guest, error) {
	const q = `INSERT INTO guests (name, email, phone)
	VALUES ($1, $2, $3)
	RETURNING ` + guestCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var g domain.Guest
	err := r.pool.QueryRow(ctx, q, req.Name, req.Email, req.Phone).Scan(
		&g.ID, &g.Name, &g.Email, &g.Phone, &g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *guestRepository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	const q = `SELECT ` + guestCols + ` FROM guests WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var g domain.Guest
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&g.ID, &g.Name, &g.Email, &g.Phone, &g.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &g, err
}

// FindByName matches exactly, case-sensitive, whitespace and all. If several
// guests share the name an arbitrary one is returned.
func (r *guestRepository) FindByName(ctx context.Context, name string) (*domain.Guest, error) {
	const q = `SELECT ` + guestCols + ` FROM guests WHERE name=$1 LIMIT 1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var g domain.Guest
	err := r.pool.QueryRow(ctx, q, name).Scan(
		&g.ID, &g.Name, &g.Email, &g.Phone, &g.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &g, err
}

// ListWithRsvps returns every guest with their RSVP attached when one
// exists. Left-join semantics: guests without an RSVP still appear.
func (r *guestRepository) ListWithRsvps(ctx context.Context) ([]domain.GuestWithRSVP, error) {
	const q = `SELECT g.id, g.name, g.email, g.phone, g.created_at,
		r.id, r.guest_id, r.will_attend, r.number_of_guests, r.message, r.created_at, r.updated_at
	FROM guests g
	LEFT JOIN rsvps r ON r.guest_id = g.id`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guests []domain.GuestWithRSVP
	for rows.Next() {
		var gw domain.GuestWithRSVP
		var (
			rsvpID         *int64
			rsvpGuestID    *int64
			willAttend     *bool
			numberOfGuests *int
			message        *string
			createdAt      *time.Time
			updatedAt      *time.Time
		)
		if err := rows.Scan(
			&gw.ID, &gw.Name, &gw.Email, &gw.Phone, &gw.CreatedAt,
			&rsvpID, &rsvpGuestID, &willAttend, &numberOfGuests, &message, &createdAt, &updatedAt,
		); err != nil {
			return nil, err
		}
		if rsvpID != nil {
			gw.RSVP = &domain.RSVP{
				ID:             *rsvpID,
				GuestID:        *rsvpGuestID,
				WillAttend:     *willAttend,
				NumberOfGuests: *numberOfGuests,
				Message:        message,
				CreatedAt:      *createdAt,
				UpdatedAt:      *updatedAt,
			}
		}
		guests = append(guests, gw)
	}
	return guests, rows.Err()
}
