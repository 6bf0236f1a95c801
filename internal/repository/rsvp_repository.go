package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/appdotbuilder/elegant-wedding-invitation/internal/domain"
)

// Postgres error codes translated into domain errors on RSVP creation.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

type RsvpRepository interface {
	Create(ctx context.Context, req *domain.CreateRsvpRequest) (*domain.RSVP, error)
	GetByGuestID(ctx context.Context, guestID int64) (*domain.RSVP, error)
	Update(ctx context.Context, id int64, patch *domain.UpdateRsvpRequest) (*domain.RSVP, error)
}

type rsvpRepository struct {
	pool *pgxpool.Pool
}

func NewRsvpRepository(pool *pgxpool.Pool) RsvpRepository {
	return &rsvpRepository{pool: pool}
}

const rsvpCols = `id, guest_id, will_attend, number_of_guests, message, created_at, updated_at`

// Create inserts the RSVP in a single statement. The unique constraint on
// guest_id and the foreign key to guests make the existence and duplicate
// checks atomic; two concurrent submissions for the same guest cannot both
// succeed.
func (r *rsvpRepository) Create(ctx context.Context, req *domain.CreateRsvpRequest) (*domain.RSVP, error) {
	const q = `INSERT INTO rsvps (guest_id, will_attend, number_of_guests, message)
	VALUES ($1, $2, $3, $4)
	RETURNING ` + rsvpCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var v domain.RSVP
	err := r.pool.QueryRow(ctx, q, req.GuestID, req.WillAttend, req.NumberOfGuests, req.Message).Scan(
		&v.ID, &v.GuestID, &v.WillAttend, &v.NumberOfGuests, &v.Message, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgForeignKeyViolation:
				return nil, domain.ErrGuestNotFound
			case pgUniqueViolation:
				return nil, domain.ErrRSVPExists
			}
		}
		return nil, err
	}
	return &v, nil
}

func (r *rsvpRepository) GetByGuestID(ctx context.Context, guestID int64) (*domain.RSVP, error) {
	const q = `SELECT ` + rsvpCols + ` FROM rsvps WHERE guest_id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var v domain.RSVP
	err := r.pool.QueryRow(ctx, q, guestID).Scan(
		&v.ID, &v.GuestID, &v.WillAttend, &v.NumberOfGuests, &v.Message, &v.CreatedAt, &v.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &v, err
}

// Update overwrites only the supplied fields. updated_at is always bumped,
// even for an empty patch. The message column is written whenever the field
// was present in the request, including an explicit null.
func (r *rsvpRepository) Update(ctx context.Context, id int64, patch *domain.UpdateRsvpRequest) (*domain.RSVP, error) {
	const q = `
		UPDATE rsvps
		SET
			will_attend      = COALESCE($2, will_attend),
			number_of_guests = COALESCE($3, number_of_guests),
			message          = CASE WHEN $4 THEN $5 ELSE message END,
			updated_at       = now()
		WHERE id=$1
		RETURNING ` + rsvpCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var v domain.RSVP
	err := r.pool.QueryRow(ctx, q,
		id,
		patch.WillAttend,
		patch.NumberOfGuests,
		patch.Message.Set,
		patch.Message.Ptr(),
	).Scan(
		&v.ID, &v.GuestID, &v.WillAttend, &v.NumberOfGuests, &v.Message, &v.CreatedAt, &v.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return &v, err
}
