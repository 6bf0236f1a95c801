package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/appdotbuilder/elegant-wedding-invitation/internal/domain"
)

type WeddingInfoRepository interface {
	Get(ctx context.Context) (*domain.WeddingInfo, error)
	Update(ctx context.Context, patch *domain.UpdateWeddingInfoRequest) (*domain.WeddingInfo, error)
}

type weddingInfoRepository struct {
	pool *pgxpool.Pool
}

func NewWeddingInfoRepository(pool *pgxpool.Pool) WeddingInfoRepository {
	return &weddingInfoRepository{pool: pool}
}

const weddingInfoCols = `id,
bride_full_name, bride_nickname, bride_father, bride_mother,
groom_full_name, groom_nickname, groom_father, groom_mother,
ceremony_date, ceremony_time_start, ceremony_time_end, ceremony_location,
reception_date, reception_time_start, reception_time_end, reception_location, reception_maps_url,
bank_name, account_holder, account_number,
rsvp_message, rsvp_deadline, co_invitation_message, quran_verse,
created_at, updated_at`

func scanWeddingInfo(row pgx.Row) (*domain.WeddingInfo, error) {
	var w domain.WeddingInfo
	err := row.Scan(
		&w.ID,
		&w.BrideFullName, &w.BrideNickname, &w.BrideFather, &w.BrideMother,
		&w.GroomFullName, &w.GroomNickname, &w.GroomFather, &w.GroomMother,
		&w.CeremonyDate, &w.CeremonyTimeStart, &w.CeremonyTimeEnd, &w.CeremonyLocation,
		&w.ReceptionDate, &w.ReceptionTimeStart, &w.ReceptionTimeEnd, &w.ReceptionLocation, &w.ReceptionMapsURL,
		&w.BankName, &w.AccountHolder, &w.AccountNumber,
		&w.RsvpMessage, &w.RsvpDeadline, &w.CoInvitationMessage, &w.QuranVerse,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *weddingInfoRepository) Get(ctx context.Context) (*domain.WeddingInfo, error) {
	const q = `SELECT ` + weddingInfoCols + ` FROM wedding_info WHERE id=$1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	w, err := scanWeddingInfo(r.pool.QueryRow(ctx, q, domain.WeddingInfoID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return w, err
}

// Update patches the singleton row. Returns (nil, nil) when the row has not
// been seeded yet.
func (r *weddingInfoRepository) Update(ctx context.Context, patch *domain.UpdateWeddingInfoRequest) (*domain.WeddingInfo, error) {
	const q = `
		UPDATE wedding_info
		SET
			bride_full_name       = COALESCE($2, bride_full_name),
			bride_nickname        = COALESCE($3, bride_nickname),
			bride_father          = COALESCE($4, bride_father),
			bride_mother          = COALESCE($5, bride_mother),
			groom_full_name       = COALESCE($6, groom_full_name),
			groom_nickname        = COALESCE($7, groom_nickname),
			groom_father          = COALESCE($8, groom_father),
			groom_mother          = COALESCE($9, groom_mother),
			ceremony_date         = COALESCE($10, ceremony_date),
			ceremony_time_start   = COALESCE($11, ceremony_time_start),
			ceremony_time_end     = COALESCE($12, ceremony_time_end),
			ceremony_location     = COALESCE($13, ceremony_location),
			reception_date        = COALESCE($14, reception_date),
			reception_time_start  = COALESCE($15, reception_time_start),
			reception_time_end    = COALESCE($16, reception_time_end),
			reception_location    = COALESCE($17, reception_location),
			reception_maps_url    = CASE WHEN $18 THEN $19 ELSE reception_maps_url END,
			bank_name             = COALESCE($20, bank_name),
			account_holder        = COALESCE($21, account_holder),
			account_number        = COALESCE($22, account_number),
			rsvp_message          = COALESCE($23, rsvp_message),
			rsvp_deadline         = COALESCE($24, rsvp_deadline),
			co_invitation_message = COALESCE($25, co_invitation_message),
			quran_verse           = COALESCE($26, quran_verse),
			updated_at            = now()
		WHERE id=$1
		RETURNING ` + weddingInfoCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	w, err := scanWeddingInfo(r.pool.QueryRow(ctx, q,
		domain.WeddingInfoID,
		patch.BrideFullName, patch.BrideNickname, patch.BrideFather, patch.BrideMother,
		patch.GroomFullName, patch.GroomNickname, patch.GroomFather, patch.GroomMother,
		patch.CeremonyDate, patch.CeremonyTimeStart, patch.CeremonyTimeEnd, patch.CeremonyLocation,
		patch.ReceptionDate, patch.ReceptionTimeStart, patch.ReceptionTimeEnd, patch.ReceptionLocation,
		patch.ReceptionMapsURL.Set, patch.ReceptionMapsURL.Ptr(),
		patch.BankName, patch.AccountHolder, patch.AccountNumber,
		patch.RsvpMessage, patch.RsvpDeadline, patch.CoInvitationMessage, patch.QuranVerse,
	))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return w, err
}
