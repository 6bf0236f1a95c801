package domain

import (
	"fmt"
	"time"
)

// Party size bounds
const (
	MinNumberOfGuests = 1
	MaxNumberOfGuests = 10
)

// RSVP is a guest's attendance response. At most one exists per guest,
// enforced by a unique constraint on guest_id. There is no delete; a guest
// changes their mind through updates.
type RSVP struct {
	ID             int64     `json:"id"`
	GuestID        int64     `json:"guest_id"`
	WillAttend     bool      `json:"will_attend"`
	NumberOfGuests int       `json:"number_of_guests"`
	Message        *string   `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateRsvpRequest struct {
	GuestID        int64   `json:"guest_id"`
	WillAttend     *bool   `json:"will_attend"`
	NumberOfGuests int     `json:"number_of_guests"`
	Message        *string `json:"message"`
}

// Normalize applies the default party size of 1 when unspecified.
func (r *CreateRsvpRequest) Normalize() {
	if r.NumberOfGuests == 0 {
		r.NumberOfGuests = MinNumberOfGuests
	}
}

func (r *CreateRsvpRequest) Validate() error {
	if r.GuestID <= 0 {
		return fmt.Errorf("guest_id is required")
	}
	if r.WillAttend == nil {
		return fmt.Errorf("will_attend is required")
	}
	if r.NumberOfGuests < MinNumberOfGuests || r.NumberOfGuests > MaxNumberOfGuests {
		return fmt.Errorf("number_of_guests must be between %d and %d", MinNumberOfGuests, MaxNumberOfGuests)
	}
	return nil
}

// UpdateRsvpRequest is a partial update. Message is tri-state: an explicit
// null clears the stored message, an absent field leaves it untouched.
type UpdateRsvpRequest struct {
	WillAttend     *bool            `json:"will_attend"`
	NumberOfGuests *int             `json:"number_of_guests"`
	Message        Optional[string] `json:"message"`
}

func (r *UpdateRsvpRequest) Validate() error {
	if r.NumberOfGuests != nil && (*r.NumberOfGuests < MinNumberOfGuests || *r.NumberOfGuests > MaxNumberOfGuests) {
		return fmt.Errorf("number_of_guests must be between %d and %d", MinNumberOfGuests, MaxNumberOfGuests)
	}
	return nil
}
