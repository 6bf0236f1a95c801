package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Guest identifies an invitee. Names are stored exactly as typed: no
// normalization, no uniqueness. Entering the same name twice creates two
// distinct guests.
type Guest struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// GuestWithRSVP pairs a guest with their RSVP, if any.
type GuestWithRSVP struct {
	Guest
	RSVP *RSVP `json:"rsvp"`
}

type CreateGuestRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func (r *CreateGuestRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("guest name is required")
	}
	if r.Email != nil && !isValidEmail(*r.Email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
