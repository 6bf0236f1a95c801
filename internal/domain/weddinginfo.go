package domain

import (
	"fmt"
	"net/url"
	"time"
)

// WeddingInfoID is the fixed identifier of the singleton wedding_info row.
// The table carries CHECK (id = 1) so a second row cannot exist.
const WeddingInfoID = 1

type WeddingInfo struct {
	ID                  int64     `json:"id"`
	BrideFullName       string    `json:"bride_full_name"`
	BrideNickname       string    `json:"bride_nickname"`
	BrideFather         string    `json:"bride_father"`
	BrideMother         string    `json:"bride_mother"`
	GroomFullName       string    `json:"groom_full_name"`
	GroomNickname       string    `json:"groom_nickname"`
	GroomFather         string    `json:"groom_father"`
	GroomMother         string    `json:"groom_mother"`
	CeremonyDate        time.Time `json:"ceremony_date"`
	CeremonyTimeStart   string    `json:"ceremony_time_start"`
	CeremonyTimeEnd     string    `json:"ceremony_time_end"`
	CeremonyLocation    string    `json:"ceremony_location"`
	ReceptionDate       time.Time `json:"reception_date"`
	ReceptionTimeStart  string    `json:"reception_time_start"`
	ReceptionTimeEnd    string    `json:"reception_time_end"`
	ReceptionLocation   string    `json:"reception_location"`
	ReceptionMapsURL    *string   `json:"reception_maps_url"`
	BankName            string    `json:"bank_name"`
	AccountHolder       string    `json:"account_holder"`
	AccountNumber       string    `json:"account_number"`
	RsvpMessage         string    `json:"rsvp_message"`
	RsvpDeadline        time.Time `json:"rsvp_deadline"`
	CoInvitationMessage string    `json:"co_invitation_message"`
	QuranVerse          string    `json:"quran_verse"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// UpdateWeddingInfoRequest patches the singleton record. Only supplied
// fields are written; reception_maps_url is the one nullable field and is
// tri-state so it can be cleared.
type UpdateWeddingInfoRequest struct {
	BrideFullName       *string          `json:"bride_full_name"`
	BrideNickname       *string          `json:"bride_nickname"`
	BrideFather         *string          `json:"bride_father"`
	BrideMother         *string          `json:"bride_mother"`
	GroomFullName       *string          `json:"groom_full_name"`
	GroomNickname       *string          `json:"groom_nickname"`
	GroomFather         *string          `json:"groom_father"`
	GroomMother         *string          `json:"groom_mother"`
	CeremonyDate        *time.Time       `json:"ceremony_date"`
	CeremonyTimeStart   *string          `json:"ceremony_time_start"`
	CeremonyTimeEnd     *string          `json:"ceremony_time_end"`
	CeremonyLocation    *string          `json:"ceremony_location"`
	ReceptionDate       *time.Time       `json:"reception_date"`
	ReceptionTimeStart  *string          `json:"reception_time_start"`
	ReceptionTimeEnd    *string          `json:"reception_time_end"`
	ReceptionLocation   *string          `json:"reception_location"`
	ReceptionMapsURL    Optional[string] `json:"reception_maps_url"`
	BankName            *string          `json:"bank_name"`
	AccountHolder       *string          `json:"account_holder"`
	AccountNumber       *string          `json:"account_number"`
	RsvpMessage         *string          `json:"rsvp_message"`
	RsvpDeadline        *time.Time       `json:"rsvp_deadline"`
	CoInvitationMessage *string          `json:"co_invitation_message"`
	QuranVerse          *string          `json:"quran_verse"`
}

func (r *UpdateWeddingInfoRequest) Validate() error {
	if r.ReceptionMapsURL.Set && r.ReceptionMapsURL.Valid && !isValidURL(r.ReceptionMapsURL.Value) {
		return fmt.Errorf("invalid reception_maps_url")
	}
	return nil
}

func isValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
