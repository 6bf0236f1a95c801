package mailer

import (
	"fmt"

	"github.com/appdotbuilder/elegant-wedding-invitation/pkg/logger"
)

type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendRsvpConfirmation(toEmail, toName string, willAttend bool, numberOfGuests int) error {
	logger.Info("📧 [DEV MAIL] RSVP Confirmation",
		"to", toEmail,
		"name", toName,
		"will_attend", willAttend,
		"number_of_guests", numberOfGuests,
	)

	attending := "attending"
	if !willAttend {
		attending = "not attending"
	}

	fmt.Printf("\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"📧 RSVP CONFIRMATION (DEV MODE)\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"To: %s (%s)\n"+
		"Subject: Your RSVP has been received\n"+
		"\n"+
		"Response: %s, party of %d\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n",
		toEmail, toName, attending, numberOfGuests)

	return nil
}
