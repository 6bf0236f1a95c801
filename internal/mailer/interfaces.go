package mailer

type Service interface {
	SendRsvpConfirmation(toEmail, toName string, willAttend bool, numberOfGuests int) error
}
