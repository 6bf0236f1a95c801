package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

type MailerSendClient struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	enabled bool
}

func NewMailerSend(apiKey, fromName, fromEmail string) *MailerSendClient {
	m := &MailerSendClient{
		enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}

	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}

	return m
}

func (m *MailerSendClient) SendRsvpConfirmation(toEmail, toName string, willAttend bool, numberOfGuests int) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	subject := "Your RSVP has been received"

	response := fmt.Sprintf("We look forward to celebrating with you and your party of %d!", numberOfGuests)
	if !willAttend {
		response = "We are sorry you cannot make it, and we appreciate you letting us know."
	}

	html := fmt.Sprintf(`
		<h2>Thank you, %s!</h2>
		<p>Your RSVP has been recorded.</p>
		<p>%s</p>
		<p>You can change your response any time before the RSVP deadline by opening your invitation again.</p>
	`, toName, response)

	text := fmt.Sprintf("Thank you, %s! Your RSVP has been recorded.\n\n%s", toName, response)

	return m.sendEmail(toEmail, toName, subject, text, html)
}

func (m *MailerSendClient) sendEmail(toEmail, toName, subject, text, html string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)

	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}

	_, err := m.client.Email.Send(ctx, msg)
	return err
}
