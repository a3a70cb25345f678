package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/armazena/listing-service/internal/listing/domain"
)

// SMTPMailer delivers contact requests to listing owners over SMTP.
type SMTPMailer struct {
	host     string
	port     int
	from     string
	password string
}

func NewSMTPMailer(host string, port int, from, password string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, from: from, password: password}
}

func (m *SMTPMailer) SendContactRequest(ownerEmail string, listing *domain.Listing, request *domain.ContactRequest) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", ownerEmail)
	msg.SetHeader("Reply-To", request.SenderEmail)
	msg.SetHeader("Subject", "New inquiry about your listing: "+listing.Title)
	msg.SetBody("text/plain", fmt.Sprintf(
		"%s (%s) is interested in %q:\n\n%s\n",
		request.SenderName, request.SenderEmail, listing.Title, request.Message,
	))

	dialer := gomail.NewDialer(m.host, m.port, m.from, m.password)
	return dialer.DialAndSend(msg)
}
