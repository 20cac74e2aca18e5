package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SmtpMailer delivers notification mail through a plain SMTP relay.
type SmtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSmtpMailer(host string, port int, username, password, from string) *SmtpMailer {
	return &SmtpMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SmtpMailer) SendSellerAssigned(to, sellerName, buyerName, projectTitle string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("You've been awarded the project %q", projectTitle))
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Hi <strong>%s</strong>,</p>"+
			"<p>Congratulations! You've been selected by <strong>%s</strong> for the project:</p>"+
			"<h3>%s</h3>"+
			"<p><strong>Status:</strong> In Progress</p>"+
			"<p>Please begin your work and stay in contact with the buyer.</p>",
		sellerName, buyerName, projectTitle))

	return m.dialer.DialAndSend(msg)
}

// Noop is used when no SMTP relay is configured, e.g. local runs.
type Noop struct{}

func (Noop) SendSellerAssigned(to, sellerName, buyerName, projectTitle string) error {
	return nil
}
