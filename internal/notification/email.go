package notification

import (
	"context"
	"fmt"
	"net/smtp"
)

// Sender delivers storefront emails. Split from the SMTP details so the
// worker handler can be tested without a mail server.
type Sender interface {
	SendOrderConfirmation(to string, e OrderPlacedEvent) error
	SendOperatorAlert(e OrderPlacedEvent) error
	SendPasswordResetOTP(ctx context.Context, to, code string) error
}

// EmailSender sends over plain SMTP.
type EmailSender struct {
	host     string
	port     string
	from     string
	operator string
}

func NewEmailSender(host, port, from, operator string) *EmailSender {
	return &EmailSender{
		host:     host,
		port:     port,
		from:     from,
		operator: operator,
	}
}

func (s *EmailSender) SendOrderConfirmation(to string, e OrderPlacedEvent) error {
	subject := fmt.Sprintf("Order confirmed — #%d", e.OrderID)
	body := BuildOrderConfirmationBody(e)
	return s.send(to, subject, body)
}

func (s *EmailSender) SendOperatorAlert(e OrderPlacedEvent) error {
	subject := fmt.Sprintf("New order #%d (%s)", e.OrderID, e.Username)
	body := BuildOperatorAlertBody(e)
	return s.send(s.operator, subject, body)
}

func (s *EmailSender) SendPasswordResetOTP(_ context.Context, to, code string) error {
	subject := "Your password reset code"
	body := BuildPasswordResetBody(code)
	return s.send(to, subject, body)
}

func (s *EmailSender) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return smtp.SendMail(addr, nil, s.from, []string{to}, []byte(msg))
}
