package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"jobi-backend/internal/domain"
)

type sendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

// NewSendGridSender returns an EmailSender backed by the SendGrid
// transactional API.
func NewSendGridSender(apiKey, fromEmail, fromName string) EmailSender {
	return &sendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridSender) Send(ctx context.Context, msg domain.OutboundEmail) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.ToEmail)

	var m *mail.SGMailV3
	if msg.TemplateID != "" {
		m = mail.NewV3Mail()
		m.SetFrom(from)
		m.SetTemplateID(msg.TemplateID)

		p := mail.NewPersonalization()
		p.AddTos(to)
		for key, value := range msg.Params {
			p.SetDynamicTemplateData(key, value)
		}
		m.AddPersonalizations(p)
	} else {
		m = mail.NewSingleEmail(from, msg.Subject, to, msg.PlainBody, msg.HTMLBody)
	}

	response, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
