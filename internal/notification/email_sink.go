package notification

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// EmailSink gửi thông báo qua email, dùng làm kênh dự phòng khi push thất bại.
type EmailSink struct {
	client      *mail.Client
	fromAddress string
}

func NewEmailSink(host string, port int, username, password, fromAddress string) (*EmailSink, error) {
	client, err := mail.NewClient(host, mail.WithPort(port), mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username), mail.WithPassword(password))
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &EmailSink{
		client:      client,
		fromAddress: fromAddress,
	}, nil
}

func (s *EmailSink) Notify(ctx context.Context, notification *Notification) error {
	if notification.RecipientEmail == "" {
		return fmt.Errorf("notification %s has no recipient email", notification.Type)
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat("FixFly", s.fromAddress); err != nil {
		return fmt.Errorf("failed to set From address: %w", err)
	}
	if err := msg.To(notification.RecipientEmail); err != nil {
		return fmt.Errorf("failed to set To address: %w", err)
	}

	msg.Subject(notification.Title)
	msg.SetBodyString(mail.TypeTextPlain, notification.Message)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
