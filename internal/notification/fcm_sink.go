package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
)

// FCMSink pushes to the topic each client app subscribes to after login.
type FCMSink struct {
	client *messaging.Client
}

func NewFCMSink(client *messaging.Client) *FCMSink {
	return &FCMSink{
		client: client,
	}
}

// Topic returns the FCM topic for a recipient, e.g. "customer_<id>" or "admin".
// Guests without an account have no topic.
func Topic(notification *Notification) string {
	if notification.Audience == AudienceAdmin {
		return string(AudienceAdmin)
	}
	if notification.RecipientID == "" {
		return ""
	}

	return fmt.Sprintf("%s_%s", notification.Audience, notification.RecipientID)
}

func (s *FCMSink) Notify(ctx context.Context, notification *Notification) error {
	topic := Topic(notification)
	if topic == "" {
		return nil
	}

	data := map[string]string{
		"type":        notification.Type,
		"referenceID": notification.ReferenceID,
	}
	for key, value := range notification.Data {
		data[key] = value
	}

	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Message,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send fcm message: %w", err)
	}

	return nil
}
