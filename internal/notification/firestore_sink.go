package notification

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
)

const firestoreCollection = "notifications"

// FirestoreSink ghi thông báo vào collection "notifications" để hiển thị trong app.
type FirestoreSink struct {
	client *firestore.Client
}

func NewFirestoreSink(client *firestore.Client) *FirestoreSink {
	return &FirestoreSink{
		client: client,
	}
}

func (s *FirestoreSink) Notify(ctx context.Context, notification *Notification) error {
	createdAt := notification.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, _, err := s.client.Collection(firestoreCollection).Add(ctx, map[string]interface{}{
		"audience":    string(notification.Audience),
		"recipientID": notification.RecipientID,
		"title":       notification.Title,
		"message":     notification.Message,
		"type":        notification.Type,
		"referenceID": notification.ReferenceID,
		"data":        notification.Data,
		"isRead":      false,
		"createdAt":   createdAt,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to send notification")
		return err
	}

	log.Info().Str("type", notification.Type).Str("recipient_id", notification.RecipientID).Msg("notification sent successfully")
	return nil
}
