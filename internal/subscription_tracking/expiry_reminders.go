package subscriptiontracking

import (
	"context"
	"slices"
	"time"

	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

const reminderWindowDays = 7

// Khách hàng được nhắc vào các mốc còn 7, 3 và 1 ngày.
var reminderDays = []int64{7, 3, 1}

// sendExpiryReminders notifies holders of subscriptions ending within the reminder window.
// It returns how many reminders were sent.
func (t *SubscriptionTracker) sendExpiryReminders(ctx context.Context) int {
	now := t.now()

	subscriptions, err := t.store.ListExpiringAMCSubscriptions(ctx, now.Add(reminderWindowDays*24*time.Hour))
	if err != nil {
		log.Error().Err(err).Msg("failed to list expiring subscriptions")
		return 0
	}

	sent := 0
	for _, sub := range subscriptions {
		if sub.EndDate == nil {
			continue
		}

		daysLeft := db.CeilDays(sub.EndDate.Sub(now))
		if !slices.Contains(reminderDays, daysLeft) {
			continue
		}

		if err = t.sink.Notify(ctx, notification.SubscriptionExpiring(sub, daysLeft)); err != nil {
			log.Error().Err(err).Str("subscription_id", sub.SubscriptionID).Msg("failed to send expiry reminder")
			continue
		}

		sent++
	}

	log.Info().Int("sent", sent).Msg("Expiry reminders sent")
	return sent
}
