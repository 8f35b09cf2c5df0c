package subscriptiontracking

import (
	"context"
	"errors"

	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

// expireOverdueSubscriptions moves active subscriptions past their end date to expired.
// It returns how many were expired.
func (t *SubscriptionTracker) expireOverdueSubscriptions(ctx context.Context) int {
	now := t.now()

	subscriptions, err := t.store.ListOverdueAMCSubscriptions(ctx, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to list overdue subscriptions")
		return 0
	}

	log.Info().Int("count", len(subscriptions)).Msg("Found subscriptions to expire")

	expired := 0
	for _, sub := range subscriptions {
		updated, err := t.store.UpdateAMCSubscriptionTx(ctx, sub.ID, func(s *db.AmcSubscription) error {
			return s.Expire(now)
		})
		if err != nil {
			// Subscription có thể đã bị hủy hoặc gia hạn giữa chừng
			if errors.Is(err, db.ErrInvalidTransition) {
				log.Info().Str("subscription_id", sub.SubscriptionID).Msg("subscription changed before expiry, skipping")
				continue
			}

			log.Error().Err(err).Str("subscription_id", sub.SubscriptionID).Msg("failed to expire subscription")
			continue
		}

		expired++

		if err = t.sink.Notify(ctx, notification.SubscriptionExpired(updated)); err != nil {
			log.Error().Err(err).Str("subscription_id", sub.SubscriptionID).Msg("failed to send expiry notification")
		}
	}

	return expired
}
