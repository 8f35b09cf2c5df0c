package subscriptiontracking

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

// SubscriptionTracker chạy các cronjob cho vòng đời AMC: hết hạn và nhắc gia hạn.
type SubscriptionTracker struct {
	store     db.Store
	sink      notification.Sink
	scheduler gocron.Scheduler
	now       func() time.Time
}

func NewSubscriptionTracker(store db.Store, sink notification.Sink) (*SubscriptionTracker, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &SubscriptionTracker{
		store:     store,
		sink:      sink,
		scheduler: scheduler,
		now:       time.Now,
	}, nil
}

// Start bắt đầu chạy các cronjob.
func (t *SubscriptionTracker) Start() error {
	// Chuyển các subscription đã quá hạn sang expired (mỗi 1 giờ)
	_, err := t.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(
			func() {
				log.Info().
					Str("job", "expire_subscriptions").
					Time("start_time", time.Now()).
					Msg("Starting expire subscriptions job")

				t.expireOverdueSubscriptions(context.Background())
			},
		),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}

	// Nhắc khách hàng gia hạn, chạy mỗi ngày lúc 9 giờ sáng
	_, err = t.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(9, 0, 0))),
		gocron.NewTask(
			func() {
				log.Info().
					Str("job", "expiry_reminders").
					Time("start_time", time.Now()).
					Msg("Starting expiry reminders job")

				t.sendExpiryReminders(context.Background())
			},
		),
	)
	if err != nil {
		return err
	}

	t.scheduler.Start()
	return nil
}

// Stop dừng các cronjob.
func (t *SubscriptionTracker) Stop() error {
	return t.scheduler.Shutdown()
}
