package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Sink delivers a notification through one channel.
type Sink interface {
	Notify(ctx context.Context, notification *Notification) error
}

// NoopSink drops every notification. It is the default while push delivery is disabled.
type NoopSink struct{}

func (NoopSink) Notify(ctx context.Context, notification *Notification) error {
	log.Debug().Str("type", notification.Type).Str("reference_id", notification.ReferenceID).
		Msg("notification dropped, delivery disabled")
	return nil
}

// FallbackSink tries the primary sink and falls back to the secondary one on error.
type FallbackSink struct {
	Primary  Sink
	Fallback Sink
}

func (s FallbackSink) Notify(ctx context.Context, notification *Notification) error {
	err := s.Primary.Notify(ctx, notification)
	if err == nil {
		return nil
	}

	log.Warn().Err(err).Str("type", notification.Type).Msg("primary notification sink failed, using fallback")

	if fallbackErr := s.Fallback.Notify(ctx, notification); fallbackErr != nil {
		return fmt.Errorf("primary: %w, fallback: %w", err, fallbackErr)
	}

	return nil
}

// MultiSink gửi tới tất cả các sink, lỗi của từng sink được gom lại.
type MultiSink []Sink

func (sinks MultiSink) Notify(ctx context.Context, notification *Notification) error {
	var errs []error
	for _, sink := range sinks {
		if err := sink.Notify(ctx, notification); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
