package subscriptiontracking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/notification"
)

type fakeStore struct {
	db.Store
	subscriptions map[uuid.UUID]*db.AmcSubscription
}

func (s *fakeStore) ListOverdueAMCSubscriptions(ctx context.Context, now time.Time) ([]db.AmcSubscription, error) {
	var items []db.AmcSubscription
	for _, sub := range s.subscriptions {
		if sub.Status == db.AmcSubscriptionStatusActive && sub.EndDate != nil && sub.EndDate.Before(now) {
			items = append(items, *sub)
		}
	}
	return items, nil
}

func (s *fakeStore) ListExpiringAMCSubscriptions(ctx context.Context, before time.Time) ([]db.AmcSubscription, error) {
	var items []db.AmcSubscription
	for _, sub := range s.subscriptions {
		if sub.Status == db.AmcSubscriptionStatusActive && sub.EndDate != nil && !sub.EndDate.After(before) {
			items = append(items, *sub)
		}
	}
	return items, nil
}

func (s *fakeStore) UpdateAMCSubscriptionTx(ctx context.Context, id uuid.UUID, mutate func(*db.AmcSubscription) error) (db.AmcSubscription, error) {
	current, ok := s.subscriptions[id]
	if !ok {
		return db.AmcSubscription{}, db.ErrRecordNotFound
	}

	copied := *current
	if err := mutate(&copied); err != nil {
		return db.AmcSubscription{}, err
	}

	s.subscriptions[id] = &copied
	return copied, nil
}

type countingSink struct {
	types []string
}

func (s *countingSink) Notify(ctx context.Context, n *notification.Notification) error {
	s.types = append(s.types, n.Type)
	return nil
}

func activeSubscription(start, end time.Time) *db.AmcSubscription {
	return &db.AmcSubscription{
		ID:             uuid.New(),
		SubscriptionID: "AMC-" + uuid.NewString()[:8],
		UserID:         "u1",
		Status:         db.AmcSubscriptionStatusActive,
		PaymentStatus:  db.PaymentStatusCompleted,
		StartDate:      &start,
		EndDate:        &end,
	}
}

func newTracker(store db.Store, sink notification.Sink, now time.Time) *SubscriptionTracker {
	return &SubscriptionTracker{
		store: store,
		sink:  sink,
		now:   func() time.Time { return now },
	}
}

func TestExpireOverdueSubscriptions(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	overdue := activeSubscription(now.AddDate(-1, 0, -1), now.Add(-time.Hour))
	current := activeSubscription(now.AddDate(0, -1, 0), now.AddDate(0, 11, 0))

	store := &fakeStore{subscriptions: map[uuid.UUID]*db.AmcSubscription{
		overdue.ID: overdue,
		current.ID: current,
	}}
	sink := &countingSink{}

	if got := newTracker(store, sink, now).expireOverdueSubscriptions(context.Background()); got != 1 {
		t.Fatalf("expired %d subscriptions, want 1", got)
	}

	if store.subscriptions[overdue.ID].Status != db.AmcSubscriptionStatusExpired {
		t.Errorf("overdue subscription status = %s", store.subscriptions[overdue.ID].Status)
	}
	if store.subscriptions[current.ID].Status != db.AmcSubscriptionStatusActive {
		t.Errorf("current subscription status = %s", store.subscriptions[current.ID].Status)
	}
	if len(sink.types) != 1 || sink.types[0] != notification.TypeSubscriptionExpired {
		t.Errorf("notifications = %v", sink.types)
	}
}

func TestSendExpiryReminders(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	sevenDays := activeSubscription(now.AddDate(-1, 0, 0), now.Add(7*24*time.Hour))
	fiveDays := activeSubscription(now.AddDate(-1, 0, 0), now.Add(5*24*time.Hour))
	oneDay := activeSubscription(now.AddDate(-1, 0, 0), now.Add(20*time.Hour))

	store := &fakeStore{subscriptions: map[uuid.UUID]*db.AmcSubscription{
		sevenDays.ID: sevenDays,
		fiveDays.ID:  fiveDays,
		oneDay.ID:    oneDay,
	}}
	sink := &countingSink{}

	if got := newTracker(store, sink, now).sendExpiryReminders(context.Background()); got != 2 {
		t.Fatalf("sent %d reminders, want 2", got)
	}
	for _, notificationType := range sink.types {
		if notificationType != notification.TypeSubscriptionExpiring {
			t.Errorf("unexpected notification type %s", notificationType)
		}
	}
}
