package db

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRoundHalfUp(t *testing.T) {
	testCases := []struct {
		num, den, want int64
	}{
		{10, 4, 3},
		{9, 4, 2},
		{118, 1, 118},
		{5, 10, 1},
		{4, 10, 0},
		{7, 0, 0},
	}

	for _, tc := range testCases {
		if got := RoundHalfUp(tc.num, tc.den); got != tc.want {
			t.Errorf("RoundHalfUp(%d, %d) = %d, want %d", tc.num, tc.den, got, tc.want)
		}
	}
}

func TestCeilDays(t *testing.T) {
	if got := CeilDays(0); got != 0 {
		t.Errorf("zero duration = %d", got)
	}
	if got := CeilDays(-time.Hour); got != 0 {
		t.Errorf("negative duration = %d", got)
	}
	if got := CeilDays(time.Minute); got != 1 {
		t.Errorf("one minute = %d", got)
	}
	if got := CeilDays(48 * time.Hour); got != 2 {
		t.Errorf("two days = %d", got)
	}
}

func TestCalculateProratedRefund(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 365)

	testCases := []struct {
		name string
		now  time.Time
		want int64
	}{
		{"cancelled at start", start, 1200},
		{"cancelled after end", end.Add(time.Hour), 0},
		{"cancelled at end", end, 0},
		{"half way", start.AddDate(0, 0, 182).Add(-time.Hour), 602},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalculateProratedRefund(1200, start, end, tc.now); got != tc.want {
				t.Errorf("refund = %d, want %d", got, tc.want)
			}
		})
	}

	if got := CalculateProratedRefund(1200, start, start, start); got != 0 {
		t.Errorf("zero-length period refund = %d", got)
	}
}

func TestNewAmcUsage(t *testing.T) {
	remote := int64(3)
	usage := NewAmcUsage(PlanBenefits{
		HomeVisits:     2,
		WarrantyClaims: 1,
		RemoteSupport:  &remote,
		Antivirus:      true,
	}, 2)

	if usage.HomeVisits.Limit != 4 || usage.HomeVisits.Remaining != 4 {
		t.Errorf("home visits = %+v", usage.HomeVisits)
	}
	if usage.WarrantyClaims.Limit != 2 {
		t.Errorf("warranty claims = %+v", usage.WarrantyClaims)
	}
	if usage.RemoteSupport.Limit == nil || *usage.RemoteSupport.Limit != 6 {
		t.Errorf("remote support limit = %v", usage.RemoteSupport.Limit)
	}
	if !usage.Antivirus.Included {
		t.Error("antivirus should be included")
	}

	unlimited := NewAmcUsage(PlanBenefits{HomeVisits: 1}, 1)
	if unlimited.RemoteSupport.Limit != nil {
		t.Error("nil remote support benefit must stay unlimited")
	}
}

func newInactiveSubscription(orderID string) AmcSubscription {
	remote := int64(1)
	devices := []Device{
		{Type: "laptop", Serial: "SN-1", Model: "X1"},
		{Type: "desktop", Serial: "SN-2", Model: "Z2"},
	}

	return AmcSubscription{
		ID:             uuid.New(),
		SubscriptionID: "AMC-TEST000001",
		PlanSnapshot:   PlanSnapshot{Name: "Basic", Price: 59, PeriodDays: 365},
		Amount:         59 * int64(len(devices)),
		Status:         AmcSubscriptionStatusInactive,
		PaymentStatus:  PaymentStatusPending,
		PaymentMethod:  PaymentMethodOnline,
		Devices:        devices,
		Usage: NewAmcUsage(PlanBenefits{
			HomeVisits:    1,
			RemoteSupport: &remote,
			Antivirus:     true,
		}, int64(len(devices))),
		RazorpayOrderID: &orderID,
	}
}

func TestActivateSubscription(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sub := newInactiveSubscription("order_1")

	if sub.Amount != 118 {
		t.Fatalf("amount = %d, want 118", sub.Amount)
	}

	if err := sub.Activate("order_2", "pay_1", nil, now); !errors.Is(err, ErrOrderIDMismatch) {
		t.Fatalf("expected ErrOrderIDMismatch, got %v", err)
	}
	if sub.Status != AmcSubscriptionStatusInactive {
		t.Fatal("rejected activation must not mutate the subscription")
	}

	if err := sub.Activate("order_1", "pay_1", nil, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Status != AmcSubscriptionStatusActive || sub.PaymentStatus != PaymentStatusCompleted {
		t.Fatalf("status = %s, payment = %s", sub.Status, sub.PaymentStatus)
	}
	if !sub.EndDate.Equal(now.AddDate(0, 0, 365)) {
		t.Errorf("end date = %v", sub.EndDate)
	}
	if sub.Usage.Antivirus.ActivatedAt == nil {
		t.Error("antivirus should be activated")
	}

	// Lần xác minh thứ hai phải bị chặn
	err := sub.Activate("order_1", "pay_1", nil, now)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second verification: expected ErrInvalidTransition, got %v", err)
	}
}

func TestMarkPaymentFailed(t *testing.T) {
	sub := newInactiveSubscription("order_1")
	if err := sub.MarkPaymentFailed(); err != nil {
		t.Fatal(err)
	}
	if sub.PaymentStatus != PaymentStatusFailed || sub.Status != AmcSubscriptionStatusInactive {
		t.Errorf("status = %s, payment = %s", sub.Status, sub.PaymentStatus)
	}

	// Razorpay cho phép thanh toán lại trên cùng order sau một lần thất bại
	if err := sub.Activate("order_2", "pay_2", nil, time.Now()); !errors.Is(err, ErrOrderIDMismatch) {
		t.Errorf("retry on another order: expected ErrOrderIDMismatch, got %v", err)
	}
	if err := sub.Activate("order_1", "pay_2", nil, time.Now()); err != nil {
		t.Fatalf("captured retry should activate the subscription: %v", err)
	}
	if sub.Status != AmcSubscriptionStatusActive || sub.PaymentStatus != PaymentStatusCompleted {
		t.Errorf("status = %s, payment = %s", sub.Status, sub.PaymentStatus)
	}
	if *sub.RazorpayPaymentID != "pay_2" {
		t.Errorf("payment id = %s, want pay_2", *sub.RazorpayPaymentID)
	}

	if err := sub.MarkPaymentFailed(); !errors.Is(err, ErrPaymentAlreadyCompleted) {
		t.Errorf("late failure after capture: expected ErrPaymentAlreadyCompleted, got %v", err)
	}
}

func TestRecordCashPayment(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	online := newInactiveSubscription("order_1")
	if err := online.RecordCashPayment(now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("online subscription: expected ErrInvalidTransition, got %v", err)
	}
	if online.Status != AmcSubscriptionStatusInactive {
		t.Fatal("rejected cash payment must not mutate the subscription")
	}

	cash := newInactiveSubscription("")
	cash.PaymentMethod = PaymentMethodCash
	cash.RazorpayOrderID = nil

	if err := cash.RecordCashPayment(now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cash.Status != AmcSubscriptionStatusActive || cash.PaymentStatus != PaymentStatusCompleted {
		t.Fatalf("status = %s, payment = %s", cash.Status, cash.PaymentStatus)
	}
	if cash.StartDate == nil || !cash.StartDate.Equal(now) || !cash.EndDate.Equal(now.AddDate(0, 0, 365)) {
		t.Errorf("coverage = %v - %v", cash.StartDate, cash.EndDate)
	}
	if cash.Usage.Antivirus.ActivatedAt == nil {
		t.Error("antivirus should be activated")
	}

	if err := cash.RecordCashPayment(now); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second cash payment: expected ErrInvalidTransition, got %v", err)
	}
}

func TestCancelSubscription(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sub := newInactiveSubscription("order_1")

	if err := sub.Cancel("changed my mind", now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("inactive cancel: got %v", err)
	}

	if err := sub.Activate("order_1", "pay_1", nil, now); err != nil {
		t.Fatal(err)
	}
	if err := sub.Cancel("changed my mind", now); err != nil {
		t.Fatal(err)
	}

	if sub.Status != AmcSubscriptionStatusCancelled {
		t.Errorf("status = %s", sub.Status)
	}
	if sub.Cancellation.RefundAmount != sub.Amount {
		t.Errorf("refund = %d, want full amount %d", sub.Cancellation.RefundAmount, sub.Amount)
	}
	if sub.Cancellation.RefundStatus != RefundStatusPending {
		t.Errorf("refund status = %s", sub.Cancellation.RefundStatus)
	}
}

func TestRecordServiceLimits(t *testing.T) {
	now := time.Now()
	sub := newInactiveSubscription("order_1")
	if err := sub.Activate("order_1", "pay_1", nil, now); err != nil {
		t.Fatal(err)
	}

	arg := RecordServiceParams{
		Kind:         UsageKindHomeVisit,
		DeviceSerial: "SN-1",
		Status:       ServiceEntryStatusRequested,
	}

	// 1 lượt / thiết bị x 2 thiết bị
	for i := 0; i < 2; i++ {
		if _, err := sub.RecordService(arg, now); err != nil {
			t.Fatalf("visit %d: %v", i+1, err)
		}
	}

	_, err := sub.RecordService(arg, now)
	if !errors.Is(err, ErrUsageLimitExceeded) {
		t.Fatalf("expected ErrUsageLimitExceeded, got %v", err)
	}
	if sub.Usage.HomeVisits.Remaining != 0 || sub.Usage.HomeVisits.Used != 2 {
		t.Errorf("home visits = %+v", sub.Usage.HomeVisits)
	}
	if len(sub.ServiceHistory) != 2 {
		t.Errorf("history length = %d", len(sub.ServiceHistory))
	}

	arg.DeviceSerial = "unknown"
	if _, err := sub.RecordService(arg, now); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("expected ErrDeviceNotFound, got %v", err)
	}

	arg = RecordServiceParams{Kind: UsageKindRemoteSupport, DeviceSerial: "SN-2"}
	for i := 0; i < 2; i++ {
		if _, err := sub.RecordService(arg, now); err != nil {
			t.Fatalf("remote %d: %v", i+1, err)
		}
	}
	if _, err := sub.RecordService(arg, now); !errors.Is(err, ErrUsageLimitExceeded) {
		t.Errorf("remote support over limit: got %v", err)
	}
}

func TestRenewSubscription(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sub := newInactiveSubscription("order_1")
	if err := sub.Activate("order_1", "pay_1", nil, now); err != nil {
		t.Fatal(err)
	}
	if _, err := sub.RecordService(RecordServiceParams{Kind: UsageKindHomeVisit, DeviceSerial: "SN-1"}, now); err != nil {
		t.Fatal(err)
	}
	if err := sub.SetAutoRenewal(true); err != nil {
		t.Fatal(err)
	}

	oldEnd := *sub.EndDate
	if err := sub.Renew(0, true); err != nil {
		t.Fatal(err)
	}

	if !sub.EndDate.Equal(oldEnd.AddDate(0, 0, 365)) {
		t.Errorf("end date = %v", sub.EndDate)
	}
	if sub.Usage.HomeVisits.Used != 0 || sub.Usage.HomeVisits.Remaining != sub.Usage.HomeVisits.Limit {
		t.Errorf("usage not reset: %+v", sub.Usage.HomeVisits)
	}
	if sub.AutoRenewal.NextRenewalDate == nil || !sub.AutoRenewal.NextRenewalDate.Equal(*sub.EndDate) {
		t.Error("next renewal date should follow the end date")
	}

	if err := sub.Renew(30, false); err != nil {
		t.Fatal(err)
	}
	if !sub.EndDate.Equal(oldEnd.AddDate(0, 0, 395)) {
		t.Errorf("end date after 30 day renewal = %v", sub.EndDate)
	}
}

func TestExpireSubscription(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sub := newInactiveSubscription("order_1")
	if err := sub.Activate("order_1", "pay_1", nil, now); err != nil {
		t.Fatal(err)
	}

	if err := sub.Expire(now); err == nil {
		t.Fatal("subscription must not expire before its end date")
	}
	if err := sub.Expire(now.AddDate(1, 0, 1)); err != nil {
		t.Fatal(err)
	}
	if sub.Status != AmcSubscriptionStatusExpired {
		t.Errorf("status = %s", sub.Status)
	}
	if err := sub.Renew(0, false); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expired subscription renewed: %v", err)
	}
}

func TestActiveImpliesPaymentCompleted(t *testing.T) {
	now := time.Now()
	sub := newInactiveSubscription("order_1")

	steps := []func() error{
		func() error { return sub.Activate("order_x", "pay_1", nil, now) },
		func() error { return sub.Activate("order_1", "pay_1", nil, now) },
		func() error { return sub.SetAutoRenewal(true) },
		func() error { return sub.Renew(10, true) },
		func() error { return sub.Cancel("", now) },
	}

	for i, step := range steps {
		_ = step()
		if sub.Status == AmcSubscriptionStatusActive && sub.PaymentStatus != PaymentStatusCompleted {
			t.Fatalf("step %d: active subscription with payment %s", i, sub.PaymentStatus)
		}
	}
}
