package db

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newPendingBooking(total int64) Booking {
	return Booking{
		ID:   uuid.New(),
		Code: "BK-TEST000001",
		Customer: CustomerSnapshot{
			Name:  "Asha",
			Email: "asha@example.com",
		},
		Pricing:    BookingPricing{Subtotal: total, TotalAmount: total},
		Scheduling: BookingScheduling{PreferredDate: "2026-05-01", PreferredSlot: "10:00-12:00"},
		Status:     BookingStatusPending,
		Priority:   BookingPriorityNormal,
		Payment: BookingPayment{
			Status: PaymentStatusPending,
			Method: PaymentMethodCash,
		},
		VendorResponse: VendorResponse{Status: VendorResponseStatusPending},
	}
}

func TestCalculateGST(t *testing.T) {
	testCases := []struct {
		amount, want int64
	}{
		{1000, 180},
		{59, 11}, // 10.62
		{25, 5},  // 4.5
		{0, 0},
	}

	for _, tc := range testCases {
		if got := CalculateGST(tc.amount); got != tc.want {
			t.Errorf("CalculateGST(%d) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestAssignVendorResetsResponse(t *testing.T) {
	now := time.Now()
	booking := newPendingBooking(500)

	if err := booking.AssignVendor(AssignVendorParams{VendorID: "v1"}, now); err != nil {
		t.Fatal(err)
	}
	if booking.Status != BookingStatusWaitingForEngineer {
		t.Fatalf("status = %s", booking.Status)
	}
	if err := booking.Accept("v1", nil, now); err != nil {
		t.Fatal(err)
	}
	if booking.VendorResponse.Status != VendorResponseStatusAccepted {
		t.Fatalf("response = %s", booking.VendorResponse.Status)
	}

	date := "2026-05-03"
	if err := booking.AssignVendor(AssignVendorParams{VendorID: "v2", ScheduledDate: &date, Confirm: true}, now); err != nil {
		t.Fatal(err)
	}
	if booking.VendorResponse.Status != VendorResponseStatusPending {
		t.Errorf("vendor response = %s, want pending", booking.VendorResponse.Status)
	}
	if booking.Status != BookingStatusConfirmed {
		t.Errorf("status = %s, want confirmed", booking.Status)
	}
	if *booking.VendorID != "v2" || *booking.Scheduling.ScheduledDate != date {
		t.Errorf("assignment not stored: %v %v", booking.VendorID, booking.Scheduling.ScheduledDate)
	}
}

func TestVendorRespondsToConfirmedAssignment(t *testing.T) {
	now := time.Now()

	t.Run("accept", func(t *testing.T) {
		booking := newPendingBooking(500)
		if err := booking.AssignVendor(AssignVendorParams{VendorID: "v1", Confirm: true}, now); err != nil {
			t.Fatal(err)
		}

		if err := booking.Accept("v1", nil, now); err != nil {
			t.Fatalf("assigned vendor could not accept a confirmed booking: %v", err)
		}
		if booking.Status != BookingStatusConfirmed {
			t.Errorf("status = %s, want confirmed", booking.Status)
		}
		if booking.VendorResponse.Status != VendorResponseStatusAccepted || booking.VendorResponse.RespondedAt == nil {
			t.Errorf("vendor response = %+v", booking.VendorResponse)
		}

		// Một lần phân công chỉ được trả lời một lần
		if err := booking.Accept("v1", nil, now); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("second accept: expected ErrInvalidTransition, got %v", err)
		}
		if err := booking.Decline("v1", nil, now); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("decline after accept: expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("decline", func(t *testing.T) {
		booking := newPendingBooking(500)
		if err := booking.AssignVendor(AssignVendorParams{VendorID: "v1", Confirm: true}, now); err != nil {
			t.Fatal(err)
		}

		if err := booking.Decline("v1", nil, now); err != nil {
			t.Fatalf("assigned vendor could not decline a confirmed booking: %v", err)
		}
		if booking.Status != BookingStatusWaitingForEngineer || booking.VendorID != nil {
			t.Errorf("status = %s vendor = %v", booking.Status, booking.VendorID)
		}

		// Gán lại cho vendor khác thì phản hồi được đặt lại
		if err := booking.AssignVendor(AssignVendorParams{VendorID: "v2", Confirm: true}, now); err != nil {
			t.Fatal(err)
		}
		if err := booking.Accept("v2", nil, now); err != nil {
			t.Fatalf("reassigned vendor could not accept: %v", err)
		}
	})
}

func TestDeclineReleasesVendor(t *testing.T) {
	now := time.Now()
	booking := newPendingBooking(500)
	if err := booking.AssignVendor(AssignVendorParams{VendorID: "v1"}, now); err != nil {
		t.Fatal(err)
	}

	if err := booking.Decline("v2", nil, now); !errors.Is(err, ErrVendorNotAssigned) {
		t.Fatalf("other vendor declined: %v", err)
	}

	note := "too far"
	if err := booking.Decline("v1", &note, now); err != nil {
		t.Fatal(err)
	}
	if booking.VendorID != nil || booking.VendorAssignedAt != nil {
		t.Error("vendor assignment should be cleared")
	}
	if booking.Status != BookingStatusWaitingForEngineer {
		t.Errorf("status = %s", booking.Status)
	}
	if booking.VendorResponse.Status != VendorResponseStatusDeclined || *booking.VendorResponse.Note != note {
		t.Errorf("vendor response = %+v", booking.VendorResponse)
	}
}

func startedBooking(t *testing.T) Booking {
	t.Helper()

	now := time.Now()
	booking := newPendingBooking(500)
	if err := booking.AssignVendor(AssignVendorParams{VendorID: "v1"}, now); err != nil {
		t.Fatal(err)
	}
	if err := booking.Accept("v1", nil, now); err != nil {
		t.Fatal(err)
	}
	if err := booking.Transition(BookingStatusInProgress, "", "v1", now); err != nil {
		t.Fatal(err)
	}

	return booking
}

func TestCompleteTaskCash(t *testing.T) {
	booking := startedBooking(t)

	err := booking.CompleteTask(CompleteTaskParams{
		VendorID:      "v1",
		BillingAmount: 1000,
		PaymentMethod: PaymentMethodCash,
		IncludeGST:    true,
	}, time.Now())
	if err != nil {
		t.Fatal(err)
	}

	if booking.Status != BookingStatusCompleted {
		t.Errorf("status = %s", booking.Status)
	}
	if booking.CompletionData.GSTAmount != 180 {
		t.Errorf("gst = %d", booking.CompletionData.GSTAmount)
	}
	if booking.Payment.Status != PaymentStatusCompleted || booking.Payment.Amount != 1180 {
		t.Errorf("payment = %+v", booking.Payment)
	}
}

func TestCompleteTaskOnlineThenPay(t *testing.T) {
	now := time.Now()
	booking := startedBooking(t)

	err := booking.CompleteTask(CompleteTaskParams{
		VendorID:      "v1",
		BillingAmount: 800,
		PaymentMethod: PaymentMethodOnline,
	}, now)
	if err != nil {
		t.Fatal(err)
	}
	if booking.Status != BookingStatusInProgress || booking.Payment.Status != PaymentStatusPending {
		t.Fatalf("status = %s, payment = %s", booking.Status, booking.Payment.Status)
	}

	amount, err := booking.PayableAmount()
	if err != nil || amount != 800 {
		t.Fatalf("payable = %d, err = %v", amount, err)
	}
	if err := booking.AttachPaymentOrder("order_1", amount); err != nil {
		t.Fatal(err)
	}

	if err := booking.CompletePayment("order_2", "pay_1", now); !errors.Is(err, ErrOrderIDMismatch) {
		t.Fatalf("expected ErrOrderIDMismatch, got %v", err)
	}
	if err := booking.CompletePayment("order_1", "pay_1", now); err != nil {
		t.Fatal(err)
	}
	if booking.Status != BookingStatusCompleted || booking.Payment.Status != PaymentStatusCompleted {
		t.Errorf("status = %s, payment = %s", booking.Status, booking.Payment.Status)
	}

	if err := booking.CompletePayment("order_1", "pay_1", now); !errors.Is(err, ErrPaymentAlreadyCompleted) {
		t.Errorf("second verification: %v", err)
	}
}

func TestCompleteTaskRequiresInProgress(t *testing.T) {
	booking := newPendingBooking(500)
	if err := booking.AssignVendor(AssignVendorParams{VendorID: "v1"}, time.Now()); err != nil {
		t.Fatal(err)
	}

	err := booking.CompleteTask(CompleteTaskParams{VendorID: "v1", PaymentMethod: PaymentMethodCash}, time.Now())
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
	if booking.CompletionData != nil {
		t.Error("completion data must stay empty")
	}
}

func TestPrepaidBookingFlow(t *testing.T) {
	now := time.Now()
	booking := newPendingBooking(500)

	amount, err := booking.PayableAmount()
	if err != nil || amount != 500 {
		t.Fatalf("payable = %d, err = %v", amount, err)
	}
	if err := booking.AttachPaymentOrder("order_1", amount); err != nil {
		t.Fatal(err)
	}
	if err := booking.CompletePayment("order_1", "pay_1", now); err != nil {
		t.Fatal(err)
	}
	if booking.Status != BookingStatusPending {
		t.Errorf("prepayment must not change status, got %s", booking.Status)
	}

	if err := booking.Cancel("no longer needed", "customer", now); err != nil {
		t.Fatal(err)
	}
	if booking.Cancellation.RefundAmount != 500 || booking.Cancellation.RefundStatus != RefundStatusPending {
		t.Errorf("cancellation = %+v", booking.Cancellation)
	}
}

func TestCancelAfterAssignment(t *testing.T) {
	now := time.Now()
	booking := newPendingBooking(500)
	if err := booking.AssignVendor(AssignVendorParams{VendorID: "v1"}, now); err != nil {
		t.Fatal(err)
	}

	if err := booking.Cancel("plans changed", "customer", now); err != nil {
		t.Fatal(err)
	}
	if booking.Status != BookingStatusCancelled {
		t.Errorf("status = %s", booking.Status)
	}
	if booking.CompletionData != nil {
		t.Error("cancelled booking must not carry completion data")
	}
	if booking.Cancellation.RefundAmount != 0 {
		t.Errorf("unpaid booking refund = %d", booking.Cancellation.RefundAmount)
	}

	if err := booking.Cancel("again", "customer", now); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double cancel: %v", err)
	}
}

func TestCancelRejectedAfterBilling(t *testing.T) {
	booking := startedBooking(t)
	err := booking.CompleteTask(CompleteTaskParams{
		VendorID:      "v1",
		BillingAmount: 300,
		PaymentMethod: PaymentMethodOnline,
	}, time.Now())
	if err != nil {
		t.Fatal(err)
	}

	if err := booking.Cancel("", "admin", time.Now()); !errors.Is(err, ErrBillingSubmitted) {
		t.Errorf("expected ErrBillingSubmitted, got %v", err)
	}
}

func TestRescheduleVisit(t *testing.T) {
	now := time.Now()
	booking := newPendingBooking(500)
	date, slot := "2026-05-02", "14:00-16:00"
	if err := booking.AssignVendor(AssignVendorParams{VendorID: "v1", ScheduledDate: &date, ScheduledTime: &slot}, now); err != nil {
		t.Fatal(err)
	}

	if err := booking.RescheduleVisit("2026-05-09", "09:00-11:00", "travelling", now); err != nil {
		t.Fatal(err)
	}
	if booking.Reschedule.OriginalDate != date || booking.Reschedule.OriginalTime != slot {
		t.Errorf("reschedule record = %+v", booking.Reschedule)
	}
	if *booking.Scheduling.ScheduledDate != "2026-05-09" || booking.Scheduling.PreferredDate != "2026-05-09" {
		t.Errorf("scheduling = %+v", booking.Scheduling)
	}

	started := startedBooking(t)
	if err := started.RescheduleVisit("2026-06-01", "10:00", "", now); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("in_progress reschedule: %v", err)
	}
}

func TestAdminRejectPendingBooking(t *testing.T) {
	booking := newPendingBooking(500)
	if err := booking.Transition(BookingStatusDeclined, "", "admin", time.Now()); err != nil {
		t.Fatal(err)
	}
	if booking.Status != BookingStatusDeclined {
		t.Errorf("status = %s", booking.Status)
	}

	if err := booking.Transition(BookingStatusCompleted, "", "admin", time.Now()); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("completed via status endpoint: %v", err)
	}
}
