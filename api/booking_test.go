package api

import (
	"net/http"
	"slices"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/notification"
	"github.com/katatrina/fixfly-BE/internal/razorpay"
	"github.com/katatrina/fixfly-BE/internal/token"
	"github.com/katatrina/fixfly-BE/internal/util"
)

func newBooking(env *testEnv, userID *string, status db.BookingStatus) *db.Booking {
	booking := &db.Booking{
		ID:     uuid.New(),
		Code:   "BK-TEST000001",
		UserID: userID,
		Customer: db.CustomerSnapshot{
			Name:    "Asha Rao",
			Email:   "asha@example.com",
			Phone:   "9876543210",
			Address: "12 MG Road, Bengaluru",
		},
		Services: []db.BookingServiceItem{{ServiceID: "s1", Name: "AC repair", Price: 900}},
		Pricing:  db.BookingPricing{Subtotal: 900, ServiceFee: 100, TotalAmount: 1000},
		Scheduling: db.BookingScheduling{
			PreferredDate: "2025-01-15",
			PreferredSlot: "10:00-12:00",
		},
		Status:   status,
		Priority: db.BookingPriorityNormal,
		Payment: db.BookingPayment{
			Status:       db.PaymentStatusPending,
			Method:       db.PaymentMethodOnline,
			Amount:       1000,
			RefundStatus: db.RefundStatusNone,
		},
		VendorResponse: db.VendorResponse{Status: db.VendorResponseStatusPending},
	}
	env.store.bookings[booking.ID] = booking
	return booking
}

func TestBookingVendorFlow(t *testing.T) {
	env := newTestEnv(t)
	env.addAdmin("admin1")
	env.addVendor("v1", true)
	env.addVendor("v2", true)
	env.addVendor("v3", false)
	booking := newBooking(env, nil, db.BookingStatusPending)
	base := "/v1/bookings/" + booking.ID.String()

	// Inactive vendors cannot be assigned
	recorder := env.request(t, http.MethodPost, "/v1/admin/bookings/"+booking.ID.String()+"/assign", "admin1", token.RoleAdmin, gin.H{"vendor_id": "v3"})
	requireStatus(t, recorder, http.StatusBadRequest)

	recorder = env.request(t, http.MethodPost, "/v1/admin/bookings/"+booking.ID.String()+"/assign", "admin1", token.RoleAdmin, gin.H{
		"vendor_id":      "v1",
		"scheduled_date": "2025-01-16",
		"scheduled_time": "14:00",
		"priority":       "high",
	})
	requireStatus(t, recorder, http.StatusOK)
	if got := env.store.bookings[booking.ID]; got.Status != db.BookingStatusWaitingForEngineer || got.Priority != db.BookingPriorityHigh {
		t.Fatalf("after assign got %s/%s", got.Status, got.Priority)
	}

	// Only the assigned vendor may respond
	requireStatus(t, env.request(t, http.MethodPatch, base+"/accept", "v2", token.RoleVendor, nil), http.StatusForbidden)
	requireStatus(t, env.request(t, http.MethodPatch, base+"/accept", "v1", token.RoleVendor, gin.H{"note": "on my way"}), http.StatusOK)

	got := env.store.bookings[booking.ID]
	if got.Status != db.BookingStatusConfirmed || got.VendorResponse.Status != db.VendorResponseStatusAccepted {
		t.Fatalf("after accept got %s/%s", got.Status, got.VendorResponse.Status)
	}

	requireStatus(t, env.request(t, http.MethodPatch, base+"/status", "v1", token.RoleVendor, gin.H{"status": "in_progress"}), http.StatusOK)

	recorder = env.request(t, http.MethodPost, base+"/complete", "v1", token.RoleVendor, gin.H{
		"resolution_note": "Replaced capacitor",
		"billing_amount":  1000,
		"spare_parts":     []db.SparePart{{Name: "Capacitor", Price: 250, Quantity: 1}},
		"payment_method":  "online",
		"include_gst":     true,
	})
	requireStatus(t, recorder, http.StatusOK)

	got = env.store.bookings[booking.ID]
	if got.Status != db.BookingStatusInProgress {
		t.Fatalf("online completion should wait for payment, got %s", got.Status)
	}
	if got.CompletionData.GSTAmount != 180 || got.Payment.Amount != 1180 {
		t.Errorf("gst = %d, payable = %d, want 180 and 1180", got.CompletionData.GSTAmount, got.Payment.Amount)
	}

	// Billing can only be submitted once
	recorder = env.request(t, http.MethodPost, base+"/complete", "v1", token.RoleVendor, gin.H{
		"resolution_note": "again",
		"payment_method":  "cash",
	})
	requireStatus(t, recorder, http.StatusBadRequest)

	wantTypes := []string{notification.TypeBookingAssigned, notification.TypeBookingAccepted, notification.TypeBookingStatusChanged, notification.TypeBookingCompleted}
	if gotTypes := env.sink.types(); !slices.Equal(gotTypes, wantTypes) {
		t.Errorf("notifications = %v, want %v", gotTypes, wantTypes)
	}
}

func TestDeclineBooking(t *testing.T) {
	env := newTestEnv(t)
	env.addVendor("v1", true)
	booking := newBooking(env, nil, db.BookingStatusConfirmed)
	vendorID := "v1"
	booking.VendorID = &vendorID

	requireStatus(t, env.request(t, http.MethodPatch, "/v1/bookings/"+booking.ID.String()+"/decline", "v1", token.RoleVendor, nil), http.StatusOK)

	got := env.store.bookings[booking.ID]
	if got.Status != db.BookingStatusWaitingForEngineer || got.VendorID != nil {
		t.Errorf("after decline got status %s vendor %v", got.Status, got.VendorID)
	}
}

func TestBookingPayment(t *testing.T) {
	env := newTestEnv(t)
	env.addCustomer("u1", "asha@example.com")
	env.addCustomer("u2", "ravi@example.com")
	userID := "u1"
	booking := newBooking(env, &userID, db.BookingStatusInProgress)
	vendorID := "v1"
	booking.VendorID = &vendorID
	booking.CompletionData = &db.CompletionData{BillingAmount: 1000, IncludeGST: true, GSTAmount: 180, PaymentMethod: db.PaymentMethodOnline}

	// Strangers cannot open an order
	recorder := env.request(t, http.MethodPost, "/v1/bookings/payment/create-order", "u2", token.RoleCustomer, gin.H{"booking_id": booking.ID.String()})
	requireStatus(t, recorder, http.StatusForbidden)

	recorder = env.request(t, http.MethodPost, "/v1/bookings/payment/create-order", "u1", token.RoleCustomer, gin.H{"booking_id": booking.ID.String()})
	requireStatus(t, recorder, http.StatusOK)

	var resp createBookingPaymentOrderResponse
	decodeData(t, recorder, &resp)
	if resp.Order.Amount != 118000 {
		t.Fatalf("order amount = %d paise, want 118000", resp.Order.Amount)
	}

	verify := gin.H{
		"booking_id":          booking.ID.String(),
		"razorpay_order_id":   resp.Order.OrderID,
		"razorpay_payment_id": "pay_9",
		"razorpay_signature":  "forged",
	}
	requireStatus(t, env.request(t, http.MethodPost, "/v1/bookings/payment/verify", "u1", token.RoleCustomer, verify), http.StatusBadRequest)
	if env.store.bookings[booking.ID].Payment.Status != db.PaymentStatusPending {
		t.Fatalf("payment changed after a forged signature")
	}

	verify["razorpay_signature"] = razorpay.Signature(testGatewaySecret, resp.Order.OrderID, "pay_9")

	// Checkout ký cả payment mới authorized, phải đợi capture
	env.gateway.setPayment(razorpay.Payment{ID: "pay_9", OrderID: resp.Order.OrderID, Amount: 118000, Status: "authorized"})
	requireStatus(t, env.request(t, http.MethodPost, "/v1/bookings/payment/verify", "u1", token.RoleCustomer, verify), http.StatusBadRequest)
	if env.store.bookings[booking.ID].Payment.Status != db.PaymentStatusPending {
		t.Fatalf("payment changed before capture")
	}

	env.gateway.capture("pay_9", resp.Order.OrderID, 1180)
	requireStatus(t, env.request(t, http.MethodPost, "/v1/bookings/payment/verify", "u1", token.RoleCustomer, verify), http.StatusOK)

	got := env.store.bookings[booking.ID]
	if got.Status != db.BookingStatusCompleted || got.Payment.Status != db.PaymentStatusCompleted {
		t.Errorf("after verify got %s/%s", got.Status, got.Payment.Status)
	}
	if got.Payment.TransactionID == nil || *got.Payment.TransactionID != "pay_9" {
		t.Errorf("transaction id not stored")
	}

	// A completed payment cannot be verified again
	requireStatus(t, env.request(t, http.MethodPost, "/v1/bookings/payment/verify", "u1", token.RoleCustomer, verify), http.StatusBadRequest)
}

func TestCancelBookingByUser(t *testing.T) {
	env := newTestEnv(t)
	env.addCustomer("u1", "asha@example.com")
	env.addCustomer("u2", "ravi@example.com")
	booking := newBooking(env, nil, db.BookingStatusConfirmed)
	booking.Payment.Status = db.PaymentStatusCompleted

	path := "/v1/bookings/" + booking.ID.String() + "/cancel-by-user"

	requireStatus(t, env.request(t, http.MethodPatch, path, "u2", token.RoleCustomer, gin.H{"reason": "x"}), http.StatusForbidden)

	// Guest booking made with the same email as the account
	requireStatus(t, env.request(t, http.MethodPatch, path, "u1", token.RoleCustomer, gin.H{"reason": "not needed"}), http.StatusOK)

	got := env.store.bookings[booking.ID]
	if got.Status != db.BookingStatusCancelled || got.Cancellation.CancelledBy != cancelledByUser {
		t.Fatalf("after cancel got %s", got.Status)
	}
	if got.Cancellation.RefundAmount != 1000 || got.Payment.RefundStatus != db.RefundStatusPending {
		t.Errorf("refund = %d (%s), want full prepaid amount pending", got.Cancellation.RefundAmount, got.Payment.RefundStatus)
	}

	requireStatus(t, env.request(t, http.MethodPatch, path, "u1", token.RoleCustomer, gin.H{"reason": "again"}), http.StatusBadRequest)
}

func TestRescheduleBookingByUser(t *testing.T) {
	env := newTestEnv(t)
	userID := "u1"
	env.addCustomer(userID, "asha@example.com")
	booking := newBooking(env, &userID, db.BookingStatusPending)
	path := "/v1/bookings/" + booking.ID.String() + "/reschedule-by-user"

	past := gin.H{"new_date": "2025-01-01", "new_time": "10:00", "reason": "travel"}
	requireStatus(t, env.request(t, http.MethodPatch, path, userID, token.RoleCustomer, past), http.StatusBadRequest)

	next := gin.H{"new_date": "2025-01-20", "new_time": "16:00-18:00", "reason": "travel"}
	requireStatus(t, env.request(t, http.MethodPatch, path, userID, token.RoleCustomer, next), http.StatusOK)

	got := env.store.bookings[booking.ID]
	if got.Scheduling.PreferredDate != "2025-01-20" || got.Reschedule == nil || got.Reschedule.OriginalDate != "2025-01-15" {
		t.Errorf("unexpected scheduling %+v / %+v", got.Scheduling, got.Reschedule)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	env := newTestEnv(t)

	body := gin.H{
		"customer": db.CustomerSnapshot{
			Name:    "Asha Rao",
			Email:   "not-an-email",
			Phone:   "12345",
			Address: "12 MG Road, Bengaluru",
		},
		"services":       []db.BookingServiceItem{{ServiceID: "s1", Name: "AC repair", Price: 900}},
		"pricing":        db.BookingPricing{Subtotal: 900, TotalAmount: 900},
		"preferred_date": "2025-01-09",
		"preferred_slot": "10:00",
		"payment_method": "cash",
	}

	recorder := env.request(t, http.MethodPost, "/v1/bookings", "", "", body)
	requireStatus(t, recorder, http.StatusBadRequest)

	var resp struct {
		Error []FieldViolation `json:"error"`
	}
	decodeRaw(t, recorder, &resp)
	if len(resp.Error) != 3 {
		t.Errorf("violations = %+v, want email, phone and date", resp.Error)
	}
}

func TestAdminStatsPeriod(t *testing.T) {
	env := newTestEnv(t)
	env.addAdmin("admin1")

	recorder := env.request(t, http.MethodGet, "/v1/admin/bookings/stats?period=decade", "admin1", token.RoleAdmin, nil)
	requireStatus(t, recorder, http.StatusBadRequest)

	if _, err := util.PeriodStart("decade", testNow); err == nil || decodeMessage(t, recorder) != err.Error() {
		t.Errorf("message = %q", decodeMessage(t, recorder))
	}
}
