package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/notification"
	"github.com/katatrina/fixfly-BE/internal/razorpay"
	"github.com/katatrina/fixfly-BE/internal/token"
)

func twoDevices() []db.Device {
	return []db.Device{
		{Type: "laptop", Serial: "SN-1", Model: "ThinkPad"},
		{Type: "desktop", Serial: "SN-2", Model: "OptiPlex"},
	}
}

func TestCreateAMCSubscription(t *testing.T) {
	t.Run("online payment opens a gateway order", func(t *testing.T) {
		env := newTestEnv(t)
		env.addCustomer("u1", "asha@example.com")
		plan := env.addPlan(db.AmcPlanStatusActive)

		recorder := env.request(t, http.MethodPost, "/v1/amc/subscriptions", "u1", token.RoleCustomer, gin.H{
			"plan_id":        plan.ID.String(),
			"devices":        twoDevices(),
			"payment_method": "online",
		})
		requireStatus(t, recorder, http.StatusCreated)

		var resp createAMCSubscriptionResponse
		decodeData(t, recorder, &resp)

		if resp.Subscription.Amount != 3000 {
			t.Errorf("amount = %d, want 3000", resp.Subscription.Amount)
		}
		if resp.Subscription.Status != db.AmcSubscriptionStatusInactive || resp.Subscription.PaymentStatus != db.PaymentStatusPending {
			t.Errorf("got status %s/%s, want inactive/pending", resp.Subscription.Status, resp.Subscription.PaymentStatus)
		}
		if resp.Order == nil || resp.Order.Amount != 300000 || resp.Order.Currency != razorpay.CurrencyINR {
			t.Fatalf("unexpected order %+v", resp.Order)
		}
		if resp.Subscription.Usage.HomeVisits.Limit != 4 {
			t.Errorf("home visit limit = %d, want 4", resp.Subscription.Usage.HomeVisits.Limit)
		}

		stored := env.store.subscriptions[resp.Subscription.ID]
		if stored.RazorpayOrderID == nil || *stored.RazorpayOrderID != resp.Order.OrderID {
			t.Errorf("order id was not stored on the subscription")
		}
	})

	t.Run("inactive plan is not found", func(t *testing.T) {
		env := newTestEnv(t)
		env.addCustomer("u1", "asha@example.com")
		plan := env.addPlan(db.AmcPlanStatusInactive)

		recorder := env.request(t, http.MethodPost, "/v1/amc/subscriptions", "u1", token.RoleCustomer, gin.H{
			"plan_id":        plan.ID.String(),
			"devices":        twoDevices(),
			"payment_method": "online",
		})
		requireStatus(t, recorder, http.StatusNotFound)
	})

	t.Run("incomplete device is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		env.addCustomer("u1", "asha@example.com")
		plan := env.addPlan(db.AmcPlanStatusActive)

		recorder := env.request(t, http.MethodPost, "/v1/amc/subscriptions", "u1", token.RoleCustomer, gin.H{
			"plan_id":        plan.ID.String(),
			"devices":        []db.Device{{Type: "laptop", Serial: "SN-1"}},
			"payment_method": "online",
		})
		requireStatus(t, recorder, http.StatusBadRequest)

		if len(env.store.subscriptions) != 0 {
			t.Errorf("subscription was created for an invalid request")
		}
	})

	t.Run("gateway failure removes the subscription", func(t *testing.T) {
		env := newTestEnv(t)
		env.addCustomer("u1", "asha@example.com")
		plan := env.addPlan(db.AmcPlanStatusActive)
		env.gateway.failWith = errors.New("gateway down")

		recorder := env.request(t, http.MethodPost, "/v1/amc/subscriptions", "u1", token.RoleCustomer, gin.H{
			"plan_id":        plan.ID.String(),
			"devices":        twoDevices(),
			"payment_method": "online",
		})
		requireStatus(t, recorder, http.StatusInternalServerError)

		if len(env.store.subscriptions) != 0 {
			t.Errorf("subscription left behind after gateway failure")
		}
	})
}

func pendingSubscription(env *testEnv, userID, orderID string) *db.AmcSubscription {
	sub := &db.AmcSubscription{
		ID:              uuid.New(),
		SubscriptionID:  "AMC-TEST000001",
		UserID:          userID,
		PlanSnapshot:    db.PlanSnapshot{Name: "Gold", Price: 1500, PeriodDays: 365},
		Amount:          3000,
		Status:          db.AmcSubscriptionStatusInactive,
		PaymentStatus:   db.PaymentStatusPending,
		PaymentMethod:   db.PaymentMethodOnline,
		Devices:         twoDevices(),
		Usage:           db.NewAmcUsage(db.PlanBenefits{HomeVisits: 2, Antivirus: true}, 2),
		RazorpayOrderID: &orderID,
	}
	env.store.subscriptions[sub.ID] = sub
	return sub
}

func TestVerifyAMCPayment(t *testing.T) {
	testCases := []struct {
		name       string
		caller     string
		orderID    string
		signature  func(orderID string) string
		payment    *razorpay.Payment
		priorFail  bool
		wantStatus int
		wantActive bool
	}{
		{
			name:       "valid signature activates",
			caller:     "u1",
			orderID:    "order_1",
			signature:  func(orderID string) string { return razorpay.Signature(testGatewaySecret, orderID, "pay_1") },
			wantStatus: http.StatusOK,
			wantActive: true,
		},
		{
			name:       "bad signature leaves subscription untouched",
			caller:     "u1",
			orderID:    "order_1",
			signature:  func(string) string { return "forged" },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "order id mismatch",
			caller:     "u1",
			orderID:    "order_other",
			signature:  func(orderID string) string { return razorpay.Signature(testGatewaySecret, orderID, "pay_1") },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "retry after a failed attempt activates",
			caller:     "u1",
			orderID:    "order_1",
			signature:  func(orderID string) string { return razorpay.Signature(testGatewaySecret, orderID, "pay_1") },
			priorFail:  true,
			wantStatus: http.StatusOK,
			wantActive: true,
		},
		{
			name:       "payment only authorized",
			caller:     "u1",
			orderID:    "order_1",
			signature:  func(orderID string) string { return razorpay.Signature(testGatewaySecret, orderID, "pay_1") },
			payment:    &razorpay.Payment{ID: "pay_1", OrderID: "order_1", Amount: 300000, Status: "authorized"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "paid amount differs from the subscription",
			caller:     "u1",
			orderID:    "order_1",
			signature:  func(orderID string) string { return razorpay.Signature(testGatewaySecret, orderID, "pay_1") },
			payment:    &razorpay.Payment{ID: "pay_1", OrderID: "order_1", Amount: 100, Status: razorpay.PaymentStatusCaptured},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "someone else's subscription",
			caller:     "u2",
			orderID:    "order_1",
			signature:  func(orderID string) string { return razorpay.Signature(testGatewaySecret, orderID, "pay_1") },
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.addCustomer("u1", "asha@example.com")
			env.addCustomer("u2", "ravi@example.com")
			sub := pendingSubscription(env, "u1", "order_1")
			if tc.priorFail {
				sub.PaymentStatus = db.PaymentStatusFailed
			}

			if tc.payment != nil {
				env.gateway.setPayment(*tc.payment)
			} else {
				env.gateway.capture("pay_1", "order_1", sub.Amount)
			}

			recorder := env.request(t, http.MethodPost, "/v1/amc/subscriptions/"+sub.ID.String()+"/verify-payment", tc.caller, token.RoleCustomer, gin.H{
				"razorpay_order_id":   tc.orderID,
				"razorpay_payment_id": "pay_1",
				"razorpay_signature":  tc.signature(tc.orderID),
			})
			requireStatus(t, recorder, tc.wantStatus)

			stored := env.store.subscriptions[sub.ID]
			if tc.wantActive {
				if stored.Status != db.AmcSubscriptionStatusActive || stored.PaymentStatus != db.PaymentStatusCompleted {
					t.Fatalf("got %s/%s, want active/completed", stored.Status, stored.PaymentStatus)
				}
				wantEnd := testNow.Add(365 * 24 * time.Hour)
				if stored.EndDate == nil || !stored.EndDate.Equal(wantEnd) {
					t.Errorf("end date = %v, want %v", stored.EndDate, wantEnd)
				}
				if stored.Usage.Antivirus.ActivatedAt == nil {
					t.Errorf("antivirus was not activated")
				}
				return
			}

			if stored.Status != db.AmcSubscriptionStatusInactive || stored.PaymentStatus != db.PaymentStatusPending {
				t.Errorf("subscription mutated on failure: %s/%s", stored.Status, stored.PaymentStatus)
			}
		})
	}
}

func TestVerifyAMCPaymentTwice(t *testing.T) {
	env := newTestEnv(t)
	env.addCustomer("u1", "asha@example.com")
	sub := pendingSubscription(env, "u1", "order_1")
	env.gateway.capture("pay_1", "order_1", sub.Amount)

	body := gin.H{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  razorpay.Signature(testGatewaySecret, "order_1", "pay_1"),
	}
	path := "/v1/amc/subscriptions/" + sub.ID.String() + "/verify-payment"

	requireStatus(t, env.request(t, http.MethodPost, path, "u1", token.RoleCustomer, body), http.StatusOK)
	requireStatus(t, env.request(t, http.MethodPost, path, "u1", token.RoleCustomer, body), http.StatusBadRequest)
}

func TestVerifyAMCPaymentGatewayLookupFails(t *testing.T) {
	env := newTestEnv(t)
	env.addCustomer("u1", "asha@example.com")
	sub := pendingSubscription(env, "u1", "order_1")

	// Không capture: gateway không tìm thấy payment
	recorder := env.request(t, http.MethodPost, "/v1/amc/subscriptions/"+sub.ID.String()+"/verify-payment", "u1", token.RoleCustomer, gin.H{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  razorpay.Signature(testGatewaySecret, "order_1", "pay_1"),
	})
	requireStatus(t, recorder, http.StatusInternalServerError)

	if stored := env.store.subscriptions[sub.ID]; stored.Status != db.AmcSubscriptionStatusInactive {
		t.Errorf("subscription activated without a confirmed payment: %s", stored.Status)
	}
}

func activeSubscription(env *testEnv, userID string, start time.Time) *db.AmcSubscription {
	end := start.Add(365 * 24 * time.Hour)
	sub := &db.AmcSubscription{
		ID:             uuid.New(),
		SubscriptionID: "AMC-TEST000002",
		UserID:         userID,
		PlanID:         uuid.New(),
		PlanSnapshot:   db.PlanSnapshot{Name: "Gold", Price: 1500, PeriodDays: 365},
		Amount:         3000,
		Status:         db.AmcSubscriptionStatusActive,
		PaymentStatus:  db.PaymentStatusCompleted,
		Devices:        twoDevices(),
		Usage:          db.NewAmcUsage(db.PlanBenefits{HomeVisits: 1, WarrantyClaims: 1}, 1),
		StartDate:      &start,
		EndDate:        &end,
	}
	env.store.subscriptions[sub.ID] = sub
	return sub
}

func TestCancelAMCSubscription(t *testing.T) {
	env := newTestEnv(t)
	env.addCustomer("u1", "asha@example.com")
	sub := activeSubscription(env, "u1", testNow.Add(-73*24*time.Hour))

	recorder := env.request(t, http.MethodPost, "/v1/amc/subscriptions/"+sub.ID.String()+"/cancel", "u1", token.RoleCustomer, gin.H{
		"reason": "moving abroad",
	})
	requireStatus(t, recorder, http.StatusOK)

	stored := env.store.subscriptions[sub.ID]
	if stored.Status != db.AmcSubscriptionStatusCancelled {
		t.Fatalf("status = %s, want cancelled", stored.Status)
	}
	// 292 of 365 days left
	if stored.Cancellation.RefundAmount != 2400 || stored.Cancellation.RefundStatus != db.RefundStatusPending {
		t.Errorf("refund = %d (%s), want 2400 (pending)", stored.Cancellation.RefundAmount, stored.Cancellation.RefundStatus)
	}

	recorder = env.request(t, http.MethodPost, "/v1/amc/subscriptions/"+sub.ID.String()+"/cancel", "u1", token.RoleCustomer, gin.H{
		"reason": "again",
	})
	requireStatus(t, recorder, http.StatusBadRequest)
}

func TestRequestAMCService(t *testing.T) {
	env := newTestEnv(t)
	env.addCustomer("u1", "asha@example.com")
	sub := activeSubscription(env, "u1", testNow.Add(-24*time.Hour))
	path := "/v1/amc/subscriptions/" + sub.ID.String() + "/services"

	body := gin.H{"type": "home_visit", "device_serial": "SN-1", "description": "Fan noise"}
	requireStatus(t, env.request(t, http.MethodPost, path, "u1", token.RoleCustomer, body), http.StatusCreated)

	stored := env.store.subscriptions[sub.ID]
	if stored.Usage.HomeVisits.Remaining != 0 || len(stored.ServiceHistory) != 1 {
		t.Fatalf("usage not consumed: %+v", stored.Usage.HomeVisits)
	}
	if stored.ServiceHistory[0].Status != db.ServiceEntryStatusRequested {
		t.Errorf("entry status = %s, want requested", stored.ServiceHistory[0].Status)
	}

	recorder := env.request(t, http.MethodPost, path, "u1", token.RoleCustomer, body)
	requireStatus(t, recorder, http.StatusBadRequest)

	unknownDevice := gin.H{"type": "warranty_claim", "device_serial": "SN-404", "description": "Broken"}
	requireStatus(t, env.request(t, http.MethodPost, path, "u1", token.RoleCustomer, unknownDevice), http.StatusBadRequest)

	if got := env.sink.types(); len(got) != 1 || got[0] != notification.TypeServiceRequested {
		t.Errorf("notifications = %v", got)
	}
}

func TestAdminRecordAMCCashPayment(t *testing.T) {
	env := newTestEnv(t)
	env.addAdmin("admin1")

	cash := pendingSubscription(env, "u1", "")
	cash.PaymentMethod = db.PaymentMethodCash
	cash.RazorpayOrderID = nil
	path := "/v1/admin/amc/subscriptions/" + cash.ID.String() + "/record-payment"

	// Customers cannot reach admin routes
	requireStatus(t, env.request(t, http.MethodPost, path, "u1", token.RoleCustomer, nil), http.StatusForbidden)

	requireStatus(t, env.request(t, http.MethodPost, path, "admin1", token.RoleAdmin, nil), http.StatusOK)

	stored := env.store.subscriptions[cash.ID]
	if stored.Status != db.AmcSubscriptionStatusActive || stored.PaymentStatus != db.PaymentStatusCompleted {
		t.Fatalf("subscription = %s/%s, want active/completed", stored.Status, stored.PaymentStatus)
	}
	if stored.StartDate == nil || stored.EndDate == nil {
		t.Errorf("coverage window not set")
	}
	if got := env.sink.types(); len(got) != 1 || got[0] != notification.TypeSubscriptionActivated {
		t.Errorf("notifications = %v", got)
	}

	// Already paid
	requireStatus(t, env.request(t, http.MethodPost, path, "admin1", token.RoleAdmin, nil), http.StatusBadRequest)

	online := pendingSubscription(env, "u2", "order_online")
	recorder := env.request(t, http.MethodPost, "/v1/admin/amc/subscriptions/"+online.ID.String()+"/record-payment", "admin1", token.RoleAdmin, nil)
	requireStatus(t, recorder, http.StatusBadRequest)
	if env.store.subscriptions[online.ID].Status != db.AmcSubscriptionStatusInactive {
		t.Errorf("online subscription activated without a gateway payment")
	}
}

func TestAdminAddAMCService(t *testing.T) {
	env := newTestEnv(t)
	env.addAdmin("admin1")
	sub := activeSubscription(env, "u1", testNow.Add(-24*time.Hour))

	recorder := env.request(t, http.MethodPost, "/v1/admin/amc/subscriptions/"+sub.ID.String()+"/services", "admin1", token.RoleAdmin, gin.H{
		"type":          "warranty_claim",
		"device_serial": "SN-2",
		"description":   "Replaced keyboard",
	})
	requireStatus(t, recorder, http.StatusCreated)

	var resp recordServiceResponse
	decodeData(t, recorder, &resp)
	if resp.Entry.Status != db.ServiceEntryStatusCompleted || resp.Entry.RecordedBy != "admin1" {
		t.Errorf("unexpected entry %+v", resp.Entry)
	}

	// Customers cannot reach admin routes
	recorder = env.request(t, http.MethodPost, "/v1/admin/amc/subscriptions/"+sub.ID.String()+"/services", "u1", token.RoleCustomer, gin.H{})
	requireStatus(t, recorder, http.StatusForbidden)
}
