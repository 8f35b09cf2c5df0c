package razorpay

import (
	"errors"
	"testing"

	"github.com/katatrina/fixfly-BE/internal/util"
	"github.com/zpmep/hmacutil"
)

func newTestService() *RazorpayService {
	return NewRazorpayService(util.Config{
		RazorpayKeyID:         "rzp_test_key",
		RazorpayKeySecret:     "test_secret",
		RazorpayWebhookSecret: "webhook_secret",
	})
}

func TestVerifySignature(t *testing.T) {
	service := newTestService()
	valid := Signature("test_secret", "order_1", "pay_1")

	testCases := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{"matching signature", "order_1", "pay_1", valid, true},
		{"other order", "order_2", "pay_1", valid, false},
		{"other payment", "order_1", "pay_2", valid, false},
		{"signed with another secret", "order_1", "pay_1", Signature("other", "order_1", "pay_1"), false},
		{"empty signature", "order_1", "pay_1", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := service.VerifySignature(tc.orderID, tc.paymentID, tc.signature); got != tc.want {
				t.Errorf("VerifySignature() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	service := newTestService()
	body := []byte(`{"event":"payment.captured"}`)
	signature := hmacutil.HexStringEncode(hmacutil.SHA256, "webhook_secret", string(body))

	if !service.VerifyWebhookSignature(body, signature) {
		t.Error("valid webhook signature rejected")
	}
	if service.VerifyWebhookSignature([]byte(`{"event":"payment.failed"}`), signature) {
		t.Error("tampered body accepted")
	}

	service.webhookSecret = ""
	if service.VerifyWebhookSignature(body, signature) {
		t.Error("webhook accepted without a configured secret")
	}
}

func TestOrderFromBody(t *testing.T) {
	order, err := orderFromBody(map[string]interface{}{
		"id":       "order_1",
		"amount":   float64(11800),
		"currency": "INR",
		"receipt":  "AMC-ABC",
	})
	if err != nil {
		t.Fatal(err)
	}
	if order.AmountInRupees() != 118 {
		t.Errorf("amount = %d", order.AmountInRupees())
	}

	if _, err := orderFromBody(map[string]interface{}{}); err == nil {
		t.Error("expected error for missing id")
	}
}

func TestPaymentCheckCaptured(t *testing.T) {
	testCases := []struct {
		name    string
		payment Payment
		wantErr bool
	}{
		{"captured", Payment{ID: "pay_1", OrderID: "order_1", Amount: 118000, Status: PaymentStatusCaptured}, false},
		{"only authorized", Payment{ID: "pay_1", OrderID: "order_1", Amount: 118000, Status: "authorized"}, true},
		{"other order", Payment{ID: "pay_1", OrderID: "order_2", Amount: 118000, Status: PaymentStatusCaptured}, true},
		{"short amount", Payment{ID: "pay_1", OrderID: "order_1", Amount: 100, Status: PaymentStatusCaptured}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.payment.CheckCaptured("order_1", 1180)
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrPaymentNotCaptured) {
				t.Fatalf("expected ErrPaymentNotCaptured, got %v", err)
			}
		})
	}
}
