package razorpay

import (
	"crypto/hmac"

	"github.com/zpmep/hmacutil"
)

// Signature tính HMAC-SHA256 dạng hex của "orderID|paymentID" với key secret,
// giống cách checkout của Razorpay ký kết quả thanh toán.
func Signature(secret, orderID, paymentID string) string {
	return hmacutil.HexStringEncode(hmacutil.SHA256, secret, orderID+"|"+paymentID)
}

// VerifySignature checks the signature returned by the checkout widget.
func (r *RazorpayService) VerifySignature(orderID, paymentID, signature string) bool {
	expected := Signature(r.keySecret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhookSignature checks the X-Razorpay-Signature header against the raw body.
func (r *RazorpayService) VerifyWebhookSignature(body []byte, signature string) bool {
	if r.webhookSecret == "" {
		return false
	}

	expected := hmacutil.HexStringEncode(hmacutil.SHA256, r.webhookSecret, string(body))
	return hmac.Equal([]byte(expected), []byte(signature))
}
