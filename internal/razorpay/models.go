package razorpay

import (
	"fmt"
)

const (
	PaymentStatusCaptured = "captured"

	EventPaymentCaptured = "payment.captured"
	EventPaymentFailed   = "payment.failed"
	EventOrderPaid       = "order.paid"
)

type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // paise
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// AmountInRupees converts the gateway amount back to whole rupees.
func (o *Order) AmountInRupees() int64 {
	return o.Amount / paisePerRupee
}

type Payment struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"` // paise
	Status  string `json:"status"`
	Method  string `json:"method"`
}

// CheckCaptured reports whether the payment was captured on orderID for amount rupees.
// Checkout signs authorized payments too, so a valid signature alone does not mean the money was taken.
func (p *Payment) CheckCaptured(orderID string, amount int64) error {
	if p.Status != PaymentStatusCaptured {
		return fmt.Errorf("%w: payment %s is %s", ErrPaymentNotCaptured, p.ID, p.Status)
	}

	if p.OrderID != orderID {
		return fmt.Errorf("%w: payment %s belongs to order %s", ErrPaymentNotCaptured, p.ID, p.OrderID)
	}

	if p.Amount != amount*paisePerRupee {
		return fmt.Errorf("%w: paid %d paise, expected %d", ErrPaymentNotCaptured, p.Amount, amount*paisePerRupee)
	}

	return nil
}

// WebhookEvent is the subset of a Razorpay webhook body the service reads.
type WebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity Payment `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

func orderFromBody(body map[string]interface{}) (*Order, error) {
	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("order id missing in response")
	}

	return &Order{
		ID:       id,
		Amount:   int64Field(body, "amount"),
		Currency: stringField(body, "currency"),
		Receipt:  stringField(body, "receipt"),
		Status:   stringField(body, "status"),
	}, nil
}

func paymentFromBody(body map[string]interface{}) *Payment {
	return &Payment{
		ID:      stringField(body, "id"),
		OrderID: stringField(body, "order_id"),
		Amount:  int64Field(body, "amount"),
		Status:  stringField(body, "status"),
		Method:  stringField(body, "method"),
	}
}

func stringField(body map[string]interface{}, key string) string {
	value, _ := body[key].(string)
	return value
}

// JSON numbers decode to float64 in the SDK response maps.
func int64Field(body map[string]interface{}, key string) int64 {
	switch value := body[key].(type) {
	case float64:
		return int64(value)
	case int64:
		return value
	case int:
		return int64(value)
	default:
		return 0
	}
}
