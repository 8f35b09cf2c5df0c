package razorpay

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// CreateOrder tạo order trên Razorpay. amount tính bằng rupee.
// There is no retry: the caller decides how to compensate a failure.
func (r *RazorpayService) CreateOrder(ctx context.Context, amount int64, currency string, receipt string, notes map[string]string) (*Order, error) {
	if currency == "" {
		currency = CurrencyINR
	}

	noteData := make(map[string]interface{}, len(notes))
	for key, value := range notes {
		noteData[key] = value
	}

	data := map[string]interface{}{
		"amount":   amount * paisePerRupee,
		"currency": currency,
		"receipt":  receipt,
		"notes":    noteData,
	}

	body, err := r.client.Order.Create(data, nil)
	if err != nil {
		log.Err(err).Str("receipt", receipt).Msg("failed to create razorpay order")
		return nil, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
	}

	order, err := orderFromBody(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
	}

	log.Info().Str("order_id", order.ID).Str("receipt", receipt).Msg("razorpay order created")
	return order, nil
}

// GetPaymentDetails fetches a payment by its id.
func (r *RazorpayService) GetPaymentDetails(ctx context.Context, paymentID string) (*Payment, error) {
	body, err := r.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentFetchFailed, err)
	}

	return paymentFromBody(body), nil
}
