package razorpay

import (
	"context"
	"errors"

	"github.com/katatrina/fixfly-BE/internal/util"
	"github.com/razorpay/razorpay-go"
)

const (
	CurrencyINR = "INR"

	// Razorpay nhận số tiền theo đơn vị nhỏ nhất (paise)
	paisePerRupee = 100
)

var (
	ErrOrderCreationFailed = errors.New("failed to create razorpay order")
	ErrPaymentFetchFailed  = errors.New("failed to fetch razorpay payment")
	ErrPaymentNotCaptured  = errors.New("payment has not been captured for this order")
)

// PaymentGateway is the part of the payment processor the lifecycle code depends on.
type PaymentGateway interface {
	KeyID() string
	CreateOrder(ctx context.Context, amount int64, currency string, receipt string, notes map[string]string) (*Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
	GetPaymentDetails(ctx context.Context, paymentID string) (*Payment, error)
	VerifyWebhookSignature(body []byte, signature string) bool
}

type RazorpayService struct {
	client        *razorpay.Client
	keyID         string
	keySecret     string
	webhookSecret string
}

func NewRazorpayService(config util.Config) *RazorpayService {
	return &RazorpayService{
		client:        razorpay.NewClient(config.RazorpayKeyID, config.RazorpayKeySecret),
		keyID:         config.RazorpayKeyID,
		keySecret:     config.RazorpayKeySecret,
		webhookSecret: config.RazorpayWebhookSecret,
	}
}

// KeyID is the public key the checkout widget needs to open an order.
func (r *RazorpayService) KeyID() string {
	return r.keyID
}

var _ PaymentGateway = (*RazorpayService)(nil)
