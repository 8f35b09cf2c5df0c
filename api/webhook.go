package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/notification"
	"github.com/katatrina/fixfly-BE/internal/razorpay"
	"github.com/rs/zerolog/log"
)

const razorpaySignatureHeader = "X-Razorpay-Signature"

// handleRazorpayWebhook xử lý callback từ Razorpay.
// Chỉ trả lỗi 5xx khi muốn Razorpay gửi lại, order không thuộc hệ thống thì bỏ qua.
func (server *Server) handleRazorpayWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if !server.paymentGateway.VerifyWebhookSignature(body, c.GetHeader(razorpaySignatureHeader)) {
		log.Warn().Msg("razorpay webhook signature mismatch")
		c.JSON(http.StatusBadRequest, errorResponse(ErrInvalidSignature))
		return
	}

	var event razorpay.WebhookEvent
	if err = json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	payment := event.Payload.Payment.Entity
	logger := log.With().Str("event", event.Event).Str("order_id", payment.OrderID).Str("payment_id", payment.ID).Logger()

	if payment.OrderID == "" {
		logger.Info().Msg("webhook without order, ignored")
		c.JSON(http.StatusOK, successResponse(nil))
		return
	}

	switch event.Event {
	case razorpay.EventPaymentCaptured, razorpay.EventOrderPaid:
		err = server.applyCapturedPayment(c, payment)
	case razorpay.EventPaymentFailed:
		err = server.applyFailedPayment(c, payment)
	default:
		logger.Info().Msg("unhandled webhook event")
	}

	// Checkout verify có thể đã xử lý thanh toán trước webhook
	if err != nil && !isSettledPaymentError(err) {
		if errors.Is(err, db.ErrRecordNotFound) {
			logger.Info().Msg("webhook for unknown order, ignored")
			c.JSON(http.StatusOK, successResponse(nil))
			return
		}

		logger.Err(err).Msg("failed to apply webhook")
		c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
		return
	}

	logger.Info().Msg("webhook processed")
	c.JSON(http.StatusOK, successResponse(nil))
}

func isSettledPaymentError(err error) bool {
	return errors.Is(err, db.ErrPaymentAlreadyCompleted) || errors.Is(err, db.ErrInvalidTransition)
}

func (server *Server) applyCapturedPayment(c *gin.Context, payment razorpay.Payment) error {
	booking, err := server.dbStore.GetBookingByPaymentOrderID(c, payment.OrderID)
	if err == nil {
		booking, err = server.dbStore.UpdateBookingTx(c, booking.ID, func(b *db.Booking) error {
			return b.CompletePayment(payment.OrderID, payment.ID, server.now())
		})
		if err != nil {
			return err
		}

		server.notify(c, notification.BookingPaid(booking))
		return nil
	}
	if !errors.Is(err, db.ErrRecordNotFound) {
		return err
	}

	subscription, err := server.dbStore.GetAMCSubscriptionByOrderID(c, &payment.OrderID)
	if err != nil {
		return err
	}

	subscription, err = server.dbStore.UpdateAMCSubscriptionTx(c, subscription.ID, func(s *db.AmcSubscription) error {
		return s.Activate(payment.OrderID, payment.ID, nil, server.now())
	})
	if err != nil {
		return err
	}

	server.notify(c, notification.SubscriptionActivated(subscription))
	return nil
}

func (server *Server) applyFailedPayment(c *gin.Context, payment razorpay.Payment) error {
	booking, err := server.dbStore.GetBookingByPaymentOrderID(c, payment.OrderID)
	if err == nil {
		_, err = server.dbStore.UpdateBookingTx(c, booking.ID, func(b *db.Booking) error {
			return b.MarkPaymentFailed()
		})
		return err
	}
	if !errors.Is(err, db.ErrRecordNotFound) {
		return err
	}

	subscription, err := server.dbStore.GetAMCSubscriptionByOrderID(c, &payment.OrderID)
	if err != nil {
		return err
	}

	_, err = server.dbStore.UpdateAMCSubscriptionTx(c, subscription.ID, func(s *db.AmcSubscription) error {
		return s.MarkPaymentFailed()
	})
	return err
}
