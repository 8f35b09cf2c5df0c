package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/notification"
	"github.com/katatrina/fixfly-BE/internal/razorpay"
	"github.com/rs/zerolog/log"
)

// loadPayableBooking loads a booking by id for the payment endpoints and checks the caller may see it.
func (server *Server) loadPayableBooking(c *gin.Context, id string) (db.Booking, bool) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return db.Booking{}, false
	}

	booking, err := server.dbStore.GetBookingByID(c, bookingID)
	if err != nil {
		handleError(c, err, "booking")
		return db.Booking{}, false
	}

	allowed, err := server.canViewBooking(c, booking)
	if err != nil {
		handleError(c, err, "user")
		return db.Booking{}, false
	}

	if !allowed {
		c.JSON(http.StatusForbidden, errorResponse(ErrInsufficientPermission))
		return db.Booking{}, false
	}

	return booking, true
}

type createBookingPaymentOrderRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
}

type createBookingPaymentOrderResponse struct {
	Booking db.Booking           `json:"booking"`
	Order   *paymentOrderDetails `json:"order"`
}

//	@Summary		Open a Razorpay order for a booking
//	@Description	Charges the billed amount plus GST once the job is done, or the checkout total before it.
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			request	body		createBookingPaymentOrderRequest	true	"Booking"
//	@Success		200		{object}	createBookingPaymentOrderResponse
//	@Failure		400		{object}	Response
//	@Failure		500		{object}	Response
//	@Router			/bookings/payment/create-order [post]
func (server *Server) createBookingPaymentOrder(c *gin.Context) {
	var req createBookingPaymentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	booking, ok := server.loadPayableBooking(c, req.BookingID)
	if !ok {
		return
	}

	amount, err := booking.PayableAmount()
	if err != nil {
		handleError(c, err, "booking")
		return
	}

	order, err := server.paymentGateway.CreateOrder(c, amount, razorpay.CurrencyINR, booking.Code, map[string]string{
		"booking_id":   booking.ID.String(),
		"booking_code": booking.Code,
	})
	if err != nil {
		log.Err(err).Str("booking_code", booking.Code).Msg("failed to create razorpay order")
		c.JSON(http.StatusInternalServerError, errorResponse(ErrPaymentGatewayFailed))
		return
	}

	booking, err = server.dbStore.UpdateBookingTx(c, booking.ID, func(b *db.Booking) error {
		return b.AttachPaymentOrder(order.ID, amount)
	})
	if err != nil {
		handleError(c, err, "booking")
		return
	}

	c.JSON(http.StatusOK, successResponse(createBookingPaymentOrderResponse{
		Booking: booking,
		Order:   newPaymentOrderDetails(order, server.paymentGateway.KeyID()),
	}))
}

type verifyBookingPaymentRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	verifyPaymentRequest
}

//	@Summary		Verify a booking payment
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			request	body		verifyBookingPaymentRequest	true	"Razorpay checkout result"
//	@Success		200		{object}	db.Booking
//	@Failure		400		{object}	Response
//	@Router			/bookings/payment/verify [post]
func (server *Server) verifyBookingPayment(c *gin.Context) {
	var req verifyBookingPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	booking, ok := server.loadPayableBooking(c, req.BookingID)
	if !ok {
		return
	}

	if err := booking.CheckPaymentVerifiable(req.OrderID); err != nil {
		handleError(c, err, "booking")
		return
	}

	if !server.paymentGateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		log.Warn().Str("booking_code", booking.Code).Msg("razorpay signature mismatch")
		handleError(c, ErrInvalidSignature, "booking")
		return
	}

	if err := server.confirmCapturedPayment(c, req.verifyPaymentRequest, booking.Payment.Amount); err != nil {
		log.Warn().Err(err).Str("booking_code", booking.Code).Msg("razorpay payment not confirmed")
		handleError(c, err, "booking")
		return
	}

	booking, err := server.dbStore.UpdateBookingTx(c, booking.ID, func(b *db.Booking) error {
		return b.CompletePayment(req.OrderID, req.PaymentID, server.now())
	})
	if err != nil {
		handleError(c, err, "booking")
		return
	}

	server.notify(c, notification.BookingPaid(booking))

	c.JSON(http.StatusOK, messageResponse("Payment verified", booking))
}
