package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/notification"
	"github.com/katatrina/fixfly-BE/internal/razorpay"
	"github.com/katatrina/fixfly-BE/internal/token"
	"github.com/katatrina/fixfly-BE/internal/validator"
	"github.com/rs/zerolog/log"
)

type paymentOrderDetails struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"` // paise
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

func newPaymentOrderDetails(order *razorpay.Order, keyID string) *paymentOrderDetails {
	return &paymentOrderDetails{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    keyID,
	}
}

type createAMCSubscriptionRequest struct {
	PlanID        string      `json:"plan_id" binding:"required,uuid"`
	Devices       []db.Device `json:"devices" binding:"required"`
	PaymentMethod string      `json:"payment_method" binding:"required,oneof=online cash"`
}

type createAMCSubscriptionResponse struct {
	Subscription db.AmcSubscription   `json:"subscription"`
	Order        *paymentOrderDetails `json:"order,omitempty"`
}

//	@Summary		Subscribe to an AMC plan
//	@Description	Creates an inactive subscription. Online payments also get a Razorpay order to open the checkout.
//	@Tags			amc
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			request	body		createAMCSubscriptionRequest	true	"Plan and devices"
//	@Success		201		{object}	createAMCSubscriptionResponse
//	@Failure		400		{object}	Response
//	@Failure		404		{object}	Response
//	@Failure		500		{object}	Response
//	@Router			/amc/subscriptions [post]
func (server *Server) createAMCSubscription(c *gin.Context) {
	var req createAMCSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := validator.ValidateDevices(req.Devices); err != nil {
		c.JSON(http.StatusBadRequest, failedValidationError([]*FieldViolation{fieldViolation("devices", err)}))
		return
	}

	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	user, err := server.dbStore.GetUserByID(c, authPayload.Subject)
	if err != nil {
		handleError(c, err, "user")
		return
	}

	plan, err := server.dbStore.GetAMCPlanByID(c, uuid.MustParse(req.PlanID))
	if err != nil {
		handleError(c, err, "plan")
		return
	}

	if plan.Status != db.AmcPlanStatusActive {
		c.JSON(http.StatusNotFound, errorResponse(errors.New("plan not found")))
		return
	}

	subscription, err := server.dbStore.CreateAMCSubscriptionTx(c, db.CreateAMCSubscriptionTxParams{
		User:          user,
		Plan:          plan,
		Devices:       req.Devices,
		PaymentMethod: db.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		handleError(c, err, "subscription")
		return
	}

	resp := createAMCSubscriptionResponse{Subscription: subscription}

	if subscription.PaymentMethod == db.PaymentMethodOnline {
		order, err := server.paymentGateway.CreateOrder(c, subscription.Amount, razorpay.CurrencyINR, subscription.SubscriptionID, map[string]string{
			"subscription_id": subscription.SubscriptionID,
		})
		if err != nil {
			log.Err(err).Str("subscription_id", subscription.SubscriptionID).Msg("failed to create razorpay order")
			server.discardSubscription(c, subscription.ID)
			c.JSON(http.StatusInternalServerError, errorResponse(ErrPaymentGatewayFailed))
			return
		}

		subscription, err = server.dbStore.UpdateAMCSubscriptionTx(c, subscription.ID, func(s *db.AmcSubscription) error {
			s.RazorpayOrderID = &order.ID
			return nil
		})
		if err != nil {
			log.Err(err).Str("subscription_id", resp.Subscription.SubscriptionID).Msg("failed to store razorpay order id")
			server.discardSubscription(c, resp.Subscription.ID)
			c.JSON(http.StatusInternalServerError, errorResponse(ErrInternalServer))
			return
		}

		resp.Subscription = subscription
		resp.Order = newPaymentOrderDetails(order, server.paymentGateway.KeyID())
	}

	server.notify(c, notification.SubscriptionCreated(subscription))

	c.JSON(http.StatusCreated, successResponse(resp))
}

// discardSubscription removes a subscription whose checkout could not be opened.
func (server *Server) discardSubscription(c *gin.Context, id uuid.UUID) {
	if err := server.dbStore.DeleteAMCSubscription(c, id); err != nil {
		log.Err(err).Str("id", id.String()).Msg("failed to delete subscription after gateway failure")
	}
}

// getOwnedSubscription trả về subscription của user đang đăng nhập.
// Subscription của người khác được báo là không tồn tại.
func (server *Server) getOwnedSubscription(c *gin.Context) (db.AmcSubscription, bool) {
	subscriptionID, ok := parseUUIDParam(c, "id")
	if !ok {
		return db.AmcSubscription{}, false
	}

	subscription, err := server.dbStore.GetAMCSubscriptionByID(c, subscriptionID)
	if err != nil {
		handleError(c, err, "subscription")
		return db.AmcSubscription{}, false
	}

	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)
	if subscription.UserID != authPayload.Subject {
		handleError(c, db.ErrRecordNotFound, "subscription")
		return db.AmcSubscription{}, false
	}

	return subscription, true
}

//	@Summary		List my AMC subscriptions
//	@Tags			amc
//	@Produce		json
//	@Security		accessToken
//	@Success		200	{array}	db.AmcSubscription
//	@Router			/amc/subscriptions [get]
func (server *Server) listUserAMCSubscriptions(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	subscriptions, err := server.dbStore.ListAMCSubscriptionsByUserID(c, authPayload.Subject)
	if err != nil {
		handleError(c, err, "subscription")
		return
	}

	c.JSON(http.StatusOK, successResponse(subscriptions))
}

//	@Summary		Get one of my AMC subscriptions
//	@Tags			amc
//	@Produce		json
//	@Security		accessToken
//	@Param			id	path		string	true	"Subscription ID"
//	@Success		200	{object}	db.AmcSubscription
//	@Failure		404	{object}	Response
//	@Router			/amc/subscriptions/{id} [get]
func (server *Server) getUserAMCSubscription(c *gin.Context) {
	subscription, ok := server.getOwnedSubscription(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, successResponse(subscription))
}

type verifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}

// confirmCapturedPayment hỏi lại Razorpay để chắc chắn khoản thanh toán đã được capture đủ số tiền.
func (server *Server) confirmCapturedPayment(c *gin.Context, req verifyPaymentRequest, amount int64) error {
	payment, err := server.paymentGateway.GetPaymentDetails(c, req.PaymentID)
	if err != nil {
		return err
	}

	return payment.CheckCaptured(req.OrderID, amount)
}

//	@Summary		Verify an AMC payment
//	@Description	Checks the Razorpay signature and activates the subscription.
//	@Tags			amc
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string					true	"Subscription ID"
//	@Param			request	body		verifyPaymentRequest	true	"Razorpay checkout result"
//	@Success		200		{object}	db.AmcSubscription
//	@Failure		400		{object}	Response
//	@Router			/amc/subscriptions/{id}/verify-payment [post]
func (server *Server) verifyAMCPayment(c *gin.Context) {
	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	subscription, ok := server.getOwnedSubscription(c)
	if !ok {
		return
	}

	if err := subscription.CheckPaymentVerifiable(req.OrderID); err != nil {
		handleError(c, err, "subscription")
		return
	}

	if !server.paymentGateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		log.Warn().Str("subscription_id", subscription.SubscriptionID).Msg("razorpay signature mismatch")
		handleError(c, ErrInvalidSignature, "subscription")
		return
	}

	if err := server.confirmCapturedPayment(c, req, subscription.Amount); err != nil {
		log.Warn().Err(err).Str("subscription_id", subscription.SubscriptionID).Msg("razorpay payment not confirmed")
		handleError(c, err, "subscription")
		return
	}

	// Kiểm tra lại dưới row lock, hai request verify đồng thời chỉ một cái thành công
	subscription, err := server.dbStore.UpdateAMCSubscriptionTx(c, subscription.ID, func(s *db.AmcSubscription) error {
		return s.Activate(req.OrderID, req.PaymentID, &req.Signature, server.now())
	})
	if err != nil {
		handleError(c, err, "subscription")
		return
	}

	server.notify(c, notification.SubscriptionActivated(subscription))

	c.JSON(http.StatusOK, messageResponse("Payment verified, subscription activated", subscription))
}

type cancelAMCSubscriptionRequest struct {
	Reason string `json:"reason" binding:"required"`
}

//	@Summary		Cancel an AMC subscription
//	@Description	Refund is pro-rated on the days left and issued outside the API.
//	@Tags			amc
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string							true	"Subscription ID"
//	@Param			request	body		cancelAMCSubscriptionRequest	true	"Reason"
//	@Success		200		{object}	db.AmcSubscription
//	@Failure		400		{object}	Response
//	@Router			/amc/subscriptions/{id}/cancel [post]
func (server *Server) cancelAMCSubscription(c *gin.Context) {
	var req cancelAMCSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	subscription, ok := server.getOwnedSubscription(c)
	if !ok {
		return
	}

	subscription, err := server.dbStore.UpdateAMCSubscriptionTx(c, subscription.ID, func(s *db.AmcSubscription) error {
		return s.Cancel(req.Reason, server.now())
	})
	if err != nil {
		handleError(c, err, "subscription")
		return
	}

	server.notify(c, notification.SubscriptionCancelled(subscription))

	c.JSON(http.StatusOK, messageResponse("Subscription cancelled", subscription))
}

type renewAMCSubscriptionRequest struct {
	PeriodDays int64 `json:"period_days" binding:"min=0"`
}

//	@Summary		Renew an AMC subscription
//	@Description	Extends the end date by period_days, or by the plan period when omitted.
//	@Tags			amc
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string						true	"Subscription ID"
//	@Param			request	body		renewAMCSubscriptionRequest	false	"Renewal period"
//	@Success		200		{object}	db.AmcSubscription
//	@Failure		400		{object}	Response
//	@Router			/amc/subscriptions/{id}/renew [post]
func (server *Server) renewAMCSubscription(c *gin.Context) {
	var req renewAMCSubscriptionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
	}

	subscription, ok := server.getOwnedSubscription(c)
	if !ok {
		return
	}

	// Gói đã bị xoá thì không reset usage
	var resetUsage bool
	plan, err := server.dbStore.GetAMCPlanByID(c, subscription.PlanID)
	switch {
	case err == nil:
		resetUsage = plan.Benefits.ResetUsageOnRenewal
	case !errors.Is(err, db.ErrRecordNotFound):
		handleError(c, err, "plan")
		return
	}

	subscription, err = server.dbStore.UpdateAMCSubscriptionTx(c, subscription.ID, func(s *db.AmcSubscription) error {
		return s.Renew(req.PeriodDays, resetUsage)
	})
	if err != nil {
		handleError(c, err, "subscription")
		return
	}

	server.notify(c, notification.SubscriptionRenewed(subscription))

	c.JSON(http.StatusOK, messageResponse("Subscription renewed", subscription))
}

type recordServiceRequest struct {
	Type         string `json:"type" binding:"required,oneof=home_visit warranty_claim remote_support"`
	DeviceSerial string `json:"device_serial" binding:"required"`
	Description  string `json:"description"`
}

type recordServiceResponse struct {
	Subscription db.AmcSubscription     `json:"subscription"`
	Entry        db.ServiceHistoryEntry `json:"entry"`
}

func (server *Server) recordService(c *gin.Context, id uuid.UUID, req recordServiceRequest, status, recordedBy string) (recordServiceResponse, error) {
	var entry db.ServiceHistoryEntry

	subscription, err := server.dbStore.UpdateAMCSubscriptionTx(c, id, func(s *db.AmcSubscription) error {
		var err error
		entry, err = s.RecordService(db.RecordServiceParams{
			Kind:         db.UsageKind(req.Type),
			DeviceSerial: req.DeviceSerial,
			Description:  req.Description,
			Status:       status,
			RecordedBy:   recordedBy,
		}, server.now())
		return err
	})
	if err != nil {
		return recordServiceResponse{}, err
	}

	return recordServiceResponse{
		Subscription: subscription,
		Entry:        entry,
	}, nil
}

//	@Summary		Request an AMC service
//	@Tags			amc
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string					true	"Subscription ID"
//	@Param			request	body		recordServiceRequest	true	"Service"
//	@Success		201		{object}	recordServiceResponse
//	@Failure		400		{object}	Response
//	@Router			/amc/subscriptions/{id}/services [post]
func (server *Server) requestAMCService(c *gin.Context) {
	var req recordServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	subscription, ok := server.getOwnedSubscription(c)
	if !ok {
		return
	}

	resp, err := server.recordService(c, subscription.ID, req, db.ServiceEntryStatusRequested, subscription.UserID)
	if err != nil {
		handleError(c, err, "subscription")
		return
	}

	server.notify(c, notification.ServiceRequested(resp.Subscription, resp.Entry))

	c.JSON(http.StatusCreated, successResponse(resp))
}

type setAutoRenewalRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

//	@Summary		Toggle auto-renewal
//	@Tags			amc
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string					true	"Subscription ID"
//	@Param			request	body		setAutoRenewalRequest	true	"Flag"
//	@Success		200		{object}	db.AmcSubscription
//	@Router			/amc/subscriptions/{id}/auto-renewal [patch]
func (server *Server) setAMCAutoRenewal(c *gin.Context) {
	var req setAutoRenewalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	subscription, ok := server.getOwnedSubscription(c)
	if !ok {
		return
	}

	subscription, err := server.dbStore.UpdateAMCSubscriptionTx(c, subscription.ID, func(s *db.AmcSubscription) error {
		return s.SetAutoRenewal(*req.Enabled)
	})
	if err != nil {
		handleError(c, err, "subscription")
		return
	}

	c.JSON(http.StatusOK, successResponse(subscription))
}

type listAMCSubscriptionsQuery struct {
	Status   *string `form:"status" binding:"omitempty,oneof=inactive active expired cancelled"`
	Page     int32   `form:"page,default=1" binding:"min=1"`
	PageSize int32   `form:"page_size,default=20" binding:"min=1,max=100"`
}

//	@Summary		List all AMC subscriptions
//	@Tags			admin
//	@Produce		json
//	@Security		accessToken
//	@Param			status		query	string	false	"Subscription status"
//	@Param			page		query	int		false	"Page number"	default(1)
//	@Param			page_size	query	int		false	"Page size"		default(20)
//	@Success		200			{array}	db.AmcSubscription
//	@Router			/admin/amc/subscriptions [get]
func (server *Server) listAMCSubscriptions(c *gin.Context) {
	var query listAMCSubscriptionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.ListAMCSubscriptionsParams{
		Limit:  query.PageSize,
		Offset: (query.Page - 1) * query.PageSize,
	}
	if query.Status != nil {
		arg.Status = db.NullAmcSubscriptionStatus{AmcSubscriptionStatus: db.AmcSubscriptionStatus(*query.Status), Valid: true}
	}

	subscriptions, err := server.dbStore.ListAMCSubscriptions(c, arg)
	if err != nil {
		handleError(c, err, "subscription")
		return
	}

	c.JSON(http.StatusOK, successResponse(subscriptions))
}

type listExpiringAMCSubscriptionsQuery struct {
	Days int `form:"days,default=30" binding:"min=1,max=365"`
}

//	@Summary		List subscriptions ending soon
//	@Tags			admin
//	@Produce		json
//	@Security		accessToken
//	@Param			days	query	int	false	"Window in days"	default(30)
//	@Success		200		{array}	db.AmcSubscription
//	@Router			/admin/amc/subscriptions/expiring [get]
func (server *Server) listExpiringAMCSubscriptions(c *gin.Context) {
	var query listExpiringAMCSubscriptionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	before := server.now().Add(time.Duration(query.Days) * 24 * time.Hour)

	subscriptions, err := server.dbStore.ListExpiringAMCSubscriptions(c, before)
	if err != nil {
		handleError(c, err, "subscription")
		return
	}

	c.JSON(http.StatusOK, successResponse(subscriptions))
}

//	@Summary		Get any AMC subscription
//	@Tags			admin
//	@Produce		json
//	@Security		accessToken
//	@Param			id	path		string	true	"Subscription ID"
//	@Success		200	{object}	db.AmcSubscription
//	@Router			/admin/amc/subscriptions/{id} [get]
func (server *Server) getAMCSubscription(c *gin.Context) {
	subscriptionID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	subscription, err := server.dbStore.GetAMCSubscriptionByID(c, subscriptionID)
	if err != nil {
		handleError(c, err, "subscription")
		return
	}

	c.JSON(http.StatusOK, successResponse(subscription))
}

//	@Summary		Record a cash payment
//	@Description	Activates a cash subscription after the payment was collected offline.
//	@Tags			admin
//	@Produce		json
//	@Security		accessToken
//	@Param			id	path		string	true	"Subscription ID"
//	@Success		200	{object}	db.AmcSubscription
//	@Failure		400	{object}	Response
//	@Router			/admin/amc/subscriptions/{id}/record-payment [post]
func (server *Server) recordAMCCashPayment(c *gin.Context) {
	subscriptionID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	subscription, err := server.dbStore.UpdateAMCSubscriptionTx(c, subscriptionID, func(s *db.AmcSubscription) error {
		return s.RecordCashPayment(server.now())
	})
	if err != nil {
		handleError(c, err, "subscription")
		return
	}

	server.notify(c, notification.SubscriptionActivated(subscription))

	c.JSON(http.StatusOK, messageResponse("Cash payment recorded, subscription activated", subscription))
}

//	@Summary		Record usage on a subscription
//	@Description	Consumes one unit of the counter for type and logs a completed history entry.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string					true	"Subscription ID"
//	@Param			request	body		recordServiceRequest	true	"Usage"
//	@Success		200		{object}	recordServiceResponse
//	@Failure		400		{object}	Response
//	@Router			/admin/amc/subscriptions/{id}/usage [patch]
func (server *Server) updateAMCUsage(c *gin.Context) {
	server.recordAdminService(c, http.StatusOK, "Usage recorded by admin")
}

//	@Summary		Add a completed service to a subscription
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string					true	"Subscription ID"
//	@Param			request	body		recordServiceRequest	true	"Service"
//	@Success		201		{object}	recordServiceResponse
//	@Failure		400		{object}	Response
//	@Router			/admin/amc/subscriptions/{id}/services [post]
func (server *Server) addAMCService(c *gin.Context) {
	server.recordAdminService(c, http.StatusCreated, "")
}

func (server *Server) recordAdminService(c *gin.Context, status int, defaultDescription string) {
	subscriptionID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req recordServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if req.Description == "" {
		if defaultDescription == "" {
			c.JSON(http.StatusBadRequest, failedValidationError([]*FieldViolation{
				fieldViolation("description", fmt.Errorf("description is required")),
			}))
			return
		}
		req.Description = defaultDescription
	}

	admin := c.MustGet(adminPayloadKey).(*db.User)

	resp, err := server.recordService(c, subscriptionID, req, db.ServiceEntryStatusCompleted, admin.ID)
	if err != nil {
		handleError(c, err, "subscription")
		return
	}

	c.JSON(status, successResponse(resp))
}
