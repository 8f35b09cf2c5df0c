package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/notification"
	"github.com/katatrina/fixfly-BE/internal/token"
	"github.com/katatrina/fixfly-BE/internal/util"
	"github.com/katatrina/fixfly-BE/internal/validator"
)

const (
	cancelledByUser   = "user"
	cancelledByAdmin  = "admin"
	cancelledByVendor = "vendor"
)

type createBookingRequest struct {
	Customer      db.CustomerSnapshot     `json:"customer"`
	Services      []db.BookingServiceItem `json:"services" binding:"required,min=1"`
	Pricing       db.BookingPricing       `json:"pricing"`
	PreferredDate string                  `json:"preferred_date" binding:"required"`
	PreferredSlot string                  `json:"preferred_slot" binding:"required"`
	Notes         *string                 `json:"notes"`
	PaymentMethod string                  `json:"payment_method" binding:"required,oneof=online cash"`
}

func (req *createBookingRequest) validate(server *Server) (violations []*FieldViolation) {
	if err := validator.ValidateFullName(req.Customer.Name); err != nil {
		violations = append(violations, fieldViolation("customer.name", err))
	}

	if err := validator.ValidateEmail(req.Customer.Email); err != nil {
		violations = append(violations, fieldViolation("customer.email", err))
	}

	if err := validator.ValidatePhoneNumber(req.Customer.Phone); err != nil {
		violations = append(violations, fieldViolation("customer.phone", err))
	}

	if err := validator.ValidateString(req.Customer.Address, 5, 500); err != nil {
		violations = append(violations, fieldViolation("customer.address", err))
	}

	for _, service := range req.Services {
		if service.ServiceID == "" || service.Name == "" || service.Price < 0 {
			violations = append(violations, fieldViolation("services", errors.New("each service needs service_id, name and a non-negative price")))
			break
		}
	}

	if err := validator.ValidateBookingPricing(req.Pricing); err != nil {
		violations = append(violations, fieldViolation("pricing", err))
	}

	if err := validator.ValidateVisitDate(req.PreferredDate, server.now()); err != nil {
		violations = append(violations, fieldViolation("preferred_date", err))
	}

	if err := validator.ValidateTimeSlot(req.PreferredSlot); err != nil {
		violations = append(violations, fieldViolation("preferred_slot", err))
	}

	return violations
}

//	@Summary		Book a service visit
//	@Description	Guests can book too. A signed-in customer gets the booking linked to the account.
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createBookingRequest	true	"Booking"
//	@Success		201		{object}	db.Booking
//	@Failure		400		{object}	Response
//	@Router			/bookings [post]
func (server *Server) createBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	req.Customer.Email = strings.ToLower(strings.TrimSpace(req.Customer.Email))
	if violations := req.validate(server); violations != nil {
		c.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}

	var userID *string
	if value, exists := c.Get(authorizationPayloadKey); exists {
		authPayload := value.(*token.Payload)
		if authPayload.Role == token.RoleCustomer {
			userID = &authPayload.Subject
		}
	}

	booking, err := server.dbStore.CreateBooking(c, db.CreateBookingParams{
		Code:     util.GenerateBookingCode(),
		UserID:   userID,
		Customer: req.Customer,
		Services: req.Services,
		Pricing:  req.Pricing,
		Scheduling: db.BookingScheduling{
			PreferredDate: req.PreferredDate,
			PreferredSlot: req.PreferredSlot,
		},
		Priority: db.BookingPriorityNormal,
		Notes:    req.Notes,
		Payment: db.BookingPayment{
			Status:       db.PaymentStatusPending,
			Method:       db.PaymentMethod(req.PaymentMethod),
			Amount:       req.Pricing.TotalAmount,
			RefundStatus: db.RefundStatusNone,
		},
		VendorResponse: db.VendorResponse{Status: db.VendorResponseStatusPending},
	})
	if err != nil {
		handleError(c, err, "booking")
		return
	}

	server.notify(c, notification.BookingCreated(booking))

	c.JSON(http.StatusCreated, successResponse(booking))
}

// isBookingOwner matches on the linked account first, then on the email a guest booked with.
func (server *Server) isBookingOwner(c *gin.Context, booking db.Booking, userID string) (bool, error) {
	if booking.UserID != nil && *booking.UserID == userID {
		return true, nil
	}

	user, err := server.dbStore.GetUserByID(c, userID)
	if err != nil {
		return false, err
	}

	return strings.EqualFold(user.Email, booking.Customer.Email), nil
}

// canViewBooking: admin xem tất cả, vendor chỉ xem booking được gán, khách chỉ xem booking của mình.
func (server *Server) canViewBooking(c *gin.Context, booking db.Booking) (bool, error) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	switch authPayload.Role {
	case token.RoleAdmin:
		return true, nil
	case token.RoleVendor:
		return booking.IsAssignedTo(authPayload.Subject), nil
	default:
		return server.isBookingOwner(c, booking, authPayload.Subject)
	}
}

// getBookingForCaller loads the :id booking and writes the error response when the caller may not see it.
func (server *Server) getBookingForCaller(c *gin.Context) (db.Booking, bool) {
	bookingID, ok := parseUUIDParam(c, "id")
	if !ok {
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

// getCustomerBooking is getBookingForCaller restricted to the booking's customer.
func (server *Server) getCustomerBooking(c *gin.Context) (db.Booking, bool) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)
	if authPayload.Role != token.RoleCustomer {
		c.JSON(http.StatusForbidden, errorResponse(ErrInsufficientPermission))
		return db.Booking{}, false
	}

	return server.getBookingForCaller(c)
}

//	@Summary		Get a booking
//	@Tags			bookings
//	@Produce		json
//	@Security		accessToken
//	@Param			id	path		string	true	"Booking ID"
//	@Success		200	{object}	db.Booking
//	@Failure		403	{object}	Response
//	@Failure		404	{object}	Response
//	@Router			/bookings/{id} [get]
func (server *Server) getBooking(c *gin.Context) {
	booking, ok := server.getBookingForCaller(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, successResponse(booking))
}

//	@Summary		List bookings made with an email
//	@Tags			bookings
//	@Produce		json
//	@Security		accessToken
//	@Param			email	path	string	true	"Customer email"
//	@Success		200		{array}	db.Booking
//	@Failure		403		{object}	Response
//	@Router			/bookings/customer/{email} [get]
func (server *Server) listCustomerBookings(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	switch authPayload.Role {
	case token.RoleAdmin:
	case token.RoleCustomer:
		user, err := server.dbStore.GetUserByID(c, authPayload.Subject)
		if err != nil {
			handleError(c, err, "user")
			return
		}

		if !strings.EqualFold(user.Email, email) {
			c.JSON(http.StatusForbidden, errorResponse(ErrInsufficientPermission))
			return
		}
	default:
		c.JSON(http.StatusForbidden, errorResponse(ErrInsufficientPermission))
		return
	}

	bookings, err := server.dbStore.ListBookingsByCustomerEmail(c, email)
	if err != nil {
		handleError(c, err, "booking")
		return
	}

	c.JSON(http.StatusOK, successResponse(bookings))
}

type updateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed in_progress declined cancelled"`
	Reason string `json:"reason"`
}

//	@Summary		Move a booking to another status
//	@Description	Admins can move any booking. Vendors only the bookings assigned to them.
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string						true	"Booking ID"
//	@Param			request	body		updateBookingStatusRequest	true	"Target status"
//	@Success		200		{object}	db.Booking
//	@Failure		400		{object}	Response
//	@Failure		403		{object}	Response
//	@Router			/bookings/{id}/status [patch]
func (server *Server) updateBookingStatus(c *gin.Context) {
	bookingID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req updateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)

	var actor string
	switch authPayload.Role {
	case token.RoleAdmin:
		actor = cancelledByAdmin
	case token.RoleVendor:
		actor = cancelledByVendor
	default:
		c.JSON(http.StatusForbidden, errorResponse(ErrInsufficientPermission))
		return
	}

	booking, err := server.dbStore.UpdateBookingTx(c, bookingID, func(b *db.Booking) error {
		if authPayload.Role == token.RoleVendor && !b.IsAssignedTo(authPayload.Subject) {
			return db.ErrVendorNotAssigned
		}

		return b.Transition(db.BookingStatus(req.Status), req.Reason, actor, server.now())
	})
	if err != nil {
		handleError(c, err, "booking")
		return
	}

	if booking.Status == db.BookingStatusCancelled {
		server.notify(c, notification.BookingCancelled(booking))
	} else {
		server.notify(c, notification.BookingStatusChanged(booking))
	}

	c.JSON(http.StatusOK, successResponse(booking))
}

type vendorResponseRequest struct {
	Note *string `json:"note"`
}

//	@Summary		Accept an assigned booking
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string					true	"Booking ID"
//	@Param			request	body		vendorResponseRequest	false	"Optional note"
//	@Success		200		{object}	db.Booking
//	@Router			/bookings/{id}/accept [patch]
func (server *Server) acceptBooking(c *gin.Context) {
	server.respondToAssignment(c, true)
}

//	@Summary		Decline an assigned booking
//	@Description	The booking goes back to the admin for reassignment.
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string					true	"Booking ID"
//	@Param			request	body		vendorResponseRequest	false	"Optional note"
//	@Success		200		{object}	db.Booking
//	@Router			/bookings/{id}/decline [patch]
func (server *Server) declineBooking(c *gin.Context) {
	server.respondToAssignment(c, false)
}

func (server *Server) respondToAssignment(c *gin.Context, accept bool) {
	bookingID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req vendorResponseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
	}

	vendor := c.MustGet(vendorPayloadKey).(*db.Vendor)

	booking, err := server.dbStore.UpdateBookingTx(c, bookingID, func(b *db.Booking) error {
		if accept {
			return b.Accept(vendor.ID, req.Note, server.now())
		}
		return b.Decline(vendor.ID, req.Note, server.now())
	})
	if err != nil {
		handleError(c, err, "booking")
		return
	}

	if accept {
		server.notify(c, notification.BookingAccepted(booking))
	} else {
		server.notify(c, notification.BookingDeclined(booking))
	}

	c.JSON(http.StatusOK, successResponse(booking))
}

type completeBookingTaskRequest struct {
	ResolutionNote  string         `json:"resolution_note" binding:"required"`
	BillingAmount   int64          `json:"billing_amount" binding:"min=0"`
	SpareParts      []db.SparePart `json:"spare_parts"`
	PaymentMethod   string         `json:"payment_method" binding:"required,oneof=online cash"`
	TravelingAmount int64          `json:"traveling_amount" binding:"min=0"`
	IncludeGST      bool           `json:"include_gst"`
}

//	@Summary		Submit billing for a finished job
//	@Description	Cash bookings complete right away. Online bookings complete after the customer pays.
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string						true	"Booking ID"
//	@Param			request	body		completeBookingTaskRequest	true	"Billing"
//	@Success		200		{object}	db.Booking
//	@Failure		400		{object}	Response
//	@Router			/bookings/{id}/complete [post]
func (server *Server) completeBookingTask(c *gin.Context) {
	bookingID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req completeBookingTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if err := validator.ValidateSpareParts(req.SpareParts); err != nil {
		c.JSON(http.StatusBadRequest, failedValidationError([]*FieldViolation{fieldViolation("spare_parts", err)}))
		return
	}

	vendor := c.MustGet(vendorPayloadKey).(*db.Vendor)

	booking, err := server.dbStore.UpdateBookingTx(c, bookingID, func(b *db.Booking) error {
		return b.CompleteTask(db.CompleteTaskParams{
			VendorID:        vendor.ID,
			ResolutionNote:  req.ResolutionNote,
			BillingAmount:   req.BillingAmount,
			SpareParts:      req.SpareParts,
			PaymentMethod:   db.PaymentMethod(req.PaymentMethod),
			TravelingAmount: req.TravelingAmount,
			IncludeGST:      req.IncludeGST,
		}, server.now())
	})
	if err != nil {
		handleError(c, err, "booking")
		return
	}

	server.notify(c, notification.BookingCompleted(booking))

	c.JSON(http.StatusOK, successResponse(booking))
}

type cancelBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

//	@Summary		Cancel my booking
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string					true	"Booking ID"
//	@Param			request	body		cancelBookingRequest	true	"Reason"
//	@Success		200		{object}	db.Booking
//	@Failure		400		{object}	Response
//	@Router			/bookings/{id}/cancel-by-user [patch]
func (server *Server) cancelBookingByUser(c *gin.Context) {
	var req cancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	booking, ok := server.getCustomerBooking(c)
	if !ok {
		return
	}

	server.cancelBooking(c, booking, req.Reason, cancelledByUser)
}

//	@Summary		Cancel a booking
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string					true	"Booking ID"
//	@Param			request	body		cancelBookingRequest	true	"Reason"
//	@Success		200		{object}	db.Booking
//	@Failure		400		{object}	Response
//	@Router			/admin/bookings/{id}/cancel [patch]
func (server *Server) cancelBookingByAdmin(c *gin.Context) {
	bookingID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req cancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	server.cancelBooking(c, db.Booking{ID: bookingID}, req.Reason, cancelledByAdmin)
}

func (server *Server) cancelBooking(c *gin.Context, booking db.Booking, reason, cancelledBy string) {
	booking, err := server.dbStore.UpdateBookingTx(c, booking.ID, func(b *db.Booking) error {
		return b.Cancel(reason, cancelledBy, server.now())
	})
	if err != nil {
		handleError(c, err, "booking")
		return
	}

	server.notify(c, notification.BookingCancelled(booking))

	c.JSON(http.StatusOK, messageResponse("Booking cancelled", booking))
}

type rescheduleBookingRequest struct {
	NewDate string `json:"new_date" binding:"required"`
	NewTime string `json:"new_time" binding:"required"`
	Reason  string `json:"reason" binding:"required"`
}

//	@Summary		Reschedule my booking
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string						true	"Booking ID"
//	@Param			request	body		rescheduleBookingRequest	true	"New visit"
//	@Success		200		{object}	db.Booking
//	@Failure		400		{object}	Response
//	@Router			/bookings/{id}/reschedule-by-user [patch]
func (server *Server) rescheduleBookingByUser(c *gin.Context) {
	var req rescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var violations []*FieldViolation
	if err := validator.ValidateVisitDate(req.NewDate, server.now()); err != nil {
		violations = append(violations, fieldViolation("new_date", err))
	}
	if err := validator.ValidateTimeSlot(req.NewTime); err != nil {
		violations = append(violations, fieldViolation("new_time", err))
	}
	if violations != nil {
		c.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}

	booking, ok := server.getCustomerBooking(c)
	if !ok {
		return
	}

	booking, err := server.dbStore.UpdateBookingTx(c, booking.ID, func(b *db.Booking) error {
		return b.RescheduleVisit(req.NewDate, req.NewTime, req.Reason, server.now())
	})
	if err != nil {
		handleError(c, err, "booking")
		return
	}

	server.notify(c, notification.BookingRescheduled(booking))

	c.JSON(http.StatusOK, messageResponse("Booking rescheduled", booking))
}

type assignVendorRequest struct {
	VendorID      string  `json:"vendor_id" binding:"required"`
	ScheduledDate *string `json:"scheduled_date"`
	ScheduledTime *string `json:"scheduled_time"`
	Priority      *string `json:"priority" binding:"omitempty,oneof=low normal high urgent"`
	Notes         *string `json:"notes"`
	Confirm       bool    `json:"confirm"`
}

//	@Summary		Assign an engineer to a booking
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		accessToken
//	@Param			id		path		string				true	"Booking ID"
//	@Param			request	body		assignVendorRequest	true	"Assignment"
//	@Success		200		{object}	db.Booking
//	@Failure		400		{object}	Response
//	@Failure		404		{object}	Response
//	@Router			/admin/bookings/{id}/assign [post]
func (server *Server) assignVendor(c *gin.Context) {
	bookingID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req assignVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var violations []*FieldViolation
	if req.ScheduledDate != nil {
		if err := validator.ValidateDate(*req.ScheduledDate); err != nil {
			violations = append(violations, fieldViolation("scheduled_date", err))
		}
	}
	if req.ScheduledTime != nil {
		if err := validator.ValidateTimeSlot(*req.ScheduledTime); err != nil {
			violations = append(violations, fieldViolation("scheduled_time", err))
		}
	}
	if violations != nil {
		c.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}

	vendor, err := server.dbStore.GetVendorByID(c, req.VendorID)
	if err != nil {
		handleError(c, err, "vendor")
		return
	}

	if !vendor.IsActive {
		handleError(c, db.ErrVendorInactive, "vendor")
		return
	}

	arg := db.AssignVendorParams{
		VendorID:      vendor.ID,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		Notes:         req.Notes,
		Confirm:       req.Confirm,
	}
	if req.Priority != nil {
		priority := db.BookingPriority(*req.Priority)
		arg.Priority = &priority
	}

	booking, err := server.dbStore.UpdateBookingTx(c, bookingID, func(b *db.Booking) error {
		return b.AssignVendor(arg, server.now())
	})
	if err != nil {
		handleError(c, err, "booking")
		return
	}

	server.notify(c, notification.BookingAssigned(booking))

	c.JSON(http.StatusOK, messageResponse("Vendor assigned", booking))
}

type listBookingsQuery struct {
	Status   *string `form:"status" binding:"omitempty,oneof=pending waiting_for_engineer confirmed in_progress completed cancelled declined"`
	Page     int32   `form:"page,default=1" binding:"min=1"`
	PageSize int32   `form:"page_size,default=20" binding:"min=1,max=100"`
}

func (query listBookingsQuery) status() db.NullBookingStatus {
	if query.Status == nil {
		return db.NullBookingStatus{}
	}

	return db.NullBookingStatus{BookingStatus: db.BookingStatus(*query.Status), Valid: true}
}

//	@Summary		List all bookings
//	@Tags			admin
//	@Produce		json
//	@Security		accessToken
//	@Param			status		query	string	false	"Booking status"
//	@Param			page		query	int		false	"Page number"	default(1)
//	@Param			page_size	query	int		false	"Page size"		default(20)
//	@Success		200			{array}	db.Booking
//	@Router			/admin/bookings [get]
func (server *Server) listBookings(c *gin.Context) {
	var query listBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	bookings, err := server.dbStore.ListBookings(c, db.ListBookingsParams{
		Status: query.status(),
		Limit:  query.PageSize,
		Offset: (query.Page - 1) * query.PageSize,
	})
	if err != nil {
		handleError(c, err, "booking")
		return
	}

	c.JSON(http.StatusOK, successResponse(bookings))
}

//	@Summary		List my assigned bookings
//	@Tags			vendors
//	@Produce		json
//	@Security		accessToken
//	@Param			status	query	string	false	"Booking status"
//	@Success		200		{array}	db.Booking
//	@Router			/vendor/bookings [get]
func (server *Server) listVendorBookings(c *gin.Context) {
	var query listBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	vendor := c.MustGet(vendorPayloadKey).(*db.Vendor)

	bookings, err := server.dbStore.ListBookingsByVendorID(c, db.ListBookingsByVendorIDParams{
		VendorID: &vendor.ID,
		Status:   query.status(),
	})
	if err != nil {
		handleError(c, err, "booking")
		return
	}

	c.JSON(http.StatusOK, successResponse(bookings))
}
