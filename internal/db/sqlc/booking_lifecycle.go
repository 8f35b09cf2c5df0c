package db

import (
	"fmt"
	"time"
)

const GSTRatePercent = 18

// CalculateGST returns the GST owed on amount, rounded half up to whole rupees.
func CalculateGST(amount int64) int64 {
	return RoundHalfUp(amount*GSTRatePercent, 100)
}

type AssignVendorParams struct {
	VendorID      string
	ScheduledDate *string
	ScheduledTime *string
	Priority      *BookingPriority
	Notes         *string
	Confirm       bool
}

// AssignVendor gán kỹ thuật viên cho booking.
// Phản hồi của vendor luôn được đặt lại về pending, kể cả khi gán lại.
func (b *Booking) AssignVendor(arg AssignVendorParams, now time.Time) error {
	action := BookingActionAssign
	if arg.Confirm {
		action = BookingActionAssignConfirmed
	}

	next, err := NextBookingStatus(b.Status, action)
	if err != nil {
		return err
	}

	vendorID := arg.VendorID
	b.VendorID = &vendorID
	b.VendorAssignedAt = &now
	b.VendorResponse = VendorResponse{Status: VendorResponseStatusPending}
	b.Status = next

	if arg.ScheduledDate != nil {
		b.Scheduling.ScheduledDate = arg.ScheduledDate
	}
	if arg.ScheduledTime != nil {
		b.Scheduling.ScheduledTime = arg.ScheduledTime
	}
	if arg.Priority != nil {
		b.Priority = *arg.Priority
	}
	if arg.Notes != nil {
		b.Notes = arg.Notes
	}

	return nil
}

// IsAssignedTo reports whether vendorID is the vendor currently holding the booking.
func (b *Booking) IsAssignedTo(vendorID string) bool {
	return b.VendorID != nil && *b.VendorID == vendorID
}

// checkVendorResponse guards a vendor answer: only the assigned vendor, and only once per assignment.
func (b *Booking) checkVendorResponse(vendorID string, action BookingAction) error {
	if !b.IsAssignedTo(vendorID) {
		return ErrVendorNotAssigned
	}

	if b.VendorResponse.Status != VendorResponseStatusPending {
		return &TransitionError{
			Entity:  "booking",
			Action:  string(action),
			Current: fmt.Sprintf("%s (vendor response %s)", b.Status, b.VendorResponse.Status),
		}
	}

	return nil
}

// Accept records the assigned vendor's acceptance and confirms the booking.
// A booking the admin already confirmed at assignment stays confirmed.
func (b *Booking) Accept(vendorID string, note *string, now time.Time) error {
	if err := b.checkVendorResponse(vendorID, BookingActionAccept); err != nil {
		return err
	}

	next, err := NextBookingStatus(b.Status, BookingActionAccept)
	if err != nil {
		return err
	}

	b.Status = next
	b.VendorResponse = VendorResponse{
		Status:      VendorResponseStatusAccepted,
		Note:        note,
		RespondedAt: &now,
	}

	return nil
}

// Decline records the vendor's refusal and releases the booking for reassignment.
func (b *Booking) Decline(vendorID string, note *string, now time.Time) error {
	if err := b.checkVendorResponse(vendorID, BookingActionDecline); err != nil {
		return err
	}

	next, err := NextBookingStatus(b.Status, BookingActionDecline)
	if err != nil {
		return err
	}

	b.Status = next
	b.VendorID = nil
	b.VendorAssignedAt = nil
	b.VendorResponse = VendorResponse{
		Status:      VendorResponseStatusDeclined,
		Note:        note,
		RespondedAt: &now,
	}

	return nil
}

// Transition applies a plain status change requested through the status endpoint.
func (b *Booking) Transition(target BookingStatus, reason, actor string, now time.Time) error {
	action, ok := BookingActionForStatus(target)
	if !ok {
		return &TransitionError{
			Entity:  "booking",
			Action:  "set status " + string(target) + " on",
			Current: string(b.Status),
		}
	}

	if action == BookingActionCancel {
		return b.Cancel(reason, actor, now)
	}

	next, err := NextBookingStatus(b.Status, action)
	if err != nil {
		return err
	}

	b.Status = next
	return nil
}

type CompleteTaskParams struct {
	VendorID        string
	ResolutionNote  string
	BillingAmount   int64
	SpareParts      []SparePart
	PaymentMethod   PaymentMethod
	TravelingAmount int64
	IncludeGST      bool
}

// CompleteTask stores the vendor's billing. Cash and prepaid bookings complete
// immediately, online bookings wait for the payment to be verified.
func (b *Booking) CompleteTask(arg CompleteTaskParams, now time.Time) error {
	if !b.IsAssignedTo(arg.VendorID) {
		return ErrVendorNotAssigned
	}

	if b.CompletionData != nil {
		return ErrBillingSubmitted
	}

	prepaid := b.Payment.Status == PaymentStatusCompleted

	action := BookingActionCompleteUnpaid
	if prepaid || arg.PaymentMethod == PaymentMethodCash {
		action = BookingActionCompleteSettled
	}

	next, err := NextBookingStatus(b.Status, action)
	if err != nil {
		return err
	}

	spareParts := arg.SpareParts
	if spareParts == nil {
		spareParts = []SparePart{}
	}

	var gst int64
	if arg.IncludeGST {
		gst = CalculateGST(arg.BillingAmount)
	}

	b.CompletionData = &CompletionData{
		ResolutionNote:  arg.ResolutionNote,
		BillingAmount:   arg.BillingAmount,
		SpareParts:      spareParts,
		PaymentMethod:   arg.PaymentMethod,
		TravelingAmount: arg.TravelingAmount,
		IncludeGST:      arg.IncludeGST,
		GSTAmount:       gst,
		CompletedAt:     now,
	}
	b.Status = next

	// Booking đã thanh toán trước khi đặt thì giữ nguyên bản ghi thanh toán
	if prepaid {
		return nil
	}

	b.Payment.Method = arg.PaymentMethod
	b.Payment.Amount = b.CompletionData.PayableAmount()
	b.Payment.GatewayOrderID = nil

	if arg.PaymentMethod == PaymentMethodCash {
		b.Payment.Status = PaymentStatusCompleted
		b.Payment.PaidAt = &now
	} else {
		b.Payment.Status = PaymentStatusPending
	}

	return nil
}

func (b *Booking) paymentAction() BookingAction {
	if b.CompletionData != nil {
		return BookingActionSettlePayment
	}

	return BookingActionRecordPayment
}

// PayableAmount returns what the customer owes: the billing plus GST once the
// vendor has completed the task, otherwise the checkout total.
func (b *Booking) PayableAmount() (int64, error) {
	if b.Payment.Status == PaymentStatusCompleted {
		return 0, ErrPaymentAlreadyCompleted
	}

	if _, err := NextBookingStatus(b.Status, b.paymentAction()); err != nil {
		return 0, err
	}

	amount := b.Pricing.TotalAmount
	if b.CompletionData != nil {
		amount = b.CompletionData.PayableAmount()
	}

	if amount <= 0 {
		return 0, ErrNothingToPay
	}

	return amount, nil
}

// AttachPaymentOrder stores a freshly created gateway order on the booking.
func (b *Booking) AttachPaymentOrder(orderID string, amount int64) error {
	payable, err := b.PayableAmount()
	if err != nil {
		return err
	}

	if payable != amount {
		return fmt.Errorf("payable amount changed from %d to %d", amount, payable)
	}

	b.Payment.Method = PaymentMethodOnline
	b.Payment.Status = PaymentStatusPending
	b.Payment.Amount = amount
	b.Payment.GatewayOrderID = &orderID

	return nil
}

// CheckPaymentVerifiable reports whether a gateway payment for orderID may settle the booking.
func (b *Booking) CheckPaymentVerifiable(orderID string) error {
	if b.Payment.Status == PaymentStatusCompleted {
		return ErrPaymentAlreadyCompleted
	}

	if b.Payment.GatewayOrderID == nil || *b.Payment.GatewayOrderID != orderID {
		return ErrOrderIDMismatch
	}

	_, err := NextBookingStatus(b.Status, b.paymentAction())
	return err
}

// CompletePayment marks the payment completed. The booking itself completes
// only when the vendor has already submitted billing.
func (b *Booking) CompletePayment(orderID, paymentID string, now time.Time) error {
	if err := b.CheckPaymentVerifiable(orderID); err != nil {
		return err
	}

	next, _ := NextBookingStatus(b.Status, b.paymentAction())

	b.Status = next
	b.Payment.Status = PaymentStatusCompleted
	b.Payment.TransactionID = &paymentID
	b.Payment.PaidAt = &now

	return nil
}

// MarkPaymentFailed records a failed gateway payment.
func (b *Booking) MarkPaymentFailed() error {
	if b.Payment.Status == PaymentStatusCompleted {
		return ErrPaymentAlreadyCompleted
	}

	b.Payment.Status = PaymentStatusFailed
	return nil
}

// Cancel cancels a booking that has not been billed yet. A prepaid booking is
// refunded in full; the refund itself is issued outside this service.
func (b *Booking) Cancel(reason, cancelledBy string, now time.Time) error {
	next, err := NextBookingStatus(b.Status, BookingActionCancel)
	if err != nil {
		return err
	}

	if b.CompletionData != nil {
		return ErrBillingSubmitted
	}

	refundStatus := RefundStatusNone
	var refund int64
	if b.Payment.Status == PaymentStatusCompleted {
		refund = b.Payment.Amount
		refundStatus = RefundStatusPending
	}

	b.Status = next
	b.Payment.RefundAmount = refund
	b.Payment.RefundStatus = refundStatus
	b.Cancellation = &BookingCancellation{
		Reason:       reason,
		CancelledBy:  cancelledBy,
		CancelledAt:  now,
		RefundAmount: refund,
		RefundStatus: refundStatus,
	}

	return nil
}

// RescheduleVisit ghi lại lịch cũ rồi ghi đè lịch đang có hiệu lực.
func (b *Booking) RescheduleVisit(newDate, newTime, reason string, now time.Time) error {
	next, err := NextBookingStatus(b.Status, BookingActionReschedule)
	if err != nil {
		return err
	}

	originalDate := b.Scheduling.PreferredDate
	originalTime := b.Scheduling.PreferredSlot
	if b.Scheduling.ScheduledDate != nil {
		originalDate = *b.Scheduling.ScheduledDate
		b.Scheduling.ScheduledDate = &newDate
	}
	if b.Scheduling.ScheduledTime != nil {
		originalTime = *b.Scheduling.ScheduledTime
		b.Scheduling.ScheduledTime = &newTime
	}

	b.Scheduling.PreferredDate = newDate
	b.Scheduling.PreferredSlot = newTime
	b.Status = next
	b.Reschedule = &BookingReschedule{
		OriginalDate:  originalDate,
		OriginalTime:  originalTime,
		Reason:        reason,
		RescheduledAt: now,
	}

	return nil
}

func (b *Booking) updateParams() UpdateBookingParams {
	return UpdateBookingParams{
		Status:           b.Status,
		Priority:         b.Priority,
		Notes:            b.Notes,
		Scheduling:       b.Scheduling,
		Payment:          b.Payment,
		VendorID:         b.VendorID,
		VendorAssignedAt: b.VendorAssignedAt,
		VendorResponse:   b.VendorResponse,
		CompletionData:   b.CompletionData,
		Cancellation:     b.Cancellation,
		Reschedule:       b.Reschedule,
		ID:               b.ID,
	}
}
