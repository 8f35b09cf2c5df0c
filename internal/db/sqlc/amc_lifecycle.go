package db

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const day = 24 * time.Hour

// RoundHalfUp chia numerator cho denominator và làm tròn nửa lên.
// Đây là quy tắc làm tròn duy nhất cho hoàn tiền AMC, GST và hoàn tiền booking.
func RoundHalfUp(numerator, denominator int64) int64 {
	if denominator == 0 {
		return 0
	}

	return (2*numerator + denominator) / (2 * denominator)
}

// CeilDays converts a duration to whole days, rounding up.
// Negative durations count as zero days.
func CeilDays(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}

	days := int64(d / day)
	if d%day != 0 {
		days++
	}

	return days
}

// CalculateProratedRefund returns the share of amount that covers the days left
// between now and end. Partial days count as whole days on both sides.
func CalculateProratedRefund(amount int64, start, end, now time.Time) int64 {
	totalDays := CeilDays(end.Sub(start))
	if totalDays == 0 {
		return 0
	}

	elapsedDays := CeilDays(now.Sub(start))
	remainingDays := totalDays - elapsedDays
	if remainingDays < 0 {
		remainingDays = 0
	}

	return RoundHalfUp(amount*remainingDays, totalDays)
}

// NewAmcUsage builds fresh usage counters. Plan benefits are per device.
func NewAmcUsage(benefits PlanBenefits, deviceCount int64) AmcUsage {
	usage := AmcUsage{
		HomeVisits: UsageCounter{
			Limit:     benefits.HomeVisits * deviceCount,
			Remaining: benefits.HomeVisits * deviceCount,
		},
		WarrantyClaims: UsageCounter{
			Limit:     benefits.WarrantyClaims * deviceCount,
			Remaining: benefits.WarrantyClaims * deviceCount,
		},
		Antivirus: AntivirusActivation{
			Included: benefits.Antivirus,
		},
	}

	if benefits.RemoteSupport != nil {
		limit := *benefits.RemoteSupport * deviceCount
		usage.RemoteSupport.Limit = &limit
	}

	return usage
}

func (c *UsageCounter) consume() error {
	if c.Remaining <= 0 {
		return ErrUsageLimitExceeded
	}

	c.Used++
	c.Remaining--
	return nil
}

func (c *UsageCounter) reset() {
	c.Used = 0
	c.Remaining = c.Limit
}

// CheckPaymentVerifiable reports whether a gateway payment for orderID may activate the subscription.
// A failed attempt does not close the order: the customer may pay again on the same order,
// so failed payments stay verifiable while the subscription is inactive.
func (s *AmcSubscription) CheckPaymentVerifiable(orderID string) error {
	if s.PaymentStatus != PaymentStatusPending && s.PaymentStatus != PaymentStatusFailed {
		return &TransitionError{
			Entity:  "subscription",
			Action:  string(AMCActionVerifyPayment),
			Current: fmt.Sprintf("%s (payment %s)", s.Status, s.PaymentStatus),
		}
	}

	if _, err := NextAMCStatus(s.Status, AMCActionVerifyPayment); err != nil {
		return err
	}

	if s.RazorpayOrderID == nil || *s.RazorpayOrderID != orderID {
		return ErrOrderIDMismatch
	}

	return nil
}

// Activate marks the payment completed and starts the coverage period at now.
func (s *AmcSubscription) Activate(orderID, paymentID string, signature *string, now time.Time) error {
	if err := s.CheckPaymentVerifiable(orderID); err != nil {
		return err
	}

	next, _ := NextAMCStatus(s.Status, AMCActionVerifyPayment)

	s.RazorpayPaymentID = &paymentID
	s.RazorpaySignature = signature
	s.start(next, now)

	return nil
}

// RecordCashPayment activates a cash subscription once an admin confirms the money was collected.
func (s *AmcSubscription) RecordCashPayment(now time.Time) error {
	next, err := NextAMCStatus(s.Status, AMCActionRecordPayment)
	if err != nil {
		return err
	}

	if s.PaymentMethod != PaymentMethodCash || s.PaymentStatus != PaymentStatusPending {
		return &TransitionError{
			Entity:  "subscription",
			Action:  string(AMCActionRecordPayment),
			Current: fmt.Sprintf("%s (%s payment %s)", s.Status, s.PaymentMethod, s.PaymentStatus),
		}
	}

	s.start(next, now)
	return nil
}

// start completes the payment and opens the coverage period at now.
func (s *AmcSubscription) start(next AmcSubscriptionStatus, now time.Time) {
	start := now
	end := start.Add(time.Duration(s.PlanSnapshot.PeriodDays) * day)

	s.Status = next
	s.PaymentStatus = PaymentStatusCompleted
	s.StartDate = &start
	s.EndDate = &end

	if s.Usage.Antivirus.Included {
		s.Usage.Antivirus.ActivatedAt = &start
		s.Usage.Antivirus.ExpiresAt = &end
	}

	if s.AutoRenewal.Enabled {
		s.AutoRenewal.NextRenewalDate = &end
	}
}

// MarkPaymentFailed records a failed gateway payment attempt. The subscription stays inactive
// and a later captured attempt on the same order still activates it.
func (s *AmcSubscription) MarkPaymentFailed() error {
	if s.PaymentStatus == PaymentStatusCompleted {
		return ErrPaymentAlreadyCompleted
	}

	s.PaymentStatus = PaymentStatusFailed
	return nil
}

// Cancel moves an active subscription to cancelled with a pro-rated refund.
func (s *AmcSubscription) Cancel(reason string, now time.Time) error {
	next, err := NextAMCStatus(s.Status, AMCActionCancel)
	if err != nil {
		return err
	}

	var refund int64
	if s.StartDate != nil && s.EndDate != nil {
		refund = CalculateProratedRefund(s.Amount, *s.StartDate, *s.EndDate, now)
	}

	refundStatus := RefundStatusNone
	if refund > 0 {
		refundStatus = RefundStatusPending
	}

	s.Status = next
	s.AutoRenewal = AutoRenewal{}
	s.Cancellation = &SubscriptionCancellation{
		Reason:       reason,
		RequestedAt:  now,
		CancelledAt:  now,
		RefundAmount: refund,
		RefundStatus: refundStatus,
	}

	return nil
}

// Renew extends the end date by periodDays, or by the plan period when periodDays is not positive.
func (s *AmcSubscription) Renew(periodDays int64, resetUsage bool) error {
	next, err := NextAMCStatus(s.Status, AMCActionRenew)
	if err != nil {
		return err
	}

	if periodDays <= 0 {
		periodDays = s.PlanSnapshot.PeriodDays
	}

	if s.EndDate == nil {
		return fmt.Errorf("subscription %s has no end date", s.SubscriptionID)
	}

	end := s.EndDate.Add(time.Duration(periodDays) * day)
	s.EndDate = &end
	s.Status = next

	if resetUsage {
		s.Usage.HomeVisits.reset()
		s.Usage.WarrantyClaims.reset()
		s.Usage.RemoteSupport.Used = 0
	}

	if s.Usage.Antivirus.ActivatedAt != nil {
		s.Usage.Antivirus.ExpiresAt = &end
	}

	if s.AutoRenewal.Enabled {
		s.AutoRenewal.NextRenewalDate = &end
	}

	return nil
}

// HasDevice reports whether serial is one of the covered devices.
func (s *AmcSubscription) HasDevice(serial string) bool {
	for _, device := range s.Devices {
		if device.Serial == serial {
			return true
		}
	}

	return false
}

type RecordServiceParams struct {
	Kind         UsageKind
	DeviceSerial string
	Description  string
	Status       string
	RecordedBy   string
}

// RecordService consumes one unit of the matching usage counter and appends a history entry.
func (s *AmcSubscription) RecordService(arg RecordServiceParams, now time.Time) (ServiceHistoryEntry, error) {
	var entry ServiceHistoryEntry

	next, err := NextAMCStatus(s.Status, AMCActionUseService)
	if err != nil {
		return entry, err
	}

	if !s.HasDevice(arg.DeviceSerial) {
		return entry, ErrDeviceNotFound
	}

	switch arg.Kind {
	case UsageKindHomeVisit:
		err = s.Usage.HomeVisits.consume()
	case UsageKindWarrantyClaim:
		err = s.Usage.WarrantyClaims.consume()
	case UsageKindRemoteSupport:
		limit := s.Usage.RemoteSupport.Limit
		if limit != nil && s.Usage.RemoteSupport.Used >= *limit {
			err = ErrUsageLimitExceeded
		} else {
			s.Usage.RemoteSupport.Used++
		}
	default:
		err = fmt.Errorf("unknown usage kind %q", arg.Kind)
	}
	if err != nil {
		return entry, fmt.Errorf("%s: %w", arg.Kind, err)
	}

	entry = ServiceHistoryEntry{
		ID:           uuid.NewString(),
		Type:         arg.Kind,
		DeviceSerial: arg.DeviceSerial,
		Description:  arg.Description,
		Status:       arg.Status,
		RecordedBy:   arg.RecordedBy,
		RequestedAt:  now,
	}
	s.ServiceHistory = append(s.ServiceHistory, entry)
	s.Status = next

	return entry, nil
}

// SetAutoRenewal toggles auto-renewal. The next renewal date follows the end date.
func (s *AmcSubscription) SetAutoRenewal(enabled bool) error {
	next, err := NextAMCStatus(s.Status, AMCActionSetAutoRenewal)
	if err != nil {
		return err
	}

	s.Status = next
	s.AutoRenewal.Enabled = enabled
	s.AutoRenewal.NextRenewalDate = nil
	if enabled {
		s.AutoRenewal.NextRenewalDate = s.EndDate
	}

	return nil
}

// Expire moves an active subscription whose end date has passed to expired.
func (s *AmcSubscription) Expire(now time.Time) error {
	next, err := NextAMCStatus(s.Status, AMCActionExpire)
	if err != nil {
		return err
	}

	if s.EndDate == nil || s.EndDate.After(now) {
		return fmt.Errorf("subscription %s has not reached its end date", s.SubscriptionID)
	}

	s.Status = next
	s.AutoRenewal.NextRenewalDate = nil
	return nil
}

func (s *AmcSubscription) updateParams() UpdateAMCSubscriptionParams {
	if s.ServiceHistory == nil {
		s.ServiceHistory = []ServiceHistoryEntry{}
	}

	return UpdateAMCSubscriptionParams{
		Status:            s.Status,
		PaymentStatus:     s.PaymentStatus,
		Usage:             s.Usage,
		ServiceHistory:    s.ServiceHistory,
		StartDate:         s.StartDate,
		EndDate:           s.EndDate,
		AutoRenewal:       s.AutoRenewal,
		Cancellation:      s.Cancellation,
		RazorpayOrderID:   s.RazorpayOrderID,
		RazorpayPaymentID: s.RazorpayPaymentID,
		RazorpaySignature: s.RazorpaySignature,
		ID:                s.ID,
	}
}
