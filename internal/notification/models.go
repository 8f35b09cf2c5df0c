package notification

import (
	"time"
)

type Audience string

const (
	AudienceCustomer Audience = "customer"
	AudienceVendor   Audience = "vendor"
	AudienceAdmin    Audience = "admin"
)

const (
	TypeSubscriptionCreated   = "amc_subscription_created"
	TypeSubscriptionActivated = "amc_subscription_activated"
	TypeSubscriptionCancelled = "amc_subscription_cancelled"
	TypeSubscriptionRenewed   = "amc_subscription_renewed"
	TypeSubscriptionExpiring  = "amc_subscription_expiring"
	TypeSubscriptionExpired   = "amc_subscription_expired"
	TypeServiceRequested      = "amc_service_requested"
	TypeBookingCreated        = "booking_created"
	TypeBookingAssigned       = "booking_assigned"
	TypeBookingAccepted       = "booking_accepted"
	TypeBookingDeclined       = "booking_declined"
	TypeBookingStatusChanged  = "booking_status_changed"
	TypeBookingCompleted      = "booking_completed"
	TypeBookingPaid           = "booking_paid"
	TypeBookingCancelled      = "booking_cancelled"
	TypeBookingRescheduled    = "booking_rescheduled"
)

type Notification struct {
	Audience       Audience          `json:"audience"`
	RecipientID    string            `json:"recipient_id"`
	RecipientEmail string            `json:"recipient_email"`
	Title          string            `json:"title"`
	Message        string            `json:"message"`
	Type           string            `json:"type"`
	ReferenceID    string            `json:"reference_id"`
	Data           map[string]string `json:"data,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}
