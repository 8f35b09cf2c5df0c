package db

import (
	"time"
)

// Snapshot types are point-in-time copies written once at creation.
// They are never refreshed from the live user or plan rows.

type UserSnapshot struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type PlanSnapshot struct {
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	PeriodDays int64  `json:"period_days"`
}

type CustomerSnapshot struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type PlanFeature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Included    bool   `json:"included"`
}

// PlanBenefits là các quyền lợi của một gói AMC, tính trên mỗi thiết bị.
type PlanBenefits struct {
	HomeVisits          int64  `json:"home_visits"`
	WarrantyClaims      int64  `json:"warranty_claims"`
	RemoteSupport       *int64 `json:"remote_support"` // null nếu unlimited
	Antivirus           bool   `json:"antivirus"`
	DiscountPercentage  int64  `json:"discount_percentage"`
	FreeSparePartsCap   int64  `json:"free_spare_parts_cap"`
	LaborCostWaiver     bool   `json:"labor_cost_waiver"`
	ResetUsageOnRenewal bool   `json:"reset_usage_on_renewal"`
}

type Device struct {
	Type   string `json:"type"`
	Serial string `json:"serial"`
	Model  string `json:"model"`
}

type UsageCounter struct {
	Used      int64 `json:"used"`
	Limit     int64 `json:"limit"`
	Remaining int64 `json:"remaining"`
}

type RemoteSupportUsage struct {
	Used  int64  `json:"used"`
	Limit *int64 `json:"limit"` // null nếu unlimited
}

type AntivirusActivation struct {
	Included    bool       `json:"included"`
	ActivatedAt *time.Time `json:"activated_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type AmcUsage struct {
	HomeVisits     UsageCounter        `json:"home_visits"`
	WarrantyClaims UsageCounter        `json:"warranty_claims"`
	RemoteSupport  RemoteSupportUsage  `json:"remote_support"`
	Antivirus      AntivirusActivation `json:"antivirus"`
}

// UsageKind is the kind of service an AMC holder consumes.
type UsageKind string

const (
	UsageKindHomeVisit     UsageKind = "home_visit"
	UsageKindWarrantyClaim UsageKind = "warranty_claim"
	UsageKindRemoteSupport UsageKind = "remote_support"
)

func (k UsageKind) Valid() bool {
	switch k {
	case UsageKindHomeVisit, UsageKindWarrantyClaim, UsageKindRemoteSupport:
		return true
	}
	return false
}

const (
	ServiceEntryStatusRequested = "requested"
	ServiceEntryStatusCompleted = "completed"
)

type ServiceHistoryEntry struct {
	ID           string    `json:"id"`
	Type         UsageKind `json:"type"`
	DeviceSerial string    `json:"device_serial"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	RecordedBy   string    `json:"recorded_by"`
	RequestedAt  time.Time `json:"requested_at"`
}

type AutoRenewal struct {
	Enabled         bool       `json:"enabled"`
	NextRenewalDate *time.Time `json:"next_renewal_date"`
}

const (
	RefundStatusNone    = "none"
	RefundStatusPending = "pending"
)

type SubscriptionCancellation struct {
	Reason       string    `json:"reason"`
	RequestedAt  time.Time `json:"requested_at"`
	CancelledAt  time.Time `json:"cancelled_at"`
	RefundAmount int64     `json:"refund_amount"`
	RefundStatus string    `json:"refund_status"`
}

type BookingServiceItem struct {
	ServiceID string `json:"service_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
}

// BookingPricing được tính ở giỏ hàng và lưu nguyên vẹn.
type BookingPricing struct {
	Subtotal                int64 `json:"subtotal"`
	ServiceFee              int64 `json:"service_fee"`
	TotalAmount             int64 `json:"total_amount"`
	IsFirstTimeUser         bool  `json:"is_first_time_user"`
	FirstTimeDiscount       int64 `json:"first_time_discount"`
	FirstTimeDiscountAmount int64 `json:"first_time_discount_amount"`
}

type BookingScheduling struct {
	PreferredDate string  `json:"preferred_date"`
	PreferredSlot string  `json:"preferred_slot"`
	ScheduledDate *string `json:"scheduled_date"`
	ScheduledTime *string `json:"scheduled_time"`
}

type BookingPayment struct {
	Status         PaymentStatus `json:"status"`
	Method         PaymentMethod `json:"method"`
	Amount         int64         `json:"amount"`
	GatewayOrderID *string       `json:"gateway_order_id"`
	TransactionID  *string       `json:"transaction_id"`
	PaidAt         *time.Time    `json:"paid_at"`
	RefundAmount   int64         `json:"refund_amount"`
	RefundStatus   string        `json:"refund_status"`
}

type VendorResponseStatus string

const (
	VendorResponseStatusPending  VendorResponseStatus = "pending"
	VendorResponseStatusAccepted VendorResponseStatus = "accepted"
	VendorResponseStatusDeclined VendorResponseStatus = "declined"
)

type VendorResponse struct {
	Status      VendorResponseStatus `json:"status"`
	Note        *string              `json:"note"`
	RespondedAt *time.Time           `json:"responded_at"`
}

type SparePart struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

type CompletionData struct {
	ResolutionNote  string        `json:"resolution_note"`
	BillingAmount   int64         `json:"billing_amount"`
	SpareParts      []SparePart   `json:"spare_parts"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	TravelingAmount int64         `json:"traveling_amount"`
	IncludeGST      bool          `json:"include_gst"`
	GSTAmount       int64         `json:"gst_amount"`
	CompletedAt     time.Time     `json:"completed_at"`
}

// PayableAmount là số tiền khách hàng cần thanh toán sau khi hoàn tất.
func (c *CompletionData) PayableAmount() int64 {
	return c.BillingAmount + c.GSTAmount
}

type BookingCancellation struct {
	Reason       string    `json:"reason"`
	CancelledBy  string    `json:"cancelled_by"`
	CancelledAt  time.Time `json:"cancelled_at"`
	RefundAmount int64     `json:"refund_amount"`
	RefundStatus string    `json:"refund_status"`
}

type BookingReschedule struct {
	OriginalDate  string    `json:"original_date"`
	OriginalTime  string    `json:"original_time"`
	Reason        string    `json:"reason"`
	RescheduledAt time.Time `json:"rescheduled_at"`
}

// AMCStats là số liệu thống kê AMC cho trang quản trị.
type AMCStats struct {
	Period              string            `json:"period"`
	TotalSubscriptions  int64             `json:"total_subscriptions"`
	CountsByStatus      map[string]int64  `json:"counts_by_status"`
	Revenue             int64             `json:"revenue"`
	ExpiringSoon        int64             `json:"expiring_soon"`
	TotalPlans          int64             `json:"total_plans"`
	RecentSubscriptions []AmcSubscription `json:"recent_subscriptions"`
}

// BookingStats là số liệu thống kê đặt lịch cho trang quản trị.
type BookingStats struct {
	Period         string           `json:"period"`
	TotalBookings  int64            `json:"total_bookings"`
	CountsByStatus map[string]int64 `json:"counts_by_status"`
	Revenue        int64            `json:"revenue"`
	RecentBookings []Booking        `json:"recent_bookings"`
}

type AdminDashboard struct {
	TotalCustomers      int64 `json:"total_customers"`
	TotalActiveVendors  int64 `json:"total_active_vendors"`
	ActiveSubscriptions int64 `json:"active_subscriptions"`
	TotalBookings       int64 `json:"total_bookings"`
	PendingBookings     int64 `json:"pending_bookings"`
	RevenueThisMonth    int64 `json:"revenue_this_month"`
}
