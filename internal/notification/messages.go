package notification

import (
	"fmt"
	"time"

	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/katatrina/fixfly-BE/internal/util"
)

// Các hàm dưới đây dựng nội dung thông báo cho từng sự kiện nghiệp vụ.

func forSubscriber(sub db.AmcSubscription, notificationType, title, message string) *Notification {
	return &Notification{
		Audience:       AudienceCustomer,
		RecipientID:    sub.UserID,
		RecipientEmail: sub.UserSnapshot.Email,
		Title:          title,
		Message:        message,
		Type:           notificationType,
		ReferenceID:    sub.SubscriptionID,
		CreatedAt:      time.Now(),
	}
}

func forCustomer(booking db.Booking, notificationType, title, message string) *Notification {
	var recipientID string
	if booking.UserID != nil {
		recipientID = *booking.UserID
	}

	return &Notification{
		Audience:       AudienceCustomer,
		RecipientID:    recipientID,
		RecipientEmail: booking.Customer.Email,
		Title:          title,
		Message:        message,
		Type:           notificationType,
		ReferenceID:    booking.Code,
		CreatedAt:      time.Now(),
	}
}

func forAdmin(notificationType, referenceID, title, message string) *Notification {
	return &Notification{
		Audience:    AudienceAdmin,
		Title:       title,
		Message:     message,
		Type:        notificationType,
		ReferenceID: referenceID,
		CreatedAt:   time.Now(),
	}
}

func SubscriptionCreated(sub db.AmcSubscription) *Notification {
	return forAdmin(TypeSubscriptionCreated, sub.SubscriptionID, "New AMC subscription",
		fmt.Sprintf("%s started checkout for %s (%d devices, %s).", sub.UserSnapshot.FullName,
			sub.PlanSnapshot.Name, len(sub.Devices), util.FormatINR(sub.Amount)))
}

func SubscriptionActivated(sub db.AmcSubscription) *Notification {
	message := fmt.Sprintf("Your %s plan is now active.", sub.PlanSnapshot.Name)
	if sub.EndDate != nil {
		message = fmt.Sprintf("Your %s plan is now active until %s.", sub.PlanSnapshot.Name, sub.EndDate.Format("02 Jan 2006"))
	}

	return forSubscriber(sub, TypeSubscriptionActivated, "AMC activated", message)
}

func SubscriptionCancelled(sub db.AmcSubscription) *Notification {
	message := fmt.Sprintf("Your %s plan has been cancelled.", sub.PlanSnapshot.Name)
	if sub.Cancellation != nil && sub.Cancellation.RefundAmount > 0 {
		message = fmt.Sprintf("Your %s plan has been cancelled. A refund of %s will be processed.",
			sub.PlanSnapshot.Name, util.FormatINR(sub.Cancellation.RefundAmount))
	}

	return forSubscriber(sub, TypeSubscriptionCancelled, "AMC cancelled", message)
}

func SubscriptionRenewed(sub db.AmcSubscription) *Notification {
	message := fmt.Sprintf("Your %s plan has been renewed.", sub.PlanSnapshot.Name)
	if sub.EndDate != nil {
		message = fmt.Sprintf("Your %s plan has been renewed until %s.", sub.PlanSnapshot.Name, sub.EndDate.Format("02 Jan 2006"))
	}

	return forSubscriber(sub, TypeSubscriptionRenewed, "AMC renewed", message)
}

func SubscriptionExpiring(sub db.AmcSubscription, daysLeft int64) *Notification {
	return forSubscriber(sub, TypeSubscriptionExpiring, "AMC expiring soon",
		fmt.Sprintf("Your %s plan expires in %d day(s). Renew now to keep your devices covered.",
			sub.PlanSnapshot.Name, daysLeft))
}

func SubscriptionExpired(sub db.AmcSubscription) *Notification {
	return forSubscriber(sub, TypeSubscriptionExpired, "AMC expired",
		fmt.Sprintf("Your %s plan has expired.", sub.PlanSnapshot.Name))
}

func ServiceRequested(sub db.AmcSubscription, entry db.ServiceHistoryEntry) *Notification {
	return forAdmin(TypeServiceRequested, sub.SubscriptionID, "AMC service requested",
		fmt.Sprintf("%s requested a %s for device %s: %s", sub.UserSnapshot.FullName, entry.Type,
			entry.DeviceSerial, util.TruncateContent(entry.Description, 120)))
}

func BookingCreated(booking db.Booking) *Notification {
	return forAdmin(TypeBookingCreated, booking.Code, "New booking",
		fmt.Sprintf("%s booked %d service(s) for %s (%s).", booking.Customer.Name, len(booking.Services),
			booking.Scheduling.PreferredDate, util.FormatINR(booking.Pricing.TotalAmount)))
}

func BookingAssigned(booking db.Booking) *Notification {
	var vendorID string
	if booking.VendorID != nil {
		vendorID = *booking.VendorID
	}

	return &Notification{
		Audience:    AudienceVendor,
		RecipientID: vendorID,
		Title:       "New job assigned",
		Message: fmt.Sprintf("Booking %s for %s at %s has been assigned to you.", booking.Code,
			booking.Customer.Name, booking.Customer.Address),
		Type:        TypeBookingAssigned,
		ReferenceID: booking.Code,
		CreatedAt:   time.Now(),
	}
}

func BookingAccepted(booking db.Booking) *Notification {
	return forCustomer(booking, TypeBookingAccepted, "Engineer confirmed",
		fmt.Sprintf("An engineer has accepted your booking %s.", booking.Code))
}

func BookingDeclined(booking db.Booking) *Notification {
	return forAdmin(TypeBookingDeclined, booking.Code, "Booking declined by engineer",
		fmt.Sprintf("Booking %s needs a new engineer.", booking.Code))
}

func BookingStatusChanged(booking db.Booking) *Notification {
	return forCustomer(booking, TypeBookingStatusChanged, "Booking updated",
		fmt.Sprintf("Your booking %s is now %s.", booking.Code, booking.Status))
}

func BookingCompleted(booking db.Booking) *Notification {
	message := fmt.Sprintf("The work on booking %s is done.", booking.Code)
	if booking.Status != db.BookingStatusCompleted && booking.CompletionData != nil {
		message = fmt.Sprintf("The work on booking %s is done. Please pay %s to close it.", booking.Code,
			util.FormatINR(booking.CompletionData.PayableAmount()))
	}

	return forCustomer(booking, TypeBookingCompleted, "Service completed", message)
}

func BookingPaid(booking db.Booking) *Notification {
	return forAdmin(TypeBookingPaid, booking.Code, "Booking payment received",
		fmt.Sprintf("%s paid %s for booking %s.", booking.Customer.Name,
			util.FormatINR(booking.Payment.Amount), booking.Code))
}

func BookingCancelled(booking db.Booking) *Notification {
	message := fmt.Sprintf("Booking %s has been cancelled.", booking.Code)
	if booking.Cancellation != nil && booking.Cancellation.RefundAmount > 0 {
		message = fmt.Sprintf("Booking %s has been cancelled. A refund of %s will be processed.", booking.Code,
			util.FormatINR(booking.Cancellation.RefundAmount))
	}

	return forCustomer(booking, TypeBookingCancelled, "Booking cancelled", message)
}

func BookingRescheduled(booking db.Booking) *Notification {
	return forAdmin(TypeBookingRescheduled, booking.Code, "Booking rescheduled",
		fmt.Sprintf("%s moved booking %s to %s %s.", booking.Customer.Name, booking.Code,
			booking.Scheduling.PreferredDate, booking.Scheduling.PreferredSlot))
}
