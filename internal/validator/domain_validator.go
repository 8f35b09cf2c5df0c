package validator

import (
	"fmt"

	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
)

// ValidateDevices checks that every device carries a type, serial and model
// and that no serial appears twice.
func ValidateDevices(devices []db.Device) error {
	if len(devices) == 0 {
		return fmt.Errorf("at least one device is required")
	}

	seen := make(map[string]bool, len(devices))
	for i, device := range devices {
		if device.Type == "" || device.Serial == "" || device.Model == "" {
			return fmt.Errorf("device %d must have type, serial and model", i+1)
		}
		if seen[device.Serial] {
			return fmt.Errorf("device serial %s is listed more than once", device.Serial)
		}
		seen[device.Serial] = true
	}

	return nil
}

func ValidatePlanBenefits(benefits db.PlanBenefits) error {
	if benefits.HomeVisits < 0 || benefits.WarrantyClaims < 0 {
		return fmt.Errorf("benefit counts cannot be negative")
	}
	if benefits.RemoteSupport != nil && *benefits.RemoteSupport < 0 {
		return fmt.Errorf("remote_support cannot be negative, use null for unlimited")
	}
	if benefits.DiscountPercentage < 0 || benefits.DiscountPercentage > 100 {
		return fmt.Errorf("discount_percentage must be between 0 and 100")
	}

	return nil
}

// ValidateBookingPricing only checks the totals are sane; the values are stored as sent by the cart.
func ValidateBookingPricing(pricing db.BookingPricing) error {
	if pricing.Subtotal < 0 || pricing.ServiceFee < 0 || pricing.TotalAmount < 0 || pricing.FirstTimeDiscountAmount < 0 {
		return fmt.Errorf("amounts cannot be negative")
	}

	return nil
}

func ValidateSpareParts(parts []db.SparePart) error {
	for i, part := range parts {
		if part.Name == "" {
			return fmt.Errorf("spare part %d must have a name", i+1)
		}
		if part.Price < 0 || part.Quantity <= 0 {
			return fmt.Errorf("spare part %s must have a non-negative price and a positive quantity", part.Name)
		}
	}

	return nil
}
