package validator

import (
	"testing"
	"time"

	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
)

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{"9876543210", "+919876543210", "98765 43210"}
	invalid := []string{"12345", "5876543210", "+449876543210", ""}

	for _, value := range valid {
		if err := ValidatePhoneNumber(value); err != nil {
			t.Errorf("%q should be valid: %v", value, err)
		}
	}
	for _, value := range invalid {
		if err := ValidatePhoneNumber(value); err == nil {
			t.Errorf("%q should be invalid", value)
		}
	}
}

func TestValidateVisitDate(t *testing.T) {
	now := time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC)

	if err := ValidateVisitDate("2025-05-10", now); err != nil {
		t.Errorf("today should be allowed: %v", err)
	}
	if err := ValidateVisitDate("2025-05-09", now); err == nil {
		t.Error("yesterday should be rejected")
	}
	if err := ValidateVisitDate("10/05/2025", now); err == nil {
		t.Error("wrong layout should be rejected")
	}
}

func TestValidateTimeSlot(t *testing.T) {
	for _, value := range []string{"10:00", "10:00-12:00", "09:30 - 11:00"} {
		if err := ValidateTimeSlot(value); err != nil {
			t.Errorf("%q should be valid: %v", value, err)
		}
	}
	for _, value := range []string{"morning", "25:00", "10-12"} {
		if err := ValidateTimeSlot(value); err == nil {
			t.Errorf("%q should be invalid", value)
		}
	}
}

func TestValidateDevices(t *testing.T) {
	testCases := []struct {
		name    string
		devices []db.Device
		wantErr bool
	}{
		{"empty", nil, true},
		{"missing model", []db.Device{{Type: "laptop", Serial: "S1"}}, true},
		{"duplicate serial", []db.Device{
			{Type: "laptop", Serial: "S1", Model: "X"},
			{Type: "desktop", Serial: "S1", Model: "Y"},
		}, true},
		{"ok", []db.Device{
			{Type: "laptop", Serial: "S1", Model: "X"},
			{Type: "desktop", Serial: "S2", Model: "Y"},
		}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDevices(tc.devices)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateDevices() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("fixfly2025"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidatePassword("short1"); err == nil {
		t.Error("short password should be rejected")
	}
	if err := ValidatePassword("onlyletters"); err == nil {
		t.Error("password without digits should be rejected")
	}
}
