package db

import (
	"errors"
	"testing"
)

func TestNextAMCStatus(t *testing.T) {
	testCases := []struct {
		name    string
		current AmcSubscriptionStatus
		action  AMCAction
		want    AmcSubscriptionStatus
		wantErr bool
	}{
		{"verify inactive", AmcSubscriptionStatusInactive, AMCActionVerifyPayment, AmcSubscriptionStatusActive, false},
		{"record cash inactive", AmcSubscriptionStatusInactive, AMCActionRecordPayment, AmcSubscriptionStatusActive, false},
		{"record cash active", AmcSubscriptionStatusActive, AMCActionRecordPayment, AmcSubscriptionStatusActive, true},
		{"verify active", AmcSubscriptionStatusActive, AMCActionVerifyPayment, AmcSubscriptionStatusActive, true},
		{"cancel active", AmcSubscriptionStatusActive, AMCActionCancel, AmcSubscriptionStatusCancelled, false},
		{"cancel inactive", AmcSubscriptionStatusInactive, AMCActionCancel, AmcSubscriptionStatusInactive, true},
		{"renew active", AmcSubscriptionStatusActive, AMCActionRenew, AmcSubscriptionStatusActive, false},
		{"expire active", AmcSubscriptionStatusActive, AMCActionExpire, AmcSubscriptionStatusExpired, false},
		{"use service inactive", AmcSubscriptionStatusInactive, AMCActionUseService, AmcSubscriptionStatusInactive, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NextAMCStatus(tc.current, tc.action)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("expected ErrInvalidTransition, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestTerminalStatesRejectEveryAction(t *testing.T) {
	amcActions := []AMCAction{
		AMCActionVerifyPayment, AMCActionRecordPayment, AMCActionCancel, AMCActionRenew,
		AMCActionUseService, AMCActionSetAutoRenewal, AMCActionExpire,
	}
	for _, status := range []AmcSubscriptionStatus{AmcSubscriptionStatusCancelled, AmcSubscriptionStatusExpired} {
		for _, action := range amcActions {
			if _, err := NextAMCStatus(status, action); !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("%s --%s--> should be rejected", status, action)
			}
		}
	}

	bookingActions := []BookingAction{
		BookingActionAssign, BookingActionAssignConfirmed, BookingActionConfirm, BookingActionAccept,
		BookingActionDecline, BookingActionReject, BookingActionStart, BookingActionCompleteSettled,
		BookingActionCompleteUnpaid, BookingActionRecordPayment, BookingActionSettlePayment,
		BookingActionCancel, BookingActionReschedule,
	}
	for _, status := range []BookingStatus{BookingStatusCompleted, BookingStatusCancelled} {
		for _, action := range bookingActions {
			if _, err := NextBookingStatus(status, action); !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("%s --%s--> should be rejected", status, action)
			}
		}
	}
}

func TestTransitionErrorEchoesCurrentStatus(t *testing.T) {
	_, err := NextBookingStatus(BookingStatusCompleted, BookingActionCancel)

	var transitionErr *TransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("expected *TransitionError, got %T", err)
	}
	if transitionErr.Current != string(BookingStatusCompleted) {
		t.Errorf("current = %q", transitionErr.Current)
	}
	if want := "cannot cancel booking with status completed"; err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestBookingActionForStatus(t *testing.T) {
	if _, ok := BookingActionForStatus(BookingStatusCompleted); ok {
		t.Error("completed must only be reachable through billing or payment")
	}
	if action, ok := BookingActionForStatus(BookingStatusInProgress); !ok || action != BookingActionStart {
		t.Errorf("in_progress maps to %q", action)
	}
}
