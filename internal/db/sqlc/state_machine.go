package db

// Mỗi entity có đúng một bảng chuyển trạng thái: trạng thái hiện tại -> hành động -> trạng thái kế tiếp.
// Mọi guard về trạng thái trong package này đều đi qua hai bảng dưới đây.

type AMCAction string

const (
	AMCActionVerifyPayment  AMCAction = "verify_payment"
	AMCActionRecordPayment  AMCAction = "record_cash_payment"
	AMCActionCancel         AMCAction = "cancel"
	AMCActionRenew          AMCAction = "renew"
	AMCActionUseService     AMCAction = "use_service"
	AMCActionSetAutoRenewal AMCAction = "set_auto_renewal"
	AMCActionExpire         AMCAction = "expire"
)

var amcTransitions = map[AmcSubscriptionStatus]map[AMCAction]AmcSubscriptionStatus{
	AmcSubscriptionStatusInactive: {
		AMCActionVerifyPayment: AmcSubscriptionStatusActive,
		AMCActionRecordPayment: AmcSubscriptionStatusActive,
	},
	AmcSubscriptionStatusActive: {
		AMCActionCancel:         AmcSubscriptionStatusCancelled,
		AMCActionRenew:          AmcSubscriptionStatusActive,
		AMCActionUseService:     AmcSubscriptionStatusActive,
		AMCActionSetAutoRenewal: AmcSubscriptionStatusActive,
		AMCActionExpire:         AmcSubscriptionStatusExpired,
	},
}

// NextAMCStatus returns the status a subscription moves to when action is applied.
func NextAMCStatus(current AmcSubscriptionStatus, action AMCAction) (AmcSubscriptionStatus, error) {
	next, ok := amcTransitions[current][action]
	if !ok {
		return current, &TransitionError{
			Entity:  "subscription",
			Action:  string(action),
			Current: string(current),
		}
	}

	return next, nil
}

type BookingAction string

const (
	BookingActionAssign          BookingAction = "assign"
	BookingActionAssignConfirmed BookingAction = "assign_confirmed"
	BookingActionConfirm         BookingAction = "confirm"
	BookingActionAccept          BookingAction = "accept"
	BookingActionDecline         BookingAction = "decline"
	BookingActionReject          BookingAction = "reject"
	BookingActionStart           BookingAction = "start"
	BookingActionCompleteSettled BookingAction = "complete_settled"
	BookingActionCompleteUnpaid  BookingAction = "complete_unpaid"
	BookingActionRecordPayment   BookingAction = "record_payment"
	BookingActionSettlePayment   BookingAction = "settle_payment"
	BookingActionCancel          BookingAction = "cancel"
	BookingActionReschedule      BookingAction = "reschedule"
)

var bookingTransitions = map[BookingStatus]map[BookingAction]BookingStatus{
	BookingStatusPending: {
		BookingActionAssign:          BookingStatusWaitingForEngineer,
		BookingActionAssignConfirmed: BookingStatusConfirmed,
		BookingActionReject:          BookingStatusDeclined,
		BookingActionRecordPayment:   BookingStatusPending,
		BookingActionCancel:          BookingStatusCancelled,
		BookingActionReschedule:      BookingStatusPending,
	},
	BookingStatusWaitingForEngineer: {
		BookingActionAssign:          BookingStatusWaitingForEngineer,
		BookingActionAssignConfirmed: BookingStatusConfirmed,
		BookingActionConfirm:         BookingStatusConfirmed,
		BookingActionAccept:          BookingStatusConfirmed,
		BookingActionDecline:         BookingStatusWaitingForEngineer,
		BookingActionRecordPayment:   BookingStatusWaitingForEngineer,
		BookingActionCancel:          BookingStatusCancelled,
		BookingActionReschedule:      BookingStatusWaitingForEngineer,
	},
	BookingStatusConfirmed: {
		BookingActionAssign:          BookingStatusWaitingForEngineer,
		BookingActionAssignConfirmed: BookingStatusConfirmed,
		BookingActionAccept:          BookingStatusConfirmed,
		BookingActionDecline:         BookingStatusWaitingForEngineer,
		BookingActionStart:           BookingStatusInProgress,
		BookingActionRecordPayment:   BookingStatusConfirmed,
		BookingActionCancel:          BookingStatusCancelled,
		BookingActionReschedule:      BookingStatusConfirmed,
	},
	BookingStatusInProgress: {
		BookingActionCompleteSettled: BookingStatusCompleted,
		BookingActionCompleteUnpaid:  BookingStatusInProgress,
		BookingActionRecordPayment:   BookingStatusInProgress,
		BookingActionSettlePayment:   BookingStatusCompleted,
		BookingActionCancel:          BookingStatusCancelled,
	},
	BookingStatusDeclined: {
		BookingActionAssign:          BookingStatusWaitingForEngineer,
		BookingActionAssignConfirmed: BookingStatusConfirmed,
	},
}

// NextBookingStatus returns the status a booking moves to when action is applied.
// Completed and cancelled bookings accept no action.
func NextBookingStatus(current BookingStatus, action BookingAction) (BookingStatus, error) {
	next, ok := bookingTransitions[current][action]
	if !ok {
		return current, &TransitionError{
			Entity:  "booking",
			Action:  string(action),
			Current: string(current),
		}
	}

	return next, nil
}

// BookingActionForStatus maps a target status requested through the generic
// status endpoint to the action that produces it.
func BookingActionForStatus(target BookingStatus) (BookingAction, bool) {
	switch target {
	case BookingStatusConfirmed:
		return BookingActionConfirm, true
	case BookingStatusInProgress:
		return BookingActionStart, true
	case BookingStatusDeclined:
		return BookingActionReject, true
	case BookingStatusCancelled:
		return BookingActionCancel, true
	default:
		return "", false
	}
}
