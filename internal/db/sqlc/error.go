package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	UniqueViolationCode     = "23505"
	ForeignKeyViolationCode = "23503"
)

const (
	UniqueEmailConstraint       = "users_email_key"
	UniqueVendorEmailConstraint = "vendors_email_key"
	UniquePlanNameConstraint    = "amc_plans_name_key"
)

var ErrRecordNotFound = pgx.ErrNoRows

var (
	ErrInvalidTransition       = errors.New("invalid status transition")
	ErrOrderIDMismatch         = errors.New("payment order id does not match")
	ErrPaymentAlreadyCompleted = errors.New("payment already completed")
	ErrUsageLimitExceeded      = errors.New("usage limit exceeded")
	ErrDeviceNotFound          = errors.New("device does not belong to subscription")
	ErrVendorInactive          = errors.New("vendor is not active")
	ErrVendorNotAssigned       = errors.New("booking is not assigned to this vendor")
	ErrBillingSubmitted        = errors.New("billing already submitted")
	ErrNothingToPay            = errors.New("no payable amount")
)

// TransitionError describes a rejected action together with the status the row was in.
type TransitionError struct {
	Entity  string
	Action  string
	Current string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s %s with status %s", e.Action, e.Entity, e.Current)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ErrorDescription returns the error code and constraint name from a Postgres error.
func ErrorDescription(err error) (errCode string, constraintName string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	return
}
