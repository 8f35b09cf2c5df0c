package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UpdateBookingTx locks the booking row, applies mutate and persists the result.
func (store *SQLStore) UpdateBookingTx(ctx context.Context, id uuid.UUID, mutate func(*Booking) error) (Booking, error) {
	var booking Booking

	err := store.ExecTx(ctx, func(qTx *Queries) error {
		var err error

		booking, err = qTx.GetBookingForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err = mutate(&booking); err != nil {
			return err
		}

		booking, err = qTx.UpdateBooking(ctx, booking.updateParams())
		if err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		return nil
	})

	return booking, err
}
