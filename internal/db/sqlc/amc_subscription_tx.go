package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/katatrina/fixfly-BE/internal/util"
)

type CreateAMCSubscriptionTxParams struct {
	User          User
	Plan          AmcPlan
	Devices       []Device
	PaymentMethod PaymentMethod
}

func (store *SQLStore) CreateAMCSubscriptionTx(ctx context.Context, arg CreateAMCSubscriptionTxParams) (AmcSubscription, error) {
	var subscription AmcSubscription

	err := store.ExecTx(ctx, func(qTx *Queries) error {
		var err error

		// 1. Dọn các lần checkout bỏ dở của cùng user + plan
		err = qTx.DeletePendingAMCSubscriptions(ctx, DeletePendingAMCSubscriptionsParams{
			UserID: arg.User.ID,
			PlanID: arg.Plan.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to delete pending subscriptions: %w", err)
		}

		deviceCount := int64(len(arg.Devices))

		var phoneNumber string
		if arg.User.PhoneNumber != nil {
			phoneNumber = *arg.User.PhoneNumber
		}

		// 2. Tạo subscription ở trạng thái inactive, chờ thanh toán
		subscription, err = qTx.CreateAMCSubscription(ctx, CreateAMCSubscriptionParams{
			SubscriptionID: util.GenerateSubscriptionID(),
			UserID:         arg.User.ID,
			UserSnapshot: UserSnapshot{
				FullName:    arg.User.FullName,
				Email:       arg.User.Email,
				PhoneNumber: phoneNumber,
			},
			PlanID: arg.Plan.ID,
			PlanSnapshot: PlanSnapshot{
				Name:       arg.Plan.Name,
				Price:      arg.Plan.Price,
				PeriodDays: arg.Plan.PeriodDays,
			},
			Amount:        arg.Plan.Price * deviceCount,
			PaymentMethod: arg.PaymentMethod,
			Devices:       arg.Devices,
			Usage:         NewAmcUsage(arg.Plan.Benefits, deviceCount),
			AutoRenewal:   AutoRenewal{},
		})
		if err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}

		return nil
	})

	return subscription, err
}

// UpdateAMCSubscriptionTx locks the subscription row, applies mutate and persists the result.
// Every status guard runs inside mutate, so two racing requests see each other's writes.
func (store *SQLStore) UpdateAMCSubscriptionTx(ctx context.Context, id uuid.UUID, mutate func(*AmcSubscription) error) (AmcSubscription, error) {
	var subscription AmcSubscription

	err := store.ExecTx(ctx, func(qTx *Queries) error {
		var err error

		subscription, err = qTx.GetAMCSubscriptionForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err = mutate(&subscription); err != nil {
			return err
		}

		subscription, err = qTx.UpdateAMCSubscription(ctx, subscription.updateParams())
		if err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}

		return nil
	})

	return subscription, err
}
