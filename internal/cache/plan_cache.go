package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	db "github.com/katatrina/fixfly-BE/internal/db/sqlc"
	"github.com/redis/go-redis/v9"
)

const (
	activePlansKey = "amc:plans:active"
	activePlansTTL = 10 * time.Minute
)

// PlanCache caches the public AMC plan catalog.
type PlanCache interface {
	GetActivePlans(ctx context.Context) (plans []db.AmcPlan, found bool, err error)
	SetActivePlans(ctx context.Context, plans []db.AmcPlan) error
	InvalidateActivePlans(ctx context.Context) error
}

type RedisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPlanCache(client *redis.Client) *RedisPlanCache {
	return &RedisPlanCache{
		client: client,
		ttl:    activePlansTTL,
	}
}

func (c *RedisPlanCache) GetActivePlans(ctx context.Context) ([]db.AmcPlan, bool, error) {
	data, err := c.client.Get(ctx, activePlansKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read plan cache: %w", err)
	}

	var plans []db.AmcPlan
	if err = json.Unmarshal(data, &plans); err != nil {
		// Dữ liệu hỏng thì coi như cache miss
		return nil, false, nil
	}

	return plans, true, nil
}

func (c *RedisPlanCache) SetActivePlans(ctx context.Context, plans []db.AmcPlan) error {
	data, err := json.Marshal(plans)
	if err != nil {
		return fmt.Errorf("failed to marshal plans: %w", err)
	}

	return c.client.Set(ctx, activePlansKey, data, c.ttl).Err()
}

func (c *RedisPlanCache) InvalidateActivePlans(ctx context.Context) error {
	return c.client.Del(ctx, activePlansKey).Err()
}

// NoopPlanCache is used when Redis is not configured. Every read is a miss.
type NoopPlanCache struct{}

func (NoopPlanCache) GetActivePlans(ctx context.Context) ([]db.AmcPlan, bool, error) {
	return nil, false, nil
}

func (NoopPlanCache) SetActivePlans(ctx context.Context, plans []db.AmcPlan) error {
	return nil
}

func (NoopPlanCache) InvalidateActivePlans(ctx context.Context) error {
	return nil
}
