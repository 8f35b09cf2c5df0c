package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestNoopPlanCache(t *testing.T) {
	var c PlanCache = NoopPlanCache{}

	if err := c.SetActivePlans(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	_, found, err := c.GetActivePlans(context.Background())
	if err != nil || found {
		t.Fatalf("NoopPlanCache should always miss, got found=%v err=%v", found, err)
	}
}

func TestRedisPlanCacheUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedisPlanCache(client)
	if _, found, err := c.GetActivePlans(context.Background()); err == nil || found {
		t.Fatalf("expected a connection error, got found=%v err=%v", found, err)
	}
}
