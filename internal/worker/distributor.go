package worker

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/katatrina/fixfly-BE/internal/notification"
)

const (
	TaskSendNotification = "notification:send"
)

/*
This file will contain the codes to create tasks and distributes them to the Redis queue.
*/

type TaskDistributor interface {
	DistributeTaskSendNotification(ctx context.Context, payload *notification.Notification, opts ...asynq.Option) error
}

type RedisTaskDistributor struct {
	client *asynq.Client // client sends tasks to redis queue.
}

func NewTaskDistributor(redisOpt asynq.RedisClientOpt) *RedisTaskDistributor {
	client := asynq.NewClient(redisOpt)

	return &RedisTaskDistributor{
		client: client,
	}
}

func (distributor *RedisTaskDistributor) Close() error {
	return distributor.client.Close()
}
