package worker

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/katatrina/fixfly-BE/internal/notification"
	"github.com/rs/zerolog/log"
)

/*
 This file contains code that will pick up notification tasks from the Redis queue and deliver them.
*/

const (
	QueueCritical = "critical"
	QueueDefault  = "default"

	baseRetryDelay = 10 * time.Second
	maxRetryDelay  = 10 * time.Minute
)

// notificationRetryDelay doubles the wait after each failed delivery: 10s, 20s, 40s... capped at 10 minutes.
func notificationRetryDelay(n int, err error, task *asynq.Task) time.Duration {
	delay := baseRetryDelay
	for i := 0; i < n && delay < maxRetryDelay; i++ {
		delay *= 2
	}

	return min(delay, maxRetryDelay)
}

type RedisTaskProcessor struct {
	server *asynq.Server
	sink   notification.Sink
}

// NewRedisTaskProcessor creates a processor that delivers queued notifications through sink.
func NewRedisTaskProcessor(redisOpt asynq.RedisClientOpt, sink notification.Sink) *RedisTaskProcessor {
	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			RetryDelayFunc: notificationRetryDelay,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger: NewLogger(),
		},
	)

	return &RedisTaskProcessor{
		server: server,
		sink:   sink,
	}
}

// Start registers the task handlers for the mux, attaches the mux to the asynq server, and starts the server.
func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskSendNotification, processor.ProcessTaskSendNotification)

	return processor.server.Start(mux)
}

func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
