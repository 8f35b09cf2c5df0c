package worker

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/katatrina/fixfly-BE/internal/notification"
)

const notificationMaxRetry = 5

// QueuedSink enqueues notifications instead of delivering them inline,
// so a slow push provider never blocks a request.
type QueuedSink struct {
	distributor TaskDistributor
}

func NewQueuedSink(distributor TaskDistributor) *QueuedSink {
	return &QueuedSink{
		distributor: distributor,
	}
}

func (s *QueuedSink) Notify(ctx context.Context, n *notification.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	queue := QueueDefault
	if n.Audience == notification.AudienceAdmin {
		queue = QueueCritical
	}

	return s.distributor.DistributeTaskSendNotification(ctx, n,
		asynq.MaxRetry(notificationMaxRetry),
		asynq.Queue(queue),
	)
}
