package notification

import (
	"context"
	"errors"
	"fmt"

	"kitchenrent/models"
	"kitchenrent/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueDispatcher defers delivery to the payment notice worker, one task per
// channel.
type QueueDispatcher struct {
	queue    Enqueuer
	channels []string
	logger   *zap.Logger
}

func NewQueueDispatcher(queue Enqueuer, channels []string, logger *zap.Logger) *QueueDispatcher {
	return &QueueDispatcher{queue: queue, channels: channels, logger: logger}
}

func (d *QueueDispatcher) Dispatch(ctx context.Context, notice models.PaymentNotice) error {
	if len(d.channels) == 0 {
		d.logger.Warn("no notification channel configured, payment notice dropped",
			zap.String("intentID", notice.IntentID))
		return nil
	}

	var errs []error
	for _, channel := range d.channels {
		task, opts, err := tasks.NewPaymentNoticeTask(channel, notice)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to build %s payment notice task: %w", channel, err))
			continue
		}

		info, err := d.queue.EnqueueContext(ctx, task, opts...)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to enqueue %s payment notice for intent %s: %w", channel, notice.IntentID, err))
			continue
		}

		d.logger.Info("payment notice enqueued",
			zap.String("intentID", notice.IntentID),
			zap.String("channel", channel),
			zap.String("taskID", info.ID),
			zap.String("queue", info.Queue))
	}
	return errors.Join(errs...)
}
