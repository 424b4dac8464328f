package cron

import (
	"context"
	"fmt"
	"time"

	"kitchenrent/config"
	"kitchenrent/services/notification"
	"kitchenrent/services/tasks"
	"kitchenrent/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt is the Redis connection shared by the notice queue client and worker.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitPaymentNoticeWorker runs the payment notice worker in background and
// returns the server so it can be shut down.
func InitPaymentNoticeWorker(ctx context.Context, channels notification.ChannelSet) *asynq.Server {
	logger := utils.GetLogger()

	concurrency := config.AppConfig.NotifyWorkers
	if concurrency <= 0 {
		concurrency = 10
	}

	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePaymentNotice, HandlePaymentNoticeTask(channels))

	go monitorRedisConnection(ctx)

	go func() {
		logger.Info("[PaymentNoticeWorker] starting async worker", zap.Int("concurrency", concurrency))
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("[PaymentNoticeWorker] failed to start worker",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("[PaymentNoticeWorker] max retry attempts reached")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

// HandlePaymentNoticeTask delivers a queued notice on the channel it is
// addressed to. A failure retries only that channel.
func HandlePaymentNoticeTask(channels notification.ChannelSet) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		p, err := tasks.ParsePaymentNotice(task)
		if err != nil {
			logger.Error("[PaymentNoticeHandler] invalid payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		deliver, ok := channels[p.Channel]
		if !ok || deliver == nil {
			logger.Error("[PaymentNoticeHandler] unknown channel", zap.String("channel", p.Channel))
			return fmt.Errorf("unknown notification channel %q: %w", p.Channel, asynq.SkipRetry)
		}

		logger.Info("[PaymentNoticeHandler] delivering payment notice",
			zap.String("intentID", p.Notice.IntentID), zap.String("channel", p.Channel),
			zap.String("kitchen", p.Notice.KitchenName))

		if err := deliver.Dispatch(ctx, p.Notice); err != nil {
			logger.Warn("[PaymentNoticeHandler] delivery failed",
				zap.String("intentID", p.Notice.IntentID), zap.String("channel", p.Channel), zap.Error(err))
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings the queue's Redis periodically to detect failures at runtime.
func monitorRedisConnection(ctx context.Context) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				utils.GetLogger().Warn("[PaymentNoticeWorker] Redis connection lost", zap.Error(err))
			}
		}
	}
}
