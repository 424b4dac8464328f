package cron

import (
	"context"
	"errors"
	"testing"

	"kitchenrent/models"
	"kitchenrent/services/notification"
	"kitchenrent/services/tasks"

	"github.com/hibiken/asynq"
)

type recordingDispatcher struct {
	got []models.PaymentNotice
	err error
}

func (r *recordingDispatcher) Dispatch(ctx context.Context, n models.PaymentNotice) error {
	r.got = append(r.got, n)
	return r.err
}

func TestHandlePaymentNoticeTask(t *testing.T) {
	notice := models.PaymentNotice{IntentID: "intent-1", KitchenName: "Sunny Kitchen", Message: "pay"}
	task, _, err := tasks.NewPaymentNoticeTask(notification.ChannelTelegram, notice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("delivers on the addressed channel only", func(t *testing.T) {
		chat, push := &recordingDispatcher{}, &recordingDispatcher{}
		channels := notification.ChannelSet{notification.ChannelTelegram: chat, notification.ChannelPush: push}
		if err := HandlePaymentNoticeTask(channels)(context.Background(), task); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(chat.got) != 1 || chat.got[0] != notice {
			t.Errorf("unexpected deliveries: %+v", chat.got)
		}
		if len(push.got) != 0 {
			t.Errorf("expected push channel untouched, got %d", len(push.got))
		}
	})

	t.Run("failing channel does not repeat the others", func(t *testing.T) {
		chat := &recordingDispatcher{}
		push := &recordingDispatcher{err: errors.New("fcm down")}
		channels := notification.ChannelSet{notification.ChannelTelegram: chat, notification.ChannelPush: push}
		pushTask, _, _ := tasks.NewPaymentNoticeTask(notification.ChannelPush, notice)

		handle := HandlePaymentNoticeTask(channels)
		_ = handle(context.Background(), task)
		for i := 0; i < 3; i++ {
			err := handle(context.Background(), pushTask)
			if err == nil || errors.Is(err, asynq.SkipRetry) {
				t.Fatalf("expected retryable error, got %v", err)
			}
		}
		if len(chat.got) != 1 {
			t.Errorf("expected one chat delivery, got %d", len(chat.got))
		}
		if len(push.got) != 3 {
			t.Errorf("expected three push attempts, got %d", len(push.got))
		}
	})

	t.Run("unknown channel is not retried", func(t *testing.T) {
		d := &recordingDispatcher{}
		channels := notification.ChannelSet{notification.ChannelPush: d}
		if err := HandlePaymentNoticeTask(channels)(context.Background(), task); !errors.Is(err, asynq.SkipRetry) {
			t.Errorf("expected SkipRetry, got %v", err)
		}
		if len(d.got) != 0 {
			t.Error("expected nothing delivered")
		}
	})

	t.Run("bad payload is not retried", func(t *testing.T) {
		d := &recordingDispatcher{}
		bad := asynq.NewTask(tasks.TypePaymentNotice, []byte("{"))
		channels := notification.ChannelSet{notification.ChannelTelegram: d}
		if err := HandlePaymentNoticeTask(channels)(context.Background(), bad); !errors.Is(err, asynq.SkipRetry) {
			t.Errorf("expected SkipRetry, got %v", err)
		}
		if len(d.got) != 0 {
			t.Error("expected nothing delivered")
		}
	})
}
