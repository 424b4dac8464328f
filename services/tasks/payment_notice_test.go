package tasks

import (
	"testing"

	"kitchenrent/models"

	"github.com/hibiken/asynq"
)

func TestPaymentNoticeTask(t *testing.T) {
	notice := models.PaymentNotice{
		IntentID:    "intent-1",
		KitchenName: "Sunny Kitchen",
		TotalPrice:  180000,
		HostChatID:  42,
		Message:     "pay please",
	}

	task, opts, err := NewPaymentNoticeTask("telegram", notice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Type() != TypePaymentNotice {
		t.Errorf("expected type %q, got %q", TypePaymentNotice, task.Type())
	}
	if len(opts) == 0 {
		t.Error("expected retry options")
	}

	got, err := ParsePaymentNotice(task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Channel != "telegram" || got.Notice != notice {
		t.Errorf("unexpected payload %+v", got)
	}
}

func TestParsePaymentNoticeRejectsBadPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "{"},
		{"missing channel", `{"notice":{"intentId":"intent-1"}}`},
		{"missing intent", `{"channel":"push","notice":{"kitchenName":"x"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := asynq.NewTask(TypePaymentNotice, []byte(tt.payload))
			if _, err := ParsePaymentNotice(task); err == nil {
				t.Error("expected error")
			}
		})
	}
}
