package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"kitchenrent/models"

	"github.com/hibiken/asynq"
)

const TypePaymentNotice = "payment:notice"

// PaymentNoticePayload addresses a notice to a single delivery channel, so a
// retry never repeats delivery on the other channels.
type PaymentNoticePayload struct {
	Channel string               `json:"channel"`
	Notice  models.PaymentNotice `json:"notice"`
}

func NewPaymentNoticeTask(channel string, notice models.PaymentNotice) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(PaymentNoticePayload{Channel: channel, Notice: notice})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypePaymentNotice, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}

	return task, opts, nil
}

// ParsePaymentNotice decodes the payload of a payment notice task.
func ParsePaymentNotice(task *asynq.Task) (PaymentNoticePayload, error) {
	var p PaymentNoticePayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return PaymentNoticePayload{}, fmt.Errorf("invalid payment notice payload: %w", err)
	}
	if p.Channel == "" {
		return PaymentNoticePayload{}, fmt.Errorf("invalid payment notice payload: missing channel")
	}
	if p.Notice.IntentID == "" {
		return PaymentNoticePayload{}, fmt.Errorf("invalid payment notice payload: missing intent id")
	}
	return p, nil
}
