package notification

import (
	"context"
	"fmt"

	"kitchenrent/models"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// PushSender is satisfied by *messaging.Client.
type PushSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMDispatcher pushes the payment instructions to the requester's device.
type FCMDispatcher struct {
	push   PushSender
	users  UserLookup
	logger *zap.Logger
}

func NewFCMDispatcher(push PushSender, users UserLookup, logger *zap.Logger) *FCMDispatcher {
	return &FCMDispatcher{push: push, users: users, logger: logger}
}

func (d *FCMDispatcher) Dispatch(ctx context.Context, notice models.PaymentNotice) error {
	u, err := d.users.GetUserByID(ctx, notice.RequesterID)
	if err != nil {
		return fmt.Errorf("fcm: could not find user %s: %w", notice.RequesterID, err)
	}
	if u.FCMToken == "" {
		d.logger.Debug("fcm: requester has no device token, skipping", zap.String("userID", u.ID))
		return nil
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: fmt.Sprintf("Payment details for %s", notice.KitchenName),
			Body:  notice.Message,
		},
		Data: map[string]string{
			"type":     "payment_notice",
			"intentId": notice.IntentID,
			"role":     models.RoleConsumer,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	id, err := d.push.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("fcm: failed to send message: %w", err)
	}
	d.logger.Info("fcm: payment notice delivered", zap.String("intentID", notice.IntentID), zap.String("messageID", id))
	return nil
}
