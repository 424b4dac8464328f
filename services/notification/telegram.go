package notification

import (
	"context"
	"errors"
	"fmt"

	"kitchenrent/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Bot is satisfied by *tgbotapi.BotAPI.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramDispatcher posts payment instructions to the host's chat and, when
// linked, to the requester's chat.
type TelegramDispatcher struct {
	bot    Bot
	users  UserLookup
	logger *zap.Logger
}

func NewTelegramDispatcher(bot Bot, users UserLookup, logger *zap.Logger) *TelegramDispatcher {
	return &TelegramDispatcher{bot: bot, users: users, logger: logger}
}

func (d *TelegramDispatcher) Dispatch(ctx context.Context, notice models.PaymentNotice) error {
	chats := make([]int64, 0, 2)
	if notice.HostChatID != 0 {
		chats = append(chats, notice.HostChatID)
	}
	if d.users != nil && notice.RequesterID != "" {
		u, err := d.users.GetUserByID(ctx, notice.RequesterID)
		if err != nil {
			d.logger.Warn("telegram: requester lookup failed",
				zap.String("requesterID", notice.RequesterID), zap.Error(err))
		} else if u.TelegramChatID != 0 && u.TelegramChatID != notice.HostChatID {
			chats = append(chats, u.TelegramChatID)
		}
	}

	if len(chats) == 0 {
		d.logger.Debug("telegram: no chat linked, skipping", zap.String("intentID", notice.IntentID))
		return nil
	}

	var errs []error
	for _, chatID := range chats {
		msg := tgbotapi.NewMessage(chatID, notice.Message)
		if _, err := d.bot.Send(msg); err != nil {
			errs = append(errs, fmt.Errorf("telegram: send to chat %d failed: %w", chatID, err))
		}
	}
	return errors.Join(errs...)
}
