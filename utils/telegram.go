package utils

import (
	"fmt"

	"kitchenrent/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var TelegramBot *tgbotapi.BotAPI

// TelegramInit connects the bot used to relay payment instructions to hosts.
// Without a token TelegramBot stays nil and chat delivery is skipped.
func TelegramInit() error {
	token := config.AppConfig.TelegramBotToken
	if token == "" {
		return nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("telegram: error connecting bot: %w", err)
	}
	bot.Debug = !config.IsProduction()

	TelegramBot = bot
	GetLogger().Sugar().Infof("telegram: authorized as %s", bot.Self.UserName)
	return nil
}
